// store/memory.go
package store

import (
	"context"
	"sync"

	"github.com/odnamta/agency-service/internal/models"
)

// MemoryStore keeps everything in maps. Used in tests and local runs
// where no Postgres is available.
type MemoryStore struct {
	mu        sync.RWMutex
	lines     map[string]models.ShippingLine
	agents    map[string]models.PortAgent
	providers map[string]models.ServiceProvider
	rates     map[string]models.ShippingRate
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		lines:     make(map[string]models.ShippingLine),
		agents:    make(map[string]models.PortAgent),
		providers: make(map[string]models.ServiceProvider),
		rates:     make(map[string]models.ShippingRate),
	}
}

func (s *MemoryStore) CreateShippingLine(ctx context.Context, line models.ShippingLine) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lines[line.ID] = line
	return nil
}

func (s *MemoryStore) ListShippingLines(ctx context.Context) ([]models.ShippingLine, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]models.ShippingLine, 0, len(s.lines))
	for _, line := range s.lines {
		result = append(result, line)
	}
	return result, nil
}

func (s *MemoryStore) CreatePortAgent(ctx context.Context, agent models.PortAgent) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.agents[agent.ID] = agent
	return nil
}

func (s *MemoryStore) ListPortAgents(ctx context.Context) ([]models.PortAgent, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]models.PortAgent, 0, len(s.agents))
	for _, agent := range s.agents {
		result = append(result, agent)
	}
	return result, nil
}

func (s *MemoryStore) CreateServiceProvider(ctx context.Context, provider models.ServiceProvider) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.providers[provider.ID] = provider
	return nil
}

func (s *MemoryStore) ListServiceProviders(ctx context.Context) ([]models.ServiceProvider, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]models.ServiceProvider, 0, len(s.providers))
	for _, provider := range s.providers {
		result = append(result, provider)
	}
	return result, nil
}

func (s *MemoryStore) CreateShippingRate(ctx context.Context, rate models.ShippingRate) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rates[rate.ID] = rate
	return nil
}

func (s *MemoryStore) ListShippingRates(ctx context.Context) ([]models.ShippingRate, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]models.ShippingRate, 0, len(s.rates))
	for _, rate := range s.rates {
		result = append(result, rate)
	}
	return result, nil
}

func (s *MemoryStore) ListCodes(ctx context.Context, kind models.EntityKind) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	var codes []string
	switch kind {
	case models.KindShippingLine:
		for _, line := range s.lines {
			codes = append(codes, line.LineCode)
		}
	case models.KindPortAgent:
		for _, agent := range s.agents {
			codes = append(codes, agent.AgentCode)
		}
	case models.KindServiceProvider:
		for _, provider := range s.providers {
			codes = append(codes, provider.ProviderCode)
		}
	default:
		return nil, ErrUnknownKind
	}
	return codes, nil
}
