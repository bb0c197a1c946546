// service/agency.go
package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/odnamta/agency-service/internal/codes"
	"github.com/odnamta/agency-service/internal/models"
	"github.com/odnamta/agency-service/internal/stats"
	"github.com/odnamta/agency-service/internal/validate"
	"github.com/odnamta/agency-service/pkg/kafka"
	"github.com/odnamta/agency-service/store"
)

// ValidationError carries the field-level validation result across the
// service boundary. Callers use errors.As to get at the Result and
// decorate their forms; everything else treats it as a normal error.
type ValidationError struct {
	Result validate.Result
}

func (e *ValidationError) Error() string {
	msgs := make([]string, len(e.Result.Errors))
	for i, fe := range e.Result.Errors {
		msgs[i] = fe.Field + ": " + fe.Message
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}

// AgencyService owns the create flows for agency master data:
// validate the form, generate a unique code against the codes already
// in the store, persist, then publish a lifecycle event.
type AgencyService struct {
	store    store.AgencyStore
	producer kafka.Publisher
}

// NewAgencyService wires the service to its store and event producer.
// The producer may be nil (tests, local runs without a broker); events
// are then skipped.
func NewAgencyService(st store.AgencyStore, producer kafka.Publisher) *AgencyService {
	return &AgencyService{store: st, producer: producer}
}

// CreateShippingLine validates and persists a new carrier, minting its
// line code against the codes already in use.
func (s *AgencyService) CreateShippingLine(ctx context.Context, form models.ShippingLineForm) (models.ShippingLine, error) {
	if res := validate.ShippingLine(form); !res.Valid() {
		return models.ShippingLine{}, &ValidationError{Result: res}
	}

	existing, err := s.store.ListCodes(ctx, models.KindShippingLine)
	if err != nil {
		return models.ShippingLine{}, fmt.Errorf("failed to list line codes: %w", err)
	}

	services := make([]models.ServiceType, len(form.ServicesOffered))
	for i, svc := range form.ServicesOffered {
		services[i] = models.ServiceType(svc)
	}
	line := models.ShippingLine{
		ID:              uuid.NewString(),
		LineCode:        codes.GenerateShippingLineCode(form.LineName, existing),
		LineName:        form.LineName,
		ServicesOffered: services,
		CreditLimit:     form.CreditLimit,
		ServiceRating:   form.ServiceRating,
		IsActive:        form.IsActive,
		IsPreferred:     form.IsPreferred,
	}

	if err := s.store.CreateShippingLine(ctx, line); err != nil {
		return models.ShippingLine{}, fmt.Errorf("failed to create shipping line: %w", err)
	}
	s.publish(line.ID, "shipping_line.created", line)
	return line, nil
}

// CreatePortAgent validates and persists a new port agent.
func (s *AgencyService) CreatePortAgent(ctx context.Context, form models.PortAgentForm) (models.PortAgent, error) {
	if res := validate.PortAgent(form); !res.Valid() {
		return models.PortAgent{}, &ValidationError{Result: res}
	}

	existing, err := s.store.ListCodes(ctx, models.KindPortAgent)
	if err != nil {
		return models.PortAgent{}, fmt.Errorf("failed to list agent codes: %w", err)
	}

	services := make([]models.PortAgentService, len(form.Services))
	for i, svc := range form.Services {
		services[i] = models.PortAgentService(svc)
	}
	agent := models.PortAgent{
		ID:            uuid.NewString(),
		AgentCode:     codes.GenerateAgentCode(form.AgentName, form.PortCode, existing),
		AgentName:     form.AgentName,
		PortCode:      form.PortCode,
		PortName:      form.PortName,
		PortCountry:   form.PortCountry,
		Services:      services,
		ServiceRating: form.ServiceRating,
		IsActive:      form.IsActive,
		IsPreferred:   form.IsPreferred,
	}

	if err := s.store.CreatePortAgent(ctx, agent); err != nil {
		return models.PortAgent{}, fmt.Errorf("failed to create port agent: %w", err)
	}
	s.publish(agent.ID, "port_agent.created", agent)
	return agent, nil
}

// CreateServiceProvider validates and persists a new vendor.
func (s *AgencyService) CreateServiceProvider(ctx context.Context, form models.ServiceProviderForm) (models.ServiceProvider, error) {
	if res := validate.ServiceProvider(form); !res.Valid() {
		return models.ServiceProvider{}, &ValidationError{Result: res}
	}

	existing, err := s.store.ListCodes(ctx, models.KindServiceProvider)
	if err != nil {
		return models.ServiceProvider{}, fmt.Errorf("failed to list provider codes: %w", err)
	}

	providerType := models.ProviderType(form.ProviderType)
	provider := models.ServiceProvider{
		ID:            uuid.NewString(),
		ProviderCode:  codes.GenerateProviderCode(form.ProviderName, providerType, existing),
		ProviderName:  form.ProviderName,
		ProviderType:  providerType,
		ServiceRating: form.ServiceRating,
		IsActive:      form.IsActive,
		IsPreferred:   form.IsPreferred,
	}

	if err := s.store.CreateServiceProvider(ctx, provider); err != nil {
		return models.ServiceProvider{}, fmt.Errorf("failed to create service provider: %w", err)
	}
	s.publish(provider.ID, "service_provider.created", provider)
	return provider, nil
}

// CreateShippingRate validates and persists a quoted rate. Rates carry
// no generated code, so there is no code step here.
func (s *AgencyService) CreateShippingRate(ctx context.Context, form models.ShippingRateForm) (models.ShippingRate, error) {
	if res := validate.ShippingRate(form); !res.Valid() {
		return models.ShippingRate{}, &ValidationError{Result: res}
	}

	rate := models.ShippingRate{
		ID:                uuid.NewString(),
		ShippingLineID:    form.ShippingLineID,
		OriginPortID:      form.OriginPortID,
		DestinationPortID: form.DestinationPortID,
		ContainerType:     models.ContainerType(form.ContainerType),
		Terms:             models.ShippingTerms(form.Terms),
		AmountUSD:         form.AmountUSD,
		IsActive:          form.IsActive,
	}

	if err := s.store.CreateShippingRate(ctx, rate); err != nil {
		return models.ShippingRate{}, fmt.Errorf("failed to create shipping rate: %w", err)
	}
	s.publish(rate.ID, "shipping_rate.created", rate)
	return rate, nil
}

// ShippingLineStats fetches all carriers and reduces them to the
// dashboard summary.
func (s *AgencyService) ShippingLineStats(ctx context.Context) (stats.ShippingLineStats, error) {
	lines, err := s.store.ListShippingLines(ctx)
	if err != nil {
		return stats.ShippingLineStats{}, fmt.Errorf("failed to list shipping lines: %w", err)
	}
	return stats.CalculateShippingLineStats(lines), nil
}

// PortAgentStats fetches all agents and reduces them to the dashboard
// summary.
func (s *AgencyService) PortAgentStats(ctx context.Context) (stats.PortAgentStats, error) {
	agents, err := s.store.ListPortAgents(ctx)
	if err != nil {
		return stats.PortAgentStats{}, fmt.Errorf("failed to list port agents: %w", err)
	}
	return stats.CalculatePortAgentStats(agents), nil
}

// publish sends a lifecycle event fire-and-forget, keyed by entity ID
// so events for one entity stay ordered.
func (s *AgencyService) publish(key, event string, payload interface{}) {
	if s.producer == nil {
		return
	}
	go s.producer.Publish(context.Background(), key, kafka.Event{Event: event, Payload: payload})
}
