// store/store.go
package store

import (
	"context"
	"errors"

	"github.com/odnamta/agency-service/internal/models"
)

// ErrUnknownKind is returned by ListCodes for an entity kind the store
// has no code column for.
var ErrUnknownKind = errors.New("unknown entity kind")

// AgencyStore defines the storage layer for agency master data. The
// service layer talks only to this interface; Postgres and in-memory
// implementations live alongside it.
type AgencyStore interface {
	CreateShippingLine(ctx context.Context, line models.ShippingLine) error
	ListShippingLines(ctx context.Context) ([]models.ShippingLine, error)

	CreatePortAgent(ctx context.Context, agent models.PortAgent) error
	ListPortAgents(ctx context.Context) ([]models.PortAgent, error)

	CreateServiceProvider(ctx context.Context, provider models.ServiceProvider) error
	ListServiceProviders(ctx context.Context) ([]models.ServiceProvider, error)

	CreateShippingRate(ctx context.Context, rate models.ShippingRate) error
	ListShippingRates(ctx context.Context) ([]models.ShippingRate, error)

	// ListCodes returns every code already assigned within one entity
	// family. The code generator takes this list as explicit input.
	ListCodes(ctx context.Context, kind models.EntityKind) ([]string, error)
}
