package models

// ProviderType enumerates the kinds of service providers the agency
// contracts with outside the carrier/agent relationship.
type ProviderType string

const (
	ProviderTrucking      ProviderType = "TRUCKING"
	ProviderCustomsBroker ProviderType = "CUSTOMS_BROKER"
	ProviderWarehouse     ProviderType = "WAREHOUSE"
	ProviderFumigation    ProviderType = "FUMIGATION"
	ProviderSurveyor      ProviderType = "SURVEYOR"
	ProviderInsurance     ProviderType = "INSURANCE"
)

// AllProviderTypes is the canonical list of accepted provider types.
var AllProviderTypes = []ProviderType{
	ProviderTrucking,
	ProviderCustomsBroker,
	ProviderWarehouse,
	ProviderFumigation,
	ProviderSurveyor,
	ProviderInsurance,
}

// ServiceProvider represents a vendor such as a trucker or customs broker.
type ServiceProvider struct {
	ID            string
	ProviderCode  string // unique, generated from name + provider type
	ProviderName  string
	ProviderType  ProviderType
	ServiceRating *float64
	IsActive      bool
	IsPreferred   bool
}

// ServiceProviderForm is the raw create/update payload before validation.
type ServiceProviderForm struct {
	ProviderName  string
	ProviderType  string
	ServiceRating *float64
	IsActive      bool
	IsPreferred   bool
}
