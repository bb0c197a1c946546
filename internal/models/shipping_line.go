package models

// ServiceType enumerates the services a shipping line can offer.
// Membership in this set is the only validity criterion. There is no
// ordering or hierarchy between values.
type ServiceType string

const (
	ServiceFCL       ServiceType = "FCL"
	ServiceLCL       ServiceType = "LCL"
	ServiceReefer    ServiceType = "REEFER"
	ServiceBreakBulk ServiceType = "BREAK_BULK"
	ServiceRoRo      ServiceType = "RORO"
	ServiceDG        ServiceType = "DANGEROUS_GOODS"
)

// AllServiceTypes is the canonical list of accepted service types.
// Validators build their membership sets from this slice.
var AllServiceTypes = []ServiceType{
	ServiceFCL,
	ServiceLCL,
	ServiceReefer,
	ServiceBreakBulk,
	ServiceRoRo,
	ServiceDG,
}

// ShippingLine represents a carrier the agency books cargo with.
// Optional numeric fields are pointers: nil means the value was never
// captured, which the validators and stats treat the same as absent.
type ShippingLine struct {
	ID              string
	LineCode        string // short unique code, 3-10 chars, generated at create time
	LineName        string
	ServicesOffered []ServiceType
	CreditLimit     *float64 // agreed credit facility, nil when none
	ServiceRating   *float64 // 1..5, nil when not yet rated
	IsActive        bool
	IsPreferred     bool
}

// ShippingLineForm is the raw create/update payload before validation.
// Enum fields stay as plain strings here because the caller may send
// anything; validation decides what is acceptable.
type ShippingLineForm struct {
	LineName        string
	ServicesOffered []string
	CreditLimit     *float64
	ServiceRating   *float64
	IsActive        bool
	IsPreferred     bool
}
