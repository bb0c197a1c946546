package models

// ContainerType enumerates the equipment a rate can be quoted for.
type ContainerType string

const (
	Container20DC ContainerType = "20DC"
	Container40DC ContainerType = "40DC"
	Container40HC ContainerType = "40HC"
	Container45HC ContainerType = "45HC"
	Container20RF ContainerType = "20RF"
	Container40RF ContainerType = "40RF"
	Container20OT ContainerType = "20OT"
	Container40FR ContainerType = "40FR"
)

// AllContainerTypes is the canonical list of accepted container types.
var AllContainerTypes = []ContainerType{
	Container20DC,
	Container40DC,
	Container40HC,
	Container45HC,
	Container20RF,
	Container40RF,
	Container20OT,
	Container40FR,
}

// ShippingTerms enumerates the Incoterms a rate can be agreed under.
type ShippingTerms string

const (
	TermsFOB ShippingTerms = "FOB"
	TermsCIF ShippingTerms = "CIF"
	TermsCFR ShippingTerms = "CFR"
	TermsEXW ShippingTerms = "EXW"
	TermsDDP ShippingTerms = "DDP"
	TermsDAP ShippingTerms = "DAP"
	TermsFAS ShippingTerms = "FAS"
)

// AllShippingTerms is the canonical list of accepted shipping terms.
var AllShippingTerms = []ShippingTerms{
	TermsFOB, TermsCIF, TermsCFR, TermsEXW, TermsDDP, TermsDAP, TermsFAS,
}

// ShippingRate represents a quoted rate for a lane and equipment type.
// The three foreign keys point at records owned by the store; this
// package never resolves them.
type ShippingRate struct {
	ID                string
	ShippingLineID    string
	OriginPortID      string
	DestinationPortID string
	ContainerType     ContainerType
	Terms             ShippingTerms
	AmountUSD         float64
	IsActive          bool
}

// ShippingRateForm is the raw create/update payload before validation.
type ShippingRateForm struct {
	ShippingLineID    string
	OriginPortID      string
	DestinationPortID string
	ContainerType     string
	Terms             string
	AmountUSD         float64
	IsActive          bool
}
