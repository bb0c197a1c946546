package models

// EntityKind names the record families the agency manages. The store
// uses it to answer "which codes are already taken" per family.
type EntityKind string

const (
	KindShippingLine    EntityKind = "SHIPPING_LINE"
	KindPortAgent       EntityKind = "PORT_AGENT"
	KindServiceProvider EntityKind = "SERVICE_PROVIDER"
)
