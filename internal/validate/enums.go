// internal/validate/enums.go
package validate

import (
	"github.com/odnamta/agency-service/internal/models"
)

// Membership sets are built once at package init so every predicate is
// an O(1) lookup instead of a scan of the canonical slices. Each enum
// keeps its own set: sets are never interchangeable even if two enums
// were to share a token spelling.
var (
	serviceTypeSet      = make(map[string]struct{}, len(models.AllServiceTypes))
	portAgentServiceSet = make(map[string]struct{}, len(models.AllPortAgentServices))
	providerTypeSet     = make(map[string]struct{}, len(models.AllProviderTypes))
	portTypeSet         = make(map[string]struct{}, len(models.AllPortTypes))
	containerTypeSet    = make(map[string]struct{}, len(models.AllContainerTypes))
	shippingTermsSet    = make(map[string]struct{}, len(models.AllShippingTerms))
)

func init() {
	for _, v := range models.AllServiceTypes {
		serviceTypeSet[string(v)] = struct{}{}
	}
	for _, v := range models.AllPortAgentServices {
		portAgentServiceSet[string(v)] = struct{}{}
	}
	for _, v := range models.AllProviderTypes {
		providerTypeSet[string(v)] = struct{}{}
	}
	for _, v := range models.AllPortTypes {
		portTypeSet[string(v)] = struct{}{}
	}
	for _, v := range models.AllContainerTypes {
		containerTypeSet[string(v)] = struct{}{}
	}
	for _, v := range models.AllShippingTerms {
		shippingTermsSet[string(v)] = struct{}{}
	}
}

// IsValidServiceType reports whether v is a known shipping line service.
func IsValidServiceType(v string) bool {
	_, ok := serviceTypeSet[v]
	return ok
}

// IsValidPortAgentService reports whether v is a known port agent service.
func IsValidPortAgentService(v string) bool {
	_, ok := portAgentServiceSet[v]
	return ok
}

// IsValidProviderType reports whether v is a known provider type.
func IsValidProviderType(v string) bool {
	_, ok := providerTypeSet[v]
	return ok
}

// IsValidPortType reports whether v is a known port type.
func IsValidPortType(v string) bool {
	_, ok := portTypeSet[v]
	return ok
}

// IsValidContainerType reports whether v is a known container type.
func IsValidContainerType(v string) bool {
	_, ok := containerTypeSet[v]
	return ok
}

// IsValidShippingTerms reports whether v is a known Incoterm.
func IsValidShippingTerms(v string) bool {
	_, ok := shippingTermsSet[v]
	return ok
}
