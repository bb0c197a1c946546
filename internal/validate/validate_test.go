package validate

import (
	"testing"

	"github.com/odnamta/agency-service/internal/models"
)

func ratingPtr(v float64) *float64 { return &v }

// Every canonical enum value must pass its own predicate, and a string
// that belongs to no enum must fail all six.
func TestEnumPredicates_Soundness(t *testing.T) {
	for _, v := range models.AllServiceTypes {
		if !IsValidServiceType(string(v)) {
			t.Errorf("IsValidServiceType rejected canonical value %q", v)
		}
	}
	for _, v := range models.AllPortAgentServices {
		if !IsValidPortAgentService(string(v)) {
			t.Errorf("IsValidPortAgentService rejected canonical value %q", v)
		}
	}
	for _, v := range models.AllProviderTypes {
		if !IsValidProviderType(string(v)) {
			t.Errorf("IsValidProviderType rejected canonical value %q", v)
		}
	}
	for _, v := range models.AllPortTypes {
		if !IsValidPortType(string(v)) {
			t.Errorf("IsValidPortType rejected canonical value %q", v)
		}
	}
	for _, v := range models.AllContainerTypes {
		if !IsValidContainerType(string(v)) {
			t.Errorf("IsValidContainerType rejected canonical value %q", v)
		}
	}
	for _, v := range models.AllShippingTerms {
		if !IsValidShippingTerms(string(v)) {
			t.Errorf("IsValidShippingTerms rejected canonical value %q", v)
		}
	}

	for _, junk := range []string{"", "BANANA", "fcl", "20dc", "FOB "} {
		if IsValidServiceType(junk) || IsValidPortAgentService(junk) ||
			IsValidProviderType(junk) || IsValidPortType(junk) ||
			IsValidContainerType(junk) || IsValidShippingTerms(junk) {
			t.Errorf("predicates accepted non-member %q", junk)
		}
	}
}

// Enum sets are not interchangeable: a valid container type is still an
// invalid service type, even though both are uppercase tokens.
func TestEnumPredicates_NotInterchangeable(t *testing.T) {
	if IsValidServiceType(string(models.Container20DC)) {
		t.Error("container type accepted as service type")
	}
	if IsValidContainerType(string(models.ServiceFCL)) {
		t.Error("service type accepted as container type")
	}
	if IsValidShippingTerms(string(models.ProviderTrucking)) {
		t.Error("provider type accepted as shipping terms")
	}
}

func TestShippingLine_Valid(t *testing.T) {
	res := ShippingLine(models.ShippingLineForm{
		LineName:        "Maersk Line",
		ServicesOffered: []string{"FCL", "REEFER"},
		ServiceRating:   ratingPtr(4.5),
		IsActive:        true,
	})
	if !res.Valid() {
		t.Fatalf("expected valid form, got errors: %v", res.Errors)
	}
	if len(res.Errors) != 0 {
		t.Fatalf("valid form must produce an empty error list, got %d", len(res.Errors))
	}
}

func TestShippingLine_RejectsBadService(t *testing.T) {
	res := ShippingLine(models.ShippingLineForm{
		LineName:        "Maersk Line",
		ServicesOffered: []string{"FCL", "TELEPORT"},
	})
	if res.Valid() {
		t.Fatal("expected invalid form")
	}
	if !res.HasFieldError("servicesOffered") {
		t.Errorf("expected error tagged servicesOffered, got %v", res.Errors)
	}
}

func TestShippingLine_RequiresName(t *testing.T) {
	res := ShippingLine(models.ShippingLineForm{LineName: "   "})
	if !res.HasFieldError("lineName") {
		t.Errorf("whitespace-only name must fail, got %v", res.Errors)
	}
}

func TestShippingLine_RatingBoundaries(t *testing.T) {
	cases := []struct {
		rating float64
		ok     bool
	}{
		{1.0, true},
		{5.0, true},
		{3.2, true},
		{0.999, false},
		{5.001, false},
		{-1, false},
	}
	for _, tc := range cases {
		res := ShippingLine(models.ShippingLineForm{
			LineName:      "Test Line",
			ServiceRating: ratingPtr(tc.rating),
		})
		if tc.ok && res.HasFieldError("serviceRating") {
			t.Errorf("rating %v should be valid, got %v", tc.rating, res.Errors)
		}
		if !tc.ok && !res.HasFieldError("serviceRating") {
			t.Errorf("rating %v should be rejected", tc.rating)
		}
	}
}

func TestShippingLine_NilRatingIsFine(t *testing.T) {
	res := ShippingLine(models.ShippingLineForm{LineName: "No Rating Yet"})
	if res.HasFieldError("serviceRating") {
		t.Errorf("absent rating must not produce an error: %v", res.Errors)
	}
}

func TestPortAgent_RequiredFields(t *testing.T) {
	res := PortAgent(models.PortAgentForm{})
	for _, field := range []string{"agentName", "portName", "portCountry"} {
		if !res.HasFieldError(field) {
			t.Errorf("expected missing-field error for %s, got %v", field, res.Errors)
		}
	}
}

func TestPortAgent_RejectsBadService(t *testing.T) {
	res := PortAgent(models.PortAgentForm{
		AgentName:   "Ben Line",
		PortName:    "Singapore",
		PortCountry: "Singapore",
		Services:    []string{"STEVEDORING", "CATERING"},
	})
	if res.Valid() || !res.HasFieldError("services") {
		t.Errorf("expected services error, got %v", res.Errors)
	}
}

func TestServiceProvider_RejectsBadType(t *testing.T) {
	res := ServiceProvider(models.ServiceProviderForm{
		ProviderName: "Santos Logistics",
		ProviderType: "AIRLINE",
	})
	if res.Valid() || !res.HasFieldError("providerType") {
		t.Errorf("expected providerType error, got %v", res.Errors)
	}
}

func TestShippingRate_Validation(t *testing.T) {
	res := ShippingRate(models.ShippingRateForm{
		ShippingLineID:    "line-1",
		OriginPortID:      "port-1",
		DestinationPortID: "port-2",
		ContainerType:     "40HC",
		Terms:             "CIF",
		AmountUSD:         1850,
	})
	if !res.Valid() {
		t.Fatalf("expected valid rate, got %v", res.Errors)
	}

	res = ShippingRate(models.ShippingRateForm{
		ContainerType: "53FT",
		Terms:         "CNF",
	})
	for _, field := range []string{"shippingLineId", "originPortId", "destinationPortId", "containerType", "terms"} {
		if !res.HasFieldError(field) {
			t.Errorf("expected error for %s, got %v", field, res.Errors)
		}
	}
}
