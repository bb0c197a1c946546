// internal/validate/forms.go
package validate

import (
	"github.com/odnamta/agency-service/internal/models"
)

// ShippingLine validates a shipping line create/update form.
func ShippingLine(form models.ShippingLineForm) Result {
	var r Result
	r.requireText("lineName", form.LineName)
	for _, s := range form.ServicesOffered {
		if !IsValidServiceType(s) {
			r.add("servicesOffered", "unknown service type: "+s)
		}
	}
	if form.CreditLimit != nil && *form.CreditLimit < 0 {
		r.add("creditLimit", "creditLimit cannot be negative")
	}
	r.checkRating("serviceRating", form.ServiceRating)
	return r
}

// PortAgent validates a port agent create/update form.
func PortAgent(form models.PortAgentForm) Result {
	var r Result
	r.requireText("agentName", form.AgentName)
	r.requireText("portName", form.PortName)
	r.requireText("portCountry", form.PortCountry)
	for _, s := range form.Services {
		if !IsValidPortAgentService(s) {
			r.add("services", "unknown port agent service: "+s)
		}
	}
	r.checkRating("serviceRating", form.ServiceRating)
	return r
}

// ServiceProvider validates a service provider create/update form.
func ServiceProvider(form models.ServiceProviderForm) Result {
	var r Result
	r.requireText("providerName", form.ProviderName)
	if !IsValidProviderType(form.ProviderType) {
		r.add("providerType", "unknown provider type: "+form.ProviderType)
	}
	r.checkRating("serviceRating", form.ServiceRating)
	return r
}

// ShippingRate validates a rate create/update form. The three foreign
// keys are required; resolving them is the store's job, not ours.
func ShippingRate(form models.ShippingRateForm) Result {
	var r Result
	r.requireText("shippingLineId", form.ShippingLineID)
	r.requireText("originPortId", form.OriginPortID)
	r.requireText("destinationPortId", form.DestinationPortID)
	if !IsValidContainerType(form.ContainerType) {
		r.add("containerType", "unknown container type: "+form.ContainerType)
	}
	if !IsValidShippingTerms(form.Terms) {
		r.add("terms", "unknown shipping terms: "+form.Terms)
	}
	if form.AmountUSD < 0 {
		r.add("amountUsd", "amountUsd cannot be negative")
	}
	return r
}
