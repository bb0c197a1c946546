package models

// PortAgentService enumerates the services a port agent can perform
// on behalf of the agency at a given port.
type PortAgentService string

const (
	AgentClearance   PortAgentService = "CUSTOMS_CLEARANCE"
	AgentStevedoring PortAgentService = "STEVEDORING"
	AgentBunkering   PortAgentService = "BUNKERING"
	AgentCrewChange  PortAgentService = "CREW_CHANGE"
	AgentHusbandry   PortAgentService = "HUSBANDRY"
	AgentSurveying   PortAgentService = "SURVEYING"
)

// AllPortAgentServices is the canonical list of accepted agent services.
var AllPortAgentServices = []PortAgentService{
	AgentClearance,
	AgentStevedoring,
	AgentBunkering,
	AgentCrewChange,
	AgentHusbandry,
	AgentSurveying,
}

// PortType classifies a port.
type PortType string

const (
	PortSea    PortType = "SEA"
	PortRiver  PortType = "RIVER"
	PortDry    PortType = "DRY"
	PortInland PortType = "INLAND"
)

// AllPortTypes is the canonical list of accepted port types.
var AllPortTypes = []PortType{PortSea, PortRiver, PortDry, PortInland}

// PortAgent represents a local agent handling vessel calls at a port.
type PortAgent struct {
	ID            string
	AgentCode     string // unique, generated from name + port code
	AgentName     string
	PortCode      string // UN/LOCODE style, e.g. "SGSIN"
	PortName      string
	PortCountry   string
	Services      []PortAgentService
	ServiceRating *float64 // 1..5, nil when not yet rated
	IsActive      bool
	IsPreferred   bool
}

// PortAgentForm is the raw create/update payload before validation.
type PortAgentForm struct {
	AgentName     string
	PortCode      string
	PortName      string
	PortCountry   string
	Services      []string
	ServiceRating *float64
	IsActive      bool
	IsPreferred   bool
}
