// internal/alerts/prefs.go
package alerts

import (
	"time"
)

// Severity orders alerts from informational to critical. The ordering
// matters: a preference's MinSeverity is a lower bound.
type Severity int

const (
	SeverityInfo Severity = iota
	SeverityWarning
	SeverityCritical
)

func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "INFO"
	case SeverityWarning:
		return "WARNING"
	case SeverityCritical:
		return "CRITICAL"
	default:
		return "UNKNOWN"
	}
}

// Preferences is one recipient's delivery configuration. Quiet hours
// are expressed as minutes of the local day (0..1439) and the window
// may wrap midnight, e.g. start 22:00, end 07:00.
type Preferences struct {
	Enabled     bool
	QuietStart  int // minutes of day, inclusive
	QuietEnd    int // minutes of day, exclusive
	BatchWindow time.Duration
	MinSeverity Severity
}

// Action is the outcome of a delivery decision.
type Action int

const (
	ActionDeliver Action = iota
	ActionSuppress
	ActionDefer
)

// Decision is the result of applying preferences to an alert. When the
// action is ActionDefer, DeliverAt is the earliest delivery time.
type Decision struct {
	Action    Action
	DeliverAt time.Time
}

// ShouldDeliver applies a recipient's preferences to an alert arriving
// at the given time. Rules, in order:
//   - notifications disabled: suppress
//   - below the recipient's minimum severity: suppress
//   - inside quiet hours: defer until the window ends, except that
//     CRITICAL alerts always go out immediately
//   - otherwise: deliver now
func ShouldDeliver(p Preferences, sev Severity, at time.Time) Decision {
	if !p.Enabled {
		return Decision{Action: ActionSuppress}
	}
	if sev < p.MinSeverity {
		return Decision{Action: ActionSuppress}
	}
	if sev < SeverityCritical && inQuietWindow(p, at) {
		return Decision{Action: ActionDefer, DeliverAt: quietWindowEnd(p, at)}
	}
	return Decision{Action: ActionDeliver, DeliverAt: at}
}

// inQuietWindow reports whether at falls inside the quiet window.
// Equal start and end means no quiet window at all.
func inQuietWindow(p Preferences, at time.Time) bool {
	if p.QuietStart == p.QuietEnd {
		return false
	}
	m := at.Hour()*60 + at.Minute()
	if p.QuietStart < p.QuietEnd {
		return m >= p.QuietStart && m < p.QuietEnd
	}
	// Window wraps midnight.
	return m >= p.QuietStart || m < p.QuietEnd
}

// quietWindowEnd returns the next moment the quiet window ends, on the
// correct calendar day when the window wraps midnight.
func quietWindowEnd(p Preferences, at time.Time) time.Time {
	end := time.Date(at.Year(), at.Month(), at.Day(), p.QuietEnd/60, p.QuietEnd%60, 0, 0, at.Location())
	if !end.After(at) {
		end = end.AddDate(0, 0, 1)
	}
	return end
}
