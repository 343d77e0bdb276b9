package stats

import "time"

// HealthStatus is the verdict of a single check and of the health
// document as a whole.
type HealthStatus string

const (
	StatusPass HealthStatus = "pass"
	StatusWarn HealthStatus = "warn"
	StatusFail HealthStatus = "fail"
)

// Check is one component measurement in the health document.
type Check struct {
	Status     HealthStatus `json:"status"`
	Component  string       `json:"component,omitempty"`
	Observed   any          `json:"observedValue,omitempty"`
	ObservedAt string       `json:"observedAt,omitempty"`
	Output     string       `json:"output,omitempty"`
}

// HealthResponse is the top-level health document. Status is the worst
// verdict across all checks.
type HealthResponse struct {
	Status    HealthStatus       `json:"status"`
	Version   string             `json:"version,omitempty"`
	ReleaseID string             `json:"releaseId,omitempty"`
	ServiceID string             `json:"serviceId,omitempty"`
	Checks    map[string][]Check `json:"checks,omitempty"`
}

// Checker probes one component. Name keys the check in the response.
type Checker interface {
	Name() string
	Check() Check
}

// passing builds a pass check carrying the observed value, stamped
// with the observation time.
func passing(observed any) Check {
	return Check{
		Status:     StatusPass,
		Observed:   observed,
		ObservedAt: time.Now().UTC().Format(time.RFC3339),
	}
}

// failing builds a fail check carrying the error output.
func failing(err error) Check {
	return Check{
		Status: StatusFail,
		Output: err.Error(),
	}
}
