package domain

// IndicatorStatus is the tri-state outcome of a single heuristic check.
type IndicatorStatus string

const (
	// IndicatorSafe means the check passed without findings.
	IndicatorSafe IndicatorStatus = "safe"
	// IndicatorWarning means the check found a signal that warrants caution.
	IndicatorWarning IndicatorStatus = "warning"
	// IndicatorDanger means the check found a strong phishing signal.
	IndicatorDanger IndicatorStatus = "danger"
)

// IndicatorRecord is a single named heuristic observation about a URL.
// Indicators are independent of each other and of the final verdict; they are
// produced both server-side and client-side by separately maintained check
// sets.
type IndicatorRecord struct {
	// Name identifies the check that produced this record, e.g. "URL Length".
	Name string `json:"name"`
	// Status is the tri-state outcome of the check.
	Status IndicatorStatus `json:"status"`
	// Icon is a UI hint: "check", "alert" or "x".
	Icon string `json:"icon"`
	// Message is a short human-readable finding.
	Message string `json:"message"`
	// Explanation tells a non-technical user why the finding matters.
	Explanation string `json:"explanation"`
}

// NonSafe reports whether the indicator carries a warning or danger status.
func (r IndicatorRecord) NonSafe() bool {
	return r.Status == IndicatorWarning || r.Status == IndicatorDanger
}
