package domain

// AnalysisResult is the complete outcome of one URL check. It is created
// fresh per request, never persisted and never mutated after assembly.
//
// When the classifier produced the verdict, Confidence carries its percentage
// and ServiceAvailable is true. When the rule-based fallback produced the
// verdict, Confidence is nil. In the pure client-side PENDING path,
// ServiceAvailable is false, Confidence is nil and RiskLevel is Unknown.
type AnalysisResult struct {
	// URL is the analyzed URL as submitted by the caller.
	URL string `json:"url"`
	// Verdict is the final classification.
	Verdict Verdict `json:"verdict"`
	// RiskLevel is the coarse severity derived from the verdict source.
	RiskLevel RiskLevel `json:"riskLevel"`
	// Confidence is the classifier's confidence as an integer percentage.
	// It is absent whenever no ML confidence exists.
	Confidence *int `json:"confidence,omitempty"`
	// Explanation is the human-readable narrative for the verdict.
	Explanation string `json:"explanation"`
	// Evidence is the ordered projection of the indicator records that were
	// evaluated for this URL.
	Evidence []IndicatorRecord `json:"evidence"`
	// CheckedItems narrates, in order, what was checked and found.
	CheckedItems []string `json:"checkedItems"`
	// IdentificationTips teaches the user how to spot similar threats.
	IdentificationTips []string `json:"identificationTips"`
	// ActionSteps tells the user what to do next, matching the final verdict.
	ActionSteps []string `json:"actionSteps"`
	// ServiceAvailable reports whether the authoritative service produced
	// this result. False only in the client-side PENDING path.
	ServiceAvailable bool `json:"serviceAvailable"`
	// ClientIndicators holds the client-side indicator list when a client
	// performed its own extraction. Entries may duplicate Evidence; the sets
	// are concatenated for display, not deduplicated.
	ClientIndicators []IndicatorRecord `json:"clientIndicators,omitempty"`
	// ModelVersion identifies the classifier artifact when it was consulted.
	ModelVersion string `json:"modelVersion,omitempty"`
	// Error carries a human-readable error message on rejected requests.
	Error string `json:"error,omitempty"`
}
