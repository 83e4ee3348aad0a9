package domain

// Verdict is the final classification of a URL.
type Verdict string

const (
	// VerdictPhishing indicates the URL is very likely a phishing attempt.
	VerdictPhishing Verdict = "PHISHING"
	// VerdictSuspicious indicates the URL shows warning signs but is not a confirmed threat.
	VerdictSuspicious Verdict = "SUSPICIOUS"
	// VerdictSafe indicates no significant threat signals were found.
	VerdictSafe Verdict = "SAFE"
	// VerdictPending indicates the authoritative service could not be reached
	// and only a preliminary client-side assessment exists.
	VerdictPending Verdict = "PENDING"
)

// RiskLevel is the coarse severity label attached to a verdict.
type RiskLevel string

const (
	// RiskLow accompanies SAFE verdicts.
	RiskLow RiskLevel = "Low"
	// RiskMedium accompanies SUSPICIOUS verdicts.
	RiskMedium RiskLevel = "Medium"
	// RiskHigh accompanies PHISHING verdicts.
	RiskHigh RiskLevel = "High"
	// RiskUnknown accompanies PENDING verdicts, where no authoritative
	// assessment was possible.
	RiskUnknown RiskLevel = "Unknown"
)
