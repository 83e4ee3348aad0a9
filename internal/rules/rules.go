// Package rules converts the server-side indicator list into user-facing
// explanations: evidence, a checked-items narrative, identification tips and
// action steps. It also derives a fallback verdict from indicator counts.
//
// The fallback verdict is non-authoritative: it must never be surfaced when
// the classifier succeeded. That precedence is enforced by the analyzer's
// arbitration step, not here.
package rules

import (
	"phishguard/internal/indicator"
	"phishguard/pkg/domain"
)

// Report is the rule engine's complete output for one URL.
type Report struct {
	// Verdict and RiskLevel are the rule-based fallback assessment, used only
	// when no classifier verdict exists.
	Verdict   domain.Verdict
	RiskLevel domain.RiskLevel
	// Explanation is the fallback narrative, marked as preliminary.
	Explanation string
	// Evidence is the indicator list projected for display.
	Evidence []domain.IndicatorRecord
	// CheckedItems narrates each check's finding in order.
	CheckedItems []string
	// IdentificationTips teaches the user how to recognize similar URLs.
	IdentificationTips []string
	// ActionSteps recommends next steps for the fallback verdict.
	ActionSteps []string
}

// defaultTips is shown when no indicator produced a more specific tip.
var defaultTips = []string{ //nolint: gochecknoglobals
	"Check for misspelled or altered brand names",
	"Avoid links that demand urgent action",
	"Be cautious with unfamiliar domain extensions",
	"Verify the website before entering sensitive information",
}

// Explain builds a Report from the indicator records. The fallback verdict is
// derived purely from danger/warning counts: any danger record yields
// PHISHING/High, otherwise any warning yields SUSPICIOUS/Medium, otherwise
// SAFE/Low.
func Explain(indicators []domain.IndicatorRecord) Report {
	evidence := append([]domain.IndicatorRecord(nil), indicators...)
	checked := make([]string, 0, len(indicators))

	var dangers, warnings int
	var tips []string
	for _, rec := range indicators {
		checked = append(checked, rec.Message)

		switch rec.Status {
		case domain.IndicatorDanger:
			dangers++
		case domain.IndicatorWarning:
			warnings++
		case domain.IndicatorSafe:
			continue
		}

		// Contextual tips for the findings users most often misread.
		switch rec.Name {
		case indicator.NameIPHost:
			tips = append(tips, "Legitimate websites typically use domain names, not raw IP addresses")
		case indicator.NameBrandImitation:
			tips = append(tips, "Be cautious of URLs that imitate well-known brands using altered characters")
		}
	}

	verdict, risk := verdictFromCounts(dangers, warnings)
	if len(tips) == 0 {
		tips = append(tips, defaultTips...)
	}

	return Report{
		Verdict:            verdict,
		RiskLevel:          risk,
		Explanation:        fallbackExplanation(verdict),
		Evidence:           evidence,
		CheckedItems:       checked,
		IdentificationTips: tips,
		ActionSteps:        ActionStepsFor(verdict),
	}
}

func verdictFromCounts(dangers, warnings int) (domain.Verdict, domain.RiskLevel) {
	switch {
	case dangers > 0:
		return domain.VerdictPhishing, domain.RiskHigh
	case warnings > 0:
		return domain.VerdictSuspicious, domain.RiskMedium
	default:
		return domain.VerdictSafe, domain.RiskLow
	}
}

func fallbackExplanation(v domain.Verdict) string {
	switch v {
	case domain.VerdictPhishing:
		return "Preliminary analysis (ML unavailable): We evaluated multiple technical indicators " +
			"and detected several strong phishing signals. This is a rule-based assessment. " +
			"For the most accurate analysis, ML-based detection is recommended when available."
	case domain.VerdictSuspicious:
		return "Preliminary analysis (ML unavailable): We evaluated multiple technical indicators " +
			"and detected some warning signs. This is a rule-based assessment. " +
			"For the most accurate analysis, ML-based detection is recommended when available."
	case domain.VerdictSafe, domain.VerdictPending:
	}

	return "Preliminary analysis (ML unavailable): We evaluated multiple technical indicators " +
		"and found no critical security issues. This is a rule-based assessment. " +
		"For the most accurate analysis, ML-based detection is recommended when available."
}

// ActionStepsFor returns the recommended user actions for a verdict. The
// analyzer calls it again with the final verdict when the classifier wins the
// arbitration, so the steps always match what the user actually sees.
func ActionStepsFor(v domain.Verdict) []string {
	switch v {
	case domain.VerdictPhishing:
		return []string{
			"Do not click the link",
			"Do not enter credentials or personal information",
			"Report the link if possible",
			"Visit the official website directly",
		}
	case domain.VerdictSafe:
		return []string{
			"You may proceed, but remain alert",
			"Verify authenticity if sensitive data is requested",
		}
	case domain.VerdictSuspicious, domain.VerdictPending:
	}

	return []string{
		"Proceed with caution",
		"Verify the URL through official sources",
		"Avoid entering sensitive information",
	}
}
