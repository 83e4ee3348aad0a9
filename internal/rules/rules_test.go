package rules_test

import (
	"testing"

	"phishguard/internal/indicator"
	"phishguard/internal/rules"
	"phishguard/pkg/domain"

	"github.com/stretchr/testify/require"
)

func rec(name string, status domain.IndicatorStatus) domain.IndicatorRecord {
	return domain.IndicatorRecord{
		Name:        name,
		Status:      status,
		Message:     name + " finding",
		Explanation: name + " explanation",
	}
}

func TestExplainFallbackVerdict(t *testing.T) {
	tests := []struct {
		name        string
		indicators  []domain.IndicatorRecord
		wantVerdict domain.Verdict
		wantRisk    domain.RiskLevel
	}{
		{
			name: "any danger yields phishing",
			indicators: []domain.IndicatorRecord{
				rec(indicator.NameURLLength, domain.IndicatorSafe),
				rec(indicator.NameAtSymbol, domain.IndicatorDanger),
				rec(indicator.NameKeywords, domain.IndicatorWarning),
			},
			wantVerdict: domain.VerdictPhishing,
			wantRisk:    domain.RiskHigh,
		},
		{
			name: "warnings without danger yield suspicious",
			indicators: []domain.IndicatorRecord{
				rec(indicator.NameScheme, domain.IndicatorWarning),
				rec(indicator.NameKeywords, domain.IndicatorWarning),
			},
			wantVerdict: domain.VerdictSuspicious,
			wantRisk:    domain.RiskMedium,
		},
		{
			name: "all safe yields safe",
			indicators: []domain.IndicatorRecord{
				rec(indicator.NameURLLength, domain.IndicatorSafe),
				rec(indicator.NameScheme, domain.IndicatorSafe),
			},
			wantVerdict: domain.VerdictSafe,
			wantRisk:    domain.RiskLow,
		},
		{
			name:        "no indicators yield safe",
			indicators:  nil,
			wantVerdict: domain.VerdictSafe,
			wantRisk:    domain.RiskLow,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			report := rules.Explain(tc.indicators)
			require.Equal(t, tc.wantVerdict, report.Verdict)
			require.Equal(t, tc.wantRisk, report.RiskLevel)
			require.Contains(t, report.Explanation, "Preliminary analysis (ML unavailable)")
			require.Equal(t, rules.ActionStepsFor(tc.wantVerdict), report.ActionSteps)
		})
	}
}

func TestExplainCarriesAllIndicators(t *testing.T) {
	indicators := []domain.IndicatorRecord{
		rec(indicator.NameURLLength, domain.IndicatorSafe),
		rec(indicator.NameScheme, domain.IndicatorWarning),
		rec(indicator.NameTLD, domain.IndicatorDanger),
	}

	report := rules.Explain(indicators)
	require.Equal(t, indicators, report.Evidence)
	require.Len(t, report.CheckedItems, len(indicators))
	for i, rec := range indicators {
		require.Equal(t, rec.Message, report.CheckedItems[i])
	}
}

func TestExplainContextualTips(t *testing.T) {
	report := rules.Explain([]domain.IndicatorRecord{
		rec(indicator.NameIPHost, domain.IndicatorWarning),
		rec(indicator.NameBrandImitation, domain.IndicatorWarning),
	})
	require.Len(t, report.IdentificationTips, 2)
	require.Contains(t, report.IdentificationTips[0], "IP addresses")
	require.Contains(t, report.IdentificationTips[1], "imitate well-known brands")

	// Safe findings never produce contextual tips.
	report = rules.Explain([]domain.IndicatorRecord{
		rec(indicator.NameIPHost, domain.IndicatorSafe),
	})
	require.Len(t, report.IdentificationTips, 4)
}

func TestActionStepsFor(t *testing.T) {
	require.Contains(t, rules.ActionStepsFor(domain.VerdictPhishing)[0], "Do not click")
	require.Contains(t, rules.ActionStepsFor(domain.VerdictSafe)[0], "You may proceed")
	require.Contains(t, rules.ActionStepsFor(domain.VerdictSuspicious)[0], "Proceed with caution")
	require.Contains(t, rules.ActionStepsFor(domain.VerdictPending)[0], "Proceed with caution")
}
