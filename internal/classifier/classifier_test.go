package classifier_test

import (
	"context"
	"errors"
	"math"
	"testing"

	"phishguard/internal/classifier"
	"phishguard/pkg/domain"
	"phishguard/pkg/logger"
	"phishguard/pkg/serrors"

	"github.com/stretchr/testify/require"
)

func testArtifact(t *testing.T) *classifier.Artifact {
	t.Helper()
	a, err := classifier.LoadArtifact("")
	require.NoError(t, err)

	return a
}

func newAdapter(t *testing.T, artifact *classifier.Artifact) *classifier.Adapter {
	t.Helper()
	logger.Setup(logger.DevelopmentEnvironment)

	return classifier.New(context.Background(), artifact)
}

func TestLoadArtifactEmbeddedDefault(t *testing.T) {
	a := testArtifact(t)
	require.NotEmpty(t, a.Version)
	require.NotEmpty(t, a.Features)
	require.Len(t, a.Coefficients, len(a.Features))
}

func TestParseArtifactRejectsBadInput(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "not JSON", body: "nope"},
		{name: "missing version", body: `{"features":["url_length"],"coefficients":[1.0],"intercept":0}`},
		{name: "empty schema", body: `{"version":"v1","features":[],"coefficients":[],"intercept":0}`},
		{
			name: "coefficient count mismatch",
			body: `{"version":"v1","features":["url_length","dot_count"],"coefficients":[1.0],"intercept":0}`,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := classifier.ParseArtifact([]byte(tc.body))
			require.Error(t, err)
		})
	}
}

func TestNewRunsSelfTest(t *testing.T) {
	adapter := newAdapter(t, testArtifact(t))
	require.True(t, adapter.Available())
	require.Equal(t, len(adapter.Schema()), adapter.N())
}

func TestClassifyThresholdPartition(t *testing.T) {
	// The verdict partition is total: every probability lands in exactly
	// one band.
	tests := []struct {
		p           float64
		wantVerdict domain.Verdict
		wantRisk    domain.RiskLevel
	}{
		{p: 0.0, wantVerdict: domain.VerdictSafe, wantRisk: domain.RiskLow},
		{p: 0.39, wantVerdict: domain.VerdictSafe, wantRisk: domain.RiskLow},
		{p: 0.40, wantVerdict: domain.VerdictSuspicious, wantRisk: domain.RiskMedium},
		{p: 0.55, wantVerdict: domain.VerdictSuspicious, wantRisk: domain.RiskMedium},
		{p: 0.69, wantVerdict: domain.VerdictSuspicious, wantRisk: domain.RiskMedium},
		{p: 0.70, wantVerdict: domain.VerdictPhishing, wantRisk: domain.RiskHigh},
		{p: 1.0, wantVerdict: domain.VerdictPhishing, wantRisk: domain.RiskHigh},
	}

	for _, tc := range tests {
		verdict, risk := classifier.MapProbability(tc.p)
		require.Equal(t, tc.wantVerdict, verdict, "p=%v", tc.p)
		require.Equal(t, tc.wantRisk, risk, "p=%v", tc.p)
	}
}

func TestConfidenceRounding(t *testing.T) {
	tests := []struct {
		p    float64
		want int
	}{
		{p: 0.0, want: 100},
		{p: 0.12, want: 88},
		{p: 0.5, want: 50},
		{p: 0.705, want: 71}, // round half away from zero
		{p: 0.95, want: 95},
		{p: 1.0, want: 100},
	}

	for _, tc := range tests {
		require.Equal(t, tc.want, classifier.Confidence(tc.p), "p=%v", tc.p)
	}
}

func TestClassifyFeatureMismatch(t *testing.T) {
	adapter := newAdapter(t, testArtifact(t))

	_, err := adapter.Classify(context.Background(), domain.FeatureVector{1, 2, 3})
	require.Error(t, err)
	require.True(t, errors.Is(err, serrors.ErrFeatureMismatch))
}

func TestClassifyDefaultModelBehavior(t *testing.T) {
	adapter := newAdapter(t, testArtifact(t))
	ctx := context.Background()

	// Feature order: url_length, hostname_length, path_length, has_https,
	// suspicious_tld, is_ip_address, dot_count.
	safe := domain.FeatureVector{19, 11, 0, 1, 0, 0, 1}
	pred, err := adapter.Classify(ctx, safe)
	require.NoError(t, err)
	require.Equal(t, domain.VerdictSafe, pred.Verdict)
	require.Less(t, pred.Probability, classifier.SuspiciousThreshold)
	require.Equal(t, classifier.Confidence(pred.Probability), pred.Confidence)

	phishing := domain.FeatureVector{40, 20, 6, 0, 1, 1, 3}
	pred, err = adapter.Classify(ctx, phishing)
	require.NoError(t, err)
	require.Equal(t, domain.VerdictPhishing, pred.Verdict)
	require.Equal(t, domain.RiskHigh, pred.RiskLevel)
	require.GreaterOrEqual(t, pred.Probability, classifier.PhishingThreshold)
}

func TestUnavailableAdapterRefusesToClassify(t *testing.T) {
	// An artifact whose inference blows up numerically fails the self-test;
	// the adapter then refuses every request instead of guessing. JSON cannot
	// encode NaN, so the broken artifact is built directly.
	artifact := &classifier.Artifact{
		Version:      "broken",
		Features:     []string{"url_length"},
		Coefficients: []float64{math.NaN()},
		Intercept:    0,
	}

	adapter := newAdapter(t, artifact)
	require.False(t, adapter.Available())

	_, err := adapter.Classify(context.Background(), domain.FeatureVector{1})
	require.Error(t, err)
	require.True(t, errors.Is(err, serrors.ErrUnavailable))
}
