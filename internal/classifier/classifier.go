// Package classifier wraps the pre-trained probabilistic phishing model
// behind a narrow inference interface. The model is loaded once per process,
// immutable afterwards, and therefore safe for concurrent use without
// locking. The rule engine never overrides its output; precedence is enforced
// one level up, in the analyzer's arbitration step.
package classifier

import (
	"context"
	"math"

	"phishguard/pkg/domain"
	"phishguard/pkg/logger"
	"phishguard/pkg/serrors"

	"go.uber.org/zap"
)

// Verdict thresholds over the phishing probability. The partition is total
// and non-overlapping: exactly one branch holds for every p in [0,1].
const (
	// PhishingThreshold: p >= 0.70 yields PHISHING / High.
	PhishingThreshold = 0.70
	// SuspiciousThreshold: 0.40 <= p < 0.70 yields SUSPICIOUS / Medium,
	// anything below yields SAFE / Low.
	SuspiciousThreshold = 0.40
)

// Prediction is the classifier's per-request output.
type Prediction struct {
	// Probability is the model's phishing probability, in [0,1].
	Probability float64
	// Verdict and RiskLevel follow the fixed threshold mapping.
	Verdict   domain.Verdict
	RiskLevel domain.RiskLevel
	// Confidence is round(max(p, 1-p) * 100).
	Confidence int
}

// Adapter performs inference against a loaded model artifact. It validates
// the incoming vector shape on every request and records a process-wide
// availability flag from a load-time self-test.
type Adapter struct {
	artifact  *Artifact
	available bool
}

// New builds an Adapter and runs the load-time self-test: a zero vector of
// the schema's length is pushed through inference so an incompatible or
// corrupt artifact is discovered at startup rather than by the first request.
func New(ctx context.Context, artifact *Artifact) *Adapter {
	a := &Adapter{artifact: artifact}

	zero := make(domain.FeatureVector, len(artifact.Features))
	p, err := a.infer(zero)
	if err != nil || math.IsNaN(p) || math.IsInf(p, 0) {
		logger.Error(ctx, "classifier self-test failed, running without ML",
			zap.String("modelVersion", artifact.Version),
			zap.Error(err))

		return a
	}
	a.available = true
	logger.Info(ctx, "classifier self-test passed",
		zap.String("modelVersion", artifact.Version),
		zap.Int("featureCount", len(artifact.Features)))

	return a
}

// Available reports whether the load-time self-test succeeded.
func (a *Adapter) Available() bool { return a.available }

// Version returns the loaded artifact's version string.
func (a *Adapter) Version() string { return a.artifact.Version }

// N returns the feature vector length the model expects.
func (a *Adapter) N() int { return len(a.artifact.Features) }

// Schema returns a copy of the ordered feature schema of the artifact.
func (a *Adapter) Schema() []string {
	return append([]string(nil), a.artifact.Features...)
}

// Classify validates the vector shape, runs inference and maps the phishing
// probability onto a verdict. Shape and inference failures are request-scoped
// errors; they do not flip the process-wide availability flag.
func (a *Adapter) Classify(ctx context.Context, vec domain.FeatureVector) (Prediction, error) {
	if !a.available {
		return Prediction{}, serrors.With(serrors.ErrUnavailable, "classifier did not pass its self-test")
	}
	if len(vec) != a.N() {
		return Prediction{}, serrors.With(serrors.ErrFeatureMismatch,
			"feature vector has %d values, model expects %d", len(vec), a.N())
	}

	p, err := a.infer(vec)
	if err != nil || math.IsNaN(p) || math.IsInf(p, 0) {
		logger.Error(ctx, "inference failed",
			zap.String("modelVersion", a.artifact.Version),
			zap.Float64s("vector", vec),
			zap.Error(err))

		return Prediction{}, serrors.Wrap(serrors.ErrInferenceFailure, err, "model produced no usable probability")
	}

	verdict, risk := MapProbability(p)

	return Prediction{
		Probability: p,
		Verdict:     verdict,
		RiskLevel:   risk,
		Confidence:  Confidence(p),
	}, nil
}

// infer computes the logistic regression probability for the vector.
func (a *Adapter) infer(vec domain.FeatureVector) (float64, error) {
	if len(vec) != len(a.artifact.Coefficients) {
		return 0, serrors.With(serrors.ErrFeatureMismatch,
			"vector length %d does not match %d coefficients", len(vec), len(a.artifact.Coefficients))
	}

	z := a.artifact.Intercept
	for i, w := range a.artifact.Coefficients {
		z += w * vec[i]
	}

	return 1.0 / (1.0 + math.Exp(-z)), nil
}

// MapProbability applies the fixed threshold partition to a phishing
// probability.
func MapProbability(p float64) (domain.Verdict, domain.RiskLevel) {
	switch {
	case p >= PhishingThreshold:
		return domain.VerdictPhishing, domain.RiskHigh
	case p >= SuspiciousThreshold:
		return domain.VerdictSuspicious, domain.RiskMedium
	default:
		return domain.VerdictSafe, domain.RiskLow
	}
}

// Confidence converts a phishing probability into an integer percentage of
// how sure the model is about whichever side of the decision it took.
func Confidence(p float64) int {
	c := p
	if 1-p > c {
		c = 1 - p
	}

	return int(math.Round(c * 100))
}
