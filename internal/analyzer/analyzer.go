// Package analyzer runs the URL threat classification pipeline: normalize,
// extract indicators, build the rule report, encode features, classify, and
// arbitrate between the classifier and the rule engine.
package analyzer

import (
	"context"
	"fmt"

	"phishguard/internal/classifier"
	"phishguard/internal/feature"
	"phishguard/internal/indicator"
	"phishguard/internal/rules"
	"phishguard/pkg/domain"
	"phishguard/pkg/logger"

	"go.uber.org/zap"
)

// Service is the analysis capability consumed by the HTTP handlers.
type Service interface {
	Analyze(ctx context.Context, rawURL string) (*domain.AnalysisResult, error)
}

// Analyzer is the concrete pipeline implementation. It is immutable after
// construction: concurrent requests share only the read-only classifier and
// encoder, so no locking is required.
type Analyzer struct {
	adapter *classifier.Adapter
	encoder *feature.Encoder
}

// Ensure Analyzer implements Service.
var _ Service = (*Analyzer)(nil)

// New builds the pipeline around a loaded classifier adapter. The feature
// encoder is constructed from the adapter's own schema, so both sides of the
// feature contract are derived from one artifact.
func New(adapter *classifier.Adapter) (*Analyzer, error) {
	encoder, err := feature.NewEncoder(adapter.Schema())
	if err != nil {
		return nil, fmt.Errorf("could not build encoder for model %s: %w", adapter.Version(), err)
	}

	return &Analyzer{adapter: adapter, encoder: encoder}, nil
}

// Analyze runs the full pipeline for one URL. ErrInvalidInput propagates to
// the caller; every classifier-layer failure is absorbed into the rule-based
// fallback and never surfaces as a hard error.
func (a *Analyzer) Analyze(ctx context.Context, rawURL string) (*domain.AnalysisResult, error) {
	u, err := Normalize(rawURL)
	if err != nil {
		return nil, err //nolint: wrapcheck
	}

	indicators := indicator.Extract(u)
	report := rules.Explain(indicators)

	if a.adapter.Available() {
		vec := a.encoder.Encode(u)
		pred, err := a.adapter.Classify(ctx, vec)
		if err == nil {
			return a.classifierResult(u, pred, report), nil
		}
		// Request-scoped failure (shape mismatch or inference error). The
		// process-wide model stays loaded; this request degrades to rules.
		logger.Warn(ctx, "classifier failed for this request, using rule-based fallback",
			zap.String("url", u.Raw), zap.Error(err))
	}

	return a.fallbackResult(u, report), nil
}

// classifierResult is the ClassifierSucceeded arm of the arbitration: the
// verdict, risk level and confidence come from the classifier alone, while
// the rule report contributes evidence and education only.
func (a *Analyzer) classifierResult(u domain.NormalizedURL,
	pred classifier.Prediction,
	report rules.Report) *domain.AnalysisResult {
	confidence := pred.Confidence

	return &domain.AnalysisResult{
		URL:                u.Raw,
		Verdict:            pred.Verdict,
		RiskLevel:          pred.RiskLevel,
		Confidence:         &confidence,
		Explanation:        mlExplanation(pred),
		Evidence:           report.Evidence,
		CheckedItems:       report.CheckedItems,
		IdentificationTips: report.IdentificationTips,
		ActionSteps:        rules.ActionStepsFor(pred.Verdict),
		ServiceAvailable:   true,
		ModelVersion:       a.adapter.Version(),
	}
}

// fallbackResult is the ClassifierFailed arm: the rule report's verdict is
// surfaced and no confidence is reported, making clear that no ML assessment
// exists. The rule path itself counts as available service.
func (a *Analyzer) fallbackResult(u domain.NormalizedURL, report rules.Report) *domain.AnalysisResult {
	return &domain.AnalysisResult{
		URL:                u.Raw,
		Verdict:            report.Verdict,
		RiskLevel:          report.RiskLevel,
		Explanation:        report.Explanation,
		Evidence:           report.Evidence,
		CheckedItems:       report.CheckedItems,
		IdentificationTips: report.IdentificationTips,
		ActionSteps:        report.ActionSteps,
		ServiceAvailable:   true,
	}
}

func mlExplanation(pred classifier.Prediction) string {
	switch pred.Verdict {
	case domain.VerdictPhishing:
		return fmt.Sprintf("Our detection model classified this URL as phishing with %d%% confidence. "+
			"It matches patterns commonly seen in credential-stealing campaigns. "+
			"The technical indicators below show what was checked.", pred.Confidence)
	case domain.VerdictSuspicious:
		return fmt.Sprintf("Our detection model flagged this URL as suspicious with %d%% confidence. "+
			"It shows some characteristics of phishing URLs without being a confirmed threat. "+
			"Review the technical indicators below before proceeding.", pred.Confidence)
	case domain.VerdictSafe, domain.VerdictPending:
	}

	return fmt.Sprintf("Our detection model found no significant phishing signals (%d%% confidence). "+
		"The technical indicators below show what was checked.", pred.Confidence)
}
