package guardclient

import (
	"context"
	"sync"
	"time"

	"phishguard/pkg/domain"
	"phishguard/pkg/serrors"
)

// ErrSuperseded is returned by Check when a newer check was started before
// this one finished. The superseded result is discarded, never stored.
var ErrSuperseded = serrors.NewKind("SUPERSEDED") //nolint: gochecknoglobals

// Coordinator runs checks against the analysis service and guarantees that
// the user always gets an answer: when the service cannot be reached it
// synthesizes a preliminary PENDING result from the client-side indicators.
// At most one check is in flight at a time; starting a new check cancels and
// supersedes the previous one.
type Coordinator struct {
	client  *Client
	timeout time.Duration

	mu     sync.Mutex
	seq    uint64
	cancel context.CancelFunc
	latest *domain.AnalysisResult
}

// NewCoordinator constructs a Coordinator. timeout bounds each service call;
// zero means no per-call deadline beyond the caller's context.
func NewCoordinator(client *Client, timeout time.Duration) *Coordinator {
	return &Coordinator{
		client:  client,
		timeout: timeout,
	}
}

// Check analyzes rawURL. It always computes the client-side indicators first,
// then asks the service; on any service failure it falls back to a PENDING
// result built from those indicators. If another Check starts while this one
// is in flight, this one is cancelled and returns ErrSuperseded.
func (c *Coordinator) Check(ctx context.Context, rawURL string) (*domain.AnalysisResult, error) {
	indicators := ClientIndicators(rawURL)

	c.mu.Lock()
	c.seq++
	id := c.seq
	if c.cancel != nil {
		c.cancel()
	}
	var callCtx context.Context
	var cancel context.CancelFunc
	if c.timeout > 0 {
		callCtx, cancel = context.WithTimeout(ctx, c.timeout)
	} else {
		callCtx, cancel = context.WithCancel(ctx)
	}
	c.cancel = cancel
	c.mu.Unlock()
	defer cancel()

	var result *domain.AnalysisResult
	serviceResult, err := c.client.Analyze(callCtx, rawURL)
	if err != nil {
		result = pendingResult(rawURL, indicators)
	} else {
		merged := *serviceResult
		merged.ClientIndicators = append(merged.ClientIndicators, indicators...)
		result = &merged
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if id != c.seq {
		return nil, serrors.With(ErrSuperseded, "check for %q superseded by a newer request", rawURL)
	}
	c.latest = result

	return result, nil
}

// Latest returns the result of the most recently completed, non-superseded
// check, or nil if no check has completed yet.
func (c *Coordinator) Latest() *domain.AnalysisResult {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.latest
}

// pendingResult builds the preliminary verdict shown when the analysis
// service is unreachable. It is explicit about its provisional nature and is
// replaced wholesale once a full analysis succeeds.
func pendingResult(rawURL string, indicators []domain.IndicatorRecord) *domain.AnalysisResult {
	evidence := append([]domain.IndicatorRecord(nil), indicators...)
	checked := make([]string, 0, len(indicators))
	for _, ind := range indicators {
		checked = append(checked, ind.Message)
	}

	return &domain.AnalysisResult{
		URL:       rawURL,
		Verdict:   domain.VerdictPending,
		RiskLevel: domain.RiskUnknown,
		Explanation: "The analysis service could not be reached, so this is a " +
			"preliminary technical check performed entirely on your device. " +
			"It looks at the structure of the URL only and cannot replace a " +
			"full analysis. Treat the link with caution until a complete " +
			"verdict is available.",
		Evidence:     evidence,
		CheckedItems: checked,
		IdentificationTips: []string{
			"Check the spelling of the domain name character by character.",
			"Hover over links to preview the real destination before clicking.",
			"Be wary of urgent language pressuring you to act immediately.",
			"When in doubt, navigate to the site by typing its address yourself.",
		},
		ActionSteps: []string{
			"Do not enter credentials or personal data on this site for now.",
			"Retry the check once your connection to the analysis service is restored.",
			"If you must proceed, verify the site through an independent channel first.",
		},
		ServiceAvailable: false,
		ClientIndicators: indicators,
	}
}
