package v1handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"phishguard/pkg/domain"
	"phishguard/pkg/logger"
	"phishguard/pkg/serrors"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.uber.org/zap"
)

// maxBodyBytes bounds the analyze request body. The URL itself is capped at
// 2000 characters by the normalizer; this only guards the transport.
const maxBodyBytes = 16 << 10

// analyzeRequest is the single inbound request type of the service.
type analyzeRequest struct {
	URL string `json:"url"`
}

// Analyze runs the classification pipeline for the submitted URL.
//
// Invalid input is rejected with 400 and no analysis. A classifier-layer
// failure is not an error: the analyzer degrades to the rule-based verdict
// and this endpoint still responds 200.
func (h *Handler) Analyze(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	start := time.Now()

	var req analyzeRequest
	if err := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes)).Decode(&req); err != nil {
		h.writeRejection(w, http.StatusBadRequest, "request body must be a JSON object with a url field")

		return
	}

	res, err := h.deps.Analyzer.Analyze(ctx, req.URL)
	if err != nil {
		if errors.Is(err, serrors.ErrInvalidInput) {
			h.writeRejection(w, http.StatusBadRequest, err.Error())

			return
		}

		logger.Error(ctx, "analysis failed unexpectedly", zap.Error(err))
		h.writeRejection(w, http.StatusInternalServerError, "analysis failed unexpectedly")

		return
	}

	h.analyses.Add(ctx, 1, metric.WithAttributes(attribute.String("verdict", string(res.Verdict))))
	analysisDuration.Observe(time.Since(start).Seconds())

	writeJSON(w, http.StatusOK, res)
}

// writeRejection responds with the shared result shape carrying an error
// message. A rejected URL was never analyzed, so the verdict is the neutral
// SUSPICIOUS/Medium placeholder rather than an assessment.
func (h *Handler) writeRejection(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, domain.AnalysisResult{
		Verdict:   domain.VerdictSuspicious,
		RiskLevel: domain.RiskMedium,
		Error:     msg,
	})
}
