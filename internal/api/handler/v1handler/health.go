package v1handler

import "net/http"

// healthResponse reports process diagnostics, including whether the
// classifier artifact loaded and passed its self-test.
type healthResponse struct {
	Status              string `json:"status"`
	ClassifierAvailable bool   `json:"classifierAvailable"`
	ModelVersion        string `json:"modelVersion"`
}

// Health returns service status and classifier availability.
func (h *Handler) Health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{
		Status:              "healthy",
		ClassifierAvailable: h.deps.Status.Available(),
		ModelVersion:        h.deps.Status.Version(),
	})
}
