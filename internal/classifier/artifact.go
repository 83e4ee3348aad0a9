package classifier

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"math"
	"os"
)

// defaultModel is the artifact shipped with the binary. External deployments
// may override it with Classifier.ModelPath in the configuration.
//
//go:embed default_model.json
var defaultModel []byte

// Artifact is a pre-trained logistic regression model together with the
// feature schema it was trained on. The schema is the single source of truth
// for the feature count N: the encoder is constructed from it, so encoder and
// adapter can never silently disagree on the vector shape.
type Artifact struct {
	// Version identifies this artifact; it is surfaced in results and health.
	Version string `json:"version"`
	// Features is the ordered feature schema used at training time.
	Features []string `json:"features"`
	// Coefficients are the per-feature weights, aligned with Features.
	Coefficients []float64 `json:"coefficients"`
	// Intercept is the bias term.
	Intercept float64 `json:"intercept"`
}

// ParseArtifact decodes and validates a JSON model artifact.
func ParseArtifact(b []byte) (*Artifact, error) {
	var a Artifact
	if err := json.Unmarshal(b, &a); err != nil {
		return nil, fmt.Errorf("could not decode model artifact: %w", err)
	}
	if a.Version == "" {
		return nil, fmt.Errorf("model artifact is missing a version")
	}
	if len(a.Features) == 0 {
		return nil, fmt.Errorf("model artifact has an empty feature schema")
	}
	if len(a.Coefficients) != len(a.Features) {
		return nil, fmt.Errorf("model artifact has %d coefficients for %d features",
			len(a.Coefficients), len(a.Features))
	}
	for i, c := range a.Coefficients {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return nil, fmt.Errorf("model artifact coefficient %d is not finite", i)
		}
	}
	if math.IsNaN(a.Intercept) || math.IsInf(a.Intercept, 0) {
		return nil, fmt.Errorf("model artifact intercept is not finite")
	}

	return &a, nil
}

// LoadArtifact reads a model artifact from disk. An empty path loads the
// embedded default artifact.
func LoadArtifact(path string) (*Artifact, error) {
	if path == "" {
		return ParseArtifact(defaultModel)
	}

	b, err := os.ReadFile(path) //nolint: gosec
	if err != nil {
		return nil, fmt.Errorf("could not read model artifact: %w", err)
	}

	return ParseArtifact(b)
}
