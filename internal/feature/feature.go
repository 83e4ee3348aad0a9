// Package feature projects a normalized URL into the fixed-length,
// fixed-order numeric vector consumed by the classifier.
//
// Every feature has a name; an Encoder is constructed from the ordered schema
// carried by the model artifact, so the vector length and element order always
// follow the artifact the classifier was trained with. There is no second
// place where the feature count is declared.
package feature

import (
	"fmt"
	"math"
	"regexp"
	"strings"

	"phishguard/pkg/domain"
)

// Func computes one numeric feature from a normalized URL.
type Func func(u domain.NormalizedURL) float64

// registry maps feature names to their implementations. The shipped model
// uses the first seven; the remaining names exist so newer artifacts can adopt
// them without code changes to the encoder.
var registry = map[string]Func{ //nolint: gochecknoglobals
	"url_length":               func(u domain.NormalizedURL) float64 { return float64(len(u.Raw)) },
	"hostname_length":          func(u domain.NormalizedURL) float64 { return float64(len(u.Host)) },
	"path_length":              func(u domain.NormalizedURL) float64 { return float64(len(u.Path)) },
	"has_https":                hasHTTPS,
	"suspicious_tld":           suspiciousTLD,
	"is_ip_address":            isIPAddress,
	"dot_count":                func(u domain.NormalizedURL) float64 { return float64(strings.Count(u.Host, ".")) },
	"hyphen_count":             func(u domain.NormalizedURL) float64 { return float64(strings.Count(u.Host, "-")) },
	"suspicious_keyword_count": keywordCount,
	"brand_mention_count":      brandMentionCount,
	"subdomain_count":          subdomainCount,
	"path_depth":               func(u domain.NormalizedURL) float64 { return float64(strings.Count(u.Path, "/")) },
	"has_query":                func(u domain.NormalizedURL) float64 { return boolFeature(u.Query != "") },
	"has_fragment":             func(u domain.NormalizedURL) float64 { return boolFeature(strings.Contains(u.Raw, "#")) },
	"char_diversity":           charDiversity,
}

// tables used by the feature functions. Kept local to this package: the
// encoder must keep producing the exact values the model was trained on even
// if the indicator tables evolve independently.
var (
	featureTLDs = []string{ //nolint: gochecknoglobals
		".tk", ".ml", ".ga", ".cf", ".gq", ".xyz", ".top", ".click",
	}
	featureKeywords = []string{ //nolint: gochecknoglobals
		"login", "signin", "verify", "secure", "update", "confirm",
		"account", "password", "credential", "payment", "billing",
	}
	featureBrands = []string{ //nolint: gochecknoglobals
		"paypal", "amazon", "google", "microsoft", "apple",
		"facebook", "twitter", "bank", "ebay", "netflix",
	}
	featureIPv4 = regexp.MustCompile(`^\d{1,3}\.\d{1,3}\.\d{1,3}\.\d{1,3}$`) //nolint: gochecknoglobals
)

func boolFeature(b bool) float64 {
	if b {
		return 1.0
	}

	return 0.0
}

func hasHTTPS(u domain.NormalizedURL) float64 { return boolFeature(u.Scheme == "https") }

func suspiciousTLD(u domain.NormalizedURL) float64 {
	for _, tld := range featureTLDs {
		if strings.HasSuffix(u.Host, tld) {
			return 1.0
		}
	}

	return 0.0
}

func isIPAddress(u domain.NormalizedURL) float64 { return boolFeature(featureIPv4.MatchString(u.Host)) }

func keywordCount(u domain.NormalizedURL) float64 {
	lower := strings.ToLower(u.Raw)
	n := 0
	for _, kw := range featureKeywords {
		if strings.Contains(lower, kw) {
			n++
		}
	}

	return float64(n)
}

func brandMentionCount(u domain.NormalizedURL) float64 {
	lower := strings.ToLower(u.Raw)
	n := 0
	for _, b := range featureBrands {
		if strings.Contains(lower, b) {
			n++
		}
	}

	return float64(n)
}

func subdomainCount(u domain.NormalizedURL) float64 {
	if u.Host == "" {
		return 0.0
	}
	labels := len(strings.Split(u.Host, "."))
	if labels <= 2 {
		return 0.0
	}

	return float64(labels - 2)
}

func charDiversity(u domain.NormalizedURL) float64 {
	if len(u.Raw) == 0 {
		return 0.0
	}
	seen := map[rune]struct{}{}
	for _, r := range u.Raw {
		seen[r] = struct{}{}
	}

	return float64(len(seen)) / float64(len(u.Raw))
}

// Encoder turns normalized URLs into feature vectors following a fixed
// schema. It is immutable after construction and safe for concurrent use.
type Encoder struct {
	schema []string
	funcs  []Func
}

// NewEncoder builds an encoder for the given ordered feature schema. Unknown
// feature names fail construction so that schema drift between a model
// artifact and this package is caught at startup, not per request.
func NewEncoder(schema []string) (*Encoder, error) {
	if len(schema) == 0 {
		return nil, fmt.Errorf("empty feature schema")
	}
	funcs := make([]Func, 0, len(schema))
	for _, name := range schema {
		fn, ok := registry[name]
		if !ok {
			return nil, fmt.Errorf("unknown feature %q in schema", name)
		}
		funcs = append(funcs, fn)
	}

	return &Encoder{schema: append([]string(nil), schema...), funcs: funcs}, nil
}

// N returns the fixed vector length produced by this encoder.
func (e *Encoder) N() int { return len(e.funcs) }

// Schema returns a copy of the ordered feature names.
func (e *Encoder) Schema() []string { return append([]string(nil), e.schema...) }

// Encode computes the feature vector for the URL. It always returns a vector
// of exactly N finite values: on any internal failure it returns the all-zero
// vector so the caller can still take a rule-only fallback path.
func (e *Encoder) Encode(u domain.NormalizedURL) (vec domain.FeatureVector) {
	vec = make(domain.FeatureVector, e.N())
	defer func() {
		if r := recover(); r != nil {
			for i := range vec {
				vec[i] = 0.0
			}
		}
	}()

	for i, fn := range e.funcs {
		v := fn(u)
		if math.IsNaN(v) || math.IsInf(v, 0) {
			v = 0.0
		}
		vec[i] = v
	}

	return vec
}
