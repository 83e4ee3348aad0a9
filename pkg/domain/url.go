package domain

// NormalizedURL is the structured form of a submitted URL string. It is
// derived once per request and treated as immutable afterwards.
type NormalizedURL struct {
	// Raw is the trimmed input string exactly as the caller submitted it.
	Raw string
	// Scheme is the URL scheme, defaulted to "https" when the input had none.
	Scheme string
	// Host is the hostname (or IP literal), lowercased, without port.
	Host string
	// Path is the URL path, possibly empty.
	Path string
	// Query is the raw query string without the leading "?".
	Query string
}

// FeatureVector is the fixed-order numeric encoding of a URL consumed by the
// classifier. Its length and element order are part of the classifier's
// trained contract.
type FeatureVector []float64
