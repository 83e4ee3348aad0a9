package indicator

import "regexp"

// brandPattern pairs a lookalike regexp with the brand it imitates. Patterns
// match only altered spellings (digit substitution, dropped letters), never
// the legitimate brand name itself.
type brandPattern struct {
	re    *regexp.Regexp
	brand string
}

// brandPatterns is the fixed, auditable table of known brand-lookalike
// spellings. Extend it here rather than in classifier logic.
var brandPatterns = []brandPattern{ //nolint: gochecknoglobals
	{regexp.MustCompile(`paypa1|paypai`), "PayPal"},
	{regexp.MustCompile(`amaz0n|amazn`), "Amazon"},
	{regexp.MustCompile(`g00gle|go0gle|g0ogle`), "Google"},
	{regexp.MustCompile(`micr0soft|micrsoft`), "Microsoft"},
	{regexp.MustCompile(`app1e|aple`), "Apple"},
	{regexp.MustCompile(`faceb0ok|facebok`), "Facebook"},
	{regexp.MustCompile(`tw1tter|twtter`), "Twitter"},
}

// suspiciousKeywords are substrings commonly found in credential-harvesting
// URLs. Matching is case-insensitive over the whole URL.
var suspiciousKeywords = []string{ //nolint: gochecknoglobals
	"login", "signin", "verify", "secure", "update", "confirm",
	"account", "password", "credential", "payment", "billing",
}

// suspiciousTLDs are free or low-cost top-level domains with a high share of
// phishing registrations.
var suspiciousTLDs = []string{ //nolint: gochecknoglobals
	".tk", ".ml", ".ga", ".cf", ".gq", ".xyz", ".top", ".click",
}

// ipv4Host matches a dotted-quad hostname.
var ipv4Host = regexp.MustCompile(`^\d{1,3}\.\d{1,3}\.\d{1,3}\.\d{1,3}$`) //nolint: gochecknoglobals
