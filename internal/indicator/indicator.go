// Package indicator implements the server-side deterministic indicator
// extractor: a fixed, ordered set of stateless heuristic checks over a
// normalized URL. Each check is independent of the others and yields a single
// tri-state IndicatorRecord.
//
// A separately maintained client-side check set lives in pkg/guardclient; the
// duplication is deliberate so the client keeps working with zero network
// dependency.
package indicator

import (
	"fmt"
	"strings"

	"phishguard/pkg/domain"
)

const (
	iconSafe    = "check"
	iconWarning = "alert"
	iconDanger  = "x"
)

// Indicator names. Exported so the rule engine and tests can reference a
// check without duplicating its display string.
const (
	NameURLLength      = "URL Length"
	NameDotCount       = "Dot Count"
	NameSubdomainDepth = "Subdomain Depth"
	NameAtSymbol       = "@ Symbol"
	NameBrandImitation = "Brand Imitation"
	NameScheme         = "Connection Security"
	NameIPHost         = "IP Address Host"
	NameSpecialChars   = "Special Characters"
	NameKeywords       = "Suspicious Keywords"
	NameTLD            = "Domain Extension"
)

// thresholds for the individual checks. Changing one changes the behavior of
// exactly one indicator.
const (
	maxURLLength      = 75
	maxHostDots       = 3
	maxSubdomainDepth = 2
	maxHostHyphens    = 2
	longHostLength    = 20
	maxSpecialChars   = 5
)

// check computes one indicator for the given URL.
type check func(u domain.NormalizedURL) domain.IndicatorRecord

// checks is the ordered server-side check set.
var checks = []check{ //nolint: gochecknoglobals
	checkURLLength,
	checkDotCount,
	checkSubdomainDepth,
	checkAtSymbol,
	checkBrandImitation,
	checkScheme,
	checkIPHost,
	checkSpecialChars,
	checkKeywords,
	checkTLD,
}

// Extract runs every check against the URL and returns the indicator records
// in their fixed order. It is a pure function and safe for concurrent use.
func Extract(u domain.NormalizedURL) []domain.IndicatorRecord {
	records := make([]domain.IndicatorRecord, 0, len(checks))
	for _, c := range checks {
		records = append(records, c(u))
	}

	return records
}

func record(name string, status domain.IndicatorStatus, msg, explanation string) domain.IndicatorRecord {
	icon := iconSafe
	switch status {
	case domain.IndicatorWarning:
		icon = iconWarning
	case domain.IndicatorDanger:
		icon = iconDanger
	case domain.IndicatorSafe:
	}

	return domain.IndicatorRecord{
		Name:        name,
		Status:      status,
		Icon:        icon,
		Message:     msg,
		Explanation: explanation,
	}
}

func checkURLLength(u domain.NormalizedURL) domain.IndicatorRecord {
	n := len(u.Raw)
	if n > maxURLLength {
		return record(NameURLLength, domain.IndicatorWarning,
			fmt.Sprintf("URL is unusually long (%d characters)", n),
			"Very long URLs are often used to hide the real destination behind noise.")
	}

	return record(NameURLLength, domain.IndicatorSafe,
		fmt.Sprintf("URL length is within normal range (%d characters)", n),
		"Short, readable URLs are typical for legitimate sites.")
}

func checkDotCount(u domain.NormalizedURL) domain.IndicatorRecord {
	n := strings.Count(u.Host, ".")
	if n > maxHostDots {
		return record(NameDotCount, domain.IndicatorWarning,
			fmt.Sprintf("Hostname contains many dots (%d)", n),
			"An excessive number of dots can disguise the real domain inside a long chain of labels.")
	}

	return record(NameDotCount, domain.IndicatorSafe,
		fmt.Sprintf("Hostname dot count is normal (%d)", n),
		"The hostname has a typical structure.")
}

func checkSubdomainDepth(u domain.NormalizedURL) domain.IndicatorRecord {
	depth := 0
	if u.Host != "" {
		if labels := len(strings.Split(u.Host, ".")); labels > 2 {
			depth = labels - 2
		}
	}
	if depth > maxSubdomainDepth {
		return record(NameSubdomainDepth, domain.IndicatorWarning,
			fmt.Sprintf("URL uses %d levels of subdomains", depth),
			"Deeply nested subdomains are a common trick to make a URL start with a trusted name.")
	}

	return record(NameSubdomainDepth, domain.IndicatorSafe,
		"Subdomain depth is normal",
		"The domain does not hide behind layers of subdomains.")
}

func checkAtSymbol(u domain.NormalizedURL) domain.IndicatorRecord {
	if strings.Contains(u.Raw, "@") {
		return record(NameAtSymbol, domain.IndicatorDanger,
			"URL contains an @ symbol",
			"Browsers ignore everything before the @, so the real destination may differ from what you see at the start of the URL.")
	}

	return record(NameAtSymbol, domain.IndicatorSafe,
		"No @ symbol in the URL",
		"The URL does not use the @ redirection trick.")
}

func checkBrandImitation(u domain.NormalizedURL) domain.IndicatorRecord {
	lower := strings.ToLower(u.Raw)
	for _, p := range brandPatterns {
		if p.re.MatchString(lower) {
			return record(NameBrandImitation, domain.IndicatorWarning,
				fmt.Sprintf("Possible brand impersonation detected (resembles %s)", p.brand),
				fmt.Sprintf("The URL imitates %s using altered characters; the real site would spell the name correctly.", p.brand))
		}
	}
	if strings.Count(u.Host, "-") > maxHostHyphens && len(u.Host) > longHostLength {
		return record(NameBrandImitation, domain.IndicatorWarning,
			"Hostname combines many hyphens with unusual length",
			"Long, hyphen-heavy hostnames frequently stitch a brand name to extra words to look legitimate.")
	}

	return record(NameBrandImitation, domain.IndicatorSafe,
		"No brand imitation patterns found",
		"The URL does not resemble a known brand-lookalike spelling.")
}

func checkScheme(u domain.NormalizedURL) domain.IndicatorRecord {
	if u.Scheme != "https" {
		return record(NameScheme, domain.IndicatorWarning,
			"HTTPS protocol is missing (connection is not encrypted)",
			"Without HTTPS anything you type can be read in transit. Legitimate login pages always use HTTPS.")
	}

	return record(NameScheme, domain.IndicatorSafe,
		"HTTPS protocol is enabled (encryption present)",
		"The connection to this site is encrypted.")
}

func checkIPHost(u domain.NormalizedURL) domain.IndicatorRecord {
	if ipv4Host.MatchString(u.Host) {
		return record(NameIPHost, domain.IndicatorWarning,
			"URL uses an IP address instead of a domain name",
			"Legitimate websites typically use domain names, not raw IP addresses.")
	}

	return record(NameIPHost, domain.IndicatorSafe,
		"URL uses a domain name",
		"The host is a regular domain name rather than a raw IP address.")
}

func checkSpecialChars(u domain.NormalizedURL) domain.IndicatorRecord {
	n := 0
	for _, r := range u.Raw {
		switch r {
		case '?', '%', '&', '=', '_':
			n++
		}
	}
	if n > maxSpecialChars {
		return record(NameSpecialChars, domain.IndicatorWarning,
			fmt.Sprintf("URL contains many special characters (%d)", n),
			"Dense clusters of ?, %, &, = and _ often indicate obfuscated or machine-generated URLs.")
	}

	return record(NameSpecialChars, domain.IndicatorSafe,
		"Special character usage is normal",
		"The URL does not contain suspicious character clusters.")
}

func checkKeywords(u domain.NormalizedURL) domain.IndicatorRecord {
	lower := strings.ToLower(u.Raw)
	var found []string
	for _, kw := range suspiciousKeywords {
		if strings.Contains(lower, kw) {
			found = append(found, kw)
		}
	}
	if len(found) > 0 {
		shown := found
		if len(shown) > 2 {
			shown = shown[:2]
		}

		return record(NameKeywords, domain.IndicatorWarning,
			fmt.Sprintf("Suspicious keywords detected (%s)", strings.Join(shown, ", ")),
			"Words related to authentication or payment are common bait in phishing URLs.")
	}

	return record(NameKeywords, domain.IndicatorSafe,
		"No suspicious keywords detected in the URL",
		"The URL does not contain typical phishing bait words.")
}

func checkTLD(u domain.NormalizedURL) domain.IndicatorRecord {
	for _, tld := range suspiciousTLDs {
		if strings.HasSuffix(u.Host, tld) {
			return record(NameTLD, domain.IndicatorDanger,
				fmt.Sprintf("Free or uncommon domain extension (%s) often associated with phishing", tld),
				"These domain extensions are cheap or free to register and show up disproportionately in phishing campaigns.")
		}
	}

	return record(NameTLD, domain.IndicatorSafe,
		"Domain extension is common",
		"The domain extension is not on the list of frequently abused TLDs.")
}
