package guardclient

import (
	"fmt"
	"regexp"
	"strings"

	"phishguard/pkg/domain"
)

// The client-side check set is maintained independently from the server-side
// extractor on purpose: it must produce a usable indicator list with zero
// network dependency, and the two sets are allowed to diverge. Records from
// both sides are concatenated for display, never deduplicated.

var (
	clientIPPattern = regexp.MustCompile(`(\d{1,3}\.){3}\d{1,3}`) //nolint: gochecknoglobals

	clientKeywords = []string{ //nolint: gochecknoglobals
		"login", "signin", "verify", "secure", "update", "confirm",
		"account", "password", "payment", "billing",
	}

	// Literal lookalike fragments; the server side uses fuller regexes.
	clientBrandLookalikes = []string{ //nolint: gochecknoglobals
		"paypa1", "amaz0n", "g00gle", "micr0soft", "app1e", "faceb0ok", "tw1tter",
	}
)

// ClientIndicators computes the client-side indicator list from the raw URL
// string alone, with no parsing dependency beyond string splitting. It is a
// pure function and safe for concurrent use.
func ClientIndicators(rawURL string) []domain.IndicatorRecord {
	raw := strings.TrimSpace(rawURL)
	lower := strings.ToLower(raw)
	host := clientHost(lower)

	records := make([]domain.IndicatorRecord, 0, 9)

	// URL length
	if len(raw) > 75 {
		records = append(records, clientRecord("URL Length", domain.IndicatorWarning,
			fmt.Sprintf("URL is unusually long (%d characters)", len(raw)),
			"Attackers pad URLs with noise to push the real destination out of sight."))
	} else {
		records = append(records, clientRecord("URL Length", domain.IndicatorSafe,
			fmt.Sprintf("URL length looks normal (%d characters)", len(raw)),
			"The URL is short enough to read in full."))
	}

	// dot count
	if n := strings.Count(host, "."); n > 3 {
		records = append(records, clientRecord("Dot Count", domain.IndicatorWarning,
			fmt.Sprintf("Hostname contains many dots (%d)", n),
			"Many dotted labels can bury the real domain."))
	} else {
		records = append(records, clientRecord("Dot Count", domain.IndicatorSafe,
			"Hostname structure looks normal",
			"The hostname has a typical number of labels."))
	}

	// subdomain depth
	depth := 0
	if host != "" {
		if labels := strings.Count(host, ".") + 1; labels > 2 {
			depth = labels - 2
		}
	}
	if depth > 2 {
		records = append(records, clientRecord("Subdomain Depth", domain.IndicatorWarning,
			fmt.Sprintf("URL nests %d levels of subdomains", depth),
			"Deep subdomain chains often start with a trusted-looking name."))
	} else {
		records = append(records, clientRecord("Subdomain Depth", domain.IndicatorSafe,
			"Subdomain depth looks normal",
			"The domain is not hidden behind subdomain layers."))
	}

	// @ symbol
	if strings.Contains(raw, "@") {
		records = append(records, clientRecord("@ Symbol", domain.IndicatorDanger,
			"URL contains an @ symbol",
			"Everything before the @ is ignored by the browser; the real destination comes after it."))
	} else {
		records = append(records, clientRecord("@ Symbol", domain.IndicatorSafe,
			"No @ symbol in the URL",
			"The URL does not use the @ redirection trick."))
	}

	// brand lookalikes / hyphen stuffing
	brand := ""
	for _, frag := range clientBrandLookalikes {
		if strings.Contains(lower, frag) {
			brand = frag

			break
		}
	}
	switch {
	case brand != "":
		records = append(records, clientRecord("Brand Imitation", domain.IndicatorWarning,
			fmt.Sprintf("URL contains a brand-lookalike spelling (%q)", brand),
			"Altered brand spellings are a classic impersonation trick."))
	case strings.Count(host, "-") > 2 && len(host) > 20:
		records = append(records, clientRecord("Brand Imitation", domain.IndicatorWarning,
			"Hostname combines many hyphens with unusual length",
			"Hyphen-stuffed hostnames often glue a brand name to extra words."))
	default:
		records = append(records, clientRecord("Brand Imitation", domain.IndicatorSafe,
			"No brand imitation patterns found",
			"The URL does not resemble a known lookalike spelling."))
	}

	// scheme
	switch {
	case strings.HasPrefix(lower, "http://"):
		records = append(records, clientRecord("Connection Security", domain.IndicatorWarning,
			"Connection is not encrypted (no HTTPS)",
			"Data sent over plain HTTP can be read in transit."))
	case strings.HasPrefix(lower, "https://"):
		records = append(records, clientRecord("Connection Security", domain.IndicatorSafe,
			"Connection uses HTTPS",
			"The connection to this site is encrypted."))
	default:
		records = append(records, clientRecord("Connection Security", domain.IndicatorSafe,
			"No explicit scheme; HTTPS is assumed",
			"The URL does not name a scheme, so the secure default applies when it is opened."))
	}

	// IP address anywhere in the URL
	if clientIPPattern.MatchString(raw) {
		records = append(records, clientRecord("IP Address", domain.IndicatorWarning,
			"URL contains a raw IP address",
			"Legitimate websites typically use domain names, not raw IP addresses."))
	} else {
		records = append(records, clientRecord("IP Address", domain.IndicatorSafe,
			"No raw IP address in the URL",
			"The URL addresses a named host."))
	}

	// special characters
	special := 0
	for _, r := range raw {
		switch r {
		case '?', '%', '&', '=', '_':
			special++
		}
	}
	if special > 5 {
		records = append(records, clientRecord("Special Characters", domain.IndicatorWarning,
			fmt.Sprintf("URL contains many special characters (%d)", special),
			"Dense ?, %, &, = and _ clusters suggest an obfuscated URL."))
	} else {
		records = append(records, clientRecord("Special Characters", domain.IndicatorSafe,
			"Special character usage looks normal",
			"No suspicious character clusters were found."))
	}

	// suspicious keywords
	var found []string
	for _, kw := range clientKeywords {
		if strings.Contains(lower, kw) {
			found = append(found, kw)
			if len(found) == 2 {
				break
			}
		}
	}
	if len(found) > 0 {
		records = append(records, clientRecord("Suspicious Keywords", domain.IndicatorWarning,
			fmt.Sprintf("Suspicious keywords detected (%s)", strings.Join(found, ", ")),
			"Authentication and payment words are common phishing bait."))
	} else {
		records = append(records, clientRecord("Suspicious Keywords", domain.IndicatorSafe,
			"No suspicious keywords found",
			"The URL does not contain typical phishing bait words."))
	}

	return records
}

// clientHost extracts the hostname using string splitting only.
func clientHost(lower string) string {
	rest := lower
	if _, after, ok := strings.Cut(rest, "://"); ok {
		rest = after
	}
	rest, _, _ = strings.Cut(rest, "?")
	rest, _, _ = strings.Cut(rest, "/")
	if at := strings.LastIndex(rest, "@"); at >= 0 {
		rest = rest[at+1:]
	}
	rest, _, _ = strings.Cut(rest, ":")

	return rest
}

func clientRecord(name string, status domain.IndicatorStatus, msg, explanation string) domain.IndicatorRecord {
	icon := "check"
	switch status {
	case domain.IndicatorWarning:
		icon = "alert"
	case domain.IndicatorDanger:
		icon = "x"
	case domain.IndicatorSafe:
	}

	return domain.IndicatorRecord{Name: name, Status: status, Icon: icon, Message: msg, Explanation: explanation}
}
