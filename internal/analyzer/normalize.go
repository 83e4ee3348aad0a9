package analyzer

import (
	"net/url"
	"strings"

	"phishguard/pkg/domain"
	"phishguard/pkg/serrors"
)

// MaxURLLength bounds the accepted input size. The ceiling exists solely to
// bound resource use; it is not a suspicion heuristic.
const MaxURLLength = 2000

// Normalize parses a raw URL string into its structured form.
//
// Validation is intentionally loose: URLs carrying '@' symbols, raw IP hosts,
// excessive hyphens or dots, long paths and bait keywords are exactly the
// inputs this system exists to analyze, so none of them are rejected here.
// Normalize fails with ErrInvalidInput only when the input is empty, exceeds
// MaxURLLength, or no hostname can be derived at all.
//
// When the input lacks a scheme, "https://" is assumed. When net/url cannot
// parse the string structurally, Normalize falls back to naive splitting on
// "/" and "?" so that downstream analysis still gets something to work with.
func Normalize(raw string) (domain.NormalizedURL, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return domain.NormalizedURL{}, serrors.With(serrors.ErrInvalidInput, "URL is empty")
	}
	if len(raw) > MaxURLLength {
		return domain.NormalizedURL{}, serrors.With(serrors.ErrInvalidInput,
			"URL exceeds %d characters", MaxURLLength)
	}

	withScheme := raw
	if !strings.HasPrefix(raw, "http://") && !strings.HasPrefix(raw, "https://") {
		withScheme = "https://" + raw
	}

	n := domain.NormalizedURL{Raw: raw}
	if u, err := url.Parse(withScheme); err == nil && u.Hostname() != "" {
		n.Scheme = strings.ToLower(u.Scheme)
		n.Host = strings.ToLower(u.Hostname())
		n.Path = u.Path
		n.Query = u.RawQuery

		return n, nil
	}

	// Structural parse failed (or produced no host): recover what we can by
	// naive splitting so the URL remains analyzable.
	scheme, rest, _ := strings.Cut(withScheme, "://")
	n.Scheme = strings.ToLower(scheme)

	rest, n.Query, _ = strings.Cut(rest, "?")
	host, path, hasPath := strings.Cut(rest, "/")
	if hasPath {
		n.Path = "/" + path
	}

	// Userinfo and port still hide the hostname at this point.
	if at := strings.LastIndex(host, "@"); at >= 0 {
		host = host[at+1:]
	}
	host, _, _ = strings.Cut(host, ":")

	n.Host = strings.ToLower(strings.TrimSpace(host))
	if n.Host == "" {
		return domain.NormalizedURL{}, serrors.With(serrors.ErrInvalidInput,
			"could not derive a hostname from the URL")
	}

	return n, nil
}
