// Package domains answers whether a token looks like a real host name so the
// punctuation-spacing rules can leave URLs and domain names alone.
package domains

import (
	"strings"

	"golang.org/x/net/publicsuffix"
)

// ValidHost reports whether candidate parses as a host name carrying a known
// public suffix (e.g. "example.com", "https://sub.example.co.uk"). It never
// fails; anything unparseable is simply not a host.
func ValidHost(candidate string) bool {
	host := normalizeHost(candidate)
	if host == "" {
		return false
	}
	suffix, icann := publicsuffix.PublicSuffix(host)
	if !icann {
		return false
	}
	// Require a registrable label in front of the suffix.
	if host == suffix {
		return false
	}
	if !strings.HasSuffix(host, "."+suffix) {
		return false
	}
	label := strings.TrimSuffix(host, "."+suffix)
	label = label[strings.LastIndexByte(label, '.')+1:]
	return validLabel(label)
}

func normalizeHost(candidate string) string {
	host := strings.TrimSpace(strings.ToLower(candidate))
	if host == "" {
		return ""
	}
	if i := strings.Index(host, "://"); i >= 0 {
		host = host[i+3:]
	}
	// Drop path, query, and port remnants.
	for _, sep := range []byte{'/', '?', '#', ':'} {
		if i := strings.IndexByte(host, sep); i >= 0 {
			host = host[:i]
		}
	}
	host = strings.Trim(host, ".")
	if !strings.Contains(host, ".") {
		return ""
	}
	return host
}

func validLabel(label string) bool {
	if label == "" || len(label) > 63 {
		return false
	}
	for i := 0; i < len(label); i++ {
		c := label[i]
		switch {
		case c >= 'a' && c <= 'z':
		case c >= '0' && c <= '9':
		case c == '-' && i > 0 && i < len(label)-1:
		default:
			return false
		}
	}
	return true
}
