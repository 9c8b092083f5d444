package auth

import (
	"net/http"
	"strings"
)

// TokenSource indicates where a session token was found.
type TokenSource string

const (
	TokenSourceNone   TokenSource = "none"
	TokenSourceCookie TokenSource = "cookie"
	TokenSourceBearer TokenSource = "bearer"
)

// TokenExtractor pulls a raw token out of a request, returning "" when absent.
type TokenExtractor struct {
	Source  TokenSource
	Extract func(r *http.Request) string
}

// CookieExtractor reads the token from the named cookie.
func CookieExtractor(name string) TokenExtractor {
	return TokenExtractor{
		Source: TokenSourceCookie,
		Extract: func(r *http.Request) string {
			cookie, err := r.Cookie(name)
			if err != nil {
				return ""
			}
			return cookie.Value
		},
	}
}

// BearerExtractor reads the token from "Authorization: Bearer <token>".
func BearerExtractor() TokenExtractor {
	return TokenExtractor{
		Source: TokenSourceBearer,
		Extract: func(r *http.Request) string {
			parts := strings.SplitN(r.Header.Get("Authorization"), " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return ""
			}
			return strings.TrimSpace(parts[1])
		},
	}
}

// DefaultExtractors is the extraction policy: cookie first, then bearer header.
func DefaultExtractors() []TokenExtractor {
	return []TokenExtractor{
		CookieExtractor(CookieName),
		BearerExtractor(),
	}
}

// ExtractToken tries extractors in order and returns the first token found.
func ExtractToken(r *http.Request, extractors []TokenExtractor) (string, TokenSource) {
	for _, e := range extractors {
		if token := e.Extract(r); token != "" {
			return token, e.Source
		}
	}
	return "", TokenSourceNone
}
