package auth

import (
	"github.com/gin-gonic/gin"
)

// Context keys for identity data
const (
	ContextKeyIdentity    = "auth_identity"
	ContextKeyTokenSource = "auth_token_source"
)

// Middleware authenticates requests with a session token.
type Middleware struct {
	issuer     *TokenIssuer
	extractors []TokenExtractor
}

// NewMiddleware creates an authentication middleware. With no extractors it
// uses DefaultExtractors.
func NewMiddleware(issuer *TokenIssuer, extractors ...TokenExtractor) *Middleware {
	if len(extractors) == 0 {
		extractors = DefaultExtractors()
	}
	return &Middleware{
		issuer:     issuer,
		extractors: extractors,
	}
}

// RequireAuth rejects requests without a valid token and stores the verified
// identity in the context. It never touches the store.
func (m *Middleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, source := ExtractToken(c.Request, m.extractors)
		if token == "" {
			abortWithError(c, ErrMissingToken)
			return
		}

		identity, err := m.issuer.Verify(token)
		if err != nil {
			abortWithError(c, ErrInvalidToken)
			return
		}

		c.Set(ContextKeyIdentity, identity)
		c.Set(ContextKeyTokenSource, source)
		c.Next()
	}
}

func abortWithError(c *gin.Context, err error) {
	c.AbortWithStatusJSON(StatusCode(err), gin.H{"error": err.Error()})
}

// GetIdentity retrieves the verified identity from the context.
func GetIdentity(c *gin.Context) (Identity, bool) {
	if v, exists := c.Get(ContextKeyIdentity); exists {
		if identity, ok := v.(Identity); ok {
			return identity, true
		}
	}
	return Identity{}, false
}

// GetUserID returns the authenticated user's ID, or "" if unauthenticated.
func GetUserID(c *gin.Context) string {
	identity, _ := GetIdentity(c)
	return identity.UserID
}

// GetTokenSource reports how the request was authenticated.
func GetTokenSource(c *gin.Context) TokenSource {
	if v, exists := c.Get(ContextKeyTokenSource); exists {
		if source, ok := v.(TokenSource); ok {
			return source
		}
	}
	return TokenSourceNone
}
