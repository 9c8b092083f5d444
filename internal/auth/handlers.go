package auth

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/passmanager/internal/entities"
	"github.com/mrlokans/passmanager/internal/logutil"
)

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type userResponse struct {
	User  entities.PublicUser `json:"user"`
	Token string              `json:"token,omitempty"`
}

// AuthController handles authentication-related HTTP endpoints.
type AuthController struct {
	service    *Service
	issuer     *TokenIssuer
	middleware *Middleware
	cookies    CookieSettings
}

// NewAuthController creates a new authentication controller.
func NewAuthController(service *Service, issuer *TokenIssuer, middleware *Middleware, secureCookies bool) *AuthController {
	return &AuthController{
		service:    service,
		issuer:     issuer,
		middleware: middleware,
		cookies: CookieSettings{
			Secure: secureCookies,
			MaxAge: issuer.TTL(),
		},
	}
}

// RegisterRoutes registers authentication routes on the router.
func (ac *AuthController) RegisterRoutes(router gin.IRoutes) {
	router.POST("/auth/register", ac.Register)
	router.POST("/auth/login", ac.Login)
	router.GET("/auth/me", ac.middleware.RequireAuth(), ac.Me)
	router.POST("/auth/logout", ac.Logout)
}

// Register creates an account and starts a session.
// POST /auth/register
func (ac *AuthController) Register(c *gin.Context) {
	var req registerRequest
	if !bindJSON(c, &req) {
		return
	}

	user, err := ac.service.Register(c.Request.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	ac.startSession(c, http.StatusCreated, user)
}

// Login verifies credentials and starts a session.
// POST /auth/login
func (ac *AuthController) Login(c *gin.Context) {
	var req loginRequest
	if !bindJSON(c, &req) {
		return
	}

	user, err := ac.service.Authenticate(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	ac.startSession(c, http.StatusOK, user)
}

// Me returns the current user, re-read from the store.
// GET /auth/me
func (ac *AuthController) Me(c *gin.Context) {
	identity, ok := GetIdentity(c)
	if !ok {
		respondError(c, ErrMissingToken)
		return
	}

	user, err := ac.service.GetUserByID(c.Request.Context(), identity.UserID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, userResponse{User: user.Public()})
}

// Logout clears the session cookie. Issued tokens stay valid until they expire.
// POST /auth/logout
func (ac *AuthController) Logout(c *gin.Context) {
	ac.cookies.ClearSessionCookie(c.Writer)
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (ac *AuthController) startSession(c *gin.Context, status int, user *entities.User) {
	token, err := ac.issuer.Issue(Identity{UserID: user.ID, Email: user.Email, Name: user.Name})
	if err != nil {
		respondError(c, storageError(err))
		return
	}

	ac.cookies.SetSessionCookie(c.Writer, token)
	c.JSON(status, userResponse{User: user.Public(), Token: token})
}

// bindJSON decodes the body into req. An empty body decodes to the zero value
// so that field validation reports what is missing.
func bindJSON(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil && !errors.Is(err, io.EOF) {
		respondError(c, ErrInvalidBody)
		return false
	}
	return true
}

func respondError(c *gin.Context, err error) {
	status := StatusCode(err)
	if status >= http.StatusInternalServerError {
		log := logutil.GetOrDefault(c.Request.Context())
		log.Error().Err(err).Str("path", c.FullPath()).Msg("auth request failed")
	}
	c.JSON(status, gin.H{"error": err.Error()})
}
