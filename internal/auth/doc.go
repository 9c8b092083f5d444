// Package auth provides account registration, login and request
// authentication for the vault API.
//
// Passwords are stored as bcrypt digests (cost 10). A successful register or
// login issues an HS256 token valid for seven days. The token is returned in
// the response body and also set as the HttpOnly "auth_token" cookie.
//
// # Token extraction
//
// Protected routes accept the token from, in order:
//
//	Cookie: auth_token=<token>
//	Authorization: Bearer <token>
//
// The first source that yields a token wins. Verification is stateless: the
// middleware never reads the user store, and logout only clears the cookie.
//
// # Usage
//
//	issuer, err := auth.NewTokenIssuer(cfg.Auth.JWTSecret)
//	service := auth.NewService(userRepo, auth.NewHasher(auth.DefaultBcryptCost))
//	mw := auth.NewMiddleware(issuer)
//	controller := auth.NewAuthController(service, issuer, mw, cfg.Auth.SecureCookies)
//	controller.RegisterRoutes(router)
//
// Extract the caller in handlers:
//
//	userID := auth.GetUserID(c)
package auth
