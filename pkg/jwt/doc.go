// Package jwt issues and verifies the HS256 tokens that authenticate CMS
// editors.
//
// Tokens travel in an HttpOnly cookie set at login; API clients may send
// them as "Authorization: Bearer <token>" instead. Middleware verifies the
// token and stores its Claims in the request context:
//
//	svc, err := jwt.New(cfg)
//	r.With(jwt.Middleware(svc)).Post("/gallery", create)
//
//	claims, ok := jwt.ClaimsFromContext(r.Context())
package jwt
