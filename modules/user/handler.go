package user

import (
	"github.com/dmitrymomot/portfolio/handler"
	"github.com/dmitrymomot/portfolio/pkg/jwt"
)

func (h *Handler) register(ctx handler.Context, req RegisterRequest) handler.Response {
	actor, _ := jwt.ClaimsFromContext(ctx)
	u, err := h.svc.Register(ctx, req, actor)
	if err != nil {
		return errorResponse(err)
	}
	return handler.Created(u)
}

func (h *Handler) login(ctx handler.Context, req LoginRequest) handler.Response {
	session, err := h.svc.Login(ctx, req)
	if err != nil {
		return errorResponse(err)
	}
	h.tokens.SetCookie(ctx.ResponseWriter(), session.Token, session.ExpiresAt)
	return handler.JSON(session)
}

func (h *Handler) logout(ctx handler.Context, _ struct{}) handler.Response {
	h.tokens.ClearCookie(ctx.ResponseWriter())
	return handler.Empty()
}

func (h *Handler) me(ctx handler.Context, _ struct{}) handler.Response {
	claims, ok := jwt.ClaimsFromContext(ctx)
	if !ok {
		return handler.Error(handler.ErrUnauthorized)
	}
	u, err := h.svc.Me(ctx, claims)
	if err != nil {
		return errorResponse(err)
	}
	return handler.JSON(u)
}
