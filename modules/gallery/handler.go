package gallery

import (
	"github.com/dmitrymomot/portfolio/handler"
	"github.com/dmitrymomot/portfolio/pkg/content"
	"github.com/dmitrymomot/portfolio/pkg/mongo"
)

func (h *Handler) list(ctx handler.Context, req ListRequest) handler.Response {
	items, err := h.svc.List(ctx, req.Category)
	if err != nil {
		return errorResponse(err)
	}
	return handler.JSON(items, handler.WithJSONMeta(map[string]any{"total": len(items)}))
}

func (h *Handler) get(ctx handler.Context, req IDRequest) handler.Response {
	id, err := mongo.ParseID("id", req.ID)
	if err != nil {
		return handler.Error(err)
	}
	item, err := h.svc.Get(ctx, id)
	if err != nil {
		return errorResponse(err)
	}
	return handler.JSON(item)
}

func (h *Handler) create(ctx handler.Context, req Request) handler.Response {
	in, err := req.Validate(content.Create)
	if err != nil {
		return handler.Error(err)
	}
	item, err := h.svc.Create(ctx, in)
	if err != nil {
		return errorResponse(err)
	}
	return handler.Created(item)
}

func (h *Handler) update(ctx handler.Context, req Request) handler.Response {
	id, err := mongo.ParseID("id", req.ID)
	if err != nil {
		return handler.Error(err)
	}
	in, err := req.Validate(content.Update)
	if err != nil {
		return handler.Error(err)
	}
	item, err := h.svc.Update(ctx, id, in)
	if err != nil {
		return errorResponse(err)
	}
	return handler.JSON(item)
}

func (h *Handler) delete(ctx handler.Context, req IDRequest) handler.Response {
	id, err := mongo.ParseID("id", req.ID)
	if err != nil {
		return handler.Error(err)
	}
	if err := h.svc.Delete(ctx, id); err != nil {
		return errorResponse(err)
	}
	return handler.Empty()
}
