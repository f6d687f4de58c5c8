package handlers

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/ngenohkevin/maishamaua/internal/content"
)

// RevalidateHandler lets the CMS webhook force a refetch before the cache
// TTL expires.
type RevalidateHandler struct {
	svc *content.Service
	log *zap.Logger
}

// NewRevalidateHandler constructs RevalidateHandler.
func NewRevalidateHandler(svc *content.Service, log *zap.Logger) *RevalidateHandler {
	return &RevalidateHandler{svc: svc, log: log}
}

type revalidateRequest struct {
	Tags []string `json:"tags"`
}

var allTags = []string{
	content.TagProducts,
	content.TagCategories,
	content.TagGallery,
	content.TagTestimonials,
	content.TagSiteSettings,
}

// Revalidate invalidates the named cache tags, or every tag when the body
// names none.
func (h *RevalidateHandler) Revalidate(c *fiber.Ctx) error {
	var req revalidateRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
		}
	}

	tags := req.Tags
	if len(tags) == 0 {
		tags = allTags
	}

	if err := h.svc.Invalidate(c.UserContext(), tags...); err != nil {
		h.log.Error("revalidation failed", zap.Error(err))
		return fiber.NewError(fiber.StatusInternalServerError, "revalidation failed")
	}

	return c.JSON(fiber.Map{"success": true, "data": fiber.Map{"revalidated": tags}})
}
