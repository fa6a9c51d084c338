package handler

import (
	"portfolio-api/internal/delivery/http/dto"
	"portfolio-api/internal/delivery/http/middleware"
	"portfolio-api/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type CategoryHandler struct {
	uc usecase.CategoryUsecase
}

func NewCategoryHandler(uc usecase.CategoryUsecase) *CategoryHandler {
	return &CategoryHandler{uc: uc}
}

func (h *CategoryHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	grp := r.Group("/categories")
	grp.Get("/", h.List)
	grp.Post("/", h.Create)
	grp.Put("/:id", h.Update)
	grp.Delete("/:id", h.Delete)
}

func (h *CategoryHandler) List(c fiber.Ctx) error {
	items, err := h.uc.List(c.Context())
	if err != nil {
		return mapUsecaseError(err)
	}

	res := make([]dto.CategoryResponse, 0, len(items))
	for _, it := range items {
		res = append(res, categoryToResponse(it))
	}
	return c.JSON(res)
}

func (h *CategoryHandler) Create(c fiber.Ctx) error {
	var body map[string]any
	if err := c.Bind().Body(&body); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	created, err := h.uc.Create(c.Context(), stringField(body, "name"))
	if err != nil {
		return mapUsecaseError(err)
	}
	return c.Status(fiber.StatusCreated).JSON(categoryToResponse(created))
}

func (h *CategoryHandler) Update(c fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	var body map[string]any
	if err := c.Bind().Body(&body); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	updated, err := h.uc.Update(c.Context(), id, stringField(body, "name"))
	if err != nil {
		return mapUsecaseError(err)
	}
	return c.JSON(categoryToResponse(updated))
}

func (h *CategoryHandler) Delete(c fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	if err := h.uc.Delete(c.Context(), id); err != nil {
		return mapUsecaseError(err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func categoryToResponse(cws usecase.CategoryWithSkills) dto.CategoryResponse {
	skills := make([]dto.CategorySkill, 0, len(cws.Skills))
	for _, s := range cws.Skills {
		skills = append(skills, dto.CategorySkill{
			ID:          s.ID,
			Name:        s.Name,
			Description: s.Description,
		})
	}
	return dto.CategoryResponse{
		ID:     cws.Category.ID,
		Name:   cws.Category.Name,
		Skills: skills,
	}
}
