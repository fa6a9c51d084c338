package handler

import (
	"portfolio-api/internal/delivery/http/middleware"
	"portfolio-api/internal/repository"
	"portfolio-api/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type ActivityHandler struct {
	uc usecase.ActivityUsecase
}

type activityRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Date        string `json:"date"`
	ImageURL    string `json:"imageUrl"`
}

type activityResponse struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Date        string `json:"date"`
	ImageURL    string `json:"imageUrl"`
}

func NewActivityHandler(uc usecase.ActivityUsecase) *ActivityHandler {
	return &ActivityHandler{uc: uc}
}

func (h *ActivityHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	grp := r.Group("/activities")
	grp.Get("/", h.List)
	grp.Post("/", h.Create)
	grp.Put("/:id", h.Update)
	grp.Delete("/:id", h.Delete)
}

func (h *ActivityHandler) List(c fiber.Ctx) error {
	items, err := h.uc.List(c.Context())
	if err != nil {
		return mapUsecaseError(err)
	}

	res := make([]activityResponse, 0, len(items))
	for _, it := range items {
		res = append(res, activityToResponse(it))
	}
	return c.JSON(res)
}

func (h *ActivityHandler) Create(c fiber.Ctx) error {
	var req activityRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	created, err := h.uc.Create(c.Context(), activityInput(req))
	if err != nil {
		return mapUsecaseError(err)
	}
	return c.Status(fiber.StatusCreated).JSON(activityToResponse(created))
}

func (h *ActivityHandler) Update(c fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	var req activityRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	updated, err := h.uc.Update(c.Context(), id, activityInput(req))
	if err != nil {
		return mapUsecaseError(err)
	}
	return c.JSON(activityToResponse(updated))
}

func (h *ActivityHandler) Delete(c fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	if err := h.uc.Delete(c.Context(), id); err != nil {
		return mapUsecaseError(err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func activityInput(req activityRequest) usecase.ActivityInput {
	return usecase.ActivityInput{
		Title:       req.Title,
		Description: req.Description,
		Date:        req.Date,
		ImageURL:    req.ImageURL,
	}
}

func activityToResponse(a repository.Activity) activityResponse {
	return activityResponse{
		ID:          a.ID,
		Title:       a.Title,
		Description: a.Description,
		Date:        a.Date,
		ImageURL:    a.ImageURL,
	}
}
