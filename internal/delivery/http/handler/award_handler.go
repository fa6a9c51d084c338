package handler

import (
	"portfolio-api/internal/delivery/http/middleware"
	"portfolio-api/internal/repository"
	"portfolio-api/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type AwardHandler struct {
	uc usecase.AwardUsecase
}

type awardRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Date        string `json:"date"`
	ImageURL    string `json:"imageUrl"`
}

type awardResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Date        string `json:"date"`
	ImageURL    string `json:"imageUrl"`
}

func NewAwardHandler(uc usecase.AwardUsecase) *AwardHandler {
	return &AwardHandler{uc: uc}
}

func (h *AwardHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	grp := r.Group("/awards")
	grp.Get("/", h.List)
	grp.Post("/", h.Create)
	grp.Put("/:id", h.Update)
	grp.Delete("/:id", h.Delete)
}

func (h *AwardHandler) List(c fiber.Ctx) error {
	items, err := h.uc.List(c.Context())
	if err != nil {
		return mapUsecaseError(err)
	}

	res := make([]awardResponse, 0, len(items))
	for _, it := range items {
		res = append(res, awardToResponse(it))
	}
	return c.JSON(res)
}

func (h *AwardHandler) Create(c fiber.Ctx) error {
	var req awardRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	created, err := h.uc.Create(c.Context(), awardInput(req))
	if err != nil {
		return mapUsecaseError(err)
	}
	return c.Status(fiber.StatusCreated).JSON(awardToResponse(created))
}

func (h *AwardHandler) Update(c fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	var req awardRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	updated, err := h.uc.Update(c.Context(), id, awardInput(req))
	if err != nil {
		return mapUsecaseError(err)
	}
	return c.JSON(awardToResponse(updated))
}

func (h *AwardHandler) Delete(c fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	if err := h.uc.Delete(c.Context(), id); err != nil {
		return mapUsecaseError(err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func awardInput(req awardRequest) usecase.AwardInput {
	return usecase.AwardInput{
		Name:        req.Name,
		Description: req.Description,
		Date:        req.Date,
		ImageURL:    req.ImageURL,
	}
}

func awardToResponse(a repository.Award) awardResponse {
	return awardResponse{
		ID:          a.ID,
		Name:        a.Name,
		Description: a.Description,
		Date:        a.Date,
		ImageURL:    a.ImageURL,
	}
}
