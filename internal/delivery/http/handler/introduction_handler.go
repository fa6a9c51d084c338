package handler

import (
	"portfolio-api/internal/delivery/http/middleware"
	"portfolio-api/internal/repository"
	"portfolio-api/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type IntroductionHandler struct {
	uc usecase.IntroductionUsecase
}

type introductionRequest struct {
	Content string `json:"content"`
}

type introductionResponse struct {
	ID          int64  `json:"id"`
	Content     string `json:"content"`
	LastUpdated string `json:"lastUpdated"`
}

func NewIntroductionHandler(uc usecase.IntroductionUsecase) *IntroductionHandler {
	return &IntroductionHandler{uc: uc}
}

func (h *IntroductionHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	grp := r.Group("/introduction")
	grp.Get("/", h.Get)
	grp.Put("/", h.Update)
}

func (h *IntroductionHandler) Get(c fiber.Ctx) error {
	in, err := h.uc.Get(c.Context())
	if err != nil {
		return mapUsecaseError(err)
	}
	return c.JSON(introductionToResponse(in))
}

func (h *IntroductionHandler) Update(c fiber.Ctx) error {
	var req introductionRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	updated, err := h.uc.Update(c.Context(), req.Content)
	if err != nil {
		return mapUsecaseError(err)
	}
	return c.JSON(introductionToResponse(updated))
}

func introductionToResponse(in repository.Introduction) introductionResponse {
	return introductionResponse{
		ID:          in.ID,
		Content:     in.Content,
		LastUpdated: in.LastUpdated.Format("2006-01-02"),
	}
}
