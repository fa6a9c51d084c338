package handler

import (
	"portfolio-api/internal/delivery/http/middleware"
	"portfolio-api/internal/repository"
	"portfolio-api/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type EducationHandler struct {
	uc usecase.EducationUsecase
}

type educationRequest struct {
	School    string `json:"school"`
	Degree    string `json:"degree"`
	Level     string `json:"level"`
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
	City      string `json:"city"`
	District  string `json:"district"`
	GPA       string `json:"gpa"`
}

type educationResponse struct {
	ID        int64  `json:"id"`
	School    string `json:"school"`
	Degree    string `json:"degree"`
	Level     string `json:"level"`
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
	City      string `json:"city"`
	District  string `json:"district"`
	GPA       string `json:"gpa"`
}

func NewEducationHandler(uc usecase.EducationUsecase) *EducationHandler {
	return &EducationHandler{uc: uc}
}

func (h *EducationHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	grp := r.Group("/educations")
	grp.Get("/", h.List)
	grp.Post("/", h.Create)
	grp.Put("/:id", h.Update)
	grp.Delete("/:id", h.Delete)
}

func (h *EducationHandler) List(c fiber.Ctx) error {
	items, err := h.uc.List(c.Context())
	if err != nil {
		return mapUsecaseError(err)
	}

	res := make([]educationResponse, 0, len(items))
	for _, it := range items {
		res = append(res, educationToResponse(it))
	}
	return c.JSON(res)
}

func (h *EducationHandler) Create(c fiber.Ctx) error {
	var req educationRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	created, err := h.uc.Create(c.Context(), educationInput(req))
	if err != nil {
		return mapUsecaseError(err)
	}
	return c.Status(fiber.StatusCreated).JSON(educationToResponse(created))
}

func (h *EducationHandler) Update(c fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	var req educationRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	updated, err := h.uc.Update(c.Context(), id, educationInput(req))
	if err != nil {
		return mapUsecaseError(err)
	}
	return c.JSON(educationToResponse(updated))
}

func (h *EducationHandler) Delete(c fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	if err := h.uc.Delete(c.Context(), id); err != nil {
		return mapUsecaseError(err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func educationInput(req educationRequest) usecase.EducationInput {
	return usecase.EducationInput{
		School:    req.School,
		Degree:    req.Degree,
		Level:     req.Level,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		City:      req.City,
		District:  req.District,
		GPA:       req.GPA,
	}
}

func educationToResponse(e repository.Education) educationResponse {
	return educationResponse{
		ID:        e.ID,
		School:    e.School,
		Degree:    e.Degree,
		Level:     e.Level,
		StartDate: e.StartDate,
		EndDate:   e.EndDate,
		City:      e.City,
		District:  e.District,
		GPA:       e.GPA,
	}
}
