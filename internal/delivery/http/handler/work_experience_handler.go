package handler

import (
	"portfolio-api/internal/delivery/http/middleware"
	"portfolio-api/internal/repository"
	"portfolio-api/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type WorkExperienceHandler struct {
	uc usecase.WorkExperienceUsecase
}

type workExperienceRequest struct {
	Company     string   `json:"company"`
	Position    string   `json:"position"`
	LogoURL     string   `json:"logoUrl"`
	StartDate   string   `json:"startDate"`
	EndDate     string   `json:"endDate"`
	Location    string   `json:"location"`
	Description string   `json:"description"`
	Skills      []string `json:"skills"`
}

type workExperienceResponse struct {
	ID          int64    `json:"id"`
	Company     string   `json:"company"`
	Position    string   `json:"position"`
	LogoURL     string   `json:"logoUrl"`
	StartDate   string   `json:"startDate"`
	EndDate     string   `json:"endDate"`
	Location    string   `json:"location"`
	Description string   `json:"description"`
	Skills      []string `json:"skills"`
}

func NewWorkExperienceHandler(uc usecase.WorkExperienceUsecase) *WorkExperienceHandler {
	return &WorkExperienceHandler{uc: uc}
}

func (h *WorkExperienceHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	grp := r.Group("/experiences")
	grp.Get("/", h.List)
	grp.Get("/:id", h.GetByID)
	grp.Post("/", h.Create)
	grp.Put("/:id", h.Update)
	grp.Delete("/:id", h.Delete)
}

func (h *WorkExperienceHandler) List(c fiber.Ctx) error {
	items, err := h.uc.List(c.Context())
	if err != nil {
		return mapUsecaseError(err)
	}

	res := make([]workExperienceResponse, 0, len(items))
	for _, it := range items {
		res = append(res, workExperienceToResponse(it))
	}
	return c.JSON(res)
}

func (h *WorkExperienceHandler) GetByID(c fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	w, err := h.uc.GetByID(c.Context(), id)
	if err != nil {
		return mapUsecaseError(err)
	}
	return c.JSON(workExperienceToResponse(w))
}

func (h *WorkExperienceHandler) Create(c fiber.Ctx) error {
	var req workExperienceRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	created, err := h.uc.Create(c.Context(), workExperienceInput(req))
	if err != nil {
		return mapUsecaseError(err)
	}
	return c.Status(fiber.StatusCreated).JSON(workExperienceToResponse(created))
}

func (h *WorkExperienceHandler) Update(c fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	var req workExperienceRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	updated, err := h.uc.Update(c.Context(), id, workExperienceInput(req))
	if err != nil {
		return mapUsecaseError(err)
	}
	return c.JSON(workExperienceToResponse(updated))
}

func (h *WorkExperienceHandler) Delete(c fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	if err := h.uc.Delete(c.Context(), id); err != nil {
		return mapUsecaseError(err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func workExperienceInput(req workExperienceRequest) usecase.WorkExperienceInput {
	return usecase.WorkExperienceInput{
		Company:     req.Company,
		Position:    req.Position,
		LogoURL:     req.LogoURL,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		Location:    req.Location,
		Description: req.Description,
		Skills:      req.Skills,
	}
}

func workExperienceToResponse(w repository.WorkExperience) workExperienceResponse {
	skills := w.Skills
	if skills == nil {
		skills = []string{}
	}
	return workExperienceResponse{
		ID:          w.ID,
		Company:     w.Company,
		Position:    w.Position,
		LogoURL:     w.LogoURL,
		StartDate:   w.StartDate,
		EndDate:     w.EndDate,
		Location:    w.Location,
		Description: w.Description,
		Skills:      skills,
	}
}
