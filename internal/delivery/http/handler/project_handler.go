package handler

import (
	"portfolio-api/internal/delivery/http/middleware"
	"portfolio-api/internal/repository"
	"portfolio-api/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type ProjectHandler struct {
	uc usecase.ProjectUsecase
}

type projectRequest struct {
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Technologies []string `json:"technologies"`
	ImageURL     string   `json:"imageUrl"`
	Year         string   `json:"year"`
	ProjectURL   string   `json:"projectUrl"`
}

type projectResponse struct {
	ID           int64    `json:"id"`
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Technologies []string `json:"technologies"`
	ImageURL     string   `json:"imageUrl"`
	Year         string   `json:"year"`
	ProjectURL   string   `json:"projectUrl"`
}

func NewProjectHandler(uc usecase.ProjectUsecase) *ProjectHandler {
	return &ProjectHandler{uc: uc}
}

func (h *ProjectHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	grp := r.Group("/projects")
	grp.Get("/", h.List)
	grp.Get("/:id", h.GetByID)
	grp.Post("/", h.Create)
	grp.Put("/:id", h.Update)
	grp.Delete("/:id", h.Delete)
}

func (h *ProjectHandler) List(c fiber.Ctx) error {
	items, err := h.uc.List(c.Context())
	if err != nil {
		return mapUsecaseError(err)
	}

	res := make([]projectResponse, 0, len(items))
	for _, it := range items {
		res = append(res, projectToResponse(it))
	}
	return c.JSON(res)
}

func (h *ProjectHandler) GetByID(c fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	p, err := h.uc.GetByID(c.Context(), id)
	if err != nil {
		return mapUsecaseError(err)
	}
	return c.JSON(projectToResponse(p))
}

func (h *ProjectHandler) Create(c fiber.Ctx) error {
	var req projectRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	created, err := h.uc.Create(c.Context(), projectInput(req))
	if err != nil {
		return mapUsecaseError(err)
	}
	return c.Status(fiber.StatusCreated).JSON(projectToResponse(created))
}

func (h *ProjectHandler) Update(c fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	var req projectRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	updated, err := h.uc.Update(c.Context(), id, projectInput(req))
	if err != nil {
		return mapUsecaseError(err)
	}
	return c.JSON(projectToResponse(updated))
}

func (h *ProjectHandler) Delete(c fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	if err := h.uc.Delete(c.Context(), id); err != nil {
		return mapUsecaseError(err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func projectInput(req projectRequest) usecase.ProjectInput {
	return usecase.ProjectInput{
		Name:         req.Name,
		Description:  req.Description,
		Technologies: req.Technologies,
		ImageURL:     req.ImageURL,
		Year:         req.Year,
		ProjectURL:   req.ProjectURL,
	}
}

func projectToResponse(p repository.Project) projectResponse {
	technologies := p.Technologies
	if technologies == nil {
		technologies = []string{}
	}
	return projectResponse{
		ID:           p.ID,
		Name:         p.Name,
		Description:  p.Description,
		Technologies: technologies,
		ImageURL:     p.ImageURL,
		Year:         p.Year,
		ProjectURL:   p.ProjectURL,
	}
}
