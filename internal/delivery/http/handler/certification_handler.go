package handler

import (
	"portfolio-api/internal/delivery/http/middleware"
	"portfolio-api/internal/repository"
	"portfolio-api/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type CertificationHandler struct {
	uc usecase.CertificationUsecase
}

type certificationRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Date        string `json:"date"`
	ImageURL    string `json:"imageUrl"`
}

type certificationResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Date        string `json:"date"`
	ImageURL    string `json:"imageUrl"`
}

func NewCertificationHandler(uc usecase.CertificationUsecase) *CertificationHandler {
	return &CertificationHandler{uc: uc}
}

func (h *CertificationHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	grp := r.Group("/certifications")
	grp.Get("/", h.List)
	grp.Post("/", h.Create)
	grp.Put("/:id", h.Update)
	grp.Delete("/:id", h.Delete)
}

func (h *CertificationHandler) List(c fiber.Ctx) error {
	items, err := h.uc.List(c.Context())
	if err != nil {
		return mapUsecaseError(err)
	}

	res := make([]certificationResponse, 0, len(items))
	for _, it := range items {
		res = append(res, certificationToResponse(it))
	}
	return c.JSON(res)
}

func (h *CertificationHandler) Create(c fiber.Ctx) error {
	var req certificationRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	created, err := h.uc.Create(c.Context(), certificationInput(req))
	if err != nil {
		return mapUsecaseError(err)
	}
	return c.Status(fiber.StatusCreated).JSON(certificationToResponse(created))
}

func (h *CertificationHandler) Update(c fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	var req certificationRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	updated, err := h.uc.Update(c.Context(), id, certificationInput(req))
	if err != nil {
		return mapUsecaseError(err)
	}
	return c.JSON(certificationToResponse(updated))
}

func (h *CertificationHandler) Delete(c fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	if err := h.uc.Delete(c.Context(), id); err != nil {
		return mapUsecaseError(err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func certificationInput(req certificationRequest) usecase.CertificationInput {
	return usecase.CertificationInput{
		Name:        req.Name,
		Description: req.Description,
		Date:        req.Date,
		ImageURL:    req.ImageURL,
	}
}

func certificationToResponse(cert repository.Certification) certificationResponse {
	return certificationResponse{
		ID:          cert.ID,
		Name:        cert.Name,
		Description: cert.Description,
		Date:        cert.Date,
		ImageURL:    cert.ImageURL,
	}
}
