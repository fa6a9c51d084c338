package handler

import (
	"portfolio-api/internal/delivery/http/dto"
	"portfolio-api/internal/delivery/http/middleware"
	"portfolio-api/internal/repository"
	"portfolio-api/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type SkillHandler struct {
	uc usecase.SkillUsecase
}

func NewSkillHandler(uc usecase.SkillUsecase) *SkillHandler {
	return &SkillHandler{uc: uc}
}

func (h *SkillHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	grp := r.Group("/skills")
	grp.Get("/", h.List)
	grp.Post("/", h.Create)
	grp.Put("/:id", h.Update)
	grp.Delete("/:id", h.Delete)
}

func (h *SkillHandler) List(c fiber.Ctx) error {
	items, err := h.uc.List(c.Context())
	if err != nil {
		return mapUsecaseError(err)
	}

	res := make([]dto.SkillResponse, 0, len(items))
	for _, it := range items {
		res = append(res, skillToResponse(it))
	}
	return c.JSON(res)
}

func (h *SkillHandler) Create(c fiber.Ctx) error {
	in, err := skillInput(c)
	if err != nil {
		return err
	}

	created, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return mapUsecaseError(err)
	}
	return c.Status(fiber.StatusCreated).JSON(skillToResponse(created))
}

func (h *SkillHandler) Update(c fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	in, err := skillInput(c)
	if err != nil {
		return err
	}

	updated, err := h.uc.Update(c.Context(), id, in)
	if err != nil {
		return mapUsecaseError(err)
	}
	return c.JSON(skillToResponse(updated))
}

func (h *SkillHandler) Delete(c fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	if err := h.uc.Delete(c.Context(), id); err != nil {
		return mapUsecaseError(err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// skillInput extracts {name, description, categoryId} from the loosely
// typed request body. categoryId must coerce to an integer identity.
func skillInput(c fiber.Ctx) (usecase.SkillInput, error) {
	var body map[string]any
	if err := c.Bind().Body(&body); err != nil {
		return usecase.SkillInput{}, middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	categoryID, ok := int64Field(body, "categoryId")
	if !ok {
		return usecase.SkillInput{}, middleware.NewAppError(fiber.StatusBadRequest, "Invalid categoryId", nil, nil)
	}

	return usecase.SkillInput{
		Name:        stringField(body, "name"),
		Description: stringField(body, "description"),
		CategoryID:  categoryID,
	}, nil
}

func skillToResponse(s repository.Skill) dto.SkillResponse {
	return dto.SkillResponse{
		ID:          s.ID,
		Name:        s.Name,
		Description: s.Description,
		CategoryID:  s.CategoryID,
	}
}
