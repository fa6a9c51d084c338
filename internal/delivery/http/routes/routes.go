package routes

import (
	"portfolio-api/internal/database"
	"portfolio-api/internal/delivery/http/handler"
	"portfolio-api/internal/repository"
	"portfolio-api/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type Registry struct {
	db database.DB
}

func NewRegistry(db database.DB) *Registry {
	return &Registry{db: db}
}

func (r *Registry) Register(app *fiber.App) {
	if app == nil {
		return
	}

	handler.NewHealthHandler(r.db).RegisterRoutes(app)

	api := app.Group("/api")
	r.registerResources(api)
}

func (r *Registry) registerResources(api fiber.Router) {
	activityRepo := repository.NewPostgresActivityRepository(r.db)
	awardRepo := repository.NewPostgresAwardRepository(r.db)
	categoryRepo := repository.NewPostgresCategoryRepository(r.db)
	certificationRepo := repository.NewPostgresCertificationRepository(r.db)
	educationRepo := repository.NewPostgresEducationRepository(r.db)
	introductionRepo := repository.NewPostgresIntroductionRepository(r.db)
	projectRepo := repository.NewPostgresProjectRepository(r.db)
	skillRepo := repository.NewPostgresSkillRepository(r.db)
	workExperienceRepo := repository.NewPostgresWorkExperienceRepository(r.db)

	handler.NewActivityHandler(usecase.NewActivityUsecase(activityRepo)).RegisterRoutes(api)
	handler.NewAwardHandler(usecase.NewAwardUsecase(awardRepo)).RegisterRoutes(api)
	handler.NewCategoryHandler(usecase.NewCategoryUsecase(categoryRepo, skillRepo)).RegisterRoutes(api)
	handler.NewCertificationHandler(usecase.NewCertificationUsecase(certificationRepo)).RegisterRoutes(api)
	handler.NewEducationHandler(usecase.NewEducationUsecase(educationRepo)).RegisterRoutes(api)
	handler.NewIntroductionHandler(usecase.NewIntroductionUsecase(introductionRepo)).RegisterRoutes(api)
	handler.NewProjectHandler(usecase.NewProjectUsecase(projectRepo)).RegisterRoutes(api)
	handler.NewSkillHandler(usecase.NewSkillUsecase(skillRepo, categoryRepo)).RegisterRoutes(api)
	handler.NewWorkExperienceHandler(usecase.NewWorkExperienceUsecase(workExperienceRepo)).RegisterRoutes(api)
}
