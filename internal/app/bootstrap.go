package app

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"portfolio-api/internal/config"
	"portfolio-api/internal/database/migration"
	"portfolio-api/internal/delivery/http/middleware"
	"portfolio-api/internal/delivery/http/routes"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/cors"
)

type App struct {
	Fiber     *fiber.App
	Container *Container
}

func Bootstrap(cfg config.Config) (*App, func() error, error) {
	container, err := NewContainer(cfg)
	if err != nil {
		return nil, nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	mig := migration.Runner{Dir: cfg.Database.MigrationsDir}
	if err := mig.Run(ctx, container.DB.SQLDB()); err != nil {
		_ = container.Close()
		return nil, nil, fmt.Errorf("run migrations: %w", err)
	}

	f := fiber.New(fiber.Config{AppName: cfg.App.AppName})

	logger := log.New(os.Stdout, "", log.LstdFlags)
	f.Use(middleware.NewRequestLogMiddleware(logger).Middleware())
	f.Use(middleware.NewErrorMiddleware().Middleware())
	f.Use(cors.New(cors.Config{
		AllowOrigins: []string{cfg.HTTP.CORSAllowOrigin},
		AllowMethods: []string{fiber.MethodGet, fiber.MethodPost, fiber.MethodPut, fiber.MethodDelete},
		AllowHeaders: []string{"Content-Type", "X-Request-ID"},
	}))

	routes.NewRegistry(container.DB).Register(f)

	return &App{Fiber: f, Container: container}, container.Close, nil
}

func ListenAddr(port string) (string, error) {
	p := strings.TrimSpace(port)
	if p == "" {
		return "", fmt.Errorf("empty HTTP port")
	}
	if strings.HasPrefix(p, ":") {
		return p, nil
	}
	return ":" + p, nil
}
