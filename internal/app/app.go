package app

import (
	"os"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/lifeofgurpreet/hr-document-generator/internal/ai"
	"github.com/lifeofgurpreet/hr-document-generator/internal/bootstrap"
	"github.com/lifeofgurpreet/hr-document-generator/internal/config"
	"github.com/lifeofgurpreet/hr-document-generator/internal/document"
	"github.com/lifeofgurpreet/hr-document-generator/internal/middleware"
	"github.com/lifeofgurpreet/hr-document-generator/internal/storage"
)

// Dirs locates the runtime assets. Zero values fall back to the
// conventional repo layout so local runs need no environment.
type Dirs struct {
	Config    string
	Templates string
	Output    string
	FormPage  string
}

func DirsFromEnv() Dirs {
	return Dirs{
		Config:    envOr("HRDOCS_CONFIG_DIR", "config"),
		Templates: envOr("HRDOCS_TEMPLATES_DIR", "templates"),
		Output:    envOr("HRDOCS_OUTPUT_DIR", "output"),
		FormPage:  envOr("HRDOCS_FORM_PAGE", "web/hr_interface.html"),
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// BuildApp wires configuration, templates, the generation backend and
// routes onto the router. Everything loaded here is read-only for the
// life of the process.
func BuildApp(router *gin.Engine, dirs Dirs, audit bootstrap.AuditLogger) error {
	cfg, err := config.Load(dirs.Config)
	if err != nil {
		return err
	}
	zap.L().Info("configuration loaded",
		zap.String("company", cfg.Company.Company.Name),
		zap.Int("career_levels", len(cfg.JobRoles.CareerLevels)),
		zap.Int("teams", len(cfg.JobRoles.Teams)),
	)

	renderer, err := document.NewRenderer(dirs.Templates)
	if err != nil {
		return err
	}

	store, err := storage.New(dirs.Output)
	if err != nil {
		return err
	}

	generator := ai.NewOpenAIGenerator(cfg.Prompts)
	if !generator.Enabled() {
		zap.L().Info("demo mode: all documents use deterministic template rendering")
	}

	router.Use(middleware.RequestID())
	router.Use(middleware.ContextLogger(zap.L()))

	svc := document.NewService(cfg, renderer, generator, store)
	handler := document.NewHandler(svc, store, audit, dirs.FormPage)
	document.RegisterRoutes(router, handler)

	return nil
}
