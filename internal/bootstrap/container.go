package bootstrap

import (
	"naeilum-be/internal/config"
	"naeilum-be/internal/controller"
	"naeilum-be/internal/pkg/logger"
	"naeilum-be/internal/repository/memory"
	"naeilum-be/internal/service"
	"naeilum-be/pkg/corpus"
	"naeilum-be/pkg/fortune"
	"naeilum-be/pkg/namegen"
)

type Container struct {
	// Controllers
	RecommendController controller.IRecommendController
	ThemeController     controller.IThemeController

	Logger logger.ILogger
}

func NewContainer(corpusStore *corpus.Store, cfg *config.Config) *Container {
	// 1. Core Facades
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// 2. In-Memory Session Storage
	sessionRepo := memory.NewSessionRepository(cfg.Session.TTL, cfg.Session.Sweep)

	// 3. Deterministic Generators (read-only over the corpus store)
	nameGen := namegen.NewGenerator(corpusStore)
	fortuneGen := fortune.NewGenerator(corpusStore)

	// 4. Services
	recommendService := service.NewRecommendService(sessionRepo, nameGen, fortuneGen, sysLogger)

	// 5. Controllers
	return &Container{
		RecommendController: controller.NewRecommendController(recommendService),
		ThemeController:     controller.NewThemeController(cfg.App.SecureCookies),
		Logger:              sysLogger,
	}
}
