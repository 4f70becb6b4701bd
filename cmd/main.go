package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/hivebackit/hivebackit-api/config"
	"github.com/hivebackit/hivebackit-api/database"
	_ "github.com/hivebackit/hivebackit-api/docs" // Swagger docs
	"github.com/hivebackit/hivebackit-api/internal/controller"
	"github.com/hivebackit/hivebackit-api/internal/dto"
	"github.com/hivebackit/hivebackit-api/internal/logger"
	"github.com/hivebackit/hivebackit-api/internal/metrics"
	"github.com/hivebackit/hivebackit-api/internal/repository"
	"github.com/hivebackit/hivebackit-api/internal/service"
	"github.com/hivebackit/hivebackit-api/internal/storage"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"
)

// @title HIVEBACKIT API
// @version 1.0
// @description Backend for the HIVEBACKIT study platform: profiles, courses, topics, shared notes, competitions and notification preferences.
// @host localhost:8080
// @BasePath /
// @schemes http https
func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}
	logger.Init(cfg.Env)
	logger.SetLevel(cfg.LogLevel)

	app := fx.New(
		fx.Supply(cfg),

		fx.Provide(
			database.NewDatabase,
			metrics.NewWithDB,
			NewGinEngine,
		),

		// Repositories
		fx.Provide(
			repository.NewProfileRepository,
			repository.NewUniversityRepository,
			repository.NewCourseRepository,
			repository.NewCourseFileRepository,
			repository.NewTopicRepository,
			repository.NewSharedNoteRepository,
			repository.NewNotificationPreferenceRepository,
			repository.NewCompetitionRepository,
			repository.NewQuestionAnswerRepository,
		),

		// Services
		fx.Provide(
			storage.NewPresigner,
			service.NewTopicExtractor,
			service.NewUploadService,
			service.NewUserService,
			service.NewCourseService,
			service.NewTopicService,
			service.NewSharedNoteService,
			service.NewNotificationService,
			service.NewCompetitionService,
			service.NewAnswerService,
		),

		// Controllers
		fx.Provide(
			asRoute(controller.NewCompetitionController),
			asRoute(controller.NewUserController),
			asRoute(controller.NewCourseController),
			asRoute(controller.NewTopicController),
			asRoute(controller.NewSharedNoteController),
			asRoute(controller.NewNotificationController),
			asRoute(controller.NewAnswerController),
		),

		fx.Invoke(database.AutoMigrate),
		fx.Invoke(fx.Annotate(RegisterRoutesAndStartServer, fx.ParamTags(``, ``, ``, `group:"routes"`))),
	)

	if err := app.Start(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("Failed to start application")
	}

	<-app.Done()
	log.Info().Msg("Application shutting down gracefully...")

	stopCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := app.Stop(stopCtx); err != nil {
		log.Error().Err(err).Msg("Application stopped with errors")
	}
}

// asRoute provides a controller constructor as a member of the "routes" group.
func asRoute(f any) any {
	return fx.Annotate(
		f,
		fx.As(new(controller.RouteRegistrar)),
		fx.ResultTags(`group:"routes"`),
	)
}

func NewGinEngine(cfg *config.Config, m *metrics.Metrics) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	r := gin.New()

	r.Use(gin.LoggerWithFormatter(func(param gin.LogFormatterParams) string {
		event := log.Info()
		if param.StatusCode >= http.StatusInternalServerError {
			event = log.Error()
		}
		event.
			Str("client_ip", param.ClientIP).
			Str("method", param.Method).
			Str("path", param.Path).
			Int("status_code", param.StatusCode).
			Dur("latency", param.Latency).
			Str("user_agent", param.Request.UserAgent()).
			Str("error_message", param.ErrorMessage).
			Msg("gin_request")
		return ""
	}))
	r.Use(gin.Recovery())
	r.Use(m.Middleware())

	corsConfig := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}
	if len(cfg.Server.CORSAllowedOrigins) == 0 || cfg.Server.CORSAllowedOrigins[0] == "*" {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = cfg.Server.CORSAllowedOrigins
		corsConfig.AllowCredentials = true
	}
	r.Use(cors.New(corsConfig))

	// URL: http://localhost:PORT/swagger/index.html
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	r.GET("/metrics", gin.WrapH(m.Handler()))
	r.GET("/", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Welcome to HIVEBACKIT API"})
	})

	return r
}

// RegisterRoutesAndStartServer mounts every route registrar and manages the server lifecycle.
func RegisterRoutesAndStartServer(
	lc fx.Lifecycle,
	router *gin.Engine,
	cfg *config.Config,
	routes []controller.RouteRegistrar,
) {
	for _, registrar := range routes {
		registrar.RegisterRoutes(router)
	}

	server := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info().Msgf("HIVEBACKIT API server starting on port %s", cfg.Server.Port)
			log.Info().Msgf("Swagger UI available at http://localhost:%s/swagger/index.html", cfg.Server.Port)
			go func() {
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Fatal().Err(err).Msg("Server ListenAndServe failed")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info().Msg("Server shutting down...")
			shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
			defer cancel()
			return server.Shutdown(shutdownCtx)
		},
	})
}
