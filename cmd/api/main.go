package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"resume-builder-backend/config"
	_ "resume-builder-backend/docs" // Important for Swagger
	v1 "resume-builder-backend/internal/delivery/http/v1"
	"resume-builder-backend/internal/domain"
	"resume-builder-backend/internal/repository/postgres"
	"resume-builder-backend/internal/repository/postgres/migrations"
	"resume-builder-backend/internal/usecase"
	"resume-builder-backend/pkg/auth"
	"resume-builder-backend/pkg/database"
	"resume-builder-backend/pkg/logger"
	"resume-builder-backend/pkg/redis"
	"resume-builder-backend/pkg/resume"
	"resume-builder-backend/pkg/storage"
	"resume-builder-backend/pkg/textgen"
	"resume-builder-backend/pkg/validation"
)

// @title           Resume Builder API
// @version         1.0
// @description     Profile collections, aggregation and résumé rendering.
// @host            localhost:5000
// @BasePath        /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init()
	logger.Log.Info("Starting resume builder backend", "port", cfg.Port)

	ctx := context.Background()

	// 3. Setup Database
	dbPool, err := database.NewPostgresConnection(cfg.DBUrl)
	if err != nil {
		logger.Log.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()

	if cfg.RunMigrations {
		if err := database.RunMigrations(ctx, dbPool, migrations.FS); err != nil {
			logger.Log.Error("Failed to run migrations", "error", err)
			os.Exit(1)
		}
	}

	// 4. Optional collaborators. A nil interface disables the feature with a 503.
	var media domain.MediaStore
	if cfg.StorageEnabled() {
		store, err := storage.NewS3Store(ctx, storage.Config{
			Provider:        storage.Provider(cfg.S3Provider),
			Region:          cfg.S3Region,
			Bucket:          cfg.S3Bucket,
			Endpoint:        cfg.S3Endpoint,
			AccessKeyID:     cfg.S3AccessKeyID,
			SecretAccessKey: cfg.S3SecretKey,
			PublicBaseURL:   cfg.S3PublicBaseURL,
		})
		if err != nil {
			logger.Log.Error("Failed to configure object storage", "error", err)
			os.Exit(1)
		}
		media = store
	}

	var generator domain.TextGenerator
	if cfg.TextGenURL != "" {
		generator = textgen.New(textgen.Config{
			URL:     cfg.TextGenURL,
			APIKey:  cfg.TextGenAPIKey,
			Model:   cfg.TextGenModel,
			Timeout: cfg.TextGenTimeout,
		})
	}

	redisClient, err := redis.Connect(ctx, redis.Config{URL: cfg.UpstashRedisURL, Password: cfg.UpstashRedisPassword})
	if err != nil {
		if !errors.Is(err, redis.ErrNotConfigured) {
			logger.Log.Warn("Redis unavailable, rate limiting in memory", "error", err)
		}
	} else {
		defer redisClient.Close()
	}

	// 5. Setup Repositories
	userRepo := postgres.NewUserRepository(dbPool)
	educationRepo := postgres.NewEducationRepository(dbPool)
	experienceRepo := postgres.NewExperienceRepository(dbPool)
	skillRepo := postgres.NewSkillRepository(dbPool)
	certificationRepo := postgres.NewCertificationRepository(dbPool)
	projectRepo := postgres.NewProjectRepository(dbPool)
	linkedinRepo := postgres.NewLinkedinRepository(dbPool)
	hobbyRepo := postgres.NewHobbyRepository(dbPool)

	// 6. Setup UseCases
	validate := validation.New()
	tokens := auth.NewTokenManager(cfg.JWTSecret, cfg.JWTTTL)

	profileUC := usecase.NewProfileUsecase(usecase.ProfileSources{
		Users:          userRepo,
		Linkedin:       linkedinRepo,
		Education:      educationRepo,
		Skills:         skillRepo,
		Certifications: certificationRepo,
		Experiences:    experienceRepo,
		Projects:       projectRepo,
		Hobbies:        hobbyRepo,
	})

	// 7. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		HealthUC:        usecase.NewHealthUsecase(dbPool),
		AuthUC:          usecase.NewAuthUsecase(userRepo, tokens, media, validate),
		UserUC:          usecase.NewUserUsecase(userRepo, media, validate),
		EducationUC:     usecase.NewEducationUsecase(educationRepo, validate),
		ExperienceUC:    usecase.NewExperienceUsecase(experienceRepo, validate),
		SkillUC:         usecase.NewSkillUsecase(skillRepo, validate),
		CertificationUC: usecase.NewCertificationUsecase(certificationRepo, media, validate),
		ProjectUC:       usecase.NewProjectUsecase(projectRepo, validate),
		LinkedinUC:      usecase.NewLinkedinUsecase(linkedinRepo, validate),
		HobbyUC:         usecase.NewHobbyUsecase(hobbyRepo, validate),
		ProfileUC:       profileUC,
		ResumeUC:        usecase.NewResumeUsecase(profileUC, generator, media, resume.PDFOptions{FontPath: cfg.PDFFontPath}),
		ExportUC:        usecase.NewExportUsecase(profileUC),
		Tokens:          tokens,
		Redis:           redisClient,
		Config:          cfg,
	})

	// 8. Start Server
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Log.Error("Listen failed", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}
}
