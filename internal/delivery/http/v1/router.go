package v1

import (
	"time"

	"resume-builder-backend/config"
	"resume-builder-backend/internal/delivery/http/middleware"
	"resume-builder-backend/internal/domain"
	"resume-builder-backend/internal/usecase"

	"github.com/gin-gonic/gin"
	goredis "github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterDeps struct {
	HealthUC        usecase.HealthUsecase
	AuthUC          domain.AuthUsecase
	UserUC          domain.UserUsecase
	EducationUC     domain.EducationUsecase
	ExperienceUC    domain.ExperienceUsecase
	SkillUC         domain.SkillUsecase
	CertificationUC domain.CertificationUsecase
	ProjectUC       domain.ProjectUsecase
	LinkedinUC      domain.LinkedinUsecase
	HobbyUC         domain.HobbyUsecase
	ProfileUC       domain.ProfileUsecase
	ResumeUC        domain.ResumeUsecase
	ExportUC        domain.ExportUsecase
	Tokens          domain.TokenVerifier
	// Nil keeps rate limit counters in memory
	Redis  *goredis.Client
	Config *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	cfg := deps.Config
	r := gin.New()
	r.MaxMultipartMemory = cfg.UploadMaxBytes

	// Global Middlewares
	r.Use(middleware.CORSMiddleware(cfg.FrontendURL)) // CORS must be first!
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.RequestID())
	r.Use(middleware.SecurityHeadersMiddleware())
	r.Use(middleware.ErrorHandler())

	window := time.Duration(cfg.RateLimitWindowSeconds) * time.Second
	limiter := middleware.NewRateLimiter(deps.Redis)
	authLimit := limiter.Middleware(middleware.AuthRateLimitConfig(cfg.RateLimitLoginThreshold, window))

	api := r.Group("/api")
	api.Use(limiter.Middleware(middleware.GlobalRateLimitConfig(cfg.RateLimitGlobalThreshold, window)))

	api.GET("/health", healthHandler(deps.HealthUC))
	api.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	up := uploads{
		maxBytes: cfg.UploadMaxBytes,
		limit:    limiter.Middleware(middleware.UploadRateLimitConfig(cfg.RateLimitUploadThreshold, window)),
	}
	NewAuthHandler(api, deps.AuthUC, up, authLimit)

	// Protected routes
	protected := api.Group("")
	protected.Use(middleware.AuthMiddleware(deps.Tokens))
	{
		NewUserHandler(protected, deps.UserUC, up)
		NewProfileHandler(protected, deps.ProfileUC, deps.ExportUC)
		NewEducationHandler(protected, deps.EducationUC)
		NewExperienceHandler(protected, deps.ExperienceUC)
		NewSkillHandler(protected, deps.SkillUC)
		NewCertificationHandler(protected, deps.CertificationUC, up)
		NewProjectHandler(protected, deps.ProjectUC)
		NewLinkedinHandler(protected, deps.LinkedinUC)
		NewHobbyHandler(protected, deps.HobbyUC)
		NewResumeHandler(protected, deps.ProfileUC, deps.ResumeUC)
	}

	return r
}
