package server

import (
	"context"
	"database/sql"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"resume-builder/internal/assist"
	googleauth "resume-builder/internal/auth"
	"resume-builder/internal/llm"
	"resume-builder/internal/llm/gemini"
	"resume-builder/internal/resumes"
	"resume-builder/internal/shared/config"
	"resume-builder/internal/shared/metrics"
	"resume-builder/internal/shared/server/middleware"
	"resume-builder/internal/shared/server/respond"
	"resume-builder/internal/shared/storage/db"
)

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(cfg config.Config) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	respond.SetIncludeDetail(!cfg.IsProduction())

	r := gin.New()
	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(cfg.CORSAllowOrigin),
		middleware.Identity(),
	)

	// Dependencies
	sqlDB := connectDB(cfg)

	var repo resumes.Repo
	if sqlDB != nil {
		repo = &resumes.PGRepo{DB: sqlDB}
	} else {
		repo = resumes.NewMemoryRepo()
	}

	llmClient := buildLLM(cfg)

	resumeSvc := &resumes.Service{Repo: repo, LLM: llmClient}
	resumeHandler := resumes.NewHandler(resumeSvc)
	assistSvc := &assist.Service{LLM: llmClient, Timeout: cfg.AssistTimeout}
	assistHandler := assist.NewHandler(assistSvc)
	googleAuthSvc := googleauth.NewGoogleService(cfg.GoogleClientID, cfg.GoogleClientSecret, cfg.GoogleRedirectURL, cfg.UIRedirectURL)

	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Resume Builder API is running")
	})
	r.GET("/health", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, gin.H{"ok": true})
	})
	r.GET("/metrics", metrics.Handler())

	api := r.Group("/api")
	googleAuthSvc.RegisterRoutes(api)
	resumeHandler.RegisterRoutes(api)
	assistHandler.RegisterRoutes(api)

	r.NoRoute(func(c *gin.Context) {
		respond.Message(c, http.StatusNotFound, "Route not found")
	})

	return r
}

func connectDB(cfg config.Config) *sql.DB {
	if cfg.DatabaseURL == "" {
		log.Printf("DATABASE_URL empty; using in-memory repository")
		return nil
	}

	ctx := context.Background()
	conn, err := db.Connect(ctx, cfg.DatabaseURL, db.OptionsFromEnv(db.DefaultServerOptions()))
	if err != nil {
		if cfg.IsProduction() {
			// Unreachable database at boot is fatal in production.
			log.Fatalf("failed to connect database: %v", err)
		}
		log.Printf("failed to connect database, falling back to memory: %v", err)
		return nil
	}

	if err := db.RunMigrations(ctx, conn); err != nil {
		if cfg.IsProduction() {
			log.Fatalf("failed to run migrations: %v", err)
		}
		log.Printf("failed to run migrations, falling back to memory: %v", err)
		return nil
	}
	return conn
}

func buildLLM(cfg config.Config) llm.Client {
	if cfg.GeminiAPIKey == "" {
		log.Printf("GEMINI_API_KEY empty; text-assist endpoints will fail")
		return llm.PlaceholderClient{}
	}
	client, err := gemini.NewClient(context.Background(), cfg.GeminiAPIKey, cfg.GeminiModel)
	if err != nil {
		log.Printf("gemini client init failed; text-assist endpoints will fail: %v", err)
		return llm.PlaceholderClient{}
	}
	return client
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":5000"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
