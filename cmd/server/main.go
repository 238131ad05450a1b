package main

import (
	"context"
	"log"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/joho/godotenv"

	"github.com/mindmosaic/mindmosaic-backend/internal/config"
	"github.com/mindmosaic/mindmosaic-backend/internal/database"
	"github.com/mindmosaic/mindmosaic-backend/internal/handlers"
	"github.com/mindmosaic/mindmosaic-backend/internal/middleware"
	"github.com/mindmosaic/mindmosaic-backend/internal/repository/mongodb"
	"github.com/mindmosaic/mindmosaic-backend/internal/repository/redisstore"
	"github.com/mindmosaic/mindmosaic-backend/internal/routes"
	"github.com/mindmosaic/mindmosaic-backend/internal/services"
)

func main() {
	// Load env
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}
	// Load configuration
	cfg := config.Load()

	// Log connection attempt without showing credentials
	log.Printf("Connecting to MongoDB...")
	if cfg.MongoURI != "" {
		log.Printf("MongoDB URI: %s", maskURI(cfg.MongoURI))
	}
	if err := database.Connect(cfg.MongoURI, cfg.DBName); err != nil {
		log.Fatal("Failed to connect to MongoDB:", err)
	}
	defer database.Disconnect()

	log.Printf("Connecting to Redis...")
	if err := database.ConnectRedis(cfg.RedisURI); err != nil {
		log.Fatal("Failed to connect to Redis:", err)
	}
	defer database.DisconnectRedis()

	// The unique email index is load-bearing: registration races are settled here
	if err := database.EnsureIndexes(context.Background()); err != nil {
		log.Fatal("Failed to ensure MongoDB indexes:", err)
	}
	log.Println("✅ MongoDB indexes ensured")

	// Wire repositories and services
	users := mongodb.NewUsers(database.DB)
	entries := mongodb.NewEntries(database.DB)
	sessionStore := redisstore.NewSessions(database.RedisClient, cfg.SessionTTL)

	identity := services.NewIdentity(users)
	journal := services.NewJournal(entries, users, services.EntryLimits{
		MoodScoreMin:  cfg.MoodScoreMin,
		MoodScoreMax:  cfg.MoodScoreMax,
		MaxTextLength: cfg.MaxEntryLength,
	})
	sessions := services.NewSessions(sessionStore)

	h := handlers.New(identity, journal, sessions)

	// Setup router
	r := chi.NewRouter()

	// Custom CORS: set headers and respond to OPTIONS with 200 so preflight never gets 403
	r.Use(middleware.CORS(cfg.AllowedOrigins))

	// Production: SecurityHeaders → GlobalRateLimit → LoginRateLimit
	// Non-production: Redis-based rate limit only
	if cfg.IsProduction() {
		for _, mw := range middleware.ProductionSecurity() {
			r.Use(mw)
		}
		log.Println("✅ Production security enabled (security headers, per-IP + login rate limiting)")
	} else {
		r.Use(middleware.RateLimitMiddleware)
	}

	// Health check (no auth)
	r.Get("/health", handlers.Health)

	// Setup routes
	routes.SetupRoutes(r, h)

	log.Println("📋 Registered routes:")
	log.Println("  GET  /health")
	log.Println("  POST /auth/register")
	log.Println("  POST /auth/login")
	log.Println("  POST /auth/logout")
	log.Println("  GET  /auth/me")
	log.Println("  POST /entries")
	log.Println("  GET  /entries")

	log.Printf("🚀 MindMosaic backend running on :%s", cfg.Port)
	if err := http.ListenAndServe(":"+cfg.Port, r); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}

// maskURI hides the password in a connection string for logging.
func maskURI(uri string) string {
	at := strings.Index(uri, "@")
	if at == -1 {
		return uri
	}
	scheme := strings.Index(uri, "://")
	if scheme == -1 {
		return uri
	}
	creds := uri[scheme+3 : at]
	if colon := strings.Index(creds, ":"); colon != -1 {
		return uri[:scheme+3] + creds[:colon] + ":***" + uri[at:]
	}
	return uri
}
