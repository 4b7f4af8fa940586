package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	gocache "github.com/patrickmn/go-cache"

	api "github.com/quizforge/quizforge/internal/api/http"
	"github.com/quizforge/quizforge/internal/auth"
	"github.com/quizforge/quizforge/internal/config"
	"github.com/quizforge/quizforge/internal/db"
	"github.com/quizforge/quizforge/internal/quiz"
	"github.com/quizforge/quizforge/internal/storage"
)

func main() {
	cfg := config.FromEnv()

	// --- DB ---
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	dbh, err := db.Open(ctx, db.Driver(cfg.DBDriver), cfg.DBDSN)
	if err != nil {
		log.Fatalf("db open failed: %v", err)
	}
	store := quiz.NewSQLStore(dbh)

	bs, err := storage.NewFSStore(cfg.BlobBasePath)
	if err != nil {
		log.Fatalf("blob store: %v", err)
	}

	authSvc := auth.NewService(cfg.HMACSecret)
	shareCache := gocache.New(cfg.ShareCacheTTL, 2*cfg.ShareCacheTTL)
	extractLimiter := api.NewIPRateLimiter(cfg.ExtractRatePerMin, cfg.ExtractBurst)

	// --- Router ---
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.RealIP, middleware.Logger, middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	if cfg.EnableLocalAuth {
		r.Post("/auth/register", auth.RegisterHandler(dbh))
		r.Post("/auth/login", auth.LoginHandler(authSvc, dbh))
	}

	r.Route("/api/quizzes", func(qr chi.Router) {
		qr.Use(auth.OptionalJWT(authSvc))

		qr.With(extractLimiter.Middleware).
			Post("/extract", api.ExtractHandler(bs, cfg.MaxUploadBytes))

		qr.Post("/share", api.ShareHandler(store))
		qr.Get("/", api.ListHandler(store))
		qr.Get("/{shareID}", api.GetByShareHandler(store, shareCache))
		qr.Post("/{shareID}/grade", api.GradeHandler(store))
		qr.Put("/{id}", api.UpdateHandler(store))
		qr.Delete("/{id}", api.DeleteHandler(store))
	})

	r.Route("/documents", func(dr chi.Router) {
		api.MountDocuments(dr, bs)
	})

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200) })
	r.Get("/readyz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200) })

	log.Printf("listening on %s (db=%s)", cfg.HTTPAddr, cfg.DBDriver)
	log.Fatal(http.ListenAndServe(cfg.HTTPAddr, r))
}
