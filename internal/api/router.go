package api

import (
	"net/http"

	"github.com/dom/storefront-api/internal/api/handlers"
	"github.com/dom/storefront-api/internal/api/middleware"
	"github.com/dom/storefront-api/internal/config"
	"github.com/dom/storefront-api/internal/service"
	"github.com/dom/storefront-api/internal/websocket"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

func NewRouter(services *service.Services, hub *websocket.Hub, cfg *config.Config, log *zap.Logger) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.RealIP)
	r.Use(middleware.Logging(log))
	r.Use(middleware.Metrics())
	r.Use(chiMiddleware.Recoverer)
	r.Use(middleware.CORS(cfg.CORSAllowedOrigins))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})
	r.Handle("/metrics", promhttp.Handler())

	authHandler := handlers.NewAuthHandler(services.Auth, log)
	categoryHandler := handlers.NewCategoryHandler(services.Category, log)
	productHandler := handlers.NewProductHandler(services.Product, log)
	reviewHandler := handlers.NewReviewHandler(services.Review, log)
	orderHandler := handlers.NewOrderHandler(services.Order, log)
	userHandler := handlers.NewUserHandler(services.User, log)
	statisticsHandler := handlers.NewStatisticsHandler(services.Statistics, log)
	feedHandler := handlers.NewFeedHandler(hub, services.Auth, services.User, log)

	authenticated := middleware.Auth(services.Auth, log)
	admin := middleware.RequireAdmin(services.User, log)

	r.Route("/auth", func(r chi.Router) {
		r.Post("/login", authHandler.Login)
		r.Post("/register", authHandler.Register)
		r.Post("/access-token", authHandler.Refresh)
	})

	r.Route("/categories", func(r chi.Router) {
		r.Get("/", categoryHandler.GetAll)
		r.Get("/by-slug/{slug}", categoryHandler.GetBySlug)

		r.Group(func(r chi.Router) {
			r.Use(authenticated)
			r.Get("/{id}", categoryHandler.GetByID)

			r.Group(func(r chi.Router) {
				r.Use(admin)
				r.Post("/", categoryHandler.Create)
				r.Put("/{id}", categoryHandler.Update)
				r.Delete("/{id}", categoryHandler.Delete)
			})
		})
	})

	r.Route("/products", func(r chi.Router) {
		r.Get("/", productHandler.List)
		r.Get("/{id}", productHandler.GetByID)
		r.Get("/by-slug/{slug}", productHandler.GetBySlug)
		r.Get("/by-category/{slug}", productHandler.GetByCategory)
		r.Get("/similar/{id}", productHandler.GetSimilar)

		r.Group(func(r chi.Router) {
			r.Use(authenticated, admin)
			r.Post("/", productHandler.Create)
			r.Put("/{id}", productHandler.Update)
			r.Delete("/{id}", productHandler.Delete)
		})
	})

	r.Route("/reviews", func(r chi.Router) {
		r.Get("/average-by-product/{productId}", reviewHandler.Average)

		r.Group(func(r chi.Router) {
			r.Use(authenticated)
			r.Post("/leave/{productId}", reviewHandler.Leave)
			r.With(admin).Get("/", reviewHandler.GetAll)
		})
	})

	r.Route("/orders", func(r chi.Router) {
		// The feed authenticates from its query string.
		r.Get("/feed", feedHandler.Handle)

		r.Group(func(r chi.Router) {
			r.Use(authenticated)
			r.Get("/by-user", orderHandler.ByUser)
			r.Post("/", orderHandler.Place)
			r.With(admin).Get("/", orderHandler.GetAll)
		})
	})

	r.Route("/users", func(r chi.Router) {
		r.Use(authenticated)
		r.Get("/profile", userHandler.Profile)
		r.Put("/profile", userHandler.UpdateProfile)
		r.Patch("/profile/favorites/{productId}", userHandler.ToggleFavorite)
	})

	r.Route("/statistics", func(r chi.Router) {
		r.Use(authenticated, admin)
		r.Get("/main", statisticsHandler.Main)
	})

	return r
}
