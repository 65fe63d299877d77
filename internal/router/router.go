package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"artisan-service/internal/handler"
	"artisan-service/internal/middleware"
)

type Handlers struct {
	Profile *handler.ProfileHandler
	Listing *handler.ListingHandler
	Chat    *handler.ChatHandler
	Vision  *handler.VisionHandler
	Payment *handler.PaymentHandler
	Upload  *handler.UploadHandler
}

func SetupRoutes(r chi.Router, h Handlers, auth *middleware.AuthMiddleware) chi.Router {
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	// Public endpoints: browsing and the seller chat surfaces.
	r.Group(func(pub chi.Router) {
		pub.Get("/api/v1/health", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
			w.Write([]byte("ok"))
		})

		pub.Get("/api/v1/profiles", h.Profile.List)
		pub.Get("/api/v1/profiles/{id}", h.Profile.Get)
		pub.Get("/api/v1/listings", h.Listing.List)
		pub.Get("/api/v1/listings/{id}", h.Listing.Get)

		pub.Post("/api/v1/chat", h.Chat.Reply)
		pub.Post("/api/v1/assistant", h.Chat.Assistant)
		pub.Post("/api/v1/vision", h.Vision.Review)
		pub.Post("/api/v1/analyze", h.Vision.Analyze)

		pub.Post("/api/v1/payment/create-order", h.Payment.CreateOrder)
		pub.Post("/api/v1/payment/verify", h.Payment.Verify)
	})

	// Authenticated endpoints: onboarding, dashboard and sessions.
	r.Group(func(pr chi.Router) {
		pr.Use(auth.Require)

		pr.Post("/api/v1/profiles", h.Profile.Create)
		pr.Get("/api/v1/profiles/me", h.Profile.Me)
		pr.Get("/api/v1/profiles/me/listings", h.Listing.Mine)

		pr.Post("/api/v1/listings", h.Listing.Create)
		pr.Delete("/api/v1/listings/{id}", h.Listing.Delete)

		pr.Post("/api/v1/upload", h.Upload.Upload)

		pr.Get("/api/v1/chat/session/{sellerID}", h.Chat.Session)
		pr.Post("/api/v1/chat/session/{sellerID}/send", h.Chat.Send)
		pr.Post("/api/v1/chat/session/{sellerID}/stop", h.Chat.Stop)
		pr.Post("/api/v1/chat/session/{sellerID}/clear", h.Chat.Clear)
	})

	return r
}
