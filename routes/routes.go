package routes

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/jessism/Fridgy-Backend-sub003/controllers"
	auth "github.com/jessism/Fridgy-Backend-sub003/middleware"
)

func SetupRouter() *chi.Mux {
	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// CORS Configuration
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:5173", "http://127.0.0.1:5173"},
		AllowedMethods:   []string{"GET", "POST", "PATCH", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Public
	r.Post("/auth/register", controllers.Register)
	r.Post("/auth/login", controllers.Login)

	// Authenticated
	r.Group(func(r chi.Router) {
		r.Use(auth.AuthMiddleware)

		r.Get("/inventory", controllers.GetInventory)
		r.Post("/inventory", controllers.CreateInventoryItem)
		r.Get("/inventory/low-stock", controllers.GetLowStock)
		r.Get("/inventory/analytics", controllers.GetInventoryAnalytics)
		r.Patch("/inventory/{item_id}", controllers.UpdateInventoryItem)
		r.Delete("/inventory/{item_id}", controllers.DeleteInventoryItem)
		r.Post("/inventory/{item_id}/use", controllers.UseInventoryItem)
	})

	return r
}
