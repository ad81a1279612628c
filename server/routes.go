package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"inventory/models"
	"inventory/utils"
)

func (srv *Server) InjectRoutes() *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(instrumentHTTP)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		utils.RespondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Handle("/metrics", promhttp.Handler())

	//public routes
	r.Route("/api", func(api chi.Router) {
		api.Post("/auth/login", srv.UserHandler.UserLogin)

		//protected
		api.Group(func(protected chi.Router) {
			protected.Use(srv.Middleware.JWTAuthMiddleware())

			protected.Get("/me", srv.UserHandler.GetMe)

			protected.Route("/hardware", func(hardware chi.Router) {
				hardware.Get("/", srv.HardwareHandler.ListHardware)
				hardware.Post("/", srv.HardwareHandler.CreateHardware)
				hardware.Post("/batch-import", srv.HardwareHandler.BatchImport)
				hardware.Post("/import", srv.HardwareHandler.ImportSpreadsheet)
				hardware.Get("/export", srv.HardwareHandler.ExportSpreadsheet)

				hardware.Put("/{itemId}", srv.HardwareHandler.UpdateHardwareItem)
				hardware.Delete("/{itemId}", srv.HardwareHandler.DeleteHardwareItem)
				hardware.Delete("/{parentId}/{itemId}", srv.HardwareHandler.DeleteHardwareItem)
			})

			// Admin-only routes
			protected.Route("/admin", func(admin chi.Router) {
				admin.Use(srv.Middleware.RequireRole(models.AdminRole))

				admin.Get("/users", srv.UserHandler.ListUsers)
				admin.Post("/users", srv.UserHandler.CreateUser)
				admin.Post("/users/import", srv.UserHandler.ImportUsers)
				admin.Put("/users/{id}", srv.UserHandler.UpdateUser)
				admin.Delete("/users/{id}", srv.UserHandler.DeleteUser)
			})
		})
	})

	return r
}
