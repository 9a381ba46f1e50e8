package api

import (
	"fmt"
	"net/http"
	"time"

	handlers "assettrack/src/api/handlers"
	"assettrack/src/config"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/jwtauth"
	"github.com/sirupsen/logrus"
)

type Server struct {
	Router  *chi.Mux
	Handler *handlers.Handler
}

func NewServer(cfg *config.Config, logger *logrus.Logger) (*Server, error) {
	handler, err := handlers.NewHandler(cfg, logger)
	if err != nil {
		return nil, err
	}
	server := &Server{
		Router:  chi.NewRouter(),
		Handler: handler,
	}
	server.InitRoutes()
	return server, nil
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.Router.ServeHTTP(w, r)
}

func (s *Server) InitRoutes() {
	s.Router.Get("/alive", handlers.Healthcheck)
	s.Router.Post("/api/token", s.Handler.PostToken)

	s.Router.Group(func(r chi.Router) {
		r.Use(jwtauth.Verifier(s.Handler.TokenAuth))
		r.Use(jwtauth.Authenticator)

		r.Get("/api/me", s.Handler.GetProfile)
		r.Delete("/api/token", s.Handler.DeleteToken)

		r.Route("/api/assets", func(r chi.Router) {
			r.Get("/", s.Handler.GetAllAssets)
			r.Post("/", s.Handler.CreateAsset)
			r.Get("/{id}", s.Handler.GetAssetByID)
			r.Put("/{id}", s.Handler.UpdateAsset)
			r.Delete("/{id}", s.Handler.DeleteAsset)
			r.Post("/assign", s.Handler.AssignAsset)
		})

		r.Route("/api/assignments", func(r chi.Router) {
			r.Get("/", s.Handler.GetAllAssignments)
			r.Post("/", s.Handler.CreateAssignment)
			r.Get("/{id}", s.Handler.GetAssignmentByID)
			r.Put("/{id}", s.Handler.UpdateAssignment)
			r.Delete("/{id}", s.Handler.DeleteAssignment)
			r.Post("/{id}/return", s.Handler.ReturnAsset)
		})

		r.Route("/api/maintenance", func(r chi.Router) {
			r.Get("/", s.Handler.GetAllMaintenanceRecords)
			r.Post("/", s.Handler.CreateMaintenanceRecord)
			r.Get("/{id}", s.Handler.GetMaintenanceRecordByID)
			r.Put("/{id}", s.Handler.UpdateMaintenanceRecord)
			r.Delete("/{id}", s.Handler.DeleteMaintenanceRecord)
		})

		r.Route("/api/locations", func(r chi.Router) {
			r.Get("/", s.Handler.GetAllLocations)
			r.Post("/", s.Handler.CreateLocation)
			r.Get("/{id}", s.Handler.GetLocationByID)
			r.Put("/{id}", s.Handler.UpdateLocation)
			r.Delete("/{id}", s.Handler.DeleteLocation)
		})

		r.Route("/api/reports", func(r chi.Router) {
			r.Get("/", s.Handler.GetReportKinds)
			r.Get("/{kind}", s.Handler.GetReport)
			r.Get("/{kind}/file", s.Handler.GetReportFile)
		})

		r.Route("/api/schedules", func(r chi.Router) {
			r.Get("/", s.Handler.GetAllReportSchedules)
			r.Post("/", s.Handler.CreateReportSchedule)
			r.Get("/{id}", s.Handler.GetReportScheduleByID)
			r.Put("/{id}", s.Handler.UpdateReportSchedule)
			r.Delete("/{id}", s.Handler.DeleteReportSchedule)
		})

		r.Get("/api/dashboard", s.Handler.GetDashboard)
	})
}

func NewHTTPServer(server *Server, cfg *config.Config) *http.Server {
	return &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Service.Port),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		Handler:      server,
	}
}
