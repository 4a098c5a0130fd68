package main

import (
	"log/slog"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/sessions"
	"github.com/rs/cors"

	loginauth "craneworks/http-server/auth"
	getrecord "craneworks/http-server/record/get"
	"craneworks/http-server/report"
	gettemplate "craneworks/http-server/template/get"
	savetemplate "craneworks/http-server/template/save"
	uptemplate "craneworks/http-server/template/update"
	"craneworks/internal/config"
	"craneworks/internal/middleware/auth"
	"craneworks/internal/service/generate"
	"craneworks/internal/storage/mysql"
)

func routes(cfg config.Config, log *slog.Logger, storage *mysql.Storage, sessionStore sessions.Store, genService *generate.Service) *chi.Mux {
	router := chi.NewRouter()

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   []string{"http://localhost:8081", "http://localhost:5173"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
	})

	router.Use(corsHandler.Handler)

	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)

	router.Post("/api/login", loginauth.Login(log, sessionStore, storage))
	router.Post("/api/logout", loginauth.Logout(log, sessionStore))

	// Everything below needs an editor-level session.
	router.Group(func(r chi.Router) {
		r.Use(auth.EditorSession(log, sessionStore))

		r.Get("/api/work-records", getrecord.ListWorkRecords(log, storage))
		r.Get("/api/work-records/{id}", getrecord.GetWorkRecord(log, storage))

		r.Get("/api/templates", gettemplate.ListTemplates(log, storage))

		r.Get("/api/work-records/{id}/report", report.PrintOne(log, genService))
		r.Post("/api/work-records/report/batch", report.PrintBatch(log, genService))
	})

	adminRouter := chi.NewRouter()
	adminRouter.Use(auth.BasicAuth(cfg.AdminLogin, cfg.AdminPass))

	adminRouter.Get("/templates", gettemplate.ListAllTemplatesAdmin(log, storage))
	adminRouter.Post("/templates/new", savetemplate.SaveTemplateAdmin(log, storage, cfg.MaxTemplateSize))
	adminRouter.Put("/templates/{id}", uptemplate.UpdateTemplateActiveAdmin(log, storage))

	router.Mount("/api/admin", adminRouter)

	return router
}
