package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimid "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.uber.org/zap"

	"github.com/onebluedot/site/internal/api/docs"
	"github.com/onebluedot/site/internal/api/handlers"
	mw "github.com/onebluedot/site/internal/api/middleware"
	"github.com/onebluedot/site/internal/services"
	"github.com/onebluedot/site/internal/storage"
	"github.com/onebluedot/site/pkg/logger"
)

type Dependencies struct {
	// Prefix mounts every API route, e.g. /make-server-obd.
	Prefix     string
	HMACSecret []byte
	Setup      services.SetupService
	// Files serves uploaded images under /files/ when set.
	Files http.Handler

	HealthHandler   *handlers.HealthHandler
	AuthHandler     *handlers.AuthHandler
	ProjectsHandler *handlers.ProjectsHandler
	SettingsHandler *handlers.SettingsHandler
	UploadHandler   *handlers.UploadHandler
}

func NewRouter(dep Dependencies) http.Handler {
	r := chi.NewRouter()

	r.Use(mw.RequestID)
	r.Use(mw.Recovery)
	r.Use(mw.Logging)
	r.Use(mw.CORS())
	r.Use(chimid.Compress(5))

	if dep.Files != nil {
		r.Handle(storage.FilesRoute+"*", dep.Files)
	}

	auth := mw.Auth(dep.HMACSecret)
	gate := mw.SetupGate(dep.Setup, services.SetupMessage)
	strict := mw.NewRateLimiter(1, 5)

	r.Route(dep.Prefix, func(api chi.Router) {
		api.Get("/", dep.HealthHandler.Root)
		api.Get("/health", dep.HealthHandler.Health)
		api.Get("/setup-status", dep.HealthHandler.SetupStatus)

		api.Get("/docs/doc.json", docJSON(dep.Prefix))
		api.Get("/docs/*", httpSwagger.Handler(httpSwagger.URL("doc.json")))

		api.Route("/admin", func(ar chi.Router) {
			ar.Use(strict.Handler)
			ar.Post("/signup", dep.AuthHandler.Signup)
			ar.Post("/login", dep.AuthHandler.Login)
		})

		api.With(auth, strict.Handler).Post("/upload-image", dep.UploadHandler.UploadImage)

		api.Group(func(data chi.Router) {
			data.Use(gate)

			data.Get("/projects", dep.ProjectsHandler.List)
			data.Get("/projects/{id}", dep.ProjectsHandler.Get)
			data.Get("/settings/homepage", dep.SettingsHandler.GetHomepage)

			data.Group(func(protected chi.Router) {
				protected.Use(auth)
				protected.Post("/projects", dep.ProjectsHandler.Create)
				protected.Put("/projects/{id}", dep.ProjectsHandler.Update)
				protected.Delete("/projects/{id}", dep.ProjectsHandler.Delete)
				protected.Put("/settings/homepage", dep.SettingsHandler.UpdateHomepage)
			})
		})
	})

	return r
}

func docJSON(prefix string) http.HandlerFunc {
	doc, err := docs.JSON(prefix)
	if err != nil {
		logger.L().Error("load api docs failed", zap.Error(err))
	}
	return func(w http.ResponseWriter, r *http.Request) {
		if doc == nil {
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		_, _ = w.Write(doc)
	}
}
