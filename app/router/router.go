package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"tesouraria-ibs/app/controller"
	"tesouraria-ibs/config"
)

// Controllers are the handlers the bridge routes to
type Controllers struct {
	Document *controller.DocumentController
	Tithes   *controller.TithesController
	Payments *controller.PaymentsController
	Export   *controller.ExportController
}

// pingHandler handles GET /ping
func pingHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}

// requestLogger logs every request through the shared logger
func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		config.GetLogger().WithFields(map[string]any{
			"method":   r.Method,
			"path":     r.URL.Path,
			"status":   ww.Status(),
			"duration": time.Since(start).String(),
		}).Debug("📥 request")
	})
}

// NewRouter wires the bridge routes. exportTimeout bounds export requests.
func NewRouter(controllers *Controllers, exportTimeout time.Duration) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(requestLogger)
	r.Use(middleware.Recoverer)

	r.Get("/ping", pingHandler)

	r.Route("/api", func(api chi.Router) {
		api.Get("/state", controllers.Document.GetState)
		api.Put("/view", controllers.Document.SetView)

		api.Post("/documents", controllers.Document.CreateDocument)
		api.Post("/documents/save", controllers.Document.SaveDocument)
		api.Post("/documents/{id}/load", controllers.Document.LoadDocument)
		api.Delete("/documents/{id}", controllers.Document.DeleteDocument)

		api.Get("/editor/status", controllers.Document.GetStatus)
		api.Post("/editor/close", controllers.Document.CloseEditor)

		api.Patch("/tithes", controllers.Tithes.UpdateTithes)
		api.Post("/tithes/entries", controllers.Tithes.AddEntry)
		api.Delete("/tithes/entries/{id}", controllers.Tithes.RemoveEntry)
		api.Put("/tithes/summary", controllers.Tithes.SetSummary)

		api.Patch("/payments", controllers.Payments.UpdatePayments)
		api.Post("/payments/expenses", controllers.Payments.AddExpense)
		api.Delete("/payments/expenses/{id}", controllers.Payments.RemoveExpense)
		api.Post("/payments/extra-entries", controllers.Payments.AddExtraEntry)
		api.Delete("/payments/extra-entries/{id}", controllers.Payments.RemoveExtraEntry)

		api.Get("/render", controllers.Export.Render)
		api.Get("/backups", controllers.Export.ListBackups)

		api.Route("/export", func(ex chi.Router) {
			if exportTimeout > 0 {
				ex.Use(middleware.Timeout(exportTimeout))
			}
			ex.Get("/suggestion", controllers.Export.Suggestion)
			ex.Post("/pdf", controllers.Export.ExportPDF)
			ex.Post("/xlsx", controllers.Export.ExportSpreadsheet)
			ex.Post("/print", controllers.Export.Print)
		})
	})

	return r
}
