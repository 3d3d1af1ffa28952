package router

import (
	"net/http"

	"semar-etiquetas/app/controller"
)

type Controllers struct {
	Label    *controller.LabelController
	Session  *controller.SessionController
	PrintJob *controller.PrintJobController
	Metrics  http.Handler
}

// pingHandler handles GET /ping
func pingHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}

func SetupRoutes(mux *http.ServeMux, controllers *Controllers) {
	// Ping endpoint
	mux.HandleFunc("/ping", pingHandler)

	// Prometheus metrics
	if controllers.Metrics != nil {
		mux.Handle("/metrics", controllers.Metrics)
	}

	// Stateless label routes
	// Generate print file from query parameters
	mux.HandleFunc("/labels", controllers.Label.GenerateLabels)

	// Bare sheet for headless Chrome
	mux.HandleFunc("/labels/render", controllers.Label.RenderLabels)

	// Stored PNG pages
	mux.HandleFunc("/labels/png-page", controllers.Label.DownloadPNGPage)

	// Session routes
	// Create session
	mux.HandleFunc("/api/sessions", controllers.Session.CreateSession)

	// Session by id and its actions
	mux.HandleFunc("/api/sessions/", func(w http.ResponseWriter, r *http.Request) {
		id, action := controller.SessionPath(r.URL.Path)
		if id == "" {
			http.Error(w, "Not found", http.StatusNotFound)
			return
		}

		switch action {
		case "":
			// GET /api/sessions/:id or DELETE /api/sessions/:id
			if r.Method == http.MethodDelete {
				controllers.Session.DeleteSession(w, r)
			} else {
				controllers.Session.GetSession(w, r)
			}
		case "mode":
			controllers.Session.SetMode(w, r)
		case "fields":
			controllers.Session.SetField(w, r)
		case "increment", "decrement":
			controllers.Session.Step(w, r)
		case "clear":
			controllers.Session.Clear(w, r)
		case "print":
			controllers.Session.PrintSession(w, r)
		default:
			http.Error(w, "Not found", http.StatusNotFound)
		}
	})

	// Print history
	mux.HandleFunc("/admin/print-jobs", controllers.PrintJob.ListPrintJobs)
}
