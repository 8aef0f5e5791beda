// Package router builds the application's http.Handler.
//
// Route table:
//
//	GET  /api        → list all people
//	GET  /api/{id}   → get one person by id
//	POST /api        → create a person
//	GET  /healthz    → liveness probe
//	GET  /metrics    → Prometheus metrics (when enabled)
package router

import (
	"log/slog"
	"net/http"

	"github.com/aanand-mishra/people-api/internal/http/handlers/person"
	"github.com/aanand-mishra/people-api/internal/http/middleware"
	"github.com/aanand-mishra/people-api/internal/metrics"
	"github.com/aanand-mishra/people-api/internal/utils/response"
)

// New registers every route on a fresh ServeMux and wraps it in the
// middleware chain. m may be nil, in which case /metrics is not served
// and requests are not measured.
func New(svc person.Service, log *slog.Logger, m *metrics.Metrics) http.Handler {
	router := http.NewServeMux()

	router.HandleFunc("GET /api", person.GetList(svc))
	router.HandleFunc("GET /api/{id}", person.GetByID(svc))
	router.HandleFunc("POST /api", person.New(svc))

	router.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		response.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	mws := []func(http.Handler) http.Handler{
		middleware.RequestID,
		middleware.Logging(log),
	}

	if m != nil {
		router.Handle("GET /metrics", m.Handler())
		// Metrics must sit directly on the mux: it reads r.Pattern, which
		// the mux sets on the request value it receives.
		mws = append(mws, middleware.Metrics(m))
	}

	return middleware.Chain(router, mws...)
}
