// Package person contains the HTTP handlers for the Person resource.
//
// HANDLER PATTERN: closure factories.
// ───────────────────────────────────
// The router expects func(http.ResponseWriter, *http.Request), which has
// no room for dependencies. Each exported function here takes the
// service, runs ONCE at startup, and returns the handler that runs on
// EVERY request:
//
//	router.HandleFunc("POST /api", person.New(svc))
//
// Handlers never pick status codes for failures themselves; they hand
// the error to response.WriteError.
package person

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/aanand-mishra/people-api/internal/service"
	"github.com/aanand-mishra/people-api/internal/types"
	"github.com/aanand-mishra/people-api/internal/utils/response"
	"github.com/aanand-mishra/people-api/internal/validation"
)

// Service is what the handlers need from the service layer.
type Service interface {
	AllPeople(ctx context.Context) ([]types.Person, error)
	PersonByID(ctx context.Context, id int64) (types.Person, error)
	Save(ctx context.Context, p types.Person) (types.Person, error)
}

// ─────────────────────────────────────────────────────────────────────────────
// New handles POST /api
// Creates a person from the JSON request body.
//
// Request body (JSON), any "id" is ignored:
//
//	{ "name": "Al", "age": 5, "email": "a@b.com" }
//
// Success: 200 OK with an empty body.
//
// Errors:
//
//	400 Bad Request  — empty body, malformed JSON, or failed validation
//	500 Internal     — database error
//
// ─────────────────────────────────────────────────────────────────────────────
func New(svc Service) http.HandlerFunc {
	val := validation.New()

	return func(w http.ResponseWriter, r *http.Request) {
		slog.Info("creating a person")

		var p types.Person
		err := json.NewDecoder(r.Body).Decode(&p)
		if errors.Is(err, io.EOF) {
			response.WriteError(w, response.BadRequest(errors.New("request body is empty")))
			return
		}
		if err != nil {
			response.WriteError(w, response.BadRequest(err))
			return
		}

		// Every rule is checked; the client sees all failures at once.
		if errs := val.Validate(p); len(errs) > 0 {
			slog.Info("person rejected",
				slog.Any("fields", errs.Fields()))
			response.WriteError(w, &service.NotCreatedError{Message: errs.Message()})
			return
		}

		saved, err := svc.Save(r.Context(), p)
		if err != nil {
			slog.Error("error saving person", slog.String("error", err.Error()))
			response.WriteError(w, err)
			return
		}

		slog.Info("person created", slog.Int64("id", saved.ID))
		w.WriteHeader(http.StatusOK)
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// GetByID handles GET /api/{id}
//
// Success (200 OK):
//
//	{ "id": 1, "name": "Al", "age": 5, "email": "a@b.com" }
//
// Errors:
//
//	400 Bad Request  — id is not an integer
//	404 Not Found    — no person with this id
//	500 Internal     — database error
//
// ─────────────────────────────────────────────────────────────────────────────
func GetByID(svc Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("id")
		slog.Info("getting a person", slog.String("id", id))

		intID, err := strconv.ParseInt(id, 10, 64)
		if err != nil {
			response.WriteError(w, response.BadRequest(errors.New("invalid id: must be an integer")))
			return
		}

		p, err := svc.PersonByID(r.Context(), intID)
		if err != nil {
			if !errors.Is(err, service.ErrNotFound) {
				slog.Error("error getting person",
					slog.String("id", id),
					slog.String("error", err.Error()))
			}
			response.WriteError(w, err)
			return
		}

		response.WriteJSON(w, http.StatusOK, p)
	}
}

// GetList handles GET /api and returns every person as a JSON array.
// An empty store yields [] (not null).
func GetList(svc Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slog.Info("getting all people")

		people, err := svc.AllPeople(r.Context())
		if err != nil {
			slog.Error("error getting people", slog.String("error", err.Error()))
			response.WriteError(w, err)
			return
		}
		if people == nil {
			people = []types.Person{}
		}

		response.WriteJSON(w, http.StatusOK, people)
	}
}
