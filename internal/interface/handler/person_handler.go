package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"stargate-service/internal/domain/entity"
	"stargate-service/internal/usecase"
	"stargate-service/pkg/apperror"
	"stargate-service/pkg/logger"

	"github.com/go-chi/chi/v5"
)

// PersonService defines the person operations the HTTP layer needs
type PersonService interface {
	GetAllPeople(ctx context.Context) ([]*usecase.PersonAstronaut, error)
	GetPersonByName(ctx context.Context, name string) (*usecase.PersonAstronaut, error)
	GetDutiesByPersonName(ctx context.Context, name string) (*usecase.PersonDuties, error)
	RegisterPerson(ctx context.Context, name string) (*entity.Person, error)
	RenamePerson(ctx context.Context, currentName, newName string) (*entity.Person, error)
}

// PersonHandler serves the /Person endpoints
type PersonHandler struct {
	people PersonService
	logger logger.Logger
}

// NewPersonHandler creates a new person handler
func NewPersonHandler(people PersonService, logger logger.Logger) *PersonHandler {
	return &PersonHandler{
		people: people,
		logger: logger,
	}
}

// Register mounts the person routes
func (h *PersonHandler) Register(r chi.Router) {
	r.Get("/Person", h.handleGetPeople)
	r.Get("/Person/{name}", h.handleGetPersonByName)
	r.Post("/Person", h.handleCreatePerson)
	r.Put("/Person/{name}", h.handleRenamePerson)
}

func (h *PersonHandler) handleGetPeople(w http.ResponseWriter, r *http.Request) {
	people, err := h.people.GetAllPeople(r.Context())
	if err != nil {
		h.logger.Error("Failed to retrieve people", "error", err)
		writeAppError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, getPeopleResponse{
		BaseResponse: successful(),
		People:       toPeopleResponse(people),
	})
}

func (h *PersonHandler) handleGetPersonByName(w http.ResponseWriter, r *http.Request) {
	name := nameParam(r)
	if strings.TrimSpace(name) == "" {
		writeError(w, http.StatusBadRequest, "Name cannot be empty.")
		return
	}

	result, err := h.people.GetPersonByName(r.Context(), name)
	if err != nil {
		h.logFailure("Failed to retrieve person", name, err)
		writeAppError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, getPersonResponse{
		BaseResponse: successful(),
		Person:       toPersonAstronautResponse(result.Person, result.Detail),
	})
}

func (h *PersonHandler) handleCreatePerson(w http.ResponseWriter, r *http.Request) {
	name, ok := decodeName(w, r)
	if !ok {
		return
	}

	person, err := h.people.RegisterPerson(r.Context(), name)
	if err != nil {
		h.logFailure("Failed to create person", name, err)
		writeAppError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, createPersonResponse{
		BaseResponse: successful(),
		ID:           person.ID,
	})
}

func (h *PersonHandler) handleRenamePerson(w http.ResponseWriter, r *http.Request) {
	current := nameParam(r)
	name, ok := decodeName(w, r)
	if !ok {
		return
	}

	person, err := h.people.RenamePerson(r.Context(), current, name)
	if err != nil {
		h.logFailure("Failed to rename person", current, err)
		writeAppError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, createPersonResponse{
		BaseResponse: successful(),
		ID:           person.ID,
	})
}

// logFailure keeps client mistakes at warn level
func (h *PersonHandler) logFailure(msg, name string, err error) {
	if apperror.KindOf(err) == apperror.KindInternal {
		h.logger.Error(msg, "name", name, "error", err)
		return
	}
	h.logger.Warn(msg, "name", name, "reason", apperror.MessageOf(err))
}

// decodeName reads a bare JSON string body such as "Jane Doe"
func decodeName(w http.ResponseWriter, r *http.Request) (string, bool) {
	var name string
	if err := json.NewDecoder(r.Body).Decode(&name); err != nil {
		writeError(w, http.StatusBadRequest, "Request body must be a JSON string.")
		return "", false
	}
	if strings.TrimSpace(name) == "" {
		writeError(w, http.StatusBadRequest, "Name cannot be empty.")
		return "", false
	}
	return name, true
}
