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
	"stargate-service/pkg/utils"

	"github.com/go-chi/chi/v5"
)

// DutyWorkflow defines the duty operations the HTTP layer needs
type DutyWorkflow interface {
	CreateDuty(ctx context.Context, req usecase.CreateDutyRequest) (*usecase.CreateDutyResult, error)
	ListSubmissions(ctx context.Context, name string) ([]*entity.DutySubmission, error)
	RecordRejection(ctx context.Context, req usecase.CreateDutyRequest, err error)
}

// createDutyBody is the wire form of a create-duty request
type createDutyBody struct {
	Name          string `json:"name"`
	Rank          string `json:"rank"`
	DutyTitle     string `json:"dutyTitle"`
	DutyStartDate string `json:"dutyStartDate"`
}

// DutyHandler serves the /AstronautDuty endpoints
type DutyHandler struct {
	people   PersonService
	workflow DutyWorkflow
	logger   logger.Logger
}

// NewDutyHandler creates a new duty handler
func NewDutyHandler(people PersonService, workflow DutyWorkflow, logger logger.Logger) *DutyHandler {
	return &DutyHandler{
		people:   people,
		workflow: workflow,
		logger:   logger,
	}
}

// Register mounts the duty routes
func (h *DutyHandler) Register(r chi.Router) {
	r.Get("/AstronautDuty/{name}", h.handleGetDutiesByName)
	r.Get("/AstronautDuty/{name}/submissions", h.handleGetSubmissions)
	r.Post("/AstronautDuty", h.handleCreateDuty)
}

func (h *DutyHandler) handleGetDutiesByName(w http.ResponseWriter, r *http.Request) {
	name := nameParam(r)
	if strings.TrimSpace(name) == "" {
		writeError(w, http.StatusBadRequest, "Name cannot be empty.")
		return
	}

	result, err := h.people.GetDutiesByPersonName(r.Context(), name)
	if err != nil {
		if apperror.Is(err, apperror.KindNotFound) {
			h.logger.Warn("No astronaut duties found for person", "name", name)
			writeError(w, http.StatusNotFound, "Person with name "+name+" not found.")
			return
		}
		h.logger.Error("Failed to retrieve astronaut duties", "name", name, "error", err)
		writeAppError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, getDutiesResponse{
		BaseResponse:    successful(),
		Person:          toPersonAstronautResponse(result.Person, result.Detail),
		AstronautDuties: toDutyResponses(result.Duties),
	})
}

func (h *DutyHandler) handleCreateDuty(w http.ResponseWriter, r *http.Request) {
	var body createDutyBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		h.logger.Warn("Invalid create duty request body", "error", err)
		h.reject(r.Context(), body, nil, "Request body cannot be empty.")
		writeError(w, http.StatusBadRequest, "Request body cannot be empty.")
		return
	}

	req := usecase.CreateDutyRequest{
		Name:      body.Name,
		Rank:      body.Rank,
		DutyTitle: body.DutyTitle,
	}

	start, err := utils.ParseDate(body.DutyStartDate)
	if err != nil {
		h.logger.Warn("Invalid duty start date", "name", body.Name, "dutyStartDate", body.DutyStartDate)
		h.reject(r.Context(), body, err, "DutyStartDate must be YYYY-MM-DD or RFC3339.")
		writeError(w, http.StatusBadRequest, "DutyStartDate must be YYYY-MM-DD or RFC3339.")
		return
	}
	req.DutyStartDate = start

	result, err := h.workflow.CreateDuty(r.Context(), req)
	if err != nil {
		status := statusFor(apperror.KindOf(err))
		// An unknown person is a bad request on this endpoint, not a missing resource
		if status == http.StatusNotFound {
			status = http.StatusBadRequest
		}
		writeError(w, status, apperror.MessageOf(err))
		return
	}

	writeJSON(w, http.StatusOK, createDutyResponse{
		BaseResponse: successful(),
		ID:           result.ID,
	})
}

func (h *DutyHandler) handleGetSubmissions(w http.ResponseWriter, r *http.Request) {
	name := nameParam(r)

	submissions, err := h.workflow.ListSubmissions(r.Context(), name)
	if err != nil {
		h.logger.Error("Failed to retrieve duty submissions", "name", name, "error", err)
		writeAppError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, getSubmissionsResponse{
		BaseResponse: successful(),
		Submissions:  toSubmissionResponses(submissions),
	})
}

// reject records a create-duty attempt refused before reaching the workflow
func (h *DutyHandler) reject(ctx context.Context, body createDutyBody, cause error, message string) {
	h.workflow.RecordRejection(ctx, usecase.CreateDutyRequest{
		Name:      body.Name,
		Rank:      body.Rank,
		DutyTitle: body.DutyTitle,
	}, apperror.Wrap(cause, apperror.KindInvalidArgument, message))
}
