package handler

import (
	"encoding/json"
	"net/http"
	"net/url"
	"time"

	"stargate-service/internal/domain/entity"
	"stargate-service/internal/usecase"
	"stargate-service/pkg/apperror"
	"stargate-service/pkg/utils"

	"github.com/go-chi/chi/v5"
)

// BaseResponse is embedded in every JSON body
type BaseResponse struct {
	Success      bool   `json:"success"`
	Message      string `json:"message"`
	ResponseCode int    `json:"responseCode"`
}

func successful() BaseResponse {
	return BaseResponse{Success: true, Message: "Successful", ResponseCode: http.StatusOK}
}

// PersonAstronautResponse flattens a person and their current detail
type PersonAstronautResponse struct {
	PersonID         uint    `json:"personId"`
	Name             string  `json:"name"`
	CurrentRank      string  `json:"currentRank"`
	CurrentDutyTitle string  `json:"currentDutyTitle"`
	CareerStartDate  *string `json:"careerStartDate"`
	CareerEndDate    *string `json:"careerEndDate"`
}

// AstronautDutyResponse is one duty on the wire
type AstronautDutyResponse struct {
	ID            uint    `json:"id"`
	PersonID      uint    `json:"personId"`
	Rank          string  `json:"rank"`
	DutyTitle     string  `json:"dutyTitle"`
	DutyStartDate string  `json:"dutyStartDate"`
	DutyEndDate   *string `json:"dutyEndDate"`
}

// DutySubmissionResponse is one entry of the submission log
type DutySubmissionResponse struct {
	ID            string `json:"id"`
	Rank          string `json:"rank"`
	DutyTitle     string `json:"dutyTitle"`
	DutyStartDate string `json:"dutyStartDate"`
	Status        string `json:"status"`
	ErrorKind     string `json:"errorKind,omitempty"`
	ErrorDetail   string `json:"errorDetail,omitempty"`
	DutyID        *uint  `json:"dutyId,omitempty"`
	ReceivedAt    string `json:"receivedAt"`
}

type getPeopleResponse struct {
	BaseResponse
	People []PersonAstronautResponse `json:"people"`
}

type getPersonResponse struct {
	BaseResponse
	Person PersonAstronautResponse `json:"person"`
}

type getDutiesResponse struct {
	BaseResponse
	Person          PersonAstronautResponse `json:"person"`
	AstronautDuties []AstronautDutyResponse `json:"astronautDuties"`
}

type createPersonResponse struct {
	BaseResponse
	ID uint `json:"id"`
}

type createDutyResponse struct {
	BaseResponse
	ID *uint `json:"id"`
}

type getSubmissionsResponse struct {
	BaseResponse
	Submissions []DutySubmissionResponse `json:"submissions"`
}

func toPersonAstronautResponse(p *entity.Person, d *entity.AstronautDetail) PersonAstronautResponse {
	resp := PersonAstronautResponse{
		PersonID: p.ID,
		Name:     p.Name,
	}
	if d != nil {
		start := utils.FormatDate(d.CareerStartDate)
		resp.CurrentRank = d.CurrentRank
		resp.CurrentDutyTitle = d.CurrentDutyTitle
		resp.CareerStartDate = &start
		resp.CareerEndDate = utils.FormatDatePtr(d.CareerEndDate)
	}
	return resp
}

func toPeopleResponse(people []*usecase.PersonAstronaut) []PersonAstronautResponse {
	resp := make([]PersonAstronautResponse, 0, len(people))
	for _, p := range people {
		resp = append(resp, toPersonAstronautResponse(p.Person, p.Detail))
	}
	return resp
}

func toDutyResponses(duties []*entity.AstronautDuty) []AstronautDutyResponse {
	resp := make([]AstronautDutyResponse, 0, len(duties))
	for _, d := range duties {
		resp = append(resp, AstronautDutyResponse{
			ID:            d.ID,
			PersonID:      d.PersonID,
			Rank:          d.Rank,
			DutyTitle:     d.DutyTitle,
			DutyStartDate: utils.FormatDate(d.DutyStartDate),
			DutyEndDate:   utils.FormatDatePtr(d.DutyEndDate),
		})
	}
	return resp
}

func toSubmissionResponses(submissions []*entity.DutySubmission) []DutySubmissionResponse {
	resp := make([]DutySubmissionResponse, 0, len(submissions))
	for _, s := range submissions {
		resp = append(resp, DutySubmissionResponse{
			ID:            s.ID,
			Rank:          s.Rank,
			DutyTitle:     s.DutyTitle,
			DutyStartDate: utils.FormatDate(s.DutyStartDate),
			Status:        s.Status,
			ErrorKind:     s.ErrorKind,
			ErrorDetail:   s.ErrorDetail,
			DutyID:        s.DutyID,
			ReceivedAt:    s.ReceivedAt.UTC().Format(time.RFC3339),
		})
	}
	return resp
}

// statusFor maps an error kind onto an HTTP status
func statusFor(kind apperror.Kind) int {
	switch kind {
	case apperror.KindInvalidArgument, apperror.KindInvalidOrdering:
		return http.StatusBadRequest
	case apperror.KindNotFound:
		return http.StatusNotFound
	case apperror.KindConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, BaseResponse{
		Success:      false,
		Message:      message,
		ResponseCode: status,
	})
}

// writeAppError renders err with the status of its kind; internal details never leave the process
func writeAppError(w http.ResponseWriter, err error) {
	status := statusFor(apperror.KindOf(err))
	writeError(w, status, apperror.MessageOf(err))
}

// nameParam reads the {name} path segment, decoding escapes chi leaves in place
func nameParam(r *http.Request) string {
	raw := chi.URLParam(r, "name")
	if name, err := url.PathUnescape(raw); err == nil {
		return name
	}
	return raw
}
