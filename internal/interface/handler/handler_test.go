package handler_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"stargate-service/internal/interface/handler"
	gormRepo "stargate-service/internal/interface/repository"
	"stargate-service/internal/testutil"
	"stargate-service/internal/usecase"
	"stargate-service/pkg/logger"
	"stargate-service/pkg/validator"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	db := testutil.NewTestDB(t)
	repos := gormRepo.NewGormRepositories(db)
	log := logger.NewNopLogger()

	people := usecase.NewPersonService(repos.Persons, repos.Duties, repos.Details, nil, log)
	workflow := usecase.NewDutyWorkflow(
		repos.Persons,
		repos.Duties,
		gormRepo.NewGormUnitOfWork(db),
		gormRepo.NewInMemorySubmissionRepository(),
		validator.New(),
		nil,
		log,
	)

	r := chi.NewRouter()
	handler.NewPersonHandler(people, log).Register(r)
	handler.NewDutyHandler(people, workflow, log).Register(r)

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv
}

func do(t *testing.T, method, url, body string) (int, map[string]any) {
	t.Helper()
	req, err := http.NewRequest(method, url, strings.NewReader(body))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var payload map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
	return resp.StatusCode, payload
}

func TestPersonEndpoints(t *testing.T) {
	srv := newTestServer(t)

	status, body := do(t, http.MethodPost, srv.URL+"/Person", `"John Doe"`)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, float64(200), body["responseCode"])
	assert.NotZero(t, body["id"])

	status, body = do(t, http.MethodPost, srv.URL+"/Person", `"John Doe"`)
	assert.Equal(t, http.StatusConflict, status)
	assert.Equal(t, false, body["success"])

	status, _ = do(t, http.MethodPost, srv.URL+"/Person", `"   "`)
	assert.Equal(t, http.StatusBadRequest, status)

	status, _ = do(t, http.MethodPost, srv.URL+"/Person", `{"name":"John"}`)
	assert.Equal(t, http.StatusBadRequest, status)

	status, body = do(t, http.MethodGet, srv.URL+"/Person/John%20Doe", "")
	require.Equal(t, http.StatusOK, status)
	person := body["person"].(map[string]any)
	assert.Equal(t, "John Doe", person["name"])
	assert.Nil(t, person["careerStartDate"])

	status, body = do(t, http.MethodGet, srv.URL+"/Person/Nobody", "")
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "Person not found", body["message"])

	status, body = do(t, http.MethodGet, srv.URL+"/Person", "")
	require.Equal(t, http.StatusOK, status)
	assert.Len(t, body["people"], 1)

	status, _ = do(t, http.MethodPut, srv.URL+"/Person/John%20Doe", `"Johnny Doe"`)
	assert.Equal(t, http.StatusOK, status)

	status, _ = do(t, http.MethodGet, srv.URL+"/Person/Johnny%20Doe", "")
	assert.Equal(t, http.StatusOK, status)

	status, _ = do(t, http.MethodPut, srv.URL+"/Person/Nobody", `"Somebody"`)
	assert.Equal(t, http.StatusNotFound, status)
}

func TestAstronautDutyEndpoints(t *testing.T) {
	srv := newTestServer(t)

	status, _ := do(t, http.MethodPost, srv.URL+"/Person", `"John Doe"`)
	require.Equal(t, http.StatusOK, status)

	status, body := do(t, http.MethodGet, srv.URL+"/AstronautDuty/John%20Doe", "")
	require.Equal(t, http.StatusOK, status)
	assert.Empty(t, body["astronautDuties"])

	status, body = do(t, http.MethodPost, srv.URL+"/AstronautDuty",
		`{"name":"John Doe","rank":"1LT","dutyTitle":"Commander","dutyStartDate":"2023-01-01"}`)
	require.Equal(t, http.StatusOK, status)
	assert.NotNil(t, body["id"])

	status, _ = do(t, http.MethodPost, srv.URL+"/AstronautDuty",
		`{"name":"John Doe","rank":"Captain","dutyTitle":"Pilot","dutyStartDate":"2023-06-01T00:00:00Z"}`)
	require.Equal(t, http.StatusOK, status)

	t.Run("duplicate", func(t *testing.T) {
		status, body := do(t, http.MethodPost, srv.URL+"/AstronautDuty",
			`{"name":"John Doe","rank":"Captain","dutyTitle":"Pilot","dutyStartDate":"2023-06-01"}`)
		assert.Equal(t, http.StatusConflict, status)
		assert.Equal(t, float64(409), body["responseCode"])
	})

	t.Run("unknown person", func(t *testing.T) {
		status, body := do(t, http.MethodPost, srv.URL+"/AstronautDuty",
			`{"name":"Nobody","rank":"Captain","dutyTitle":"Pilot","dutyStartDate":"2023-06-01"}`)
		assert.Equal(t, http.StatusBadRequest, status)
		assert.Equal(t, "Person not found", body["message"])
	})

	t.Run("out of order", func(t *testing.T) {
		status, _ := do(t, http.MethodPost, srv.URL+"/AstronautDuty",
			`{"name":"John Doe","rank":"Major","dutyTitle":"Engineer","dutyStartDate":"2023-02-01"}`)
		assert.Equal(t, http.StatusBadRequest, status)
	})

	t.Run("bad date", func(t *testing.T) {
		status, _ := do(t, http.MethodPost, srv.URL+"/AstronautDuty",
			`{"name":"John Doe","rank":"Major","dutyTitle":"Engineer","dutyStartDate":"soon"}`)
		assert.Equal(t, http.StatusBadRequest, status)
	})

	status, body = do(t, http.MethodPost, srv.URL+"/AstronautDuty",
		`{"name":"John Doe","rank":"Captain","dutyTitle":"RETIRED","dutyStartDate":"2024-01-01"}`)
	require.Equal(t, http.StatusOK, status)
	assert.Nil(t, body["id"])

	status, body = do(t, http.MethodGet, srv.URL+"/AstronautDuty/John%20Doe", "")
	require.Equal(t, http.StatusOK, status)

	duties := body["astronautDuties"].([]any)
	require.Len(t, duties, 3)
	first := duties[0].(map[string]any)
	assert.Equal(t, "Commander", first["dutyTitle"])
	assert.Equal(t, "2023-05-31", first["dutyEndDate"])
	last := duties[2].(map[string]any)
	assert.Equal(t, "RETIRED", last["dutyTitle"])
	assert.Nil(t, last["dutyEndDate"])

	person := body["person"].(map[string]any)
	assert.Equal(t, "RETIRED", person["currentDutyTitle"])
	assert.Equal(t, "2023-01-01", person["careerStartDate"])
	assert.Equal(t, "2023-12-31", person["careerEndDate"])

	status, body = do(t, http.MethodGet, srv.URL+"/AstronautDuty/Nobody", "")
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "Person with name Nobody not found.", body["message"])

	status, body = do(t, http.MethodGet, srv.URL+"/AstronautDuty/John%20Doe/submissions", "")
	require.Equal(t, http.StatusOK, status)
	submissions := body["submissions"].([]any)
	require.Len(t, submissions, 6)
	assert.Equal(t, "COMPLETED", submissions[0].(map[string]any)["status"])

	var badDate map[string]any
	for _, raw := range submissions {
		entry := raw.(map[string]any)
		if entry["dutyTitle"] == "Engineer" && entry["errorKind"] == "invalid_argument" {
			badDate = entry
		}
	}
	require.NotNil(t, badDate, "bad start date attempt should be logged")
	assert.Equal(t, "REJECTED", badDate["status"])
	assert.Equal(t, "DutyStartDate must be YYYY-MM-DD or RFC3339.", badDate["errorDetail"])
}
