package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"protein-optimizer-service/internal/testutil"
	"protein-optimizer-service/internal/usecase"
)

func setupRouter() (*testutil.MockOptimizerClient, *testutil.MockProjectRepo, *testutil.MockSequenceRepo, *testutil.MockOptimizationRepo, *gin.Engine) {
	gin.SetMode(gin.TestMode)
	client := new(testutil.MockOptimizerClient)
	projectRepo := new(testutil.MockProjectRepo)
	sequenceRepo := new(testutil.MockSequenceRepo)
	resultRepo := new(testutil.MockOptimizationRepo)

	optimizeUC := usecase.NewOptimizationUseCase(client, projectRepo, sequenceRepo, resultRepo)
	projectUC := usecase.NewProjectUseCase(projectRepo)

	h := New(optimizeUC, projectUC, "demo-user")
	r := gin.New()
	api := r.Group("/api/v1")
	h.RegisterRoutes(api)

	return client, projectRepo, sequenceRepo, resultRepo, r
}

func postJSON(r *gin.Engine, path string, body interface{}) *httptest.ResponseRecorder {
	payload, _ := json.Marshal(body)
	req, _ := http.NewRequest("POST", path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestOptimizeProtein_MissingFields(t *testing.T) {
	_, _, _, _, r := setupRouter()

	for _, body := range []map[string]string{
		{},
		{"sequence": "MKV"},
		{"goal": "stability"},
	} {
		w := postJSON(r, "/api/v1/optimize-protein", body)
		assert.Equal(t, http.StatusBadRequest, w.Code)

		var resp map[string]string
		_ = json.Unmarshal(w.Body.Bytes(), &resp)
		assert.Equal(t, "Sequence and goal are required", resp["error"])
	}
}

func TestOptimizeProtein_InvalidSequence(t *testing.T) {
	_, _, _, _, r := setupRouter()

	w := postJSON(r, "/api/v1/optimize-protein", map[string]string{
		"sequence": "MK1V",
		"goal":     "stability",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp map[string]string
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	assert.Equal(t, "Invalid protein sequence format", resp["error"])
}

func TestOptimizeProtein_InvalidGoal(t *testing.T) {
	_, _, _, _, r := setupRouter()

	w := postJSON(r, "/api/v1/optimize-protein", map[string]string{
		"sequence": "MKV",
		"goal":     "speed",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestOptimizeProtein_FallbackIsStillOK(t *testing.T) {
	client, projectRepo, _, _, r := setupRouter()

	// Degraded outcome: service down and store down, yet the caller gets 200.
	client.On("Generate", mock.Anything, mock.Anything).Return("", errors.New("service down"))
	projectRepo.On("FindNewestByName", mock.Anything, "demo-user", "Demo Project").
		Return(nil, errors.New("db down"))

	w := postJSON(r, "/api/v1/optimize-protein", map[string]string{
		"sequence": "MKV",
		"goal":     "stability",
	})
	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	assert.Equal(t, "MKV", resp["optimizedSequence"])
	assert.Equal(t, float64(10), resp["improvementScore"])
	assert.Equal(t, float64(50), resp["confidenceScore"])
	assert.Equal(t, []interface{}{}, resp["mutations"])
}

func TestOptimizeProtein_Accepted(t *testing.T) {
	client, projectRepo, sequenceRepo, resultRepo, r := setupRouter()

	project := fixtureProject()
	projectRepo.On("FindNewestByName", mock.Anything, "demo-user", "Demo Project").Return(project, nil)
	sequenceRepo.On("Create", mock.Anything, mock.Anything).Return(nil)
	resultRepo.On("Create", mock.Anything, mock.Anything, []string{"K2R"}).Return(nil)
	client.On("Generate", mock.Anything, mock.Anything).
		Return(`{"optimizedSequence":"MRV","mutations":["K2R"],"improvementScore":40,"confidenceScore":85,"analysis":"swap"}`, nil)

	w := postJSON(r, "/api/v1/optimize-protein", map[string]string{
		"sequence": "mkv",
		"goal":     "stability",
	})
	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	assert.Equal(t, "MRV", resp["optimizedSequence"])
	assert.Equal(t, []interface{}{"K2R"}, resp["mutations"])
	assert.Equal(t, float64(40), resp["improvementScore"])
	assert.Equal(t, float64(85), resp["confidenceScore"])
	resultRepo.AssertExpectations(t)
}
