package rest

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bibbank/signalgraph/internal/application/dto"
	"github.com/bibbank/signalgraph/internal/application/usecase"
	"github.com/bibbank/signalgraph/internal/infrastructure/memory"
	"github.com/bibbank/signalgraph/internal/infrastructure/messaging"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestRouter() *gin.Engine {
	logger := testLogger()
	set := usecase.NewSet(usecase.Dependencies{
		Sessions:  memory.NewSessionRepository(),
		Publisher: messaging.NewLogPublisher(logger),
	})
	return NewRouter(RouterConfig{
		API:     NewSignalGraphHandler(set, logger),
		Health:  NewHealthHandler(logger, map[string]string{"events": "log"}),
		Metrics: http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) { _, _ = io.WriteString(w, "# metrics") }),
		Logger:  logger,
	})
}

func do(t *testing.T, router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v))
	return v
}

func TestHealthEndpoints(t *testing.T) {
	router := newTestRouter()

	w := do(t, router, http.MethodGet, "/healthz", "")
	require.Equal(t, http.StatusOK, w.Code)
	health := decode[HealthResponse](t, w)
	assert.Equal(t, "healthy", health.Status)
	assert.Equal(t, "signalgraph", health.Service)

	w = do(t, router, http.MethodGet, "/readyz", "")
	require.Equal(t, http.StatusOK, w.Code)
	ready := decode[ReadinessResponse](t, w)
	assert.Equal(t, "ready", ready.Status)
	assert.Equal(t, "log", ready.Checks["events"])

	w = do(t, router, http.MethodGet, "/metrics", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "# metrics", w.Body.String())
}

func TestListSignals(t *testing.T) {
	w := do(t, newTestRouter(), http.MethodGet, "/api/v1/signals", "")
	require.Equal(t, http.StatusOK, w.Code)

	body := decode[struct {
		Signals []dto.SignalResponse `json:"signals"`
	}](t, w)
	require.Len(t, body.Signals, 11)
	assert.Equal(t, "criminal_felony_recent", body.Signals[0].ID)
	assert.Equal(t, -5, body.Signals[10].Weight)
}

func TestEvaluateSelection(t *testing.T) {
	router := newTestRouter()

	t.Run("scores the selection", func(t *testing.T) {
		w := do(t, router, http.MethodPost, "/api/v1/evaluate",
			`{"candidate_id":"Candidate_Synth_002","signal_ids":["criminal_felony_recent","ssn_mismatch","education_unverified"]}`)
		require.Equal(t, http.StatusOK, w.Code)

		result := decode[dto.EvaluationResponse](t, w)
		assert.Equal(t, 21, result.Score)
		assert.Equal(t, "HIGH", result.Tier)
		assert.Len(t, result.Graph.Nodes, 4)
		assert.Equal(t, "Candidate_Synth_002", result.Graph.Nodes[0].ID)
	})

	t.Run("malformed body", func(t *testing.T) {
		w := do(t, router, http.MethodPost, "/api/v1/evaluate", `{"candidate_id":`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("missing candidate", func(t *testing.T) {
		w := do(t, router, http.MethodPost, "/api/v1/evaluate", `{"signal_ids":["ssn_mismatch"]}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestProfiles(t *testing.T) {
	router := newTestRouter()

	w := do(t, router, http.MethodGet, "/api/v1/profiles", "")
	require.Equal(t, http.StatusOK, w.Code)
	profiles := decode[struct {
		Profiles []dto.ProfileResponse `json:"profiles"`
	}](t, w)
	require.Len(t, profiles.Profiles, 3)

	w = do(t, router, http.MethodGet, "/api/v1/profiles/scores", "")
	require.Equal(t, http.StatusOK, w.Code)
	scores := decode[struct {
		Scores []dto.ProfileScoreResponse `json:"scores"`
	}](t, w)
	assert.Equal(t, []dto.ProfileScoreResponse{
		{Name: "Candidate_Synth_001", Score: 8},
		{Name: "Candidate_Synth_002", Score: 21},
		{Name: "Candidate_Synth_003", Score: 8},
	}, scores.Scores)
}

func TestSessionFlow(t *testing.T) {
	router := newTestRouter()

	w := do(t, router, http.MethodPost, "/api/v1/sessions", "")
	require.Equal(t, http.StatusCreated, w.Code)
	session := decode[dto.SessionResponse](t, w)
	assert.Equal(t, "Candidate_001", session.Evaluation.CandidateID)
	assert.Equal(t, "/api/v1/sessions/"+session.ID.String(), w.Header().Get("Location"))

	base := "/api/v1/sessions/" + session.ID.String()

	w = do(t, router, http.MethodPost, base+"/profile", `{"index":0}`)
	require.Equal(t, http.StatusOK, w.Code)
	session = decode[dto.SessionResponse](t, w)
	assert.Equal(t, "Candidate_Synth_001", session.Evaluation.CandidateID)
	assert.Equal(t, 8, session.Evaluation.Score)
	assert.Equal(t, "MODERATE", session.Evaluation.Tier)

	w = do(t, router, http.MethodPost, base+"/toggle", `{"signal_id":"criminal_felony_recent"}`)
	require.Equal(t, http.StatusOK, w.Code)
	session = decode[dto.SessionResponse](t, w)
	assert.Equal(t, 16, session.Evaluation.Score)
	assert.Equal(t, "HIGH", session.Evaluation.Tier)

	w = do(t, router, http.MethodPut, base+"/candidate", `{"candidate_id":"Candidate_042"}`)
	require.Equal(t, http.StatusOK, w.Code)

	w = do(t, router, http.MethodGet, base+"/export?format=csv", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/csv;charset=utf-8", w.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename="Candidate_042_profile.csv"`, w.Header().Get("Content-Disposition"))
	assert.Equal(t,
		"Candidate ID,Flags\nCandidate_042,criminal_felony_recent,criminal_felony_old,alias_mismatch,employment_gap,pattern_reform",
		w.Body.String())

	w = do(t, router, http.MethodGet, base+"/export?format=svg", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "image/svg+xml", w.Header().Get("Content-Type"))
	assert.True(t, strings.HasPrefix(w.Body.String(), "<svg"))

	w = do(t, router, http.MethodPost, base+"/clear", "")
	require.Equal(t, http.StatusOK, w.Code)
	session = decode[dto.SessionResponse](t, w)
	assert.Equal(t, 0, session.Evaluation.Score)
	assert.Empty(t, session.Evaluation.SignalIDs)

	w = do(t, router, http.MethodGet, base, "")
	require.Equal(t, http.StatusOK, w.Code)

	w = do(t, router, http.MethodDelete, base, "")
	require.Equal(t, http.StatusNoContent, w.Code)

	w = do(t, router, http.MethodGet, base, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSessionErrors(t *testing.T) {
	router := newTestRouter()

	w := do(t, router, http.MethodPost, "/api/v1/sessions", `{"candidate_id":"c"}`)
	require.Equal(t, http.StatusCreated, w.Code)
	base := "/api/v1/sessions/" + decode[dto.SessionResponse](t, w).ID.String()

	tests := []struct {
		name   string
		method string
		path   string
		body   string
		status int
	}{
		{"malformed id", http.MethodGet, "/api/v1/sessions/nope", "", http.StatusBadRequest},
		{"unknown session", http.MethodGet, "/api/v1/sessions/" + uuid.NewString(), "", http.StatusNotFound},
		{"profile out of range", http.MethodPost, base + "/profile", `{"index":3}`, http.StatusNotFound},
		{"profile missing index", http.MethodPost, base + "/profile", `{}`, http.StatusBadRequest},
		{"blank candidate", http.MethodPut, base + "/candidate", `{"candidate_id":"  "}`, http.StatusBadRequest},
		{"missing signal", http.MethodPost, base + "/toggle", `{}`, http.StatusBadRequest},
		{"pdf export", http.MethodGet, base + "/export?format=pdf", "", http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := do(t, router, tt.method, tt.path, tt.body)
			assert.Equal(t, tt.status, w.Code, w.Body.String())
		})
	}
}
