package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/aulaview/aulaview-backend/internal/cache"
	"github.com/aulaview/aulaview-backend/internal/config"
	"github.com/aulaview/aulaview-backend/internal/directory"
	"github.com/aulaview/aulaview-backend/internal/service"
	"github.com/aulaview/aulaview-backend/internal/upstream"
	"github.com/aulaview/aulaview-backend/internal/validator"
)

// envelope mirrors the response wrapper for decoding in assertions.
type envelope struct {
	Data  json.RawMessage `json:"data"`
	Error *struct {
		Code    string            `json:"code"`
		Message string            `json:"message"`
		Fields  map[string]string `json:"fields"`
	} `json:"error"`
	Metadata struct {
		RequestID string `json:"request_id"`
	} `json:"metadata"`
}

type fixedFetcher struct {
	byClassroom map[string][]upstream.RawLesson
}

func (f *fixedFetcher) FetchDay(_ context.Context, classroomID, _, _ string) ([]upstream.RawLesson, error) {
	return f.byClassroom[classroomID], nil
}

func newTestRouter(fetcher service.Fetcher) *gin.Engine {
	gin.SetMode(gin.TestMode)
	validator.Setup()

	dir := directory.New(
		map[string]map[int][]directory.ClassroomRef{
			"A": {1: {{ClassroomID: "c1", BuildingID: "b1"}}},
		},
		map[string]string{"c1": "A-1-1"},
	)
	cfg := &config.Config{CacheTTL: time.Minute, PeriodBoundaryMinutes: 13 * 60}
	svc := service.NewLessonService(fetcher, cache.NewMemory(cfg.CacheTTL), dir, cfg, zerolog.Nop())
	h := NewLessonHandler(svc, dir)

	r := gin.New()
	r.POST("/api/v1/lessons", h.GetLessons)
	r.GET("/api/v1/floor/:building/:floor", h.GetFloor)
	r.GET("/api/v1/buildings", h.GetBuildings)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return w, env
}

func TestGetLessonsReturnsDay(t *testing.T) {
	r := newTestRouter(&fixedFetcher{byClassroom: map[string][]upstream.RawLesson{
		"c1": {{
			DataInizio: "2024-01-10T09:00:00Z",
			DataFine:   "2024-01-10T11:00:00Z",
			Docenti:    []upstream.RawTeacher{{Nome: "Maria", Cognome: "Rossi"}},
		}},
	}})

	w, env := doJSON(t, r, http.MethodPost, "/api/v1/lessons", gin.H{
		"classroom": "c1",
		"building":  "b1",
		"date":      "2024-01-10",
		"period":    "morning",
	})

	require.Equal(t, http.StatusOK, w.Code)
	require.Nil(t, env.Error)
	require.NotEmpty(t, env.Metadata.RequestID)

	var lessons []map[string]any
	require.NoError(t, json.Unmarshal(env.Data, &lessons))
	require.Len(t, lessons, 1)
	require.Equal(t, "Maria Rossi", lessons[0]["instructor"])
	require.Equal(t, "A-1-1", lessons[0]["classroom_name"])
}

func TestGetLessonsEmptyClassroomSentinel(t *testing.T) {
	r := newTestRouter(&fixedFetcher{})

	w, env := doJSON(t, r, http.MethodPost, "/api/v1/lessons", gin.H{
		"classroom": "c1",
		"building":  "b1",
		"date":      "2024-01-10",
	})

	require.Equal(t, http.StatusOK, w.Code)

	var notices []map[string]string
	require.NoError(t, json.Unmarshal(env.Data, &notices))
	require.Len(t, notices, 1)
	require.Equal(t, "A-1-1", notices[0]["classroom_name"])
	require.Equal(t, "No lessons available", notices[0]["message"])
}

func TestGetLessonsValidation(t *testing.T) {
	r := newTestRouter(&fixedFetcher{})

	tests := []struct {
		name  string
		body  gin.H
		field string
	}{
		{"missing classroom", gin.H{"building": "b1"}, "classroom"},
		{"missing building", gin.H{"classroom": "c1"}, "building"},
		{"bad period", gin.H{"classroom": "c1", "building": "b1", "period": "evening"}, "period"},
		{"bad date", gin.H{"classroom": "c1", "building": "b1", "date": "10/01/2024"}, "date"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, env := doJSON(t, r, http.MethodPost, "/api/v1/lessons", tt.body)
			require.Equal(t, http.StatusBadRequest, w.Code)
			require.NotNil(t, env.Error)
			require.Equal(t, "VALIDATION_ERROR", env.Error.Code)
			require.Contains(t, env.Error.Fields, tt.field)
		})
	}
}

func TestGetFloorHappyPath(t *testing.T) {
	r := newTestRouter(&fixedFetcher{byClassroom: map[string][]upstream.RawLesson{
		"c1": {{
			DataInizio: "2024-01-10T09:00:00Z",
			DataFine:   "2024-01-10T11:00:00Z",
		}},
	}})

	w, env := doJSON(t, r, http.MethodGet, "/api/v1/floor/A/1?date=2024-01-10", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var lessons []map[string]any
	require.NoError(t, json.Unmarshal(env.Data, &lessons))
	require.Len(t, lessons, 1)
}

func TestGetFloorEmptyFloorIsEmptyList(t *testing.T) {
	r := newTestRouter(&fixedFetcher{})

	w, env := doJSON(t, r, http.MethodGet, "/api/v1/floor/A/1?date=2024-01-10", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "[]", string(env.Data))
}

func TestGetFloorErrors(t *testing.T) {
	r := newTestRouter(&fixedFetcher{})

	tests := []struct {
		name   string
		path   string
		status int
		code   string
	}{
		{"non-integer floor", "/api/v1/floor/A/first", http.StatusBadRequest, "INVALID_FLOOR"},
		{"unknown floor", "/api/v1/floor/A/9", http.StatusNotFound, "UNKNOWN_FLOOR"},
		{"unknown building", "/api/v1/floor/Z/1", http.StatusNotFound, "UNKNOWN_FLOOR"},
		{"bad date", "/api/v1/floor/A/1?date=nope", http.StatusBadRequest, "INVALID_DATE"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, env := doJSON(t, r, http.MethodGet, tt.path, nil)
			require.Equal(t, tt.status, w.Code)
			require.NotNil(t, env.Error)
			require.Equal(t, tt.code, env.Error.Code)
		})
	}
}

func TestGetBuildings(t *testing.T) {
	r := newTestRouter(&fixedFetcher{})

	w, env := doJSON(t, r, http.MethodGet, "/api/v1/buildings", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var data struct {
		Buildings []struct {
			Key    string `json:"key"`
			Floors []int  `json:"floors"`
		} `json:"buildings"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	require.Len(t, data.Buildings, 1)
	require.Equal(t, "A", data.Buildings[0].Key)
	require.Equal(t, []int{1}, data.Buildings[0].Floors)
}
