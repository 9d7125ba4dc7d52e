package client

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/exd-tools/surveil-admin/internal/models"
	"github.com/exd-tools/surveil-admin/pkg/config"
	appErrors "github.com/exd-tools/surveil-admin/pkg/errors"
	"github.com/exd-tools/surveil-admin/pkg/middleware/requestid"
)

func newTestClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return New(config.APIConfig{BaseURL: srv.URL, Timeout: 5 * time.Second}, nil)
}

func TestClient_ListAssignments(t *testing.T) {
	var gotQuery string
	var gotRequestID string
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodGet, r.Method)
		require.Equal(t, "/api/affectations", r.URL.Path)
		gotQuery = r.URL.RawQuery
		gotRequestID = r.Header.Get(requestid.Header)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{"affectation_id": 1, "code_smartex_ens": 10, "id_session": 5,
			 "creneau_id": 3, "date_examen": "13/05/2025", "h_debut": "08:30",
			 "h_fin": "10:00", "cod_salle": "B203", "nom_ens": "Ben Ahmed",
			 "prenom_ens": "Mohamed"}
		]`))
	}))

	list, err := c.ListAssignments(context.Background(), models.AssignmentFilter{SessionID: 5, TeacherCode: 10})
	require.NoError(t, err)
	require.Len(t, list, 1)

	assert.Equal(t, int64(1), list[0].ID)
	assert.Equal(t, 10, list[0].TeacherCode)
	assert.Equal(t, "B203", list[0].RoomCode)
	assert.Contains(t, gotQuery, "id_session=5")
	assert.Contains(t, gotQuery, "code_smartex_ens=10")
	assert.NotEmpty(t, gotRequestID)
}

func TestClient_SwapAssignments(t *testing.T) {
	var body models.SwapRequest
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/affectations/permuter", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"message": "Permutation effectuée avec succès."}`))
	}))

	require.NoError(t, c.SwapAssignments(context.Background(), 1, 2))
	assert.Equal(t, int64(1), body.AssignmentID1)
	assert.Equal(t, int64(2), body.AssignmentID2)
}

func TestClient_SwapRejectionKeepsServerMessage(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error": "Impossible de permuter : les deux affectations concernent le même enseignant."}`))
	}))

	err := c.SwapAssignments(context.Background(), 1, 2)
	require.Error(t, err)

	appErr := appErrors.FromError(err)
	assert.Equal(t, http.StatusBadRequest, appErr.Status)
	assert.Equal(t, "Impossible de permuter : les deux affectations concernent le même enseignant.", appErr.Message)
}

func TestClient_ConflictStatusMapsToConflictCode(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte(`{"error": "Conflit d'horaire pour le premier enseignant."}`))
	}))

	err := c.SwapAssignments(context.Background(), 1, 2)
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrConflict.Code, appErrors.FromError(err).Code)
}

func TestClient_ErrorWithoutBodyFallsBackToStatus(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))

	_, err := c.ListTeachers(context.Background())
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	require.NotNil(t, appErr)
	assert.NotEmpty(t, appErr.Message)
}

func TestClient_UnreachableBackend(t *testing.T) {
	c := New(config.APIConfig{BaseURL: "http://127.0.0.1:1", Timeout: 200 * time.Millisecond}, nil)

	_, err := c.ListSessions(context.Background())
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrUnavailable.Code, appErrors.FromError(err).Code)
}

func TestClient_TeacherDirectory(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/enseignants", r.URL.Path)
		_, _ = w.Write([]byte(`[
			{"code_smartex_ens": 10, "nom_ens": "Ben Ahmed", "prenom_ens": "Mohamed", "participe_surveillance": 1},
			{"code_smartex_ens": 20, "nom_ens": "Trabelsi", "prenom_ens": "Leila", "participe_surveillance": 0}
		]`))
	}))

	dir, err := c.TeacherDirectory(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "Ben Ahmed Mohamed", dir.NameOf(10))
	assert.Equal(t, "Prof 99", dir.NameOf(99))
	assert.True(t, bool(dir[10].Supervises))
	assert.False(t, bool(dir[20].Supervises))
}

func TestClient_DownloadStoredFile(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/storage/download/session_5/convocations.pdf", r.URL.Path)
		_, _ = w.Write([]byte("%PDF-1.4 fake"))
	}))

	var buf bytes.Buffer
	n, err := c.DownloadStoredFile(context.Background(), "/api/storage/download/session_5/convocations.pdf", &buf)
	require.NoError(t, err)
	assert.Equal(t, int64(buf.Len()), n)
	assert.Contains(t, buf.String(), "%PDF")
}

func TestClient_RunOptimizationDefaults(t *testing.T) {
	var req models.OptimizationRequest
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/optimize/run", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		_, _ = w.Write([]byte(`{"success": true, "session_id": 5, "nb_affectations": 120}`))
	}))

	res, err := c.RunOptimization(context.Background(), models.DefaultOptimizationRequest(5))
	require.NoError(t, err)

	assert.True(t, res.Success)
	assert.Equal(t, 120, res.AssignmentCount)
	assert.Equal(t, 5, req.SessionID)
	assert.True(t, req.Save)
	assert.True(t, req.Clear)
	assert.True(t, req.GenerateFiles)
	assert.True(t, req.GenerateStats)
}

func TestClient_SwapRequiresBothIDs(t *testing.T) {
	called := false
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))

	err := c.SwapAssignments(context.Background(), 0, 42)
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
	assert.False(t, called, "invalid payload must not reach the backend")
}
