package storage

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalStorage_SaveAndList(t *testing.T) {
	s, err := NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	_, err = s.Save("session_5/affectations.csv", []byte("Date,Salle\n"))
	require.NoError(t, err)
	_, err = s.SaveStream("session_5/convocations.pdf", bytes.NewReader([]byte("%PDF-1.4")))
	require.NoError(t, err)

	files, err := s.List()
	require.NoError(t, err)
	require.Len(t, files, 2)
	assert.Equal(t, filepath.Join("session_5", "affectations.csv"), files[0].Name)
	assert.Equal(t, filepath.Join("session_5", "convocations.pdf"), files[1].Name)
	assert.Positive(t, files[1].Size)
}

func TestLocalStorage_Delete(t *testing.T) {
	s, err := NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	_, err = s.Save("stats.json", []byte("{}"))
	require.NoError(t, err)
	require.NoError(t, s.Delete("stats.json"))
	require.NoError(t, s.Delete("stats.json"))

	files, err := s.List()
	require.NoError(t, err)
	assert.Empty(t, files)
}

func TestLocalStorage_CleanupOlderThan(t *testing.T) {
	s, err := NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	path, err := s.Save("old.csv", []byte("x"))
	require.NoError(t, err)
	stale := time.Now().Add(-2 * time.Hour)
	require.NoError(t, os.Chtimes(path, stale, stale))
	_, err = s.Save("fresh.csv", []byte("y"))
	require.NoError(t, err)

	deleted, err := s.CleanupOlderThan(time.Hour)
	require.NoError(t, err)
	assert.Equal(t, []string{"old.csv"}, deleted)

	files, err := s.List()
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Equal(t, "fresh.csv", files[0].Name)
}
