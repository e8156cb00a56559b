package storage

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/elenalowe/tasktide/internal/domain"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func sampleSnapshot() Snapshot {
	due := time.Date(2025, 6, 20, 18, 0, 0, 0, time.UTC)
	return Snapshot{
		Tasks: []domain.Task{
			{
				ID:        1,
				Title:     "Buy milk",
				Category:  "personal",
				Priority:  domain.PriorityHigh,
				CreatedAt: time.Date(2025, 6, 15, 9, 30, 0, 0, time.UTC),
				DueDate:   &due,
				Subtasks:  []domain.Subtask{{ID: 1, Title: "find wallet", Completed: true}},
				TimeSpent: 25,
				Tags:      []string{"errands"},
			},
		},
		Categories: []string{"work", "personal"},
		Sessions: []domain.SessionRecord{
			{TaskID: 1, Minutes: 25, CompletedAt: time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)},
		},
		CompactView: true,
	}
}

func TestPersister_RoundTrip(t *testing.T) {
	kv := NewMemKV()
	p := NewPersister(kv, discardLogger())

	want := sampleSnapshot()
	p.Save(want)
	got := p.Load()

	require.Len(t, got.Tasks, 1)
	assert.Equal(t, want.Tasks[0].Title, got.Tasks[0].Title)
	assert.True(t, want.Tasks[0].CreatedAt.Equal(got.Tasks[0].CreatedAt))
	require.NotNil(t, got.Tasks[0].DueDate)
	assert.True(t, want.Tasks[0].DueDate.Equal(*got.Tasks[0].DueDate))
	assert.Equal(t, want.Tasks[0].Subtasks, got.Tasks[0].Subtasks)
	assert.Equal(t, want.Categories, got.Categories)
	require.Len(t, got.Sessions, 1)
	assert.True(t, want.Sessions[0].CompletedAt.Equal(got.Sessions[0].CompletedAt))
	assert.True(t, got.CompactView)
}

func TestPersister_Load_FirstRunDefaults(t *testing.T) {
	p := NewPersister(NewMemKV(), discardLogger())

	got := p.Load()
	assert.Empty(t, got.Tasks)
	assert.Empty(t, got.Categories)
	assert.Empty(t, got.Sessions)
}

func TestPersister_Load_MalformedDegrades(t *testing.T) {
	kv := NewMemKV()
	require.NoError(t, kv.Set(StateKey, []byte("{not json")))

	p := NewPersister(kv, discardLogger())
	got := p.Load()
	assert.Empty(t, got.Tasks, "malformed document must degrade to defaults")
}

func TestPersister_Clear(t *testing.T) {
	kv := NewMemKV()
	p := NewPersister(kv, discardLogger())

	p.Save(sampleSnapshot())
	p.Clear()

	_, ok, err := kv.Get(StateKey)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestBackup_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "backup.json")
	snap := sampleSnapshot()
	want := Backup{Tasks: snap.Tasks, Categories: snap.Categories, Sessions: snap.Sessions}

	require.NoError(t, ExportBackup(path, want))

	got, err := ImportBackup(path)
	require.NoError(t, err)
	assert.Equal(t, want.Categories, got.Categories)
	require.Len(t, got.Tasks, 1)
	assert.True(t, want.Tasks[0].CreatedAt.Equal(got.Tasks[0].CreatedAt))
	require.Len(t, got.Sessions, 1)
	assert.Equal(t, want.Sessions[0].Minutes, got.Sessions[0].Minutes)
}

func TestImportBackup_Malformed(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name string
		body string
	}{
		{"not json", "{oops"},
		{"missing tasks", `{"categories":[]}`},
		{"missing categories", `{"tasks":[]}`},
		{"untitled task", `{"tasks":[{"id":1,"title":""}],"categories":[]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, tt.name+".json")
			require.NoError(t, os.WriteFile(path, []byte(tt.body), 0644))

			_, err := ImportBackup(path)
			assert.ErrorIs(t, err, domain.ErrMalformedBackup)
		})
	}
}

func TestFileKV(t *testing.T) {
	dir := t.TempDir()
	kv, err := NewFileKV(filepath.Join(dir, "data"))
	require.NoError(t, err)

	_, ok, err := kv.Get("state")
	require.NoError(t, err)
	assert.False(t, ok, "unwritten key reads as absent")

	require.NoError(t, kv.Set("state", []byte(`{}`)))
	data, ok, err := kv.Get("state")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []byte(`{}`), data)

	require.NoError(t, kv.Delete("state"))
	require.NoError(t, kv.Delete("state"), "double delete is a no-op")
	_, ok, _ = kv.Get("state")
	assert.False(t, ok)
}
