// ABOUTME: Shared fixtures for pipeline stage tests
// ABOUTME: Stages run against in-memory SQLite and the scripted llmtest client
package core

import (
	"context"
	"io/fs"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/require"

	"github.com/harper/blogbench/internal/storage"
)

type testStores struct {
	db        *storage.DB
	docs      *storage.DocumentStore
	prompts   *storage.PromptStore
	generated *storage.GeneratedStore
}

func newTestStores(t *testing.T) *testStores {
	t.Helper()
	db, err := storage.OpenInMemory()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	return &testStores{
		db:        db,
		docs:      storage.NewDocumentStore(db),
		prompts:   storage.NewPromptStore(db),
		generated: storage.NewGeneratedStore(db),
	}
}

// ingest loads files as blog posts and fails the test on any non-success
func (s *testStores) ingest(t *testing.T, files fstest.MapFS) {
	t.Helper()
	report, err := NewIngestor(s.docs, nil).Run(context.Background(), files, IngestOptions{
		DocType: "blog_post",
		Mode:    storage.WriteUpsert,
	})
	require.NoError(t, err)
	require.Equal(t, len(files), report.Count(StatusSucceeded), report.Summary())
}

// failingFS is a MapFS whose ReadFile fails for one name
type failingFS struct {
	fstest.MapFS
	fail string
	err  error
}

func (f failingFS) ReadFile(name string) ([]byte, error) {
	if name == f.fail {
		return nil, &fs.PathError{Op: "read", Path: name, Err: f.err}
	}
	return f.MapFS.ReadFile(name)
}
