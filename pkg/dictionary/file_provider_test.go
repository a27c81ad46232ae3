package dictionary

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func writeManifest(t *testing.T, path, body string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
}

func TestFileProviderLoadsValidatesAndWatches(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "manifest.json")
	writeManifest(t, path, sampleManifest)

	fp, err := NewFileProvider(path, nil)
	require.NoError(t, err)
	defer fp.Close()

	ctx := context.Background()
	infos, err := fp.Dictionaries(ctx)
	require.NoError(t, err)
	require.Len(t, infos, 2)

	tags, err := fp.Tags(ctx)
	require.NoError(t, err)
	require.Len(t, tags, 1)

	// Rewrite the manifest with a third dictionary kind and wait for the
	// fsnotify-driven reload to pick it up.
	updated := `{
		"dictionaries": [
			{"kind": "noun", "words": ["cat", "dog", "house"], "tags": [
				{"tag": "animal", "description": "animals", "opt_in": false, "words": ["cat", "dog"]}
			]},
			{"kind": "adjective", "words": ["red", "blue"]},
			{"kind": "verb", "words": ["run", "jump", "swim"]}
		]
	}`
	writeManifest(t, path, updated)

	deadline := time.Now().Add(5 * time.Second)
	for {
		infos, err = fp.Dictionaries(ctx)
		require.NoError(t, err)
		if len(infos) == 3 {
			break
		}
		if time.Now().After(deadline) {
			t.Fatalf("manifest reload did not pick up third dictionary kind within deadline, last infos=%v", infos)
		}
		time.Sleep(20 * time.Millisecond)
	}
}

func TestFileProviderRejectsInvalidManifestOnInitialLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "manifest.json")
	writeManifest(t, path, `{"dictionaries": [{"kind": "noun"}]}`)

	_, err := NewFileProvider(path, nil)
	require.Error(t, err)
}

func TestFileProviderIgnoresInvalidManifestOnReload(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "manifest.json")
	writeManifest(t, path, sampleManifest)

	fp, err := NewFileProvider(path, nil)
	require.NoError(t, err)
	defer fp.Close()

	// A later write that is not a valid manifest must not clobber the last
	// good snapshot; the provider keeps serving it.
	writeManifest(t, path, `not json at all`)
	time.Sleep(200 * time.Millisecond)

	infos, err := fp.Dictionaries(context.Background())
	require.NoError(t, err)
	require.Len(t, infos, 2)
}

func TestFileProviderCloseStopsWatching(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "manifest.json")
	writeManifest(t, path, sampleManifest)

	fp, err := NewFileProvider(path, nil)
	require.NoError(t, err)
	require.NoError(t, fp.Close())
	require.NoError(t, fp.Close(), "Close must be idempotent")
}
