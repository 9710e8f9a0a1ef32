package storage

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalStorageWrite(t *testing.T) {
	dir := t.TempDir()
	l, err := NewLocalStorage(dir, "http://localhost:3000/files/")
	require.NoError(t, err)

	meta, err := l.Write(context.Background(), "podcasts/1_episode.mp3", strings.NewReader("hello"), 5, "audio/mpeg")
	require.NoError(t, err)
	assert.Equal(t, int64(5), meta.Size)
	assert.Equal(t, "2cf24dba5fb0a30e26e83b2ac5b9e29e1b161e5c1fa7425e73043362938b9824", meta.SHA256)

	data, err := os.ReadFile(filepath.Join(dir, "podcasts", "1_episode.mp3"))
	require.NoError(t, err)
	assert.Equal(t, "hello", string(data))

	entries, err := os.ReadDir(filepath.Join(dir, "podcasts"))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp file should be renamed away")
}

func TestLocalStorageRejectsEscapingKeys(t *testing.T) {
	l, err := NewLocalStorage(t.TempDir(), "http://localhost/files")
	require.NoError(t, err)

	_, err = l.Write(context.Background(), "../outside.mp3", strings.NewReader("x"), 1, "audio/mpeg")
	assert.Error(t, err)
}

func TestLocalStorageAcceptsDotsInsideNames(t *testing.T) {
	dir := t.TempDir()
	l, err := NewLocalStorage(dir, "http://localhost/files")
	require.NoError(t, err)

	_, err = l.Write(context.Background(), "podcasts/1_ep..1.mp3", strings.NewReader("x"), 1, "audio/mpeg")
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(dir, "podcasts", "1_ep..1.mp3"))
}

func TestLocalStorageURLs(t *testing.T) {
	l, err := NewLocalStorage(t.TempDir(), "http://localhost:3000/files/")
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:3000/files/podcasts/1_my%20show.mp3", l.PublicURL("podcasts/1_my show.mp3"))

	_, err = l.SignedReadURL(context.Background(), "podcasts/1_a.mp3", time.Minute)
	assert.ErrorIs(t, err, ErrSignedURLUnsupported)
}

func TestLocalStoragePing(t *testing.T) {
	dir := t.TempDir()
	l, err := NewLocalStorage(filepath.Join(dir, "objects"), "http://localhost/files")
	require.NoError(t, err)
	require.NoError(t, l.Ping(context.Background()))

	require.NoError(t, os.RemoveAll(l.BasePath))
	assert.Error(t, l.Ping(context.Background()))
}

func TestLocalStorageHonoursCancelledContext(t *testing.T) {
	l, err := NewLocalStorage(t.TempDir(), "http://localhost/files")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = l.Write(ctx, "podcasts/1_a.mp3", strings.NewReader("x"), 1, "audio/mpeg")
	assert.ErrorIs(t, err, context.Canceled)
}
