package storage

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeS3 struct {
	mu          sync.Mutex
	calls       int
	method      string
	path        string
	contentType string
	body        []byte
	status      int
}

func (f *fakeS3) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.calls++
	f.method = r.Method
	f.path = r.URL.Path
	f.contentType = r.Header.Get("Content-Type")
	f.body, _ = io.ReadAll(r.Body)

	if f.status != 0 && f.status != http.StatusOK {
		w.Header().Set("Content-Type", "application/xml")
		w.WriteHeader(f.status)
		_, _ = w.Write([]byte(`<?xml version="1.0" encoding="UTF-8"?><Error><Code>SlowDown</Code><Message>busy</Message></Error>`))
		return
	}
	w.Header().Set("ETag", `"abc123"`)
	w.WriteHeader(http.StatusOK)
}

func newTestS3(t *testing.T, fake *fakeS3) *S3Storage {
	t.Helper()
	srv := httptest.NewServer(fake)
	t.Cleanup(srv.Close)

	s, err := NewS3Storage(context.Background(), S3Options{
		Bucket:          "test-bucket",
		Region:          "us-east-1",
		AccessKeyID:     "AKIDEXAMPLE",
		SecretAccessKey: "secret",
		Endpoint:        srv.URL,
		UsePathStyle:    true,
	})
	require.NoError(t, err)
	return s
}

func TestS3WriteSendsObject(t *testing.T) {
	fake := &fakeS3{}
	s := newTestS3(t, fake)

	payload := []byte("ID3 fake mp3 payload")
	meta, err := s.Write(context.Background(), "podcasts/1_episode.mp3", bytes.NewReader(payload), int64(len(payload)), "audio/mpeg")
	require.NoError(t, err)

	assert.Equal(t, 1, fake.calls)
	assert.Equal(t, http.MethodPut, fake.method)
	assert.Equal(t, "/test-bucket/podcasts/1_episode.mp3", fake.path)
	assert.Equal(t, "audio/mpeg", fake.contentType)
	assert.Contains(t, string(fake.body), string(payload))

	assert.Equal(t, "podcasts/1_episode.mp3", meta.Key)
	assert.Equal(t, "abc123", meta.ETag)
	assert.Equal(t, int64(len(payload)), meta.Size)
	assert.Len(t, meta.SHA256, 64)
}

func TestS3WriteDoesNotRetry(t *testing.T) {
	fake := &fakeS3{status: http.StatusServiceUnavailable}
	s := newTestS3(t, fake)

	_, err := s.Write(context.Background(), "podcasts/1_a.mp3", bytes.NewReader([]byte("x")), 1, "audio/mpeg")
	require.Error(t, err)
	assert.Equal(t, 1, fake.calls)
}

func TestS3Ping(t *testing.T) {
	fake := &fakeS3{}
	s := newTestS3(t, fake)

	require.NoError(t, s.Ping(context.Background()))
	assert.Equal(t, http.MethodHead, fake.method)
	assert.Equal(t, "/test-bucket", fake.path)
}

func TestS3SignedReadURL(t *testing.T) {
	s := newTestS3(t, &fakeS3{})

	raw, err := s.SignedReadURL(context.Background(), "podcasts/1_a.mp3", 15*time.Minute)
	require.NoError(t, err)

	u, err := url.Parse(raw)
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(u.Path, "/test-bucket/podcasts/1_a.mp3"))
	assert.Equal(t, "900", u.Query().Get("X-Amz-Expires"))
	assert.NotEmpty(t, u.Query().Get("X-Amz-Signature"))
}

func TestS3PublicURL(t *testing.T) {
	s := &S3Storage{bucketName: "media", region: "eu-central-1"}
	assert.Equal(t,
		"https://media.s3.eu-central-1.amazonaws.com/podcasts/1700000000000_Episode%201.mp3",
		s.PublicURL("podcasts/1700000000000_Episode 1.mp3"),
	)

	custom := &S3Storage{bucketName: "media", endpoint: "http://minio:9000", pathStyle: true}
	assert.Equal(t, "http://minio:9000/media/podcasts/1_a.mp3", custom.PublicURL("podcasts/1_a.mp3"))

	virtual := &S3Storage{bucketName: "media", endpoint: "https://objects.example.com"}
	assert.Equal(t, "https://media.objects.example.com/podcasts/1_a.mp3", virtual.PublicURL("podcasts/1_a.mp3"))
}
