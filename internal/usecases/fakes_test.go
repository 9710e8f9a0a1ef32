package usecases

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/textproto"
	"sync"
	"testing"
	"time"

	"podcast-summarizer/internal/domain/dto"

	"github.com/stretchr/testify/require"
)

type storedObject struct {
	key         string
	contentType string
	body        []byte
}

type fakeStorage struct {
	mu       sync.Mutex
	writes   []storedObject
	writeErr error
	signErr  error
	pingErr  error
	pings    int
}

func (f *fakeStorage) Write(ctx context.Context, key string, body io.Reader, size int64, contentType string) (*dto.WriteMeta, error) {
	if f.writeErr != nil {
		return nil, f.writeErr
	}
	data, err := io.ReadAll(body)
	if err != nil {
		return nil, err
	}
	f.mu.Lock()
	f.writes = append(f.writes, storedObject{key: key, contentType: contentType, body: data})
	f.mu.Unlock()
	return &dto.WriteMeta{Key: key, Size: int64(len(data)), ContentType: contentType}, nil
}

func (f *fakeStorage) SignedReadURL(ctx context.Context, key string, ttl time.Duration) (string, error) {
	if f.signErr != nil {
		return "", f.signErr
	}
	return fmt.Sprintf("https://signed.example.com/%s?ttl=%d", key, int(ttl.Seconds())), nil
}

func (f *fakeStorage) PublicURL(key string) string {
	return "https://podcasts-bucket.s3.us-east-1.amazonaws.com/" + key
}

func (f *fakeStorage) Ping(ctx context.Context) error {
	f.mu.Lock()
	f.pings++
	f.mu.Unlock()
	return f.pingErr
}

func (f *fakeStorage) writeCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.writes)
}

// stepClock advances one millisecond per call.
func stepClock(start time.Time) func() time.Time {
	var mu sync.Mutex
	cur := start
	return func() time.Time {
		mu.Lock()
		defer mu.Unlock()
		t := cur
		cur = cur.Add(time.Millisecond)
		return t
	}
}

func newFileHeader(t *testing.T, filename, contentType string, content []byte) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="podcast"; filename="%s"`, filename))
	if contentType != "" {
		h.Set("Content-Type", contentType)
	}
	part, err := w.CreatePart(h)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	form, err := multipart.NewReader(&buf, w.Boundary()).ReadForm(1 << 20)
	require.NoError(t, err)
	t.Cleanup(func() { _ = form.RemoveAll() })

	return form.File["podcast"][0]
}
