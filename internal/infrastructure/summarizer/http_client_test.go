package summarizer

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"podcast-summarizer/internal/domain/dto"
	apperrors "podcast-summarizer/pkg/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func summarizeReq() *dto.SummarizeRequestDTO {
	return &dto.SummarizeRequestDTO{
		S3URL:       "https://bucket.s3.us-east-1.amazonaws.com/podcasts/1_a.mp3",
		S3Key:       "podcasts/1_a.mp3",
		Format:      "audio",
		SummaryType: "brief",
	}
}

func TestSummarizeRelaysBodyVerbatim(t *testing.T) {
	const upstream = `{"summary":"s","key_points":["a","b"],"transcript":"t","duration_seconds":12.5,"summary_type":"brief","extra":true}`

	var got dto.SummarizeRequestDTO
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/summarize", r.URL.Path)
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Contains(t, r.Header.Get("Content-Type"), "application/json")
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(upstream))
	}))
	defer srv.Close()

	c := NewHTTPClient(srv.URL+"/", zap.NewNop())
	body, err := c.Summarize(context.Background(), summarizeReq())
	require.NoError(t, err)

	assert.JSONEq(t, upstream, string(body))
	assert.Equal(t, *summarizeReq(), got)
}

func TestTranscribePath(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/transcribe", r.URL.Path)
		_, _ = w.Write([]byte(`{"transcript":"hello","language":"en"}`))
	}))
	defer srv.Close()

	c := NewHTTPClient(srv.URL, zap.NewNop())
	body, err := c.Transcribe(context.Background(), &dto.TranscribeRequestDTO{S3URL: "https://x/y", S3Key: "y", Format: "audio"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"transcript":"hello","language":"en"}`, string(body))
}

func TestSummarizeUpstreamErrors(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		message string
	}{
		{"fastapi detail", http.StatusInternalServerError, `{"detail":"Summarization failed: boom"}`, "Summarization failed: boom"},
		{"error field", http.StatusBadRequest, `{"error":"bad format"}`, "bad format"},
		{"raw text", http.StatusBadGateway, "upstream exploded", "upstream exploded"},
		{"detail list", http.StatusUnprocessableEntity, `{"detail":[{"loc":["body"],"msg":"field required"}]}`, `{"detail":[{"loc":["body"],"msg":"field required"}]}`},
		{"empty json", http.StatusInternalServerError, `{}`, defaultFailureMessage},
		{"empty body", http.StatusInternalServerError, "", defaultFailureMessage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			_, err := NewHTTPClient(srv.URL, zap.NewNop()).Summarize(context.Background(), summarizeReq())
			var ae *apperrors.AppError
			require.ErrorAs(t, err, &ae)
			assert.Equal(t, apperrors.CodeSummarizerError, ae.Code)
			assert.Equal(t, tt.status, ae.Status)
			assert.Equal(t, tt.message, ae.Message)
		})
	}
}

func TestSummarizeUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	addr := srv.URL
	srv.Close()

	_, err := NewHTTPClient(addr, zap.NewNop()).Summarize(context.Background(), summarizeReq())
	var ae *apperrors.AppError
	require.ErrorAs(t, err, &ae)
	assert.Equal(t, apperrors.CodeSummarizerUnreachable, ae.Code)
}
