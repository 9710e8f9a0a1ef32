package mapper

import (
	"testing"

	"podcast-summarizer/internal/domain/entities"

	"github.com/stretchr/testify/assert"
)

func TestMediaToRelayRequests(t *testing.T) {
	rec := &entities.MediaRecord{
		ID:         "podcasts/1_a.mp4",
		StorageKey: "podcasts/1_a.mp4",
		URL:        "https://b.s3.eu-west-1.amazonaws.com/podcasts/1_a.mp4",
		Format:     entities.FormatVideo,
	}

	sum := MediaToSummarizeRequest(rec, "brief")
	assert.Equal(t, rec.URL, sum.S3URL)
	assert.Equal(t, rec.StorageKey, sum.S3Key)
	assert.Equal(t, "video", sum.Format)
	assert.Equal(t, "brief", sum.SummaryType)

	tr := MediaToTranscribeRequest(rec)
	assert.Equal(t, rec.URL, tr.S3URL)
	assert.Equal(t, "video", tr.Format)
}
