package helper

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetMimeTypeFromExtension(t *testing.T) {
	tests := map[string]string{
		"episode1.mp3":  "audio/mpeg",
		"EPISODE.MP3":   "audio/mpeg",
		"talk.m4a":      "audio/mp4",
		"clip.mp4":      "video/mp4",
		"clip.webm":     "video/webm",
		"notes.txt":     "application/octet-stream",
		"no-extension":  "application/octet-stream",
		"dir/show.flac": "audio/flac",
	}
	for name, want := range tests {
		assert.Equal(t, want, GetMimeTypeFromExtension(name), name)
	}
}

func TestOptionalString(t *testing.T) {
	assert.Nil(t, OptionalString(""))
	assert.Nil(t, OptionalString("   "))
	if got := OptionalString("pilot"); assert.NotNil(t, got) {
		assert.Equal(t, "pilot", *got)
	}
}

func TestFirstNonEmpty(t *testing.T) {
	assert.Equal(t, "b", FirstNonEmpty("", "  ", "b", "c"))
	assert.Equal(t, "", FirstNonEmpty("", " "))
}
