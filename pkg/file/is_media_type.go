package file

import "strings"

func IsAudioType(contentType string) bool {
	return strings.HasPrefix(strings.ToLower(strings.TrimSpace(contentType)), "audio/")
}

func IsVideoType(contentType string) bool {
	return strings.HasPrefix(strings.ToLower(strings.TrimSpace(contentType)), "video/")
}

// IsMediaType accepts only declared audio/* or video/* types.
func IsMediaType(contentType string) bool {
	return IsAudioType(contentType) || IsVideoType(contentType)
}
