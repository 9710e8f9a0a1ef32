package file

import (
	"path"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// MakeKey builds the object key "<prefix>/<unix_millis>_<filename>".
// The key is the only addressable identifier of an upload, keep the layout stable.
func MakeKey(prefix string, at time.Time, filename string) string {
	prefix = strings.Trim(prefix, "/")
	name := SafeFilename(filename)
	return prefix + "/" + strconv.FormatInt(at.UnixMilli(), 10) + "_" + name
}

// SafeFilename strips any directory part a client may have sent.
func SafeFilename(filename string) string {
	name := filepath.Base(strings.ReplaceAll(filename, "\\", "/"))
	if name == "." || name == "/" {
		return ""
	}
	return name
}

// HasPrefix reports whether key lives under prefix. Keys that are not in clean
// form, such as ones with ".." segments, never match.
func HasPrefix(key, prefix string) bool {
	prefix = strings.Trim(prefix, "/") + "/"
	if !strings.HasPrefix(key, prefix) || len(key) <= len(prefix) {
		return false
	}
	return path.Clean(key) == key
}
