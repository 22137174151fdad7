// Package docpath maps logical intro keys onto source file names.
package docpath

import "strings"

// FormatKey converts a logical key into the relative file name it is
// served from: a trailing ext is stripped, remaining dots become
// underscores, and ext is appended. "experimental.storage" with ext
// ".html" becomes "experimental_storage.html". The dot replacement also
// destroys ".." segments, so keys cannot climb out of a base path.
func FormatKey(key, ext string) string {
	key = strings.TrimSuffix(key, ext)
	key = strings.ReplaceAll(key, ".", "_")
	return key + ext
}
