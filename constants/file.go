package constants

import "strings"

// AllowedExtensions holds the file extensions accepted by the upload boundary.
var AllowedExtensions = map[string]struct{}{
	"pdf": {},
}

// AllowedContentTypes holds the MIME types accepted by the upload boundary.
var AllowedContentTypes = map[string]struct{}{
	"application/pdf": {},
}

// MaxUploadMBDefault caps the size of an uploaded document.
const MaxUploadMBDefault = 10

// NormalizeExt lowercases and trims the dot from a file extension.
func NormalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}
