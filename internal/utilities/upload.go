// Package utilities contains small helpers shared across the app.
package utilities

import (
	"fmt"
	"path/filepath"
	"strings"
)

// MaxResumeSize is the upload size ceiling checked before any backend call.
const MaxResumeSize = 5 << 20

// AllowedResumeExtensions is the accepted-type allow-list for resume
// uploads, checked client-side before the file leaves this app.
var AllowedResumeExtensions = []string{".pdf", ".doc", ".docx", ".txt"}

// ValidateResumeFile rejects files outside the accepted extension set or
// over the size limit, with a distinct reason for each case. It performs no
// I/O; callers must not have contacted the backend yet.
func ValidateResumeFile(filename string, size int64) error {
	ext := strings.ToLower(filepath.Ext(filename))
	if !Contains(AllowedResumeExtensions, ext) {
		return fmt.Errorf("file type %q is not allowed; accepted types: %s",
			ext, strings.Join(AllowedResumeExtensions, ", "))
	}
	if size > MaxResumeSize {
		return fmt.Errorf("file is too large (%d bytes); maximum size is %d bytes", size, int64(MaxResumeSize))
	}
	return nil
}

// Contains reports whether slice holds s.
func Contains(slice []string, s string) bool {
	for _, v := range slice {
		if v == s {
			return true
		}
	}
	return false
}
