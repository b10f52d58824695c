// Package pathcheck validates user-supplied input file paths before they are read.
package pathcheck

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
)

// Validate reports whether path names an existing regular file whose extension
// matches fileType (e.g. "JSON" -> ".json", case-insensitive). The message
// describes the first failed check, or confirms the path is valid.
func Validate(path, fileType string) (bool, string) {
	if path == "" {
		return false, fmt.Sprintf("%s file path must not be empty", fileType)
	}

	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, fmt.Sprintf("%s file '%s' does not exist", fileType, path)
		}
		return false, fmt.Sprintf("%s file '%s' cannot be accessed: %v", fileType, path, err)
	}

	if !info.Mode().IsRegular() {
		return false, fmt.Sprintf("'%s' is not a valid file", path)
	}

	expectedExt := "." + strings.ToLower(fileType)
	if !strings.HasSuffix(strings.ToLower(path), expectedExt) {
		return false, fmt.Sprintf("file '%s' is not %s (expected %s)", path, fileType, expectedExt)
	}

	return true, "path is valid"
}
