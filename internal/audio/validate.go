package audio

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"stemsep/internal/services"
)

var supportedExtensions = map[string]struct{}{
	".mp3":  {},
	".wav":  {},
	".flac": {},
	".ogg":  {},
	".m4a":  {},
}

// SupportedFormats returns the supported file extensions sorted
// lexicographically. Callers receive a fresh slice.
func SupportedFormats() []string {
	formats := make([]string, 0, len(supportedExtensions))
	for ext := range supportedExtensions {
		formats = append(formats, ext)
	}
	sort.Strings(formats)
	return formats
}

// ValidateFile checks that path names an existing regular file with a
// supported audio extension. Failures carry services.ErrValidation.
func ValidateFile(path string) error {
	if strings.TrimSpace(path) == "" {
		return services.Wrap(services.ErrValidation, "audio", "validate", "file path required", nil)
	}

	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return services.Wrap(services.ErrValidation, "audio", "validate",
				fmt.Sprintf("file not found: %s", path), nil)
		}
		return services.Wrap(services.ErrValidation, "audio", "validate", "inspect file", err)
	}
	if !info.Mode().IsRegular() {
		return services.Wrap(services.ErrValidation, "audio", "validate",
			fmt.Sprintf("path is not a file: %s", path), nil)
	}

	ext := strings.ToLower(filepath.Ext(path))
	if _, ok := supportedExtensions[ext]; !ok {
		return services.Wrap(services.ErrValidation, "audio", "validate",
			fmt.Sprintf("unsupported file extension %q (supported formats: %s)",
				ext, strings.Join(SupportedFormats(), ", ")), nil)
	}

	return nil
}
