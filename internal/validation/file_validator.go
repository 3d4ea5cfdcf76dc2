// Package validation provides filesystem checks for the processor command:
// source files must exist with a supported extension before parsing starts,
// and the report directory must be writable before the pipeline runs.
package validation

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// supportedExtensions lists the table formats the readers can decode.
var supportedExtensions = map[string]bool{
	".csv":  true,
	".txt":  true,
	".xlsx": true,
}

// FileValidator checks source and output paths up front so the pipeline
// fails with a clear message instead of partway through a run.
type FileValidator struct {
	logger *slog.Logger
}

// NewFileValidator creates a new file validator.
func NewFileValidator(logger *slog.Logger) *FileValidator {
	if logger == nil {
		logger = slog.Default()
	}
	return &FileValidator{logger: logger}
}

// ValidateSourceFile verifies that path points at a regular, non-empty file
// with an extension one of the table readers understands.
func (v *FileValidator) ValidateSourceFile(path string) error {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		v.logger.Error("source file does not exist",
			slog.String("path", path))
		return fmt.Errorf("source file %s does not exist", path)
	}
	if err != nil {
		return fmt.Errorf("failed to stat source file %s: %w", path, err)
	}
	if info.IsDir() {
		v.logger.Error("source path is a directory",
			slog.String("path", path))
		return fmt.Errorf("%s is a directory, expected a file", path)
	}
	if info.Size() == 0 {
		v.logger.Error("source file is empty",
			slog.String("path", path))
		return fmt.Errorf("source file %s is empty", path)
	}

	ext := strings.ToLower(filepath.Ext(path))
	if !supportedExtensions[ext] {
		v.logger.Error("unsupported source file extension",
			slog.String("path", path),
			slog.String("extension", ext))
		return fmt.Errorf("unsupported source file extension %q for %s", ext, path)
	}

	v.logger.Info("source file validated",
		slog.String("path", path),
		slog.Int64("size_bytes", info.Size()))
	return nil
}

// ValidateOutputDirectory ensures the report directory exists or can be
// created, and that it is writable.
func (v *FileValidator) ValidateOutputDirectory(dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		v.logger.Error("failed to create output directory",
			slog.String("directory", dir),
			slog.String("error", err.Error()))
		return fmt.Errorf("failed to create output directory %s: %w", dir, err)
	}

	testFile := filepath.Join(dir, ".write_test")
	file, err := os.Create(testFile)
	if err != nil {
		v.logger.Error("output directory is not writable",
			slog.String("directory", dir),
			slog.String("error", err.Error()))
		return fmt.Errorf("output directory %s is not writable: %w", dir, err)
	}
	file.Close()
	os.Remove(testFile)

	v.logger.Info("output directory validated",
		slog.String("directory", dir))
	return nil
}
