// generate_favicon draws src/app/icon.png.
//
// The output is resolved against the directory of the executable:
//
//	go build -o scripts/generate-favicon ./cmd/generate_favicon
//	scripts/generate-favicon
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"favicongen/pkg/favicon"
	"favicongen/pkg/logging"
)

func main() {
	logger := logging.New(os.Stderr, "generate_favicon")

	dir, err := executableDir()
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to locate generator")
	}

	path, err := favicon.Generate(dir)
	if err != nil {
		logger.Fatal().Err(err).Str("anchor", dir).Msg("Failed to generate favicon")
	}
	fmt.Printf("Favicon created at %s\n", path)
}

func executableDir() (string, error) {
	execPath, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("find executable: %w", err)
	}
	return resolvedDir(execPath)
}

// resolvedDir returns the directory holding the real file behind execPath.
func resolvedDir(execPath string) (string, error) {
	execPath, err := filepath.EvalSymlinks(execPath)
	if err != nil {
		return "", fmt.Errorf("resolve symlinks: %w", err)
	}
	return filepath.Dir(execPath), nil
}
