// Package favicon draws the application icon and writes it where the web
// app picks it up.
//
// Resource exposes the same artwork as a fyne.Resource for desktop front
// ends that set window and app icons; the generator command itself only
// writes the PNG.
package favicon

import (
	"fmt"
	"path/filepath"
)

// OutputPath returns <anchorDir>/../src/app/icon.png as a clean absolute path.
func OutputPath(anchorDir string) (string, error) {
	path, err := filepath.Abs(filepath.Join(anchorDir, "..", "src", "app", "icon.png"))
	if err != nil {
		return "", fmt.Errorf("resolve output path: %w", err)
	}
	return path, nil
}

// GenerateIcon renders the default design and writes it to path.
func GenerateIcon(path string) error {
	img, err := Render(DefaultDesign())
	if err != nil {
		return fmt.Errorf("render icon: %w", err)
	}
	return WriteFile(path, img)
}

// Generate writes the icon relative to anchorDir and returns where it went.
func Generate(anchorDir string) (string, error) {
	path, err := OutputPath(anchorDir)
	if err != nil {
		return "", err
	}
	if err := GenerateIcon(path); err != nil {
		return "", err
	}
	return path, nil
}
