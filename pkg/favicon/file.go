package favicon

import (
	"bytes"
	"fmt"
	"image"
	"os"
	"path/filepath"
)

// WriteFile encodes img and replaces path with it. The parent directory must
// already exist. The bytes go to a temp file next to path first, so the
// target is either the old file or the complete new one.
func WriteFile(path string, img image.Image) error {
	dir := filepath.Dir(path)
	info, err := os.Stat(dir)
	if err != nil {
		return fmt.Errorf("output directory: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("output directory %s: not a directory", dir)
	}

	var buf bytes.Buffer
	if err := EncodePNG(&buf, img); err != nil {
		return err
	}

	tmpFile, err := os.CreateTemp(dir, ".icon-*.png")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmpFile.Name()
	defer os.Remove(tmpPath)

	if _, err := tmpFile.Write(buf.Bytes()); err != nil {
		tmpFile.Close()
		return fmt.Errorf("write icon: %w", err)
	}
	if err := tmpFile.Sync(); err != nil {
		tmpFile.Close()
		return fmt.Errorf("sync icon: %w", err)
	}
	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("close icon: %w", err)
	}
	if err := os.Chmod(tmpPath, 0644); err != nil {
		return fmt.Errorf("chmod: %w", err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("install icon: %w", err)
	}
	return nil
}
