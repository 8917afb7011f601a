// Package snapshot writes frames out as PNG files, mainly for headless
// runs and visual debugging.
package snapshot

import (
	"fmt"
	"image"
	"image/png"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/screenburn/screentest/screentest/video"
)

// Save writes the surface as a PNG named baseName plus a timestamp into
// directory (or the working directory when empty).
func Save(frame *video.Surface, baseName, directory string) error {
	width := frame.Width()
	height := frame.Height()

	// image.RGBA stores bytes as R,G,B,A, which matches the surface's
	// little-endian A8B8G8R8 packing, so pixels convert via Unpack only.
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			r, g, b := video.Unpack(frame.GetPixel(x, y))
			idx := img.PixOffset(x, y)
			img.Pix[idx] = r
			img.Pix[idx+1] = g
			img.Pix[idx+2] = b
			img.Pix[idx+3] = 0xFF
		}
	}

	if directory == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("failed to get current directory: %v", err)
		}
		directory = cwd
	}

	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.png", baseName, timestamp)
	filePath := filepath.Join(directory, filename)

	file, err := os.Create(filePath)
	if err != nil {
		return fmt.Errorf("failed to create file %s: %v", filePath, err)
	}
	defer file.Close()

	if err := png.Encode(file, img); err != nil {
		return fmt.Errorf("failed to encode PNG: %v", err)
	}

	slog.Info("Snapshot saved", "path", filePath, "size", fmt.Sprintf("%dx%d", width, height))
	return nil
}

// PrepareDir resolves and creates the snapshot output directory, creating
// a temporary one when none is specified.
func PrepareDir(directory string) (string, error) {
	if directory == "" {
		tempDir, err := os.MkdirTemp("", "screentest-snapshots-*")
		if err != nil {
			return "", fmt.Errorf("failed to create snapshot directory: %v", err)
		}
		return tempDir, nil
	}
	if err := os.MkdirAll(directory, 0755); err != nil {
		return "", fmt.Errorf("failed to create snapshot directory: %v", err)
	}
	return directory, nil
}
