package render

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/cwbudde/algo-spectrogram/dsp/stft"
)

// ExportPDF writes the figure to <dir>/<name>.pdf and returns the written
// path. The directory must exist; name is the base file name without
// extension.
func ExportPDF(fig stft.Figure, dir, name string) (string, error) {
	if fig == nil {
		return "", ErrNoFigure
	}

	if name == "" {
		return "", ErrEmptyName
	}

	path := filepath.Join(dir, name+".pdf")

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("render: create %q: %w", path, err)
	}

	if _, err := fig.WriteTo(f); err != nil {
		f.Close()
		return "", fmt.Errorf("render: write %q: %w", path, err)
	}

	if err := f.Close(); err != nil {
		return "", fmt.Errorf("render: close %q: %w", path, err)
	}

	return path, nil
}

// DesktopDir returns the current user's desktop directory, the conventional
// <home>/Desktop on all supported platforms.
func DesktopDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("render: resolve home directory: %w", err)
	}

	return filepath.Join(home, "Desktop"), nil
}
