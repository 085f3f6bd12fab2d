// Package platform resolves the per-OS save directory for a project.
package platform

import (
	"fmt"
	"os"
	"path/filepath"
)

// SavePath returns the absolute save directory for a project on the given OS
// identifier (a runtime.GOOS value). The directory itself is not created;
// the store materializes it lazily on first write.
//
// Layout per platform:
//   - windows: %APPDATA%\<project>
//   - darwin:  ~/Library/Application Support/<project>
//   - other:   $XDG_DATA_HOME/<project>, or ~/.local/share/<project>
func SavePath(goos, project string) (string, error) {
	if project == "" {
		return "", fmt.Errorf("project name required")
	}
	switch goos {
	case "windows":
		if dir := os.Getenv("APPDATA"); dir != "" {
			return filepath.Join(dir, project), nil
		}
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		return filepath.Join(home, "AppData", "Roaming", project), nil
	case "darwin":
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		return filepath.Join(home, "Library", "Application Support", project), nil
	default:
		if dir := os.Getenv("XDG_DATA_HOME"); dir != "" {
			return filepath.Join(dir, project), nil
		}
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		return filepath.Join(home, ".local", "share", project), nil
	}
}
