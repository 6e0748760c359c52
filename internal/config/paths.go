// ABOUTME: Standard filesystem paths for keyprobe configuration
// ABOUTME: Resolves ~/.keyprobe/ for global and .keyprobe/ for project-local settings

package config

import (
	"os"
	"path/filepath"
)

const (
	dirName  = ".keyprobe"
	fileName = "config.yaml"
)

// GlobalDir returns the user-global config directory (~/.keyprobe/).
func GlobalDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", dirName)
	}
	return filepath.Join(home, dirName)
}

// ProjectDir returns the project-local config directory (.keyprobe/ under projectRoot).
func ProjectDir(projectRoot string) string {
	return filepath.Join(projectRoot, dirName)
}

// GlobalConfigFile returns the path to the global config file.
func GlobalConfigFile() string {
	return filepath.Join(GlobalDir(), fileName)
}

// ProjectConfigFile returns the path to the project-local config file.
func ProjectConfigFile(projectRoot string) string {
	return filepath.Join(ProjectDir(projectRoot), fileName)
}
