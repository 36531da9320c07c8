package utils

import (
	"os"
	"path/filepath"
	"runtime"

	"github.com/charmbracelet/log"
)

// PathResolver finds word list files and the config directory for the seedcheck binary
type PathResolver struct {
	executablePath string
	executableDir  string
	homeDir        string
	configDir      string
}

// NewPathResolver creates a new path resolver that determines the executable location.
// configDir is where <configDir>/lists is searched; empty means PlatformConfigDir.
func NewPathResolver(configDir string) (*PathResolver, error) {
	execPath, err := os.Executable()
	if err != nil {
		return nil, err
	}

	// Resolve any symlinks to get the actual binary location
	execPath, err = filepath.EvalSymlinks(execPath)
	if err != nil {
		return nil, err
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		log.Warnf("Could not determine home directory: %v", err)
		homeDir = os.TempDir()
	}

	if configDir == "" {
		configDir = PlatformConfigDir(homeDir)
	}

	pr := &PathResolver{
		executablePath: execPath,
		executableDir:  filepath.Dir(execPath),
		homeDir:        homeDir,
		configDir:      configDir,
	}

	log.Debugf("PathResolver initialized: exec=%s, execDir=%s, configDir=%s",
		pr.executablePath, pr.executableDir, pr.configDir)

	return pr, nil
}

// PlatformConfigDir returns the appropriate config directory for the platform
func PlatformConfigDir(homeDir string) string {
	switch runtime.GOOS {
	case "darwin":
		return filepath.Join(homeDir, ".config", "seedcheck")
	case "linux":
		if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
			return filepath.Join(configHome, "seedcheck")
		}
		return filepath.Join(homeDir, ".config", "seedcheck")
	case "windows":
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, "seedcheck")
		}
		return filepath.Join(homeDir, "AppData", "Roaming", "seedcheck")
	default:
		return filepath.Join(homeDir, ".seedcheck")
	}
}

// GetListFile resolves a word list file. It tries, in order:
// 1. the path itself (absolute, or relative to the working directory)
// 2. relative to the executable directory
// 3. the lists/ directory under the config directory
func (pr *PathResolver) GetListFile(userSpecifiedPath string) (string, error) {
	if userSpecifiedPath == "" {
		return "", nil
	}

	candidates := []string{userSpecifiedPath}
	if !filepath.IsAbs(userSpecifiedPath) {
		candidates = append(candidates,
			filepath.Join(pr.executableDir, userSpecifiedPath),
			filepath.Join(pr.configDir, "lists", userSpecifiedPath),
		)
	}

	for _, path := range candidates {
		if stat, err := os.Stat(path); err == nil && !stat.IsDir() {
			log.Debugf("Found word list: %s", path)
			return path, nil
		}
		log.Debugf("Word list candidate not found: %s", path)
	}

	return "", os.ErrNotExist
}
