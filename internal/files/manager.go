package files

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const (
	dirPermissions  = 0o755
	filePermissions = 0o644

	configFileName = "config.yaml"
	reportsDirName = "reports"
)

// Manager centralizes where hari keeps files on disk and how they are named.
type Manager struct {
	basePath string
}

// NewManager constructs a Manager rooted at the provided directory. If basePath
// is empty, it falls back to ~/.hari (or another location determined by
// ResolveBasePath).
func NewManager(basePath string) (*Manager, error) {
	var err error
	if basePath == "" {
		basePath, err = ResolveBasePath()
		if err != nil {
			return nil, err
		}
	}
	abs, err := filepath.Abs(basePath)
	if err != nil {
		return nil, err
	}

	return &Manager{basePath: abs}, nil
}

// BasePath returns the root directory.
func (m *Manager) BasePath() string {
	return m.basePath
}

// ConfigPath resolves the YAML config file. The file may not exist.
func (m *Manager) ConfigPath() string {
	return filepath.Join(m.basePath, configFileName)
}

// ReportPath resolves the JSON export for a report label such as
// "2024-04-01_2024-04-30".
func (m *Manager) ReportPath(label string) string {
	return filepath.Join(m.basePath, reportsDirName, sanitizeLabel(label)+".json")
}

// WriteReport atomically replaces the export for label with data and returns
// its path.
func (m *Manager) WriteReport(label string, data []byte) (string, error) {
	if m == nil {
		return "", errors.New("files.Manager is nil")
	}

	path := m.ReportPath(label)
	if err := writeFileAtomic(path, data); err != nil {
		return "", fmt.Errorf("write report: %w", err)
	}
	return path, nil
}

// WriteConfig writes data as the config file unless one already exists.
func (m *Manager) WriteConfig(data []byte) (string, error) {
	if m == nil {
		return "", errors.New("files.Manager is nil")
	}

	path := m.ConfigPath()
	if _, err := os.Stat(path); err == nil {
		return path, fmt.Errorf("config already exists at %s", path)
	}
	if err := writeFileAtomic(path, data); err != nil {
		return "", fmt.Errorf("write config: %w", err)
	}
	return path, nil
}

func sanitizeLabel(label string) string {
	label = strings.TrimSpace(label)
	if label == "" {
		return "report"
	}
	return strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', ':', ' ':
			return '_'
		}
		return r
	}, label)
}

func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, dirPermissions); err != nil {
		return fmt.Errorf("create directories: %w", err)
	}

	temp, err := os.CreateTemp(dir, "hari-*")
	if err != nil {
		return err
	}
	defer os.Remove(temp.Name())

	if _, err := temp.Write(data); err != nil {
		temp.Close()
		return err
	}
	if err := temp.Sync(); err != nil {
		temp.Close()
		return err
	}
	if err := temp.Close(); err != nil {
		return err
	}
	if err := os.Chmod(temp.Name(), filePermissions); err != nil {
		return err
	}

	return os.Rename(temp.Name(), path)
}
