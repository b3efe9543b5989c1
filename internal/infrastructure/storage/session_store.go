package storage

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"thermo-agent/internal/domain/entity"
	"thermo-agent/internal/domain/port"
)

// SessionStore хранилище сессий на диске: root/<session>/<PHASE>_<VIEW>.xlsx|csv.
type SessionStore struct {
	root string
}

// NewSessionStore создаёт хранилище с корнем root.
func NewSessionStore(root string) *SessionStore {
	return &SessionStore{root: root}
}

// Root возвращает корневой каталог сессий.
func (s *SessionStore) Root() string {
	return s.root
}

// ListSessions возвращает имена подкаталогов корня по алфавиту.
// Отсутствующий корень означает, что сессий нет.
func (s *SessionStore) ListSessions(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	entries, err := os.ReadDir(s.root)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []string{}, nil
		}
		return nil, fmt.Errorf("read data dir: %w", err)
	}

	sessions := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() && !strings.HasPrefix(e.Name(), ".") {
			sessions = append(sessions, e.Name())
		}
	}
	sort.Strings(sessions)
	return sessions, nil
}

// LoadSession загружает все снимки сессии. Если для имени есть и .xlsx, и .csv,
// используется .xlsx.
func (s *SessionStore) LoadSession(ctx context.Context, sessionID string) (map[string]*entity.TemperatureGrid, error) {
	dir, err := s.SessionDir(sessionID)
	if err != nil {
		return nil, err
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read session dir: %w", err)
	}

	files := make(map[string]string)
	for _, ext := range gridExtensions {
		for _, e := range entries {
			if e.IsDir() || !strings.EqualFold(filepath.Ext(e.Name()), ext) {
				continue
			}
			name := strings.TrimSuffix(e.Name(), filepath.Ext(e.Name()))
			if _, seen := files[name]; !seen {
				files[name] = filepath.Join(dir, e.Name())
			}
		}
	}

	grids := make(map[string]*entity.TemperatureGrid, len(files))
	for name, path := range files {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		g, err := loadGridFile(path)
		if err != nil {
			return nil, err
		}
		grids[name] = g
	}
	return grids, nil
}

// LoadCapture загружает один снимок сессии по имени PHASE_VIEW.
func (s *SessionStore) LoadCapture(ctx context.Context, sessionID, capture string) (*entity.TemperatureGrid, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	dir, err := s.SessionDir(sessionID)
	if err != nil {
		return nil, err
	}
	if !validName(capture) {
		return nil, fmt.Errorf("%w: %q", entity.ErrCaptureNotFound, capture)
	}

	for _, ext := range gridExtensions {
		path := filepath.Join(dir, capture+ext)
		if _, err := os.Stat(path); err == nil {
			return loadGridFile(path)
		}
	}
	return nil, fmt.Errorf("%w: %s/%s", entity.ErrCaptureNotFound, sessionID, capture)
}

// SessionDir возвращает каталог сессии, отклоняя имена с разделителями пути.
func (s *SessionStore) SessionDir(sessionID string) (string, error) {
	if !validName(sessionID) {
		return "", fmt.Errorf("%w: %q", entity.ErrSessionNotFound, sessionID)
	}

	dir := filepath.Join(s.root, sessionID)
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return "", fmt.Errorf("%w: %s", entity.ErrSessionNotFound, sessionID)
	}
	return dir, nil
}

func validName(name string) bool {
	return name != "" && name != "." && name != ".." && !strings.ContainsAny(name, `/\`)
}

var _ port.SessionSource = (*SessionStore)(nil)
