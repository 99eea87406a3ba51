package filestate

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/Taha-Raees/zetratech-front/internal/domain/model"
	consolesvc "github.com/Taha-Raees/zetratech-front/internal/services/console"
)

type document struct {
	Session   model.ConsoleSession `json:"session"`
	ExpiresAt time.Time            `json:"expiresAt"`
}

// SessionRepo keeps the operator's CLI session in a single JSON file.
type SessionRepo struct {
	mu   sync.Mutex
	path string
	now  func() time.Time
}

func NewSessionRepo(path string) *SessionRepo {
	return &SessionRepo{path: path, now: time.Now}
}

func (r *SessionRepo) Path() string {
	return r.path
}

func (r *SessionRepo) Get(_ context.Context, id string) (model.ConsoleSession, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	session, err := r.readLocked()
	if err != nil {
		return model.ConsoleSession{}, err
	}
	if session.ID != id {
		return model.ConsoleSession{}, consolesvc.ErrSessionNotFound
	}
	return session, nil
}

// Current returns whichever unexpired session the file holds. The CLI has one
// session per file, so it never knows the id up front.
func (r *SessionRepo) Current(_ context.Context) (model.ConsoleSession, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.readLocked()
}

func (r *SessionRepo) readLocked() (model.ConsoleSession, error) {
	raw, err := os.ReadFile(r.path)
	if errors.Is(err, os.ErrNotExist) {
		return model.ConsoleSession{}, consolesvc.ErrSessionNotFound
	}
	if err != nil {
		return model.ConsoleSession{}, fmt.Errorf("read session file: %w", err)
	}

	var doc document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return model.ConsoleSession{}, fmt.Errorf("decode session file: %w", err)
	}
	if !r.now().Before(doc.ExpiresAt) {
		return model.ConsoleSession{}, consolesvc.ErrSessionNotFound
	}
	return doc.Session, nil
}

func (r *SessionRepo) Save(_ context.Context, session model.ConsoleSession, ttl time.Duration) error {
	if strings.TrimSpace(session.ID) == "" {
		return consolesvc.ErrInvalidInput
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	raw, err := json.MarshalIndent(document{Session: session, ExpiresAt: r.now().Add(ttl).UTC()}, "", "  ")
	if err != nil {
		return fmt.Errorf("encode session file: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(r.path), 0o700); err != nil {
		return fmt.Errorf("create session dir: %w", err)
	}

	tmp := r.path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o600); err != nil {
		return fmt.Errorf("write session file: %w", err)
	}
	if err := os.Rename(tmp, r.path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("replace session file: %w", err)
	}
	return nil
}

func (r *SessionRepo) Delete(_ context.Context, _ string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := os.Remove(r.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove session file: %w", err)
	}
	return nil
}
