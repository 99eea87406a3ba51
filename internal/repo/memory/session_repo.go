package memory

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/Taha-Raees/zetratech-front/internal/domain/model"
	consolesvc "github.com/Taha-Raees/zetratech-front/internal/services/console"
)

type entry struct {
	session   model.ConsoleSession
	expiresAt time.Time
}

// SessionRepo keeps console sessions in process memory when no redis is configured.
type SessionRepo struct {
	mu      sync.Mutex
	entries map[string]entry
	now     func() time.Time
}

func NewSessionRepo() *SessionRepo {
	return &SessionRepo{entries: make(map[string]entry), now: time.Now}
}

func (r *SessionRepo) Get(_ context.Context, id string) (model.ConsoleSession, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.entries[id]
	if !ok {
		return model.ConsoleSession{}, consolesvc.ErrSessionNotFound
	}
	if !r.now().Before(e.expiresAt) {
		delete(r.entries, id)
		return model.ConsoleSession{}, consolesvc.ErrSessionNotFound
	}
	return e.session, nil
}

func (r *SessionRepo) Save(_ context.Context, session model.ConsoleSession, ttl time.Duration) error {
	if strings.TrimSpace(session.ID) == "" {
		return consolesvc.ErrInvalidInput
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries[session.ID] = entry{session: session, expiresAt: r.now().Add(ttl)}
	return nil
}

func (r *SessionRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.entries, id)
	return nil
}
