package console

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Taha-Raees/zetratech-front/internal/domain/model"
)

var (
	ErrSessionNotFound = errors.New("console session not found")
	ErrInvalidInput    = errors.New("invalid console session input")
)

// Store persists console sessions between page loads or CLI invocations.
type Store interface {
	Get(ctx context.Context, id string) (model.ConsoleSession, error)
	Save(ctx context.Context, session model.ConsoleSession, ttl time.Duration) error
	Delete(ctx context.Context, id string) error
}

type Service struct {
	store Store
	ttl   time.Duration
	now   func() time.Time
}

func NewService(store Store, ttl time.Duration) *Service {
	if ttl <= 0 {
		ttl = 12 * time.Hour
	}
	return &Service{store: store, ttl: ttl, now: time.Now}
}

// Open returns the session with the given id, or a fresh one when id is empty or unknown.
func (s *Service) Open(ctx context.Context, id string) (model.ConsoleSession, bool, error) {
	if s.store == nil {
		return model.ConsoleSession{}, false, errors.New("console session store is nil")
	}

	id = strings.TrimSpace(id)
	if id != "" {
		session, err := s.store.Get(ctx, id)
		if err == nil {
			return session, false, nil
		}
		if !errors.Is(err, ErrSessionNotFound) {
			return model.ConsoleSession{}, false, err
		}
	}

	return model.ConsoleSession{ID: uuid.NewString(), UpdatedAt: s.now().UTC()}, true, nil
}

func (s *Service) Save(ctx context.Context, session model.ConsoleSession) error {
	if s.store == nil {
		return errors.New("console session store is nil")
	}
	if strings.TrimSpace(session.ID) == "" {
		return ErrInvalidInput
	}
	session.UpdatedAt = s.now().UTC()
	return s.store.Save(ctx, session, s.ttl)
}

func (s *Service) Delete(ctx context.Context, id string) error {
	if s.store == nil {
		return errors.New("console session store is nil")
	}
	if strings.TrimSpace(id) == "" {
		return nil
	}
	return s.store.Delete(ctx, id)
}

func (s *Service) TTL() time.Duration {
	return s.ttl
}
