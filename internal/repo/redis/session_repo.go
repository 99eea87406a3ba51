package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/Taha-Raees/zetratech-front/internal/domain/model"
	consolesvc "github.com/Taha-Raees/zetratech-front/internal/services/console"
)

const consoleSessionPrefix = "console_sessions:"

type SessionRepo struct {
	client *goredis.Client
}

func NewSessionRepo(client *goredis.Client) *SessionRepo {
	return &SessionRepo{client: client}
}

func (r *SessionRepo) Get(ctx context.Context, id string) (model.ConsoleSession, error) {
	if r.client == nil {
		return model.ConsoleSession{}, fmt.Errorf("redis client is nil")
	}

	raw, err := r.client.Get(ctx, sessionKey(id)).Bytes()
	if errors.Is(err, goredis.Nil) {
		return model.ConsoleSession{}, consolesvc.ErrSessionNotFound
	}
	if err != nil {
		return model.ConsoleSession{}, fmt.Errorf("get console session: %w", err)
	}

	var session model.ConsoleSession
	if err := json.Unmarshal(raw, &session); err != nil {
		return model.ConsoleSession{}, fmt.Errorf("decode console session: %w", err)
	}
	session.ID = id
	return session, nil
}

func (r *SessionRepo) Save(ctx context.Context, session model.ConsoleSession, ttl time.Duration) error {
	if r.client == nil {
		return fmt.Errorf("redis client is nil")
	}
	if strings.TrimSpace(session.ID) == "" {
		return consolesvc.ErrInvalidInput
	}
	if ttl <= 0 {
		ttl = time.Second
	}

	raw, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("encode console session: %w", err)
	}
	if err := r.client.Set(ctx, sessionKey(session.ID), raw, ttl).Err(); err != nil {
		return fmt.Errorf("save console session: %w", err)
	}
	return nil
}

func (r *SessionRepo) Delete(ctx context.Context, id string) error {
	if r.client == nil {
		return fmt.Errorf("redis client is nil")
	}
	if strings.TrimSpace(id) == "" {
		return nil
	}
	if err := r.client.Del(ctx, sessionKey(id)).Err(); err != nil {
		return fmt.Errorf("delete console session: %w", err)
	}
	return nil
}

func sessionKey(id string) string {
	return consoleSessionPrefix + id
}
