package cliapp

import (
	"context"
	"sync"

	"github.com/Taha-Raees/zetratech-front/internal/domain/model"
)

// cliSession is the operator's console session for one invocation. It stands in for
// the browser: the auth service stores the user here and the gateway navigates it.
type cliSession struct {
	mu        sync.Mutex
	session   model.ConsoleSession
	loginPath string
	landing   string
	ended     bool
}

func newCLISession(loginPath string) *cliSession {
	return &cliSession{loginPath: loginPath}
}

func (s *cliSession) load(session model.ConsoleSession) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.session = session
}

func (s *cliSession) ID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.session.ID
}

// Redirect records navigation. The login path means the backend session is gone.
func (s *cliSession) Redirect(_ context.Context, path string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if path == s.loginPath {
		s.session.LoginRequired = true
		s.session.User = nil
		return
	}
	s.landing = path
}

func (s *cliSession) SaveUser(_ context.Context, user model.SessionUser) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.session.User = &user
	s.session.LoginRequired = false
	return nil
}

func (s *cliSession) ClearUser(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.session.User = nil
	return nil
}

func (s *cliSession) User() *model.SessionUser {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.session.Authenticated() {
		return nil
	}
	user := *s.session.User
	return &user
}

func (s *cliSession) LoginRequired() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.session.LoginRequired
}

func (s *cliSession) Landing() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.landing
}

func (s *cliSession) end() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ended = true
}

func (s *cliSession) isEnded() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ended
}

func (s *cliSession) snapshot(cookies []model.StoredCookie) model.ConsoleSession {
	s.mu.Lock()
	defer s.mu.Unlock()
	session := s.session
	session.Cookies = cookies
	return session
}
