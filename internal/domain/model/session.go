package model

import (
	"time"

	"github.com/Taha-Raees/zetratech-front/internal/domain/enums"
)

// SessionUser is the decoded projection of the authenticated actor. The credential
// itself never leaves the cookie jar.
type SessionUser struct {
	ID    string     `json:"id"`
	Email string     `json:"email"`
	Role  enums.Role `json:"role"`
}

type AdminUser struct {
	ID        string     `json:"id"`
	Email     string     `json:"email"`
	Role      enums.Role `json:"role"`
	IsActive  bool       `json:"isActive"`
	CreatedAt string     `json:"createdAt"`
	LastLogin string     `json:"lastLogin,omitempty"`
}

// StoredCookie is the persisted form of a backend cookie.
type StoredCookie struct {
	Name    string    `json:"name"`
	Value   string    `json:"value"`
	Path    string    `json:"path,omitempty"`
	Expires time.Time `json:"expires,omitempty"`
}

// ConsoleSession is what a console keeps between invocations or page loads.
type ConsoleSession struct {
	ID            string         `json:"id"`
	User          *SessionUser   `json:"user,omitempty"`
	Cookies       []StoredCookie `json:"cookies,omitempty"`
	LoginRequired bool           `json:"loginRequired,omitempty"`
	ViewWidth     float64        `json:"viewWidth,omitempty"`
	ViewHeight    float64        `json:"viewHeight,omitempty"`
	UpdatedAt     time.Time      `json:"updatedAt"`
}

func (s ConsoleSession) Authenticated() bool {
	return s.User != nil && !s.LoginRequired
}
