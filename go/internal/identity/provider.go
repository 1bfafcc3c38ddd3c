package identity

import (
	"context"
	"strings"
)

// User is the authenticated player identity.
type User struct {
	UID         string
	DisplayName string
	Email       string
}

// PlayerName derives the name announced to other players: display name,
// else the local part of the email, else a short uid placeholder.
func (u *User) PlayerName() string {
	if u == nil {
		return "Player"
	}
	if u.DisplayName != "" {
		return u.DisplayName
	}
	if u.Email != "" {
		if at := strings.IndexByte(u.Email, '@'); at > 0 {
			return u.Email[:at]
		}
		return u.Email
	}
	uid := u.UID
	if len(uid) > 4 {
		uid = uid[:4]
	}
	if uid == "" {
		uid = "New"
	}
	return "Player_" + uid
}

// Provider supplies the current user identity and short-lived auth tokens.
// CurrentUser returns (nil, nil) when no user is signed in.
type Provider interface {
	CurrentUser(ctx context.Context) (*User, error)
	Token(ctx context.Context) (string, error)
}

// StaticProvider is a fixed identity, used in development and tests.
type StaticProvider struct {
	User      *User
	AuthToken string
}

// CurrentUser returns the configured user.
func (p *StaticProvider) CurrentUser(ctx context.Context) (*User, error) {
	return p.User, nil
}

// Token returns the configured token.
func (p *StaticProvider) Token(ctx context.Context) (string, error) {
	return p.AuthToken, nil
}
