package identity

import (
	"context"
	"testing"

	"github.com/golang-jwt/jwt/v5"
)

func TestPlayerNameDerivation(t *testing.T) {
	tests := []struct {
		name string
		user *User
		want string
	}{
		{name: "display name wins", user: &User{UID: "abcdef", DisplayName: "Ada", Email: "ada@example.com"}, want: "Ada"},
		{name: "email local part", user: &User{UID: "abcdef", Email: "ada@example.com"}, want: "ada"},
		{name: "malformed email kept whole", user: &User{UID: "abcdef", Email: "not-an-email"}, want: "not-an-email"},
		{name: "short uid", user: &User{UID: "abcdef"}, want: "Player_abcd"},
		{name: "empty user", user: &User{}, want: "Player_New"},
		{name: "nil user", user: nil, want: "Player"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.user.PlayerName(); got != tt.want {
				t.Fatalf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestTokenProviderExtractsClaims(t *testing.T) {
	token := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
		"sub":   "uid-123",
		"name":  "Ada",
		"email": "ada@example.com",
	})
	signed, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("sign test token: %v", err)
	}

	provider := NewTokenProvider(signed)
	user, err := provider.CurrentUser(context.Background())
	if err != nil {
		t.Fatalf("current user: %v", err)
	}
	if user.UID != "uid-123" || user.DisplayName != "Ada" || user.Email != "ada@example.com" {
		t.Fatalf("unexpected user %+v", user)
	}

	raw, err := provider.Token(context.Background())
	if err != nil || raw != signed {
		t.Fatalf("expected raw token back, got %q err=%v", raw, err)
	}
}

func TestTokenProviderWithoutTokenIsSignedOut(t *testing.T) {
	user, err := NewTokenProvider("").CurrentUser(context.Background())
	if err != nil {
		t.Fatalf("current user: %v", err)
	}
	if user != nil {
		t.Fatalf("expected signed-out nil user, got %+v", user)
	}
}

func TestTokenProviderRejectsSubjectlessToken(t *testing.T) {
	token := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{"name": "Ada"})
	signed, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("sign test token: %v", err)
	}

	if _, err := NewTokenProvider(signed).CurrentUser(context.Background()); err == nil {
		t.Fatal("expected error for a token without a subject")
	}
}
