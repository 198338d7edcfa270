package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/mmynk/splitledger/internal/models"
)

func TestJWTManager(t *testing.T) {
	user := &models.User{ID: "user-1", Email: "alice@example.com", Username: "alice", IsAdmin: true}
	manager := NewJWTManager("test-secret-key-at-least-32-bytes!", time.Hour)

	t.Run("round trip", func(t *testing.T) {
		token, err := manager.Generate(user)
		if err != nil {
			t.Fatalf("Generate failed: %v", err)
		}

		claims, err := manager.Validate(token)
		if err != nil {
			t.Fatalf("Validate failed: %v", err)
		}
		if claims.UserID != user.ID || claims.Email != user.Email || claims.Username != user.Username {
			t.Errorf("claims = %+v, want user %+v", claims, user)
		}
		if !claims.IsAdmin {
			t.Error("Expected admin claim to survive the round trip")
		}
	})

	t.Run("wrong secret", func(t *testing.T) {
		token, _ := manager.Generate(user)
		other := NewJWTManager("a-completely-different-secret-key", time.Hour)
		if _, err := other.Validate(token); !errors.Is(err, ErrInvalidToken) {
			t.Errorf("Expected ErrInvalidToken, got %v", err)
		}
	})

	t.Run("expired", func(t *testing.T) {
		past := NewJWTManager("test-secret-key-at-least-32-bytes!", time.Minute)
		past.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
		token, err := past.Generate(user)
		if err != nil {
			t.Fatalf("Generate failed: %v", err)
		}
		if _, err := manager.Validate(token); !errors.Is(err, ErrInvalidToken) {
			t.Errorf("Expected ErrInvalidToken for expired token, got %v", err)
		}
	})

	t.Run("garbage", func(t *testing.T) {
		if _, err := manager.Validate("not.a.token"); !errors.Is(err, ErrInvalidToken) {
			t.Errorf("Expected ErrInvalidToken, got %v", err)
		}
	})
}
