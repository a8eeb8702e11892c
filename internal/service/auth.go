package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/mosg85/Angeln-Eventplaner/internal/auth"
	"github.com/mosg85/Angeln-Eventplaner/internal/domain"
	"github.com/mosg85/Angeln-Eventplaner/internal/store"
	"github.com/wb-go/wbf/logger"
)

// AuthService authenticates users and runs the one-time password-reset
// token lifecycle.
type AuthService struct {
	guard    *store.Guard
	secret   []byte
	tokenTTL time.Duration
	resetTTL time.Duration
	log      logger.Logger
}

func NewAuthService(guard *store.Guard, secret []byte, tokenTTL, resetTTL time.Duration, log logger.Logger) *AuthService {
	return &AuthService{
		guard:    guard,
		secret:   secret,
		tokenTTL: tokenTTL,
		resetTTL: resetTTL,
		log:      log,
	}
}

func (s *AuthService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	var user domain.User
	err := s.guard.View(ctx, func(snap *domain.Snapshot) error {
		u := snap.UserByEmail(email)
		if u == nil {
			return domain.ErrInvalidCredentials
		}
		if !auth.CheckPasswordHash(password, u.PasswordHash) {
			return domain.ErrInvalidCredentials
		}
		user = *u
		return nil
	})
	if err != nil {
		return "", nil, err
	}

	token, err := auth.GenerateToken(s.secret, user.ID, user.Role, s.tokenTTL)
	if err != nil {
		return "", nil, fmt.Errorf("generate token: %w", err)
	}

	s.log.Info("user logged in",
		logger.String("user_id", user.ID),
		logger.String("role", string(user.Role)),
	)

	return token, &user, nil
}

func (s *AuthService) Me(ctx context.Context, userID string) (*domain.User, error) {
	var user domain.User
	err := s.guard.View(ctx, func(snap *domain.Snapshot) error {
		u := snap.UserByID(userID)
		if u == nil {
			return domain.ErrUserNotFound
		}
		user = *u
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// ForgotPassword creates a one-time reset token for the email, replacing any
// earlier token. An unknown email produces no token and no error, so callers
// cannot probe which addresses exist.
func (s *AuthService) ForgotPassword(ctx context.Context, email string) (string, error) {
	raw := make([]byte, 32)
	if _, err := rand.Read(raw); err != nil {
		return "", fmt.Errorf("generate reset token: %w", err)
	}
	token := hex.EncodeToString(raw)

	known := false
	err := s.guard.Update(ctx, func(snap *domain.Snapshot) error {
		if snap.UserByEmail(email) == nil {
			return nil
		}
		known = true

		kept := snap.ResetTokens[:0]
		for _, t := range snap.ResetTokens {
			if t.Email != email {
				kept = append(kept, t)
			}
		}
		snap.ResetTokens = append(kept, domain.ResetToken{
			Email:     email,
			Token:     token,
			ExpiresAt: time.Now().UTC().Add(s.resetTTL),
		})
		return nil
	})
	if err != nil {
		return "", err
	}
	if !known {
		return "", nil
	}

	// Without a mail transport the log line is the only place the token
	// surfaces. The operator reads it there and hands it to the user.
	s.log.Info("password reset token issued",
		logger.String("email", email),
		logger.String("token", token),
	)
	return token, nil
}

func (s *AuthService) ResetPassword(ctx context.Context, token, newPassword string) error {
	if err := auth.ValidatePassword(newPassword); err != nil {
		return err
	}
	hash, err := auth.HashPassword(newPassword)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	err = s.guard.Update(ctx, func(snap *domain.Snapshot) error {
		var entry *domain.ResetToken
		for i := range snap.ResetTokens {
			t := &snap.ResetTokens[i]
			if t.Token == token && !t.Used && t.ExpiresAt.After(time.Now()) {
				entry = t
				break
			}
		}
		if entry == nil {
			return domain.ErrInvalidToken
		}

		u := snap.UserByEmail(entry.Email)
		if u == nil {
			return domain.ErrUserNotFound
		}

		u.PasswordHash = hash
		entry.Used = true
		return nil
	})
	if err != nil {
		return err
	}

	s.log.Info("password reset completed")
	return nil
}

// PurgeExpiredTokens drops used and expired reset tokens from the snapshot
// and reports how many were removed.
func (s *AuthService) PurgeExpiredTokens(ctx context.Context) (int, error) {
	purged := 0
	err := s.guard.Update(ctx, func(snap *domain.Snapshot) error {
		now := time.Now()
		kept := snap.ResetTokens[:0]
		for _, t := range snap.ResetTokens {
			if t.Used || t.ExpiresAt.Before(now) {
				purged++
				continue
			}
			kept = append(kept, t)
		}
		snap.ResetTokens = kept
		return nil
	})
	if err != nil {
		return 0, err
	}
	return purged, nil
}
