package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	jwtutil "edurev/backend/app/jwt"
	"edurev/backend/app/models"
	"edurev/backend/app/repo"

	"github.com/google/uuid"
)

// SessionStore keeps the server side of issued sessions. repo.SessionRepository implements it.
type SessionStore interface {
	Save(ctx context.Context, sessionID string, userID uint, ttl time.Duration) error
	Owner(ctx context.Context, sessionID string) (uint, error)
	Delete(ctx context.Context, sessionID string) error
}

// SessionService issues signed tokens that stay valid only while their
// session record exists.
type SessionService struct {
	store  SessionStore
	signer *jwtutil.Signer
}

func NewSessionService(store SessionStore, signer *jwtutil.Signer) *SessionService {
	return &SessionService{store: store, signer: signer}
}

func (s *SessionService) Issue(ctx context.Context, u *models.User) (string, error) {
	sid := uuid.NewString()
	if err := s.store.Save(ctx, sid, u.ID, s.signer.TTL()); err != nil {
		return "", fmt.Errorf("save session: %w", err)
	}
	token, err := s.signer.Sign(u.ID, u.Email, string(u.Role), sid)
	if err != nil {
		_ = s.store.Delete(ctx, sid)
		return "", fmt.Errorf("sign token: %w", err)
	}
	return token, nil
}

func (s *SessionService) Validate(ctx context.Context, token string) (*jwtutil.Claims, error) {
	claims, err := s.signer.Parse(token)
	if err != nil || claims.SessionID == "" {
		return nil, ErrAuthRequired
	}
	owner, err := s.store.Owner(ctx, claims.SessionID)
	if errors.Is(err, repo.ErrNotFound) {
		return nil, ErrAuthRequired
	}
	if err != nil {
		return nil, fmt.Errorf("load session: %w", err)
	}
	if owner != claims.UserID {
		return nil, ErrAuthRequired
	}
	return claims, nil
}

func (s *SessionService) Revoke(ctx context.Context, token string) error {
	claims, err := s.signer.Parse(token)
	if err != nil || claims.SessionID == "" {
		return ErrAuthRequired
	}
	if err := s.store.Delete(ctx, claims.SessionID); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}
