package auth

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	pkgauth "github.com/voguelabs/storefront-backend/pkg/auth"
	"github.com/voguelabs/storefront-backend/pkg/config"
	"github.com/voguelabs/storefront-backend/pkg/enums"
	pkgerrors "github.com/voguelabs/storefront-backend/pkg/errors"
	"github.com/voguelabs/storefront-backend/pkg/kv"
	"github.com/voguelabs/storefront-backend/pkg/logger"
)

// Service owns the current session. Login is simulated: any email and
// password pair succeeds, and the chosen role is taken at face value.
type Service interface {
	Login(ctx context.Context, req LoginRequest) (*LoginResponse, error)
	Logout(ctx context.Context)
	Current() *Session
	InProgress() bool
}

type service struct {
	mu      sync.Mutex
	current *Session
	busy    atomic.Bool

	store  kv.Store
	logg   *logger.Logger
	jwtCfg config.JWTConfig
}

// ServiceParams groups dependencies for the auth store.
type ServiceParams struct {
	Store     kv.Store
	Logger    *logger.Logger
	JWTConfig config.JWTConfig
}

// NewService restores a structurally valid stored session, otherwise
// starts signed out.
func NewService(ctx context.Context, params ServiceParams) (Service, error) {
	if params.Store == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "kv store is required")
	}
	if params.Logger == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "logger is required")
	}
	if params.JWTConfig.Secret == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "jwt secret is required")
	}

	s := &service{
		store:  params.Store,
		logg:   params.Logger,
		jwtCfg: params.JWTConfig,
	}
	s.hydrate(ctx)
	return s, nil
}

func (s *service) hydrate(ctx context.Context) {
	raw, err := s.store.Get(ctx, config.StorageKeySession)
	if err != nil {
		if !errors.Is(err, kv.ErrNotFound) {
			s.logg.Warn(s.logg.WithField(ctx, "error", err.Error()), "session hydration failed, starting signed out")
		}
		return
	}

	var session Session
	if err := json.Unmarshal([]byte(raw), &session); err != nil {
		s.logg.Warn(s.logg.WithField(ctx, "error", err.Error()), "stored session is malformed, starting signed out")
		return
	}
	if session.ID == "" || session.Email == "" || !session.Role.IsValid() {
		s.logg.Warn(ctx, "stored session is incomplete, starting signed out")
		return
	}
	s.current = &session
}

// Login constructs a session from the given email and role and makes it
// current. It fails only on invalid input, never on credentials; a
// durable-write failure is a warning and the session stays valid in
// memory.
func (s *service) Login(ctx context.Context, req LoginRequest) (*LoginResponse, error) {
	s.busy.Store(true)
	defer s.busy.Store(false)

	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "email is required")
	}
	role, err := enums.ParseUserRole(req.Role)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid role")
	}

	session := Session{
		ID:    uuid.NewString(),
		Email: email,
		Name:  displayName(email, role),
		Role:  role,
	}

	token, err := pkgauth.MintAccessToken(s.jwtCfg, time.Now().UTC(), pkgauth.AccessTokenPayload{
		UserID: session.ID,
		Email:  session.Email,
		Role:   session.Role,
	})
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "mint jwt")
	}

	s.mu.Lock()
	s.current = &session
	s.persistLocked(ctx)
	s.mu.Unlock()

	ctx = s.logg.WithFields(ctx, map[string]any{"user_id": session.ID, "actor_role": role.String()})
	s.logg.Info(ctx, "session started")

	return &LoginResponse{AccessToken: token, Session: session}, nil
}

// Logout clears the current session and its durable record.
func (s *service) Logout(ctx context.Context) {
	s.mu.Lock()
	s.current = nil
	if err := s.store.Delete(ctx, config.StorageKeySession); err != nil {
		s.logg.Warn(s.logg.WithField(ctx, "error", err.Error()), "session durable delete failed")
	}
	s.mu.Unlock()
	s.logg.Info(ctx, "session ended")
}

// Current returns a copy of the active session, or nil when signed out.
func (s *service) Current() *Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return nil
	}
	session := *s.current
	return &session
}

// InProgress reports whether a login operation is running.
func (s *service) InProgress() bool {
	return s.busy.Load()
}

func (s *service) persistLocked(ctx context.Context) {
	raw, err := json.Marshal(s.current)
	if err != nil {
		s.logg.Warn(s.logg.WithField(ctx, "error", err.Error()), "session serialization failed, durable copy is stale")
		return
	}
	if err := s.store.Set(ctx, config.StorageKeySession, string(raw)); err != nil {
		s.logg.Warn(s.logg.WithField(ctx, "error", err.Error()), "session durable write failed, memory state remains authoritative")
	}
}

// displayName derives a presentable name from the email local part.
func displayName(email string, role enums.UserRole) string {
	if role == enums.UserRoleGuest {
		return "Guest"
	}
	local := email
	if at := strings.Index(email, "@"); at > 0 {
		local = email[:at]
	}
	parts := strings.FieldsFunc(local, func(r rune) bool {
		return r == '.' || r == '_' || r == '-' || r == '+'
	})
	if len(parts) == 0 {
		return local
	}
	for i, part := range parts {
		parts[i] = strings.ToUpper(part[:1]) + part[1:]
	}
	return strings.Join(parts, " ")
}
