package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/alexanderramin/lancer/internal/repository"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// Service implements the authentication operations against the local
// account store: credential login, federated provider login, signup,
// logout, and session restoration. State changes are published through
// the attached Session.
type Service struct {
	accounts repository.AccountRepo
	sessions repository.AuthSessionRepo
	tokens   TokenStore
	session  *Session
	log      *slog.Logger
}

func NewService(accounts repository.AccountRepo, sessions repository.AuthSessionRepo, tokens TokenStore, session *Session, log *slog.Logger) *Service {
	return &Service{
		accounts: accounts,
		sessions: sessions,
		tokens:   tokens,
		session:  session,
		log:      log,
	}
}

// Session returns the session holder fed by this service.
func (s *Service) Session() *Session {
	return s.session
}

// Start resolves the persisted token (if any) and emits the first
// auth-state event. Callers must not read the session before this.
func (s *Service) Start(ctx context.Context) error {
	token, err := s.tokens.Read()
	if err != nil {
		s.session.set(nil)
		return authErr("restore", "reading persisted session", err)
	}
	if token == "" {
		s.session.set(nil)
		return nil
	}

	accountID, err := s.sessions.Resolve(ctx, token)
	if err != nil {
		// A stale token is not an error condition; start signed out.
		if errors.Is(err, repository.ErrNotFound) {
			_ = s.tokens.Clear()
			s.session.set(nil)
			return nil
		}
		s.session.set(nil)
		return authErr("restore", "resolving persisted session", err)
	}

	account, err := s.accounts.GetByID(ctx, accountID)
	if err != nil {
		s.session.set(nil)
		return authErr("restore", "loading account", err)
	}

	s.session.set(account.Identity())
	return nil
}

// Login authenticates with email and password.
func (s *Service) Login(ctx context.Context, email, password string) error {
	account, err := s.accounts.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return authErr("login", "invalid email or password", err)
		}
		return authErr("login", "looking up account", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)); err != nil {
		return authErr("login", "invalid email or password", err)
	}

	return s.establish(ctx, "login", account)
}

// LoginWithProvider authenticates through a federated provider. An
// account is created on first login; cancellation surfaces as an
// AuthError wrapping ErrCanceled.
func (s *Service) LoginWithProvider(ctx context.Context, provider Provider) error {
	email, displayName, err := provider.Authenticate(ctx)
	if err != nil {
		if errors.Is(err, ErrCanceled) {
			return authErr("provider", "login canceled", err)
		}
		return authErr("provider", err.Error(), err)
	}

	account, err := s.accounts.GetByEmail(ctx, email)
	if errors.Is(err, repository.ErrNotFound) {
		account = &repository.Account{
			ID:          uuid.New().String(),
			Email:       email,
			DisplayName: displayName,
			Provider:    provider.Name(),
		}
		if err := s.accounts.Create(ctx, account); err != nil {
			return authErr("provider", "creating account", err)
		}
	} else if err != nil {
		return authErr("provider", "looking up account", err)
	}

	return s.establish(ctx, "provider", account)
}

// Signup creates a password account and signs it in. Setting the
// display name is a second, separate write: if it fails the account
// still exists and the login proceeds without a name. Callers must
// not assume atomicity.
func (s *Service) Signup(ctx context.Context, name, email, password string) error {
	if email == "" || password == "" {
		return authErr("signup", "email and password are required", nil)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return authErr("signup", "hashing password", err)
	}

	account := &repository.Account{
		ID:           uuid.New().String(),
		Email:        email,
		PasswordHash: string(hash),
	}
	if err := s.accounts.Create(ctx, account); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return authErr("signup", "email already in use", err)
		}
		return authErr("signup", "creating account", err)
	}

	if err := s.accounts.UpdateDisplayName(ctx, account.ID, name); err != nil {
		s.log.Warn("signup: setting display name failed; account exists without it",
			"account", account.ID, "error", err)
	} else {
		account.DisplayName = name
	}

	return s.establish(ctx, "signup", account)
}

// Logout ends the current session. Safe to call when signed out.
func (s *Service) Logout(ctx context.Context) error {
	token, err := s.tokens.Read()
	if err == nil && token != "" {
		if err := s.sessions.Delete(ctx, token); err != nil {
			s.log.Warn("logout: deleting server session failed", "error", err)
		}
	}
	if err := s.tokens.Clear(); err != nil {
		return authErr("logout", "clearing persisted session", err)
	}
	s.session.set(nil)
	return nil
}

// establish issues a token, persists it and publishes the new identity.
func (s *Service) establish(ctx context.Context, op string, account *repository.Account) error {
	token := uuid.New().String()
	if err := s.sessions.Create(ctx, token, account.ID); err != nil {
		return authErr(op, "creating session", err)
	}
	if err := s.tokens.Write(token); err != nil {
		return authErr(op, "persisting session", err)
	}

	s.log.Info("signed in", "op", op, "account", account.ID)
	s.session.set(account.Identity())
	return nil
}

// RequireIdentity returns the current identity or ErrNotAuthenticated.
func (s *Service) RequireIdentity() (string, error) {
	identity := s.session.CurrentIdentity()
	if identity == nil {
		return "", fmt.Errorf("current identity: %w", ErrNotAuthenticated)
	}
	return identity.ID, nil
}
