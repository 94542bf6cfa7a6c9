package application

import (
	"context"
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"fmt"

	"golang.org/x/crypto/argon2"

	"passkeep/internal/domain/model"
	"passkeep/internal/domain/port/driven"
)

// Argon2id parameters for the master-password digest.
const (
	argonTime    = 3
	argonMemory  = 64 * 1024
	argonThreads = 4
	argonKeyLen  = 32

	saltSize = 16
)

// MaxAttempts is the number of consecutive failed verifications allowed
// before the gate locks for the rest of the session.
const MaxAttempts = 3

var (
	// ErrMismatch is returned by Setup when the two password entries differ
	// (or the password is empty). Recoverable: callers re-prompt.
	ErrMismatch = errors.New("passwords do not match")

	// ErrBadPassword is returned by Verify for a wrong master password while
	// attempts remain.
	ErrBadPassword = errors.New("wrong master password")

	// ErrLocked is returned once MaxAttempts verifications have failed.
	// Terminal: every further call returns it and the session must end.
	ErrLocked = errors.New("too many failed attempts")
)

// State is the position of the authentication gate in its lifecycle.
type State int

const (
	// StateAwaitingSetup means no master password exists yet (first run).
	StateAwaitingSetup State = iota
	// StateAuthenticating means a master password exists and has not been
	// verified in this session.
	StateAuthenticating
	// StateAuthenticated is the terminal success state.
	StateAuthenticated
	// StateLocked is the terminal failure state after MaxAttempts failures.
	StateLocked
)

// AuthService gates vault access behind the master password. All credential
// operations must wait for StateAuthenticated.
type AuthService struct {
	master   driven.MasterStore
	state    State
	attempts int
}

// NewAuthService creates the gate, starting in StateAwaitingSetup when no
// master record exists and StateAuthenticating otherwise.
func NewAuthService(ctx context.Context, master driven.MasterStore) (*AuthService, error) {
	s := &AuthService{master: master}

	_, err := master.Get(ctx)
	switch {
	case errors.Is(err, driven.ErrNotFound):
		s.state = StateAwaitingSetup
	case err != nil:
		return nil, fmt.Errorf("load master record: %w", err)
	default:
		s.state = StateAuthenticating
	}
	return s, nil
}

// State returns the current gate state.
func (s *AuthService) State() State { return s.state }

// Setup establishes the master password on first run. Returns ErrMismatch
// when the two entries differ or the password is empty; on success the
// record is persisted and the gate moves to StateAuthenticating, so the
// fresh password still has to be verified.
func (s *AuthService) Setup(ctx context.Context, password, confirm string) error {
	if s.state != StateAwaitingSetup {
		return fmt.Errorf("master password already set")
	}
	if password == "" || password != confirm {
		return ErrMismatch
	}

	salt := make([]byte, saltSize)
	if _, err := rand.Read(salt); err != nil {
		return fmt.Errorf("generate salt: %w", err)
	}

	rec := model.MasterRecord{
		Hash: hashPassword(password, salt),
		Salt: hex.EncodeToString(salt),
	}
	if err := s.master.Set(ctx, rec); err != nil {
		return fmt.Errorf("store master record: %w", err)
	}

	s.state = StateAuthenticating
	return nil
}

// Verify checks password against the stored master record. A correct
// password moves the gate to StateAuthenticated; the MaxAttempts-th
// consecutive failure locks it permanently for this session.
func (s *AuthService) Verify(ctx context.Context, password string) error {
	switch s.state {
	case StateLocked:
		return ErrLocked
	case StateAuthenticated:
		return nil
	case StateAwaitingSetup:
		return fmt.Errorf("master password not set")
	}

	rec, err := s.master.Get(ctx)
	if err != nil {
		return fmt.Errorf("load master record: %w", err)
	}
	salt, err := hex.DecodeString(rec.Salt)
	if err != nil {
		return fmt.Errorf("decode stored salt: %w", err)
	}

	digest := hashPassword(password, salt)
	if subtle.ConstantTimeCompare([]byte(digest), []byte(rec.Hash)) == 1 {
		s.state = StateAuthenticated
		s.attempts = 0
		return nil
	}

	s.attempts++
	if s.attempts >= MaxAttempts {
		s.state = StateLocked
		return ErrLocked
	}
	return ErrBadPassword
}

// hashPassword computes the hex-encoded Argon2id digest of password under
// salt. Deterministic for a given (password, salt) pair.
func hashPassword(password string, salt []byte) string {
	digest := argon2.IDKey([]byte(password), salt, argonTime, argonMemory, argonThreads, argonKeyLen)
	return hex.EncodeToString(digest)
}
