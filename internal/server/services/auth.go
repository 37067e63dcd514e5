// Package services contains server-side business logic. This file implements
// AuthService, which registers users, authenticates logins (rotating stale
// pepper digests along the way), and checks bearer tokens on protected
// requests.
package services

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/JoshuaSkootsky/roll-own-auth/internal/common"
	"github.com/JoshuaSkootsky/roll-own-auth/internal/logging"
	"github.com/JoshuaSkootsky/roll-own-auth/internal/server/auth"
	"github.com/JoshuaSkootsky/roll-own-auth/internal/server/config"
	"github.com/JoshuaSkootsky/roll-own-auth/internal/server/creds"
	"github.com/JoshuaSkootsky/roll-own-auth/internal/server/models"
	"github.com/JoshuaSkootsky/roll-own-auth/internal/server/repositories/repomanager"
)

// Fixed caller-facing messages. Expected authentication failures are values,
// not errors, and always carry one of these.
const (
	MsgUserCreated      = "User created."
	MsgUserExists       = "Username already exists."
	MsgLoginOK          = "Login successful."
	MsgUserNotFound     = "User not found."
	MsgInvalidPassword  = "Invalid password."
	MsgRegistrationFail = "Registration failed."
	MsgLoginFail        = "Login failed."
	MsgUnauthorized     = "Unauthorized"
)

// Result is the outcome of Register and Authenticate, shaped for the routing
// layer: a stable message plus an optional bearer token.
type Result struct {
	Success bool
	Message string
	Token   string
}

// CheckResult is the outcome of a request-level token check.
type CheckResult struct {
	Valid bool
	User  *auth.Claims
}

// AuthService composes the credential hasher, the token issuer and the user
// repository into register, authenticate and request-check operations. It
// holds no mutable state of its own, so it is safe for concurrent callers;
// the repository is the only shared state.
type AuthService struct {
	db                    *sql.DB
	repomanager           repomanager.RepositoryManager
	hasher                *creds.Hasher
	logger                logging.Logger
	tokenSecret           []byte
	tokenValidityDuration time.Duration
}

// NewAuthService constructs an AuthService from configuration. It refuses to
// construct without a pepper list and a token signing secret: both are fatal
// startup conditions, not runtime errors.
func NewAuthService(db *sql.DB, m repomanager.RepositoryManager, l logging.Logger, cfg *config.Config) (*AuthService, error) {
	if cfg.TokenSecret == "" {
		return nil, config.ErrNoTokenSecret
	}
	hasher, err := creds.NewHasher(cfg.BcryptCost, cfg.Peppers)
	if err != nil {
		return nil, err
	}
	return &AuthService{
		db:                    db,
		repomanager:           m,
		hasher:                hasher,
		logger:                l.With("module", "auth_service"),
		tokenSecret:           []byte(cfg.TokenSecret),
		tokenValidityDuration: cfg.TokenValidityDuration,
	}, nil
}

// Register hashes the password and creates the user record. A duplicate
// username comes back as a failed Result with MsgUserExists; any other
// persistence fault is logged and reported with a generic message so raw
// repository errors never reach the caller. The returned error is non-nil
// only for unrecoverable conditions.
func (s *AuthService) Register(ctx context.Context, username, password string) (*Result, error) {
	digest, err := s.hasher.Hash(password)
	if err != nil {
		s.logger.Error(ctx, "hashing failed", "error", err.Error())
		return nil, common.ErrorInternal
	}

	repo := s.repomanager.Users(s.db)
	if _, err := repo.Create(ctx, &models.User{UserName: username, Digest: digest}); err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			return &Result{Message: MsgUserExists}, nil
		}
		s.logger.Error(ctx, "user create failed", "username", username, "error", err.Error())
		return &Result{Message: MsgRegistrationFail}, nil
	}

	s.logger.Info(ctx, "user registered", "username", username)
	return &Result{Success: true, Message: MsgUserCreated}, nil
}

// Authenticate verifies the password against the stored digest, rotates the
// digest if it matched under a retired pepper, and issues a bearer token.
func (s *AuthService) Authenticate(ctx context.Context, username, password string) (*Result, error) {
	repo := s.repomanager.Users(s.db)

	user, err := repo.GetUserByLogin(ctx, username)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return &Result{Message: MsgUserNotFound}, nil
		}
		s.logger.Error(ctx, "user lookup failed", "username", username, "error", err.Error())
		return &Result{Message: MsgLoginFail}, nil
	}

	outcome := s.hasher.Verify(password, user.Digest)
	if !outcome.Matched {
		return &Result{Message: MsgInvalidPassword}, nil
	}

	if s.hasher.NeedsRotation(outcome) {
		s.rotateDigest(ctx, user, password)
	}

	token, err := auth.GenerateToken(user.ID, user.UserName, s.tokenSecret, s.tokenValidityDuration)
	if err != nil {
		s.logger.Error(ctx, "token signing failed", "user_id", user.ID, "error", err.Error())
		return nil, common.ErrorInternal
	}

	s.logger.Info(ctx, "login successful", "username", username)
	return &Result{Success: true, Message: MsgLoginOK, Token: token}, nil
}

// rotateDigest re-derives the stored digest under the current pepper after a
// login that matched a retired one. Best-effort: the login already succeeded,
// so a failed rewrite is logged and otherwise ignored. A concurrent login for
// the same user may rewrite the digest again; the extra write is idempotent.
func (s *AuthService) rotateDigest(ctx context.Context, user *models.User, password string) {
	digest, err := s.hasher.Hash(password)
	if err != nil {
		s.logger.Error(ctx, "rotation rehash failed", "user_id", user.ID, "error", err.Error())
		return
	}

	repo := s.repomanager.Users(s.db)
	if err := repo.UpdateDigest(ctx, user.ID, digest); err != nil {
		s.logger.Error(ctx, "rotation rewrite failed", "user_id", user.ID, "error", err.Error())
		return
	}

	s.logger.Info(ctx, "credential digest rotated to current pepper", "user_id", user.ID)
}

// CheckRequest validates the Authorization header of a protected request.
// The header must be exactly "Bearer", a single space, and a non-empty token;
// any other shape is invalid without attempting verification. All token
// failures collapse into the same invalid outcome.
func (s *AuthService) CheckRequest(authorizationHeader string) CheckResult {
	tokenString, err := auth.ExtractBearerToken(authorizationHeader)
	if err != nil {
		return CheckResult{}
	}

	claims, err := auth.ParseToken(tokenString, s.tokenSecret)
	if err != nil {
		return CheckResult{}
	}

	return CheckResult{Valid: true, User: claims}
}
