// Package services contains the application services of the Aroha client.
// This file defines the authentication service: online/offline login, register,
// liveness probe, and housekeeping of local (offline) auth metadata.
package services

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/aroha/internal/client/client"
	"github.com/dmitrijs2005/aroha/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/aroha/internal/common"
	"github.com/dmitrijs2005/aroha/internal/cryptox"
	"github.com/dmitrijs2005/aroha/internal/dbx"
)

// AuthService defines authentication operations for the CLI.
//
// Contract:
//   - OnlineLogin: authenticate against the server, sign the Session in and
//     persist offline auth data.
//   - OfflineLogin: verify credentials against locally cached data. The
//     Session stays signed out, so no remote call is possible.
//   - Logout: drop tokens, sign the Session out and wipe offline auth data.
//   - Register: create a new user on the server.
//   - Ping: check server liveness.
//   - Close: release underlying client resources.
//
// All methods must honor context cancellation/timeouts.
type AuthService interface {
	OfflineLogin(ctx context.Context, username string, password []byte) error
	OnlineLogin(ctx context.Context, username string, password []byte) (string, error)
	Logout(ctx context.Context) error
	Register(ctx context.Context, username string, password []byte) error
	Ping(ctx context.Context) error
	Close(ctx context.Context) error
	ClearOfflineData(ctx context.Context) error
}

// authService is the concrete AuthService backed by a remote Client
// and a local SQL database for offline metadata.
type authService struct {
	client  client.Client
	db      *sql.DB
	session *Session
}

// NewAuthService constructs an AuthService bound to the given API client, DB
// and session.
func NewAuthService(client client.Client, db *sql.DB, session *Session) AuthService {
	return &authService{client: client, db: db, session: session}
}

func (a *authService) getMetadataRepo(db dbx.DBTX) metadata.Repository {
	return metadata.NewSQLiteRepository(db)
}

// OfflineLogin derives the verifier from (password, salt) stored locally and
// compares it with the cached one. If local data is missing, returns
// client.ErrLocalDataNotAvailable; if verification fails, returns
// client.ErrUnauthorized.
func (a *authService) OfflineLogin(ctx context.Context, username string, password []byte) error {
	metadataRepo := a.getMetadataRepo(a.db)

	savedUsername, err := metadataRepo.Get(ctx, keyUsername)
	if err != nil {
		return fmt.Errorf("%w: %w", client.ErrLocalDataNotAvailable, err)
	}
	if len(savedUsername) == 0 {
		return client.ErrLocalDataNotAvailable
	}
	if string(savedUsername) != username {
		return client.ErrUnauthorized
	}

	savedSalt, err := metadataRepo.Get(ctx, keySalt)
	if err != nil || len(savedSalt) == 0 {
		return client.ErrLocalDataNotAvailable
	}
	savedVerifier, err := metadataRepo.Get(ctx, keyVerifier)
	if err != nil || len(savedVerifier) == 0 {
		return client.ErrLocalDataNotAvailable
	}

	masterKeyCandidate := cryptox.DeriveMasterKey(password, savedSalt)
	defer common.WipeByteArray(masterKeyCandidate)
	verifierCandidate := cryptox.MakeVerifier(masterKeyCandidate)

	if !cryptox.VerifierMatches(savedVerifier, verifierCandidate) {
		return client.ErrUnauthorized
	}
	return nil
}

// OnlineLogin authenticates against the server, signs the session in, saves
// offline metadata (username, salt, verifier, account id) and returns the
// account id.
func (a *authService) OnlineLogin(ctx context.Context, userName string, password []byte) (string, error) {
	salt, err := a.client.GetSalt(ctx, userName)
	if err != nil {
		return "", fmt.Errorf("get salt error: %w", err)
	}

	masterKeyCandidate := cryptox.DeriveMasterKey(password, salt)
	defer common.WipeByteArray(masterKeyCandidate)
	verifierCandidate := cryptox.MakeVerifier(masterKeyCandidate)

	userID, err := a.client.Login(ctx, userName, verifierCandidate)
	if err != nil {
		return "", fmt.Errorf("login error: %w", err)
	}

	if err := a.saveOfflineData(ctx, userName, salt, verifierCandidate, userID); err != nil {
		return "", fmt.Errorf("offline data saving error: %w", err)
	}

	a.session.SignIn(ctx, userID)
	return userID, nil
}

// saveOfflineData persists minimal auth metadata required for offline login
// in a single transaction.
func (a *authService) saveOfflineData(ctx context.Context, userName string, salt []byte, verifier []byte, userID string) error {
	return dbx.WithTx(ctx, a.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		metadataRepo := a.getMetadataRepo(tx)
		if err := metadataRepo.Set(ctx, keyUsername, []byte(userName)); err != nil {
			return err
		}
		if err := metadataRepo.Set(ctx, keySalt, salt); err != nil {
			return err
		}
		if err := metadataRepo.Set(ctx, keyVerifier, verifier); err != nil {
			return err
		}
		if err := metadataRepo.Set(ctx, keyUserID, []byte(userID)); err != nil {
			return err
		}
		return nil
	})
}

// Register creates a new account on the server. It generates a random salt,
// derives a master key from the provided password, computes a verifier,
// and sends salt/verifier to the server.
func (a *authService) Register(ctx context.Context, username string, password []byte) error {
	salt, err := common.GenerateRandByteArray(32)
	if err != nil {
		return fmt.Errorf("generate salt: %w", err)
	}
	key := cryptox.DeriveMasterKey(password, salt)
	defer common.WipeByteArray(key)
	verifier := cryptox.MakeVerifier(key)

	if err := a.client.Register(ctx, username, salt, verifier); err != nil {
		return err
	}
	return nil
}

func (a *authService) Logout(ctx context.Context) error {
	a.client.Logout()
	a.session.SignOut(ctx)
	return a.ClearOfflineData(ctx)
}

// Ping proxies a liveness check to the underlying client.
func (a *authService) Ping(ctx context.Context) error {
	return a.client.Ping(ctx)
}

// Close releases resources held by the underlying client.
func (a *authService) Close(ctx context.Context) error {
	return a.client.Close()
}

// ClearOfflineData wipes the cached login data. Preferences, consent and
// migration markers are kept.
func (a *authService) ClearOfflineData(ctx context.Context) error {
	return a.getMetadataRepo(a.db).Delete(ctx, keyUsername, keySalt, keyVerifier, keyUserID)
}
