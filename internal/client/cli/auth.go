package cli

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/dmitrijs2005/aroha/internal/client/client"
	"github.com/dmitrijs2005/aroha/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register prompts the user for an email and password and attempts to create
// a new account via the AuthService.
//
// On success it prints "Success!" and returns nil. The password byte slice
// is securely wiped before returning. Any I/O or service error is returned
// unchanged.
func (a *App) Register(ctx context.Context) error {
	userName, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.authService.Register(ctx, userName, password); err != nil {
		log.Printf("Registration failed: %s", err.Error())
		return err
	}

	fmt.Fprintln(a.out, "Success!")
	return nil
}

// Login prompts the user for credentials and tries to authenticate.
//
// The method first attempts an online login. If the server is unavailable
// (errors.Is(err, client.ErrUnavailable)), it falls back to offline login,
// which unlocks the local features only. After an online login a pending
// migration of local records is offered.
func (a *App) Login(ctx context.Context) error {
	userName, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	var mode Mode

	_, err = a.authService.OnlineLogin(ctx, userName, password)
	if err != nil {
		if errors.Is(err, client.ErrUnavailable) {
			log.Printf("Server unavailable, trying offline login...")
			err = a.authService.OfflineLogin(ctx, userName, password)
			if err != nil {
				log.Printf("Offline login unsuccessful: %s", err.Error())
				mode = ModeDisabled
			} else {
				log.Printf("Offline login successful")
				mode = ModeOffline
			}
		} else {
			log.Printf("Login unsuccessful: %s", err.Error())
			return err
		}
	} else {
		log.Printf("Login successful")
		mode = ModeOnline
	}

	if err != nil {
		a.setMode(mode)
		return err
	}

	a.userName = userName
	a.setMode(mode)

	if mode == ModeOnline {
		a.offerMigration(ctx)
	}
	return nil
}

// offerMigration asks once per account whether local records should be
// copied to the cloud.
func (a *App) offerMigration(ctx context.Context) {
	offer, ok := a.records.PendingMigration()
	if !ok {
		return
	}

	fmt.Fprintf(a.out, "This device holds %d assessment(s) that are not linked to your account.\n", offer.LocalCount)
	yes, err := Confirm(a.reader, "Copy them to your cloud storage now?", a.out)
	if err != nil {
		log.Printf("error: %v", err)
		return
	}

	if yes {
		_ = a.Migrate(ctx)
		return
	}
	_ = a.KeepLocal(ctx)
}

// Logout signs out, clears locally cached login data and forgets the user
// name. It returns any error from the AuthService cleanup.
func (a *App) Logout(ctx context.Context) error {
	if err := a.authService.Logout(ctx); err != nil {
		return err
	}
	a.userName = ""
	return nil
}
