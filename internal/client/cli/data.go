package cli

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/dmitrijs2005/aroha/internal/client/models"
	"github.com/dmitrijs2005/aroha/internal/common"
)

// nowFn is the clock used for consent timestamps.
var nowFn = time.Now

// writeFile is a test seam for os.WriteFile.
var writeFile = os.WriteFile

// Export writes the JSON export to the file named in args, or to the output
// when no file is given.
func (a *App) Export(ctx context.Context, args []string) error {
	data, err := a.records.ExportAllAsJSON(ctx)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	if len(args) == 0 {
		fmt.Fprintln(a.out, string(data))
		return nil
	}

	if err := writeFile(args[0], data, 0o600); err != nil {
		log.Printf("error: %v", err)
		return err
	}
	fmt.Fprintf(a.out, "Exported to %s\n", args[0])
	return nil
}

func (a *App) ExportCloud(ctx context.Context) error {
	key, err := a.cloudExport.Upload(ctx)
	if err != nil {
		log.Printf("error: %v", err)
		a.reportAuth(err)
		return err
	}
	fmt.Fprintf(a.out, "Uploaded export as %s\n", key)
	return nil
}

// DeleteAll removes local records and preferences after confirmation.
func (a *App) DeleteAll(ctx context.Context) error {
	ok, err := Confirm(a.reader, "Delete all assessments and preferences stored on this device?", a.out)
	if err != nil || !ok {
		return err
	}

	if err := a.records.DeleteAllData(ctx); err != nil {
		log.Printf("error: %v", err)
		return err
	}
	fmt.Fprintln(a.out, "All local data deleted.")
	return nil
}

// Sync shows or changes the cloud sync preference.
func (a *App) Sync(ctx context.Context, args []string) error {
	if len(args) == 0 || args[0] == "status" {
		state := "off"
		if a.records.IsCloudSyncEnabled(ctx) {
			state = "on"
		}
		fmt.Fprintf(a.out, "Cloud sync is %s\n", state)
		if !a.prefs.BackendConfigured() {
			fmt.Fprintln(a.out, "No server is configured; results stay on this device.")
		}
		return nil
	}

	var enabled bool
	switch args[0] {
	case "on":
		enabled = true
	case "off":
		enabled = false
	default:
		fmt.Fprintln(a.out, "Usage: sync on|off|status")
		return fmt.Errorf("%w: %q", common.ErrInvalidInput, args[0])
	}

	counts, err := a.records.SetCloudSyncEnabled(ctx, enabled)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	if enabled {
		fmt.Fprintln(a.out, "Cloud sync enabled.")
		if counts.Total() > 0 {
			fmt.Fprintf(a.out, "Backfill: %s\n", counts)
		}
	} else {
		fmt.Fprintln(a.out, "Cloud sync disabled.")
	}
	return nil
}

func (a *App) Migrate(ctx context.Context) error {
	counts, err := a.records.MigrateNow(ctx)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}
	fmt.Fprintf(a.out, "Migration finished: %s\n", counts)
	return nil
}

func (a *App) KeepLocal(ctx context.Context) error {
	if err := a.records.KeepLocal(ctx); err != nil {
		log.Printf("error: %v", err)
		return err
	}
	fmt.Fprintln(a.out, "Your assessments stay on this device.")
	return nil
}

// Consent shows the privacy notice and records the answer.
func (a *App) Consent(ctx context.Context) error {
	fmt.Fprintln(a.out, consentText)

	if c, err := a.prefs.Consent(ctx); err == nil && c != nil && c.HasConsented {
		fmt.Fprintf(a.out, "You agreed on %s.\n", c.ConsentDate.Local().Format("2006-01-02"))
	}

	ok, err := Confirm(a.reader, "Do you agree?", a.out)
	if err != nil {
		return err
	}
	if err := a.prefs.SetConsent(ctx, ok, nowFn()); err != nil {
		log.Printf("error: %v", err)
		return err
	}
	return nil
}

// Lang prints the current language or switches to the one given.
func (a *App) Lang(ctx context.Context, args []string) error {
	if len(args) == 0 {
		fmt.Fprintf(a.out, "Language: %s (available: %v)\n", a.prefs.Language(ctx), models.SupportedLanguages)
		return nil
	}

	lang, err := models.ParseLanguage(args[0])
	if err != nil {
		fmt.Fprintf(a.out, "Unsupported language %q\n", args[0])
		return err
	}
	if err := a.prefs.SetLanguage(ctx, lang); err != nil {
		log.Printf("error: %v", err)
		return err
	}
	fmt.Fprintf(a.out, "Language set to %s\n", lang)
	return nil
}

// reportAuth prints a hint when a remote operation needs a signed-in user.
func (a *App) reportAuth(err error) {
	if errors.Is(err, common.ErrAuthRequired) {
		fmt.Fprintln(a.out, "Please log in first.")
	}
}
