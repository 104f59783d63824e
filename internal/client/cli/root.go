package cli

import (
	"context"
	"fmt"
	"log"
)

func (a *App) getStatus() string {
	s := ""
	if a.userName != "" {
		s = a.userName + " "
	}
	if m := a.mode(); m != "" {
		s = s + string(m)
	}
	if s != "" {
		s = fmt.Sprintf("(%s)", s)
	}
	return s
}

// Root greets the user, asks for consent on the first start and runs the
// REPL until the user leaves. With a server configured a connectivity
// watcher keeps the status line current.
func (a *App) Root(ctx context.Context) {
	log.Println("Welcome to Aroha (type 'help' for commands)")

	if consent, err := a.prefs.Consent(ctx); err == nil && consent == nil {
		_ = a.Consent(ctx)
	}

	if a.prefs.BackendConfigured() {
		go func() {
			a.StartOnlineStatusWatcher(ctx, a.config.OnlineCheckInterval)
		}()
	}

	runREPL(ctx, a, a.getStatus, a.reader)
}
