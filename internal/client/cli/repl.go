package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error

	Assess(ctx context.Context) error
	History(ctx context.Context) error
	Export(ctx context.Context, args []string) error
	ExportCloud(ctx context.Context) error
	DeleteAll(ctx context.Context) error
	Sync(ctx context.Context, args []string) error
	Migrate(ctx context.Context) error
	KeepLocal(ctx context.Context) error
	Consent(ctx context.Context) error
	Lang(ctx context.Context, args []string) error
	Diary(ctx context.Context, args []string) error
}

const (
	helpAnonymous = "Available commands: phq9, history, export [file], deleteall, sync on|off|status, consent, lang [en|mi|zh], register, login, exit"
	helpSignedIn  = "Available commands: phq9, history, export [file], exportcloud, deleteall, sync on|off|status, migrate, keeplocal, consent, lang [en|mi|zh], diary write|list|show|delete, logout, exit"
)

// runREPL starts a simple read–eval–print loop for the Aroha CLI.
//
// It reads a line from reader, parses the first token as the command, and
// dispatches to methods on 'a'. Unknown commands are reported back to the
// user. The loop exits on EOF or when the user types "exit" or "quit".
//
// Commands
//
//	Always:
//	  - help                      - show available commands
//	  - phq9                      - answer the questionnaire
//	  - history                   - list past results, newest first
//	  - export [file]             - write all data as JSON (stdout without file)
//	  - deleteall                 - remove all local data
//	  - sync on|off|status        - cloud sync preference
//	  - consent                   - review the privacy consent
//	  - lang [en|mi|zh]           - show or change the language
//	  - register | login          - account management
//	  - exit | quit               - leave the program
//
//	Logged in:
//	  - exportcloud               - upload the export to cloud storage
//	  - migrate | keeplocal       - answer the pending migration offer
//	  - diary write|list|show|delete [date]
//	  - logout
//
// Any errors returned by command handlers are ignored here; handlers should
// log their own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		printlnFn(fmt.Sprintf("aroha %s> ", statusFn()))
		line, err := reader.ReadString('\n')
		if err != nil && (!errors.Is(err, io.EOF) || line == "") {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn(helpSignedIn)
			} else {
				printlnFn(helpAnonymous)
			}

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "phq9":
			_ = a.Assess(ctx)

		case "h", "history":
			_ = a.History(ctx)

		case "export":
			_ = a.Export(ctx, args)

		case "exportcloud":
			_ = a.ExportCloud(ctx)

		case "deleteall":
			_ = a.DeleteAll(ctx)

		case "sync":
			_ = a.Sync(ctx, args)

		case "migrate":
			_ = a.Migrate(ctx)

		case "keeplocal":
			_ = a.KeepLocal(ctx)

		case "consent":
			_ = a.Consent(ctx)

		case "lang":
			_ = a.Lang(ctx, args)

		case "diary":
			_ = a.Diary(ctx, args)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}

		if err != nil {
			return
		}
	}
}
