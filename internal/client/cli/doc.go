// Package cli provides the Aroha command-line client.
//
// It wires configuration, the local SQLite store, the optional gRPC backend
// and an interactive REPL. Without a subcommand the REPL starts; score,
// submit, history, export and delete-all run once and exit.
//
// The REPL covers:
//   - PHQ-9 questionnaire with result, nudge and crisis resources
//   - History, JSON export and delete-all
//   - Cloud sync preference and the one-time migration offer
//   - Register / Login / Logout (online with offline fallback)
//   - Diary entries for signed-in users
//
// See App.Root, runREPL and NewRootCommand.
package cli
