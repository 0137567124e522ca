// Package cli provides the interactive VoiceProof command-line client.
//
// It wires configuration, the local credential cache, the API services, and
// a REPL. Typical flow: restore or prompt for a session, start the expiry
// watchdog, and execute user commands until exit.
//
// Commands:
//   - login / register / logout
//   - analyze <file> — upload an audio file for deepfake detection
//   - history        — previously analyzed files
//   - stats          — per-user aggregate counters
//   - status, whoami — session and profile details
//
// The REPL is started via App.Root(ctx), which blocks until the user exits.
package cli
