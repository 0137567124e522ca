// Package client contains the transport layer of the VoiceProof CLI.
//
// # Overview
//
// The package provides:
//  1. The API contract (Client) against the backend: tokenless auth calls
//     (Login, Register) and protected calls (Predict, History, Stats).
//  2. The HTTP implementation (HTTPClient), which checks the local session
//     before dispatch, injects the bearer token and a request ID, applies a
//     JSON content type by default, and maps failures to sentinel errors.
//  3. Local persistence bootstrap (InitDatabase, RunMigrations) wiring the
//     SQLite credential cache with embedded goose migrations.
//
// # Error Handling
//
// Failure classes are exposed as values callers match with errors.Is/As:
// ErrAuthRequired (no valid local session, nothing was sent),
// ErrReloginRequired (the server answered 401 and the session was cleared),
// ErrUnavailable (transport failure, session untouched), and *APIError for
// any other non-2xx response, carrying the server's detail message.
package client
