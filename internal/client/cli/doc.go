// Package cli provides the interactive command-line client for the
// equipment API.
//
// It wires configuration, the HTTP API client and an interactive REPL. A
// background watcher probes the server (gRPC health service or HTTP
// /health) and shows online/offline in the prompt.
//
// Commands:
//   - list / get / add / update / delete equipment
//   - register / login / logout
//
// The REPL is started via App.Root(ctx), which blocks until the user exits.
// See App, StartOnlineStatusWatcher, and runREPL for details.
package cli
