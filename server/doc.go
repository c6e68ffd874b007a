// Package server exposes a finalized snapshot over a read-only JSON
// HTTP API, with Prometheus metrics and an optional file watcher that
// rebuilds the snapshot when declaration files change.
//
// The snapshot pointer is swapped atomically on reload; in-flight
// requests keep the snapshot they started with, and a failed reload
// leaves the previous snapshot serving.
package server
