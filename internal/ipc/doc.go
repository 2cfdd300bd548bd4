// Package ipc carries commands to the management service over JSON-RPC on a
// Unix domain socket and ships the matching server side.
//
// The Dispatcher is the CLI's remote dispatch client: it dials the socket,
// sends one command envelope, and returns either the service's payload or a
// single flat error describing what went wrong. Callers cannot tell an
// unreachable service from a command the service rejected, and they are not
// meant to.
//
// Server exposes any Handler under the same protocol so tests (and a service
// embedding this package) speak exactly what the CLI sends.
package ipc
