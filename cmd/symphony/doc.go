// Package main hosts the symphony CLI entrypoint and command graph.
//
// Each subcommand builds one command value and hands it to the router, which
// either runs the local start protocol or forwards the command to the
// management service over its Unix socket. Configuration resolution, socket
// discovery, and logger setup live in the shared command context.
package main
