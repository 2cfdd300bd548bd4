// Package router sends each CLI command to exactly one handler.
//
// StartService goes to the local process supervisor. Every other command is
// forwarded unchanged to the remote dispatcher. Outcomes and failures of both
// paths are rendered in the caller's chosen output mode.
package router
