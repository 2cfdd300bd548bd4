// Package command defines the closed set of administrative intents the CLI
// can express and their wire representation.
//
// Variants are plain immutable values. The Command interface is sealed so the
// router can treat the set as exhaustive: StartService is handled locally by
// the process supervisor and every other variant is forwarded unchanged to the
// running management service.
package command
