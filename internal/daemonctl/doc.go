// Package daemonctl supervises the management service process from the CLI.
//
// Start implements the idempotent start protocol: probe the running service
// through the remote dispatcher, and only when nothing answers resolve the
// service binary, spawn it, and either detach or wait for it in the
// foreground. It is the only code in the CLI that creates OS processes.
//
// The probe and the spawn are not atomic. Two concurrent starts can both miss
// the probe and both spawn; configure a start lock to serialize them on one
// host.
package daemonctl
