// Package render writes command outcomes in the two output modes the CLI
// supports.
//
// Structured mode prints one compact JSON object per line on stdout for every
// outcome, failures included. Human mode prints status lines and raw payloads
// on stdout and failures as "Error: <message>" on stderr. Both the process
// supervisor and the remote dispatch path go through the same Renderer so the
// contract holds for every command.
package render
