// Package utils provides small helpers shared by mine commands.
//
// # System Utilities
//
//   - GetUsername: returns the current system username
//
// # String Utilities
//
//   - FormatPaths: formats a list of names for human-readable output
//   - TrimNewline: strips one trailing line ending from piped input
//
// # I/O Utilities
//
//   - ReadSecret: reads a secret from a reader, such as piped stdin
//   - IsPiped: reports whether a file such as stdin carries piped data
//
// # Terminal Utilities
//
//   - ReadPassphrase: prompts for a secret without echoing input
//   - IsTerminal: checks if stdin is a terminal
package utils
