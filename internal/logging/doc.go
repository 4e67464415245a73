// Package logger provides leveled logging for mine commands.
//
// Verbosity is controlled by two flags:
//
//   - --verbose: shows info messages
//   - --debug: shows info and debug messages
//
// Warnings and errors are always shown. Output goes to stderr so that
// secrets printed on stdout can be piped without log noise.
//
//	log := logger.Logger{Verbose: verbose, Debug: debug}
//	log.Infof("Inserted %d secrets", n)
//
// Log lines are never allowed to carry secret material or logical names
// of entries; callers log counts and operations only.
package logger
