// Package debug provides debug logging functionality for pawprint.
//
// When enabled via the --debug flag or the debug.enabled setting, it
// logs panel switches, frame scheduling and configuration problems to a
// file. Each line carries the process's session id.
package debug
