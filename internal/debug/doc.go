// Package debug provides debug logging for plant-haiku.
//
// When enabled via the --debug flag, it writes structured records about
// selection, host detection and presentation to a log file. Warnings and
// errors are also echoed to stderr.
package debug
