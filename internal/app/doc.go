// Package app provides the Bubble Tea preview program for plant-haiku.
//
// The preview shows one panel full-screen. Tapping it (enter, space or r)
// follows the panel's re-invocation reference through a host-supplied
// Rerun function and swaps in the freshly generated panel. Any quit key
// dismisses the preview, which ends the host's PresentSmall call.
//
// The main type is Model, which implements the Bubble Tea interface
// (Init, Update, View).
package app
