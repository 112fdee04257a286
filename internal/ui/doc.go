// Package ui provides rendering for plant haikus.
//
// RenderPanel draws the styled gradient panel a graphical host shows.
// RenderText produces the plain ruled block for non-interactive output.
// Both are pure and take an already-formatted haiku.Presentation.
package ui
