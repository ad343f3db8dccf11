package ui

import "testing"

func withColor(t *testing.T, enabled bool) {
	t.Helper()
	previous := colorEnabled
	colorEnabled = enabled
	applyColor()
	t.Cleanup(func() {
		colorEnabled = previous
		applyColor()
	})
}
