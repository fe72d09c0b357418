//go:build !ebiten

package ui

// DrawText is a no-op in the headless build.
func DrawText(dst any, s string, x, y int) {}

// DrawTextCentered is a no-op in the headless build.
func DrawTextCentered(dst any, s string, cx, cy int) {}
