//go:build !darwin

package theme

// DetectSystemTheme returns DARK; there is no portable dark-mode query
// outside macOS.
func DetectSystemTheme() ID {
	return Dark
}
