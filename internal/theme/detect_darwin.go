//go:build darwin

package theme

import (
	"os/exec"
	"strings"
)

// DetectSystemTheme reads AppleInterfaceStyle to pick DARK or LIGHT.
func DetectSystemTheme() ID {
	output, err := exec.Command("defaults", "read", "-g", "AppleInterfaceStyle").Output()
	if err != nil {
		// key is absent in light mode
		return Light
	}
	if strings.TrimSpace(string(output)) == "Dark" {
		return Dark
	}
	return Light
}
