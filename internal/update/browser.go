// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package update

import (
	"fmt"
	"os/exec"
	"runtime"
)

// browserCommand builds the OS command that opens url in the default browser.
var browserCommand = func(url string) *exec.Cmd {
	switch runtime.GOOS {
	case "windows":
		return exec.Command("rundll32", "url.dll,FileProtocolHandler", url)
	case "darwin":
		return exec.Command("open", url)
	default:
		return exec.Command("xdg-open", url)
	}
}

// OpenBrowser opens url without waiting for the browser to exit.
func OpenBrowser(url string) error {
	cmd := browserCommand(url)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("opening %s: %w", url, err)
	}
	go cmd.Wait()
	return nil
}
