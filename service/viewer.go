package service

import (
	"fmt"
	"os/exec"
	"runtime"
)

// OpenInViewer opens a file with the default viewer of the platform
func OpenInViewer(path string) error {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", path)
	case "darwin":
		cmd = exec.Command("open", path)
	default:
		cmd = exec.Command("xdg-open", path)
	}
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to open %s: %w", path, err)
	}
	// the viewer keeps running on its own
	go cmd.Wait()
	return nil
}
