package tui

import (
	"os"
	"os/exec"
	"runtime"

	"go.uber.org/zap"

	"github.com/strickvl/beemind/internal/logging"
)

// openBrowser launches the system browser at the given URL. Best effort:
// failures are logged and otherwise ignored. Set BEEMIND_NO_BROWSER=1 to
// suppress opening (useful for tests).
func openBrowser(url string) {
	if os.Getenv("BEEMIND_NO_BROWSER") != "" {
		return
	}

	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", url)
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", url)
	default:
		cmd = exec.Command("xdg-open", url)
	}
	if err := cmd.Start(); err != nil {
		logging.Warn("failed to open browser", zap.String("url", url), zap.Error(err))
	}
}
