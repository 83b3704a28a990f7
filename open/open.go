// Package open launches URLs with the system's default handler.
package open

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/ttvcli/ttv/constant"
)

// Start opens input with the default handler, or with app when it is set,
// without waiting for the handler to exit.
func Start(input, app string) error {
	name, args, ok := Command(runtime.GOOS, input, app)
	if !ok {
		return fmt.Errorf("unsupported OS: %s", runtime.GOOS)
	}
	return exec.Command(name, args...).Start()
}

// Command returns the invocation that opens input on goos.
func Command(goos, input, app string) (name string, args []string, ok bool) {
	if app != "" {
		return commandWith(goos, input, app)
	}

	switch goos {
	case constant.Windows:
		rundll := filepath.Join(os.Getenv("SYSTEMROOT"), "System32", "rundll32.exe")
		return rundll, []string{"url.dll,FileProtocolHandler", input}, true
	case constant.Darwin:
		return "open", []string{input}, true
	case constant.Linux:
		return "xdg-open", []string{input}, true
	case constant.Android:
		return "termux-open", []string{input}, true
	default:
		return "", nil, false
	}
}

func commandWith(goos, input, app string) (string, []string, bool) {
	switch goos {
	case constant.Windows:
		// start needs & escaped in multi-parameter URLs.
		escaped := strings.ReplaceAll(input, "&", "^&")
		return "cmd", []string{"/C", "start", "", app, escaped}, true
	case constant.Darwin:
		return "open", []string{"-a", app, input}, true
	case constant.Linux:
		return app, []string{input}, true
	case constant.Android:
		return "termux-open", []string{"--choose", input}, true
	default:
		return "", nil, false
	}
}
