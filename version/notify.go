// Package version checks for newer releases and compares version strings.
package version

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/viper"
	"github.com/ttvcli/ttv/color"
	"github.com/ttvcli/ttv/constant"
	"github.com/ttvcli/ttv/icon"
	"github.com/ttvcli/ttv/key"
	"github.com/ttvcli/ttv/log"
	"github.com/ttvcli/ttv/style"
	"github.com/ttvcli/ttv/util"
)

// Notify prints a notice when a newer release than the running one exists.
// Failures are logged and otherwise ignored.
func Notify(ctx context.Context) {
	if !viper.GetBool(key.CliVersionCheck) {
		return
	}

	if ctx == nil {
		ctx = context.Background()
	}
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	erase := util.PrintErasable(fmt.Sprintf("%s Checking if new version is available...", icon.Get(icon.Progress)))
	latest, err := Latest(ctx)
	erase()
	if err != nil {
		log.Warnf("version check: %v", err)
		return
	}

	comp, err := Compare(latest, constant.Version)
	if err != nil || comp <= 0 {
		return
	}

	fmt.Printf(`
%s New version is available %s %s
%s

`,
		style.Fg(color.Green)("▇▇▇"),
		style.Bold(latest),
		style.Faint(fmt.Sprintf("(You're on %s)", constant.Version)),
		style.Faint("https://github.com/ttvcli/ttv/releases/tag/v"+latest),
	)
}
