// Package player hands the selected stream to an external media player.
//
// mpv, iina and vlc get dedicated arguments so the window carries the stream
// title. Any other binary receives the configured arguments followed by the URL.
package player

import (
	"fmt"
	"net/url"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/spf13/viper"
	"github.com/ttvcli/ttv/constant"
	"github.com/ttvcli/ttv/key"
	"github.com/ttvcli/ttv/log"
)

// Known player identifiers for player.default.
const (
	MPV  = "mpv"
	IINA = "iina"
	VLC  = "vlc"
)

// Available lists the players with dedicated support.
func Available() []string {
	return []string{MPV, IINA, VLC}
}

// Player launches a media player binary.
type Player struct {
	// Name is either a known identifier or a path to any executable.
	Name string
	// Args are passed before the player specific title flags and the URL.
	Args []string
}

// New returns the player configured by player.default and player.args.
func New() *Player {
	return &Player{
		Name: viper.GetString(key.PlayerDefault),
		Args: viper.GetStringSlice(key.PlayerArgs),
	}
}

// Command builds the invocation for playing target titled title, without running it.
func (p *Player) Command(target, title string) (name string, args []string, err error) {
	safeURL, err := sanitizeMediaTarget(target)
	if err != nil {
		return "", nil, fmt.Errorf("invalid media target: %w", err)
	}
	safeTitle := sanitizeTitle(title)

	name = strings.TrimSpace(p.Name)
	if name == "" {
		name = MPV
	}

	switch strings.ToLower(filepath.Base(name)) {
	case MPV:
		args = append(args, p.Args...)
		if safeTitle != "" {
			args = append(args,
				fmt.Sprintf("--force-media-title=%s", safeTitle),
				fmt.Sprintf("--title=%s", safeTitle),
			)
		}
		args = append(args, safeURL)
	case IINA:
		if runtime.GOOS != constant.Darwin {
			return "", nil, fmt.Errorf("IINA is only supported on macOS")
		}
		// IINA forwards mpv options given after --args.
		args = []string{"-a", "IINA", safeURL, "--args"}
		args = append(args, p.Args...)
		if safeTitle != "" {
			args = append(args, fmt.Sprintf("--mpv-force-media-title=%s", safeTitle))
		}
		name = "open"
	case VLC:
		args = append(args, p.Args...)
		if safeTitle != "" {
			args = append(args, fmt.Sprintf("--meta-title=%s", safeTitle))
		}
		args = append(args, safeURL)
	default:
		args = append(append(args, p.Args...), safeURL)
	}

	return name, args, nil
}

// Play starts the player detached from the terminal and returns once it is running.
func (p *Player) Play(target, title string) error {
	name, args, err := p.Command(target, title)
	if err != nil {
		return err
	}

	path, err := exec.LookPath(name)
	if err != nil {
		return fmt.Errorf("player %q not found, set %s: %w", name, key.PlayerDefault, err)
	}

	cmd := exec.Command(path, args...)
	// Detach from parent process group so closing ttv does not take the player down.
	cmd.SysProcAttr = sysProcAttr()
	cmd.Stdout = nil
	cmd.Stderr = nil
	cmd.Stdin = nil

	log.Infof("launching %s for %s", name, title)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("start %s: %w", name, err)
	}

	log.Debugf("%s started with pid %d", name, cmd.Process.Pid)
	return cmd.Process.Release()
}

// sanitizeMediaTarget validates that a URL is safe to pass to a player.
func sanitizeMediaTarget(link string) (string, error) {
	l := strings.TrimSpace(link)
	if l == "" {
		return "", fmt.Errorf("empty URL")
	}

	if strings.ContainsAny(l, "\x00\n\r") {
		return "", fmt.Errorf("invalid control characters in URL")
	}

	// URLs must not start with - or players read them as flags.
	if strings.HasPrefix(l, "-") {
		return "", fmt.Errorf("url must not start with '-' (looks like a flag)")
	}

	if strings.Contains(l, "://") {
		u, err := url.Parse(l)
		if err != nil {
			return "", fmt.Errorf("invalid URL: %w", err)
		}
		switch strings.ToLower(u.Scheme) {
		case "http", "https":
			return l, nil
		default:
			return "", fmt.Errorf("unsupported URL scheme: %s", u.Scheme)
		}
	}

	return filepath.Clean(l), nil
}

func sanitizeTitle(title string) string {
	t := strings.NewReplacer("\n", " ", "\r", " ", "\t", " ", "\x00", "").Replace(title)
	return strings.TrimSpace(t)
}
