package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// ResolveColor maps a --color flag value to a decision. Auto means color
// when stdout is a terminal and the environment does not opt out
// (NO_COLOR, CLICOLOR=0).
func ResolveColor(mode string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case "", "auto":
		if termenv.EnvNoColor() {
			return false, nil
		}
		return term.IsTerminal(int(os.Stdout.Fd())), nil
	case "on", "true", "1", "yes":
		return true, nil
	case "off", "false", "0", "no":
		return false, nil
	default:
		return false, fmt.Errorf("expected auto|on|off")
	}
}
