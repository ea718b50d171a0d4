package progress

import (
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

const (
	envNoColor = "NO_COLOR"
	envCI      = "CI"
	envTerm    = "TERM"
)

// Interactive reports whether f is a terminal that can be redrawn in place.
// CI, NO_COLOR and TERM=dumb all disable redrawing.
func Interactive(f *os.File) bool {
	if envTruthy(envCI) || strings.TrimSpace(os.Getenv(envNoColor)) != "" {
		return false
	}
	if strings.EqualFold(strings.TrimSpace(os.Getenv(envTerm)), "dumb") {
		return false
	}
	info, err := f.Stat()
	if err != nil {
		return false
	}
	return (info.Mode() & os.ModeCharDevice) != 0
}

// ConfigureColor selects the lipgloss color profile for the given mode.
func ConfigureColor(interactive bool) {
	if interactive {
		lipgloss.SetColorProfile(termenv.ColorProfile())
		return
	}
	lipgloss.SetColorProfile(termenv.Ascii)
}

// New returns a Bar for interactive terminals and a Plain reporter otherwise.
func New(w io.Writer, interactive bool) Reporter {
	if interactive {
		return NewBar(w)
	}
	return NewPlain(w)
}

func envTruthy(key string) bool {
	v := strings.TrimSpace(strings.ToLower(os.Getenv(key)))
	switch v {
	case "1", "true", "yes", "on":
		return true
	default:
		return false
	}
}
