package output

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/sys/unix"
)

// Styles holds the lipgloss styles for the run summary.
type Styles struct {
	Label lipgloss.Style
	Value lipgloss.Style
}

// NewStyles creates the default color styles, rendered for w.
func NewStyles(w io.Writer) Styles {
	r := lipgloss.NewRenderer(w)
	return Styles{
		Label: r.NewStyle().Foreground(lipgloss.Color("6")),           // cyan
		Value: r.NewStyle().Foreground(lipgloss.Color("2")).Bold(true), // bold green
	}
}

// NoStyles returns styles with no coloring.
func NoStyles() Styles {
	return Styles{
		Label: lipgloss.NewStyle(),
		Value: lipgloss.NewStyle(),
	}
}

// IsTerminal checks if the given file descriptor is a terminal using ioctl.
func IsTerminal(fd uintptr) bool {
	_, err := unix.IoctlGetTermios(int(fd), unix.TCGETS)
	return err == nil
}
