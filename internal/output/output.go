package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// Exit codes. Every failure exits with ExitFailure.
const (
	ExitSuccess = 0
	ExitFailure = 1
)

// ExitCode maps a command error to a process exit code.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	return ExitFailure
}

// IsTTY reports whether w is a terminal.
func IsTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

type styles struct {
	Error   lipgloss.Style
	Success lipgloss.Style
	Warning lipgloss.Style
	Bold    lipgloss.Style
	Dim     lipgloss.Style
}

func newStyles(isTTY bool) styles {
	if !isTTY {
		return styles{
			Error:   lipgloss.NewStyle(),
			Success: lipgloss.NewStyle(),
			Warning: lipgloss.NewStyle(),
			Bold:    lipgloss.NewStyle(),
			Dim:     lipgloss.NewStyle(),
		}
	}
	return styles{
		Error:   lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		Success: lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		Warning: lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
		Bold:    lipgloss.NewStyle().Bold(true),
		Dim:     lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
	}
}

// Printer writes command output in human or JSON form.
type Printer struct {
	w        io.Writer
	jsonMode bool
	styles   styles
}

// NewPrinter returns a Printer writing to w.
func NewPrinter(w io.Writer, jsonMode, isTTY bool) *Printer {
	return &Printer{w: w, jsonMode: jsonMode, styles: newStyles(isTTY)}
}

// IsJSON reports whether the printer emits JSON.
func (p *Printer) IsJSON() bool { return p.jsonMode }

// Success prints a confirmation line. In JSON mode it emits {"message": msg}.
func (p *Printer) Success(msg string) {
	if p.jsonMode {
		_ = p.JSON(map[string]string{"message": msg})
		return
	}
	fmt.Fprintln(p.w, p.styles.Success.Render(msg))
}

// Item prints one list entry as "- text".
func (p *Printer) Item(text string) {
	fmt.Fprintln(p.w, "- "+p.styles.Bold.Render(text))
}

// Warn prints a warning line.
func (p *Printer) Warn(msg string) {
	fmt.Fprintln(p.w, p.styles.Warning.Render("WARNING: "+msg))
}

// Dim prints a de-emphasized line.
func (p *Printer) Dim(msg string) {
	fmt.Fprintln(p.w, p.styles.Dim.Render(msg))
}

// Error prints err. In JSON mode it emits {"error": ..., "code": 1}.
func (p *Printer) Error(err error) {
	if p.jsonMode {
		_ = p.JSON(map[string]any{"error": err.Error(), "code": ExitCode(err)})
		return
	}
	fmt.Fprintln(p.w, p.styles.Error.Render("ERROR: "+err.Error()))
}

// JSON writes v as indented JSON.
func (p *Printer) JSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling output: %w", err)
	}
	_, err = fmt.Fprintln(p.w, string(data))
	return err
}
