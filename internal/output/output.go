// Package output writes the user facing text of levscore. Whether colors are
// used is fixed when the Printer is built.
package output

import (
	"fmt"
	"io"
	"os"

	"github.com/gookit/color"

	"github.com/ughe/levscore/editdist"
)

type Printer struct {
	w       io.Writer
	colored bool
}

func New(w io.Writer, colored bool) *Printer {
	return &Printer{w: w, colored: colored}
}

// TerminalSupportsColor reports whether text written to f should carry ANSI
// colors: f is a terminal, the terminal renders colors, and neither NO_COLOR
// nor color.Enable turned them off.
func TerminalSupportsColor(f *os.File) bool {
	return colorAllowed(os.Getenv("NO_COLOR"), color.Enable, color.SupportColor(), color.IsTerminal(f.Fd()))
}

func colorAllowed(noColor string, enabled, supported, terminal bool) bool {
	return noColor == "" && enabled && supported && terminal
}

func (p *Printer) paint(c color.Color, s string) string {
	if !p.colored || s == "" {
		return s
	}
	return fmt.Sprintf(color.FullColorTpl, c.Code(), s)
}

func (p *Printer) Green(s string) string { return p.paint(color.FgGreen, s) }
func (p *Printer) Red(s string) string   { return p.paint(color.FgRed, s) }
func (p *Printer) Blue(s string) string  { return p.paint(color.FgBlue, s) }

// Score renders s colored by its grade.
func (p *Printer) Score(s editdist.Score) string {
	switch s.Grade() {
	case editdist.Perfect:
		return p.Green(s.String())
	case editdist.Zero:
		return p.Red(s.String())
	default:
		return p.Blue(s.String())
	}
}

func (p *Printer) Printf(format string, a ...any) {
	fmt.Fprintf(p.w, format, a...)
}

func (p *Printer) Println(a ...any) {
	fmt.Fprintln(p.w, a...)
}
