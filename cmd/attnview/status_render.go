package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"

	"attnview/internal/assets"
)

type statusKind int

const (
	statusInfo statusKind = iota
	statusOK
	statusWarn
	statusError
)

const (
	ansiReset  = "\x1b[0m"
	ansiRed    = "\x1b[31m"
	ansiGreen  = "\x1b[32m"
	ansiYellow = "\x1b[33m"
	ansiBlue   = "\x1b[34m"
)

const (
	statusLabelWidth = 16
	statusIndent     = "  "
)

var statusStyles = map[statusKind]struct {
	label string
	color string
}{
	statusInfo:  {"INFO", ansiBlue},
	statusOK:    {"OK", ansiGreen},
	statusWarn:  {"WARN", ansiYellow},
	statusError: {"ERROR", ansiRed},
}

// statusPrinter collects labelled status lines, colorizing them only when
// the destination is a terminal.
type statusPrinter struct {
	color bool
	lines []string
}

func newStatusPrinter(w io.Writer) *statusPrinter {
	return &statusPrinter{color: shouldColorize(w)}
}

func (p *statusPrinter) header(title string) {
	line := fmt.Sprintf("== %s ==", strings.TrimSpace(title))
	rule := strings.Repeat("-", len([]rune(line)))
	p.lines = append(p.lines, p.paint(ansiBlue, line), p.paint(ansiBlue, rule))
}

func (p *statusPrinter) status(label string, kind statusKind, message string) {
	style := statusStyles[kind]
	text := fmt.Sprintf("%s%-*s [%s]", statusIndent, statusLabelWidth, label+":", style.label)
	if message != "" {
		text += " " + message
	}
	p.lines = append(p.lines, p.paint(style.color, text))
}

// slot reports one asset slot. Missing files keep their expected path so
// the user knows what to add.
func (p *statusPrinter) slot(label string, slot assets.Slot) {
	switch slot.Status {
	case assets.StatusFound:
		p.status(label, statusOK, slot.Path)
	case assets.StatusMissing:
		p.status(label, statusWarn, "Missing: "+slot.Path)
	default:
		p.status(label, statusInfo, "not applicable")
	}
}

func (p *statusPrinter) paint(color, text string) string {
	if !p.color || color == "" {
		return text
	}
	return color + text + ansiReset
}

func (p *statusPrinter) flush(w io.Writer) {
	for _, line := range p.lines {
		fmt.Fprintln(w, line)
	}
	p.lines = p.lines[:0]
}

func shouldColorize(writer io.Writer) bool {
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
