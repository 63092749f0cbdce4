package tui

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"attnview/internal/assets"
	"attnview/internal/review"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	tabStyle     = lipgloss.NewStyle().Padding(0, 1).Foreground(lipgloss.Color("243"))
	activeTab    = tabStyle.Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57")).Bold(true)
	labelStyle   = lipgloss.NewStyle().Width(10).Foreground(lipgloss.Color("243"))
	textStyle    = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("62")).Padding(0, 1)
	foundStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	missingStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
	faintStyle   = lipgloss.NewStyle().Faint(true)
	errorStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196"))
	helpStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

const helpText = "1/2/3 task • ←/→ id • space play/stop • +/- interval • r reload • q quit"

func (m *Model) View() string {
	frame := m.ctrl.Frame()
	var b strings.Builder

	b.WriteString(titleStyle.Render(frame.Title))
	b.WriteString("\n")
	b.WriteString(renderTabs(frame.Tasks))
	b.WriteString("\n\n")

	if frame.Blocked {
		b.WriteString(errorStyle.Render(frame.Error))
		b.WriteString("\n\n")
		m.writeFooter(&b)
		return b.String()
	}

	b.WriteString(renderPosition(frame))
	b.WriteString("\n")
	if frame.Notice != "" {
		b.WriteString(missingStyle.Render(frame.Notice))
		b.WriteString("\n")
	}

	width := m.width - 4
	if width < 20 {
		width = 60
	}
	b.WriteString(textStyle.Width(width).Render(frame.DisplayText))
	b.WriteString("\n")

	if frame.Assets != nil {
		b.WriteString(renderSlot("Original", frame.Assets.Original))
		for _, slot := range frame.Assets.AOI {
			label := "AOI"
			if slot.Label != "" {
				label = "AOI " + slot.Label
			}
			b.WriteString(renderSlot(label, slot))
		}
		if frame.Assets.AOIStatus == assets.StatusMissing && len(frame.Assets.AOI) == 0 {
			b.WriteString(labelStyle.Render("AOI") + missingStyle.Render("missing") + "\n")
		}
		if frame.HasVideo {
			b.WriteString(labelStyle.Render("Video") + foundStyle.Render(filepath.Base(frame.Assets.Video.Path)) + "\n")
		} else {
			b.WriteString(labelStyle.Render("Video") + faintStyle.Render(review.NoVideoNotice) + "\n")
		}
	}

	for _, warning := range frame.MissingWarnings() {
		b.WriteString(missingStyle.Render(warning))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	m.writeFooter(&b)
	return b.String()
}

func (m *Model) writeFooter(b *strings.Builder) {
	if last := m.status.Last(); last != "" {
		b.WriteString(missingStyle.Render("! " + last))
		b.WriteString("\n")
	}
	b.WriteString(helpStyle.Render(helpText))
}

func renderTabs(options []review.TaskOption) string {
	tabs := make([]string, 0, len(options))
	for i, opt := range options {
		label := fmt.Sprintf("%d %s", i+1, opt.Title)
		if opt.Active {
			tabs = append(tabs, activeTab.Render(label))
			continue
		}
		tabs = append(tabs, tabStyle.Render(label))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func renderPosition(frame review.Frame) string {
	state := "■ idle"
	if frame.Playing {
		state = "▶ playing"
	}
	pos := "no responses"
	if len(frame.IDs) > 0 {
		pos = fmt.Sprintf("ID %s (%d/%d)", frame.CurrentID, frame.Index+1, len(frame.IDs))
	}
	return fmt.Sprintf("%s  %s  %s", pos, faintStyle.Render(state), faintStyle.Render(fmt.Sprintf("every %.1fs", frame.Interval)))
}

func renderSlot(label string, slot assets.Slot) string {
	switch slot.Status {
	case assets.StatusFound:
		return labelStyle.Render(label) + foundStyle.Render("found") + "  " + faintStyle.Render(slot.Path) + "\n"
	case assets.StatusMissing:
		return labelStyle.Render(label) + missingStyle.Render("missing") + "  " + faintStyle.Render(slot.Path) + "\n"
	default:
		return labelStyle.Render(label) + faintStyle.Render("n/a") + "\n"
	}
}
