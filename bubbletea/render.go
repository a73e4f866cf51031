package bubbletea

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/fwojciec/themecraft"
	chrome "github.com/fwojciec/themecraft/lipgloss"
)

// slotLabelWidth is the width of the slot name column.
const slotLabelWidth = 12

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	titleStyle := chrome.StyleFromColorPair(m.styles.Title, m.renderer).Bold(true).Padding(0, 1)
	mutedStyle := chrome.StyleFromColorPair(m.styles.Muted, m.renderer)

	var sb strings.Builder
	sb.WriteString(titleStyle.Render("themecraft"))
	if m.themeName != "" {
		sb.WriteString(" ")
		sb.WriteString(mutedStyle.Render(m.themeName))
	}
	sb.WriteString("\n\n")

	sb.WriteString(m.renderSlots())
	sb.WriteString("\n")
	sb.WriteString(m.renderChannels())
	sb.WriteString("\n")
	sb.WriteString(m.renderPalette())
	sb.WriteString("\n")
	sb.WriteString(m.renderFooter())

	return sb.String()
}

// renderSlots lists base and job slots, each with its swatch.
func (m Model) renderSlots() string {
	slotStyle := chrome.StyleFromColorPair(m.styles.Slot, m.renderer).Width(slotLabelWidth)
	activeStyle := chrome.StyleFromColorPair(m.styles.ActiveSlot, m.renderer).Width(slotLabelWidth).Bold(true)
	mutedStyle := chrome.StyleFromColorPair(m.styles.Muted, m.renderer)

	active := m.session.Active()
	var sb strings.Builder
	kind := themecraft.KindBase
	sb.WriteString(mutedStyle.Render("base colors"))
	sb.WriteString("\n")
	for _, slot := range m.slots {
		if slot.Kind != kind {
			kind = slot.Kind
			sb.WriteString(mutedStyle.Render("job colors"))
			sb.WriteString("\n")
		}

		marker := "  "
		style := slotStyle
		if slot == active {
			marker = "> "
			style = activeStyle
		}
		name := slot.Name
		if slot.Kind == themecraft.KindJob && slot.Name == m.session.SelectedJobColor() {
			name += " *"
		}

		c := m.session.Color(slot)
		sb.WriteString(marker)
		sb.WriteString(style.Render(name))
		sb.WriteString(" ")
		sb.WriteString(chrome.Swatch(c, c.Hex(), false, m.renderer))
		sb.WriteString("\n")
	}
	return sb.String()
}

// renderChannels shows the active color's HSL and RGB components.
func (m Model) renderChannels() string {
	labelStyle := chrome.StyleFromColorPair(m.styles.Channel, m.renderer)
	activeStyle := chrome.StyleFromColorPair(m.styles.ActiveSlot, m.renderer).Bold(true)
	mutedStyle := chrome.StyleFromColorPair(m.styles.Muted, m.renderer)

	c := m.activeColor()
	hsl := c.HSL()
	if m.session.Pending() {
		hsl = m.drag
	}

	rows := []struct {
		ch    Channel
		value int
		limit int
	}{
		{ChannelHue, hsl.H, 359},
		{ChannelSaturation, hsl.S, 100},
		{ChannelLightness, hsl.L, 100},
	}

	var sb strings.Builder
	for _, r := range rows {
		style := labelStyle
		marker := "  "
		if r.ch == m.channel {
			style = activeStyle
			marker = "> "
		}
		sb.WriteString(marker)
		sb.WriteString(style.Width(slotLabelWidth).Render(r.ch.String()))
		sb.WriteString(" ")
		sb.WriteString(chrome.Gauge(r.value, r.limit, gaugeWidth))
		sb.WriteString(fmt.Sprintf(" %3d\n", r.value))
	}

	rgb := fmt.Sprintf("  RGB %d, %d, %d  %s", c.R, c.G, c.B, c.String())
	if m.session.Pending() {
		rgb += " (editing)"
	}
	sb.WriteString(mutedStyle.Render(rgb))
	sb.WriteString("\n")
	return sb.String()
}

// renderPalette shows the harmony swatches for the current scheme.
func (m Model) renderPalette() string {
	labelStyle := chrome.StyleFromColorPair(m.styles.Channel, m.renderer)

	var sb strings.Builder
	sb.WriteString(labelStyle.Render("Harmony: " + m.session.Scheme().String()))
	sb.WriteString("\n")
	sb.WriteString(chrome.SwatchStrip(m.session.Palette(), m.swatch, m.renderer))
	sb.WriteString("\n")
	return sb.String()
}

// renderFooter shows the input prompt or the status line, then help.
func (m Model) renderFooter() string {
	statusStyle := chrome.StyleFromColorPair(m.styles.Status, m.renderer)
	errorStyle := chrome.StyleFromColorPair(m.styles.Error, m.renderer)

	var lines []string
	switch m.mode {
	case ModeHex:
		lines = append(lines, "hex #"+m.input.View())
	case ModeSave:
		lines = append(lines, "save as "+m.input.View())
	default:
		if m.status != "" {
			if m.statusErr {
				lines = append(lines, errorStyle.Render(m.status))
			} else {
				lines = append(lines, statusStyle.Render(m.status))
			}
		}
	}
	lines = append(lines, m.help.View(m.keymap))
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}
