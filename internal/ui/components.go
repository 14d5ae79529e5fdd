package ui

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Header renders a header line with emoji and title
func Header(emoji, title string) string {
	text := emoji + " " + title
	return StyleHeader.Render(text) + "\n"
}

// Success renders a success message with emoji
func Success(message string) string {
	return StyleSuccess.Render("✨ " + message)
}

// Warning renders a warning message with emoji
func Warning(message string) string {
	return StyleWarning.Render("⚠️  " + message)
}

// Error renders an error message
func Error(message string) string {
	return StyleError.Render("❌ " + message)
}

// ErrorBox renders content in an error box with optional title
func ErrorBox(title, content string) string {
	if title == "" {
		title = "Error"
	}

	// Long lines are cut so the box border stays intact
	maxWidth := 76
	lines := strings.Split(strings.TrimSpace(content), "\n")
	trimmed := make([]string, 0, len(lines))
	for _, line := range lines {
		if len(line) > maxWidth {
			line = line[:maxWidth-3] + "..."
		}
		trimmed = append(trimmed, line)
	}

	fullContent := StyleError.Render("⚠️  " + title)
	if body := strings.Join(trimmed, "\n"); body != "" {
		fullContent += "\n\n" + body
	}

	return "\n" + ErrorBoxStyle.Render(fullContent) + "\n"
}

// InfoBox renders content in an info box
func InfoBox(title, content string) string {
	if title == "" {
		title = "Info"
	}

	fullContent := StyleCyan.Render("ℹ️  " + title)
	if content != "" {
		fullContent += "\n\n" + content
	}

	return "\n" + InfoBoxStyle.Render(fullContent) + "\n"
}

// SuccessBox renders content in a success box
func SuccessBox(title, content string) string {
	if title == "" {
		title = "Success"
	}

	fullContent := StyleSuccess.Render("✨ " + title)
	if content != "" {
		fullContent += "\n\n" + content
	}

	return "\n" + SuccessBoxStyle.Render(fullContent) + "\n"
}

// CheckMark renders a green checkmark with optional label
func CheckMark(label string) string {
	if label == "" {
		return StyleGreen.Render("✓")
	}
	return StyleGreen.Render("✓ " + label)
}

// ProgressLine renders a progress line like "label... ✓"
func ProgressLine(label, status string) string {
	dimLabel := StyleDim.Render(label)

	switch status {
	case "✓", "OK", "ok", "success":
		return fmt.Sprintf("  %s... %s\n", dimLabel, StyleGreen.Render("✓"))
	case "✗", "FAIL", "fail", "error":
		return fmt.Sprintf("  %s... %s\n", dimLabel, StyleRed.Render("✗"))
	case "TIMEOUT", "timeout":
		return fmt.Sprintf("  %s... %s\n", dimLabel, StyleYellow.Render("TIMEOUT"))
	default:
		return fmt.Sprintf("  %s...%s\n", dimLabel, status)
	}
}

// Step represents an entry in the "Next steps" section
type Step struct {
	Command     string
	Description string
}

// NextSteps renders a "Next steps:" section with commands
func NextSteps(steps []Step) string {
	var b strings.Builder

	b.WriteString("\n" + StyleBold.Render("Next steps:") + "\n")

	for _, step := range steps {
		command := StyleCommand.Render(step.Command)
		desc := ""
		if step.Description != "" {
			desc = StyleComment.Render("  # " + step.Description)
		}
		b.WriteString("  " + command + desc + "\n")
	}

	return b.String()
}

// Table renders a simple aligned table
func Table(headers []string, rows [][]string) string {
	if len(headers) == 0 {
		return ""
	}

	var b strings.Builder

	// Column widths come from the widest cell, ANSI codes excluded
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = utf8.RuneCountInString(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if i >= len(widths) {
				continue
			}
			if w := utf8.RuneCountInString(stripANSI(cell)); w > widths[i] {
				widths[i] = w
			}
		}
	}

	for i, h := range headers {
		padded := h + strings.Repeat(" ", widths[i]-utf8.RuneCountInString(h))
		b.WriteString(TableHeaderStyle.Render(padded))
	}
	b.WriteString("\n")

	for _, w := range widths {
		b.WriteString(strings.Repeat("─", w+2))
	}
	b.WriteString("\n")

	for _, row := range rows {
		for i, cell := range row {
			if i >= len(widths) {
				continue
			}
			padding := widths[i] - utf8.RuneCountInString(stripANSI(cell))
			b.WriteString(TableCellStyle.Render(cell + strings.Repeat(" ", padding)))
		}
		b.WriteString("\n")
	}

	return b.String()
}

// stripANSI removes ANSI escape codes from a string for width calculation
func stripANSI(str string) string {
	var b strings.Builder
	inEscape := false

	for i := 0; i < len(str); i++ {
		if str[i] == '\x1b' && i+1 < len(str) && str[i+1] == '[' {
			inEscape = true
			i++ // skip [
			continue
		}

		if inEscape {
			if (str[i] >= 'a' && str[i] <= 'z') || (str[i] >= 'A' && str[i] <= 'Z') {
				inEscape = false
			}
			continue
		}

		b.WriteByte(str[i])
	}

	return b.String()
}

// Divider renders a horizontal divider
func Divider() string {
	return StyleDim.Render(strings.Repeat("─", 60))
}

// Section renders a titled section
func Section(title, content string) string {
	var b strings.Builder
	b.WriteString("\n" + StyleBold.Render(title) + "\n")
	b.WriteString(content)
	b.WriteString("\n")
	return b.String()
}
