package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// RenderHeader renders a section header bar
func RenderHeader(title string) string {
	return HeaderStyle.Render(title)
}

// SuccessMessage creates a success message with a checkmark icon
func SuccessMessage(message string, details ...string) string {
	parts := []string{Green(IconCheck), Green(message)}
	for _, detail := range details {
		parts = append(parts, Blue(detail))
	}
	return strings.Join(parts, " ")
}

// ErrorMessage formats an error message in red with a cross icon
func ErrorMessage(message string) string {
	return fmt.Sprintf("%s %s", Red(IconCross), Red(message))
}

// WarningMessage formats a warning message in yellow
func WarningMessage(message string) string {
	return fmt.Sprintf("%s %s", Yellow(IconWarning), Yellow(message))
}

// InfoMessage formats an info message in blue
func InfoMessage(message string) string {
	return Blue(message)
}

// DefinitionInfo holds the display fields for one configured error
type DefinitionInfo struct {
	Key        string
	Symbol     string
	Code       int
	HTTPStatus int
	Messages   map[string]string
	Languages  []string
}

// FormatDefinitionDetailed formats one error definition in a box
func FormatDefinitionDetailed(def DefinitionInfo) string {
	var content strings.Builder

	content.WriteString(fmt.Sprintf("%s  %s\n",
		SymbolStyle.Render(def.Symbol),
		KeyStyle.Render(fmt.Sprintf("(%s)", def.Key))))

	content.WriteString(fmt.Sprintf("%s code=%s  http=%s\n",
		Magenta(IconCode),
		CodeStyle.Render(fmt.Sprintf("%d", def.Code)),
		CodeStyle.Render(fmt.Sprintf("%d", def.HTTPStatus))))

	for _, lang := range def.Languages {
		content.WriteString(fmt.Sprintf("  %s %s\n",
			LangStyle.Render(lang+":"),
			MessageStyle.Render(def.Messages[lang])))
	}

	return DefinitionBoxStyle.Render(strings.TrimRight(content.String(), "\n"))
}

// FormatDefinitionSeparator creates a separator between definition boxes
func FormatDefinitionSeparator() string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color("#444444")).Render("  │")
}

// FileResult formats a per-file outcome line (used by multi-file commands)
func FileResult(path string, err error) string {
	if err != nil {
		return fmt.Sprintf("%s %s: %v", Red(IconCross), Cyan(path), err)
	}
	return fmt.Sprintf("%s %s", Green(IconCheck), Cyan(path))
}
