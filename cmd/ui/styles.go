package ui

import "github.com/charmbracelet/lipgloss"

// Color palette
var (
	// Primary colors
	ColorGreenStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#00FF00")).Bold(true)
	ColorRedStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF0000")).Bold(true)
	ColorYellowStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFD700")).Bold(true)
	ColorBlueStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#00BFFF")).Bold(true)
	ColorCyanStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#00FFFF"))
	ColorMagentaStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF00FF")).Italic(true)
	ColorGrayStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#888888"))

	// Error-definition display styles
	SymbolStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFD700")).Bold(true)
	KeyStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#00BFFF"))
	CodeStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF00FF"))
	MessageStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFFFFF"))
	LangStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#888888")).Italic(true)

	// Layout styles
	HeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(lipgloss.Color("#5F5FFF")).
			PaddingTop(1).
			PaddingBottom(1).
			MarginBottom(1)

	DefinitionBoxStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("#5F5FFF")).
				PaddingTop(1).
				PaddingBottom(1).
				PaddingLeft(2).
				PaddingRight(2).
				MarginBottom(1)
)

// Icons
const (
	IconCheck   = "✓"
	IconCross   = "✗"
	IconWarning = "!"
	IconCode    = "#"
	IconLang    = "🌐"
	IconFile    = "📄"
)

// Green renders s in bold green
func Green(s string) string { return ColorGreenStyle.Render(s) }

// Red renders s in bold red
func Red(s string) string { return ColorRedStyle.Render(s) }

// Yellow renders s in bold yellow
func Yellow(s string) string { return ColorYellowStyle.Render(s) }

// Blue renders s in bold blue
func Blue(s string) string { return ColorBlueStyle.Render(s) }

// Cyan renders s in cyan
func Cyan(s string) string { return ColorCyanStyle.Render(s) }

// Magenta renders s in italic magenta
func Magenta(s string) string { return ColorMagentaStyle.Render(s) }

// Gray renders s in gray
func Gray(s string) string { return ColorGrayStyle.Render(s) }
