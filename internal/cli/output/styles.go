package output

import "github.com/charmbracelet/lipgloss"

// Styles holds lipgloss styles bound to one output renderer.
type Styles struct {
	Header1    lipgloss.Style
	Header2    lipgloss.Style
	Bold       lipgloss.Style
	Muted      lipgloss.Style
	Success    lipgloss.Style
	Warning    lipgloss.Style
	Error      lipgloss.Style
	Info       lipgloss.Style
	FilePath   lipgloss.Style
	Identifier lipgloss.Style
}

// NewStyles creates the style set for a lipgloss renderer.
func NewStyles(lr *lipgloss.Renderer) *Styles {
	return &Styles{
		Header1:    lr.NewStyle().Bold(true).Foreground(lipgloss.Color("12")).Underline(true),
		Header2:    lr.NewStyle().Bold(true).Foreground(lipgloss.Color("14")),
		Bold:       lr.NewStyle().Bold(true),
		Muted:      lr.NewStyle().Foreground(lipgloss.Color("8")),
		Success:    lr.NewStyle().Foreground(lipgloss.Color("10")),
		Warning:    lr.NewStyle().Foreground(lipgloss.Color("11")),
		Error:      lr.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		Info:       lr.NewStyle().Foreground(lipgloss.Color("12")),
		FilePath:   lr.NewStyle().Foreground(lipgloss.Color("13")).Bold(true),
		Identifier: lr.NewStyle().Foreground(lipgloss.Color("6")),
	}
}
