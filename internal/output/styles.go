package output

import "github.com/charmbracelet/lipgloss"

var semanticStyles = map[SemanticType]lipgloss.Style{
	SemanticInfo:    lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
	SemanticSuccess: lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	SemanticWarning: lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	SemanticError:   lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
	SemanticLabel:   lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
	SemanticValue:   lipgloss.NewStyle(),
	SemanticHeading: lipgloss.NewStyle().Bold(true).Underline(true),
}

var plainStyle = lipgloss.NewStyle()

func styleFor(semantic SemanticType) lipgloss.Style {
	if style, ok := semanticStyles[semantic]; ok {
		return style
	}
	return plainStyle
}
