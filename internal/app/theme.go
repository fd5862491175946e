package app

import "charm.land/lipgloss/v2"

var (
	headerStyle        = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63"))
	helpStyle          = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	statusStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	pickerLabelStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("110")).Bold(true)
	pickerFocusStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("230")).Bold(true)
	columnHeaderStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Bold(true).Underline(true)
	rowStyle           = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	selectedStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("230")).Background(lipgloss.Color("236"))
	markupStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("180"))
	dividerStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
	copyButtonStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("117")).Bold(true).Underline(true)
	copiedButtonStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("230")).Background(lipgloss.Color("29")).Bold(true)
	failedButtonStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("230")).Background(lipgloss.Color("160")).Bold(true)
	helpOverlayStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("69")).Padding(0, 1)
	toastInfoStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("230")).Background(lipgloss.Color("29")).Bold(true)
	toastErrorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("230")).Background(lipgloss.Color("160")).Bold(true)
)

func copyButtonStyleFor(state copyAckState) lipgloss.Style {
	switch state {
	case copyAckSuccess:
		return copiedButtonStyle
	case copyAckFailure:
		return failedButtonStyle
	default:
		return copyButtonStyle
	}
}
