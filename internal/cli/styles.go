package cli

import (
	"github.com/MKhiriev/go-lockr/internal/health"
	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true)
	labelStyle = lipgloss.NewStyle().Faint(true)
	helpStyle  = lipgloss.NewStyle().Faint(true)
	errorStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	okStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	boxStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 2)
)

var levelColors = map[health.Level]lipgloss.Color{
	health.LevelGreen:  lipgloss.Color("10"),
	health.LevelYellow: lipgloss.Color("11"),
	health.LevelOrange: lipgloss.Color("208"),
	health.LevelRed:    lipgloss.Color("9"),
}

func scoreStyle(score int) lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Foreground(levelColors[health.ScoreLevel(score)])
}

const masked = "••••••••"
