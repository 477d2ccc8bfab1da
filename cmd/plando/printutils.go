package main

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

type color = string

const (
	colorRed    = "\033[31m"
	colorYellow = "\033[33m"
	colorCyan   = "\033[36m"
	colorReset  = "\033[0m"
)

var faintStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Bold(false)

func colorize(c color, s string) string {
	return c + s + colorReset
}

func pad(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}
