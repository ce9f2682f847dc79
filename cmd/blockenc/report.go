// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/blockenc/config"
)

// errorThreshold separates exact reconstructions from truncated ones.
const errorThreshold = 1e-9

var (
	reportStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#7aa2f7")).
			Padding(0, 1)

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#ff9e64"))

	headerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#7dcfff"))

	okStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#9ece6a"))

	warnStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#e0af68")).
			Bold(true)

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#565f89"))
)

func render(cfg config.Config, results []trial) string {
	var sb strings.Builder
	title := "state preparation"
	if cfg.Mode == config.ModeBlock {
		title = "block encoding"
	}
	form := "compressed"
	if cfg.Uncompressed {
		form = "uncompressed"
	}
	sb.WriteString(titleStyle.Render(fmt.Sprintf("%s · n=%d", title, cfg.Qubits)) + "\n")
	sb.WriteString(dimStyle.Render(fmt.Sprintf("%s, real=%t, ε=%g, seed=%d", form, cfg.Real, cfg.Epsilon, cfg.Seed)) + "\n\n")
	sb.WriteString(headerStyle.Render(fmt.Sprintf("%-6s %6s %6s %6s %6s %6s  %s", "trial", "ops", "depth", "rot", "cnot", "swap", "error")) + "\n")

	worst := 0.0
	for i, r := range results {
		style := okStyle
		if r.err > errorThreshold {
			style = warnStyle
		}
		worst = max(worst, r.err)
		fmt.Fprintf(&sb, "%-6d %6d %6d %6d %6d %6d  %s\n", i, r.ops, r.depth, r.rotations, r.cnots, r.swaps, style.Render(fmt.Sprintf("%.3e", r.err)))
	}

	summary := okStyle
	if worst > errorThreshold {
		summary = warnStyle
	}
	sb.WriteString("\n" + summary.Render(fmt.Sprintf("max error %.3e", worst)))

	return reportStyle.Render(sb.String())
}
