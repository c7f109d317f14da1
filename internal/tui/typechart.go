package tui

import (
	"fmt"

	"github.com/NimbleMarkets/ntcharts/barchart"
	"github.com/charmbracelet/lipgloss"
	"github.com/tinytelemetry/brewdeck/internal/model"
)

const typeChartHeight = 8

// TypeChart shows how many breweries of each brewery_type were fetched.
type TypeChart struct {
	data []model.TypeCount
}

// SetData replaces the chart contents.
func (c *TypeChart) SetData(counts []model.TypeCount) {
	c.data = append([]model.TypeCount(nil), counts...)
}

func (c *TypeChart) Render(width int) string {
	title := chartTitleStyle.Render("Brewery Types")
	if len(c.data) == 0 {
		return sectionStyle.Width(width - 2).Render(
			lipgloss.JoinVertical(lipgloss.Left, title, helpStyle.Render("No data available")))
	}

	colors := gradient(ColorAmber, ColorLink, len(c.data))

	legendWidth := 0
	legendLines := make([]string, 0, len(c.data))
	for i, tc := range c.data {
		line := lipgloss.NewStyle().Foreground(colors[i]).Render(fmt.Sprintf("%-10s %3d", tc.Type, tc.Count))
		legendLines = append(legendLines, line)
		legendWidth = max(legendWidth, lipgloss.Width(line))
	}
	legend := lipgloss.JoinVertical(lipgloss.Left, legendLines...)

	chartWidth := width - legendWidth - 8
	if chartWidth < len(c.data)*2 {
		return sectionStyle.Width(width - 2).Render(lipgloss.JoinVertical(lipgloss.Left, title, legend))
	}

	barWidth := max(1, min(4, (chartWidth-len(c.data))/len(c.data)))
	bc := barchart.New(chartWidth, typeChartHeight,
		barchart.WithBarGap(1),
		barchart.WithBarWidth(barWidth),
		barchart.WithNoAxis(),
	)
	for i, tc := range c.data {
		style := lipgloss.NewStyle().Foreground(colors[i]).Background(colors[i])
		bc.Push(barchart.BarData{
			Label: tc.Type,
			Values: []barchart.BarValue{
				{Name: tc.Type, Value: float64(tc.Count), Style: style},
			},
		})
	}
	bc.Draw()

	content := lipgloss.JoinHorizontal(lipgloss.Top, bc.View(), "  ", legend)
	return sectionStyle.Width(width - 2).Render(lipgloss.JoinVertical(lipgloss.Left, title, content))
}
