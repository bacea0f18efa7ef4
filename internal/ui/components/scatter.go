package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/stratiz/internal/ui/theme"
)

// Point is one plotted item.
type Point struct {
	X, Y   int
	Label  string
	Series string
}

// Scatter plots integer points on a small character grid with one marker
// and color per series.
type Scatter struct {
	Points     []Point
	Min, Max   int // shared axis bounds
	XLabel     string
	YLabel     string
	CellWidth  int
	seriesSeen []string
}

var (
	seriesMarkers = []string{"●", "▲", "■", "◆", "✚"}
	seriesColors  = []lipgloss.Style{
		lipgloss.NewStyle().Foreground(theme.Cyan),
		lipgloss.NewStyle().Foreground(theme.Gold),
		lipgloss.NewStyle().Foreground(theme.Success),
		lipgloss.NewStyle().Foreground(theme.Error),
		lipgloss.NewStyle().Foreground(theme.Primary),
	}
)

// NewScatter creates a scatter plot over [min, max] on both axes.
func NewScatter(points []Point, min, max int, xLabel, yLabel string) Scatter {
	s := Scatter{Points: points, Min: min, Max: max, XLabel: xLabel, YLabel: yLabel, CellWidth: 6}
	for _, p := range points {
		if s.seriesIndex(p.Series) < 0 {
			s.seriesSeen = append(s.seriesSeen, p.Series)
		}
	}
	return s
}

// Series returns the series names in first-seen order.
func (s Scatter) Series() []string { return s.seriesSeen }

func (s Scatter) seriesIndex(name string) int {
	for i, n := range s.seriesSeen {
		if n == name {
			return i
		}
	}
	return -1
}

func (s Scatter) marker(series string) string {
	i := s.seriesIndex(series) % len(seriesMarkers)
	return seriesColors[i].Render(seriesMarkers[i])
}

// View renders the grid, axis labels and legend.
func (s Scatter) View() string {
	n := s.Max - s.Min + 1
	if n <= 0 {
		return ""
	}
	cell := s.CellWidth
	if cell < 2 {
		cell = 2
	}

	grid := make([][]string, n)
	for y := range grid {
		grid[y] = make([]string, n)
	}
	for _, p := range s.Points {
		x, y := p.X-s.Min, p.Y-s.Min
		if x < 0 || y < 0 || x >= n || y >= n {
			continue
		}
		grid[y][x] = s.marker(p.Series)
	}

	axis := lipgloss.NewStyle().Foreground(theme.Border)
	dim := lipgloss.NewStyle().Foreground(theme.TextDim)

	var b strings.Builder
	b.WriteString(dim.Render(s.YLabel) + "\n")
	for y := n - 1; y >= 0; y-- {
		b.WriteString(dim.Render(fmt.Sprintf("%2d ", y+s.Min)) + axis.Render("│"))
		for x := 0; x < n; x++ {
			c := grid[y][x]
			if c == "" {
				c = axis.Render("·")
			}
			b.WriteString(strings.Repeat(" ", cell-1) + c)
		}
		b.WriteString("\n")
	}
	b.WriteString("   " + axis.Render("└"+strings.Repeat("─", n*cell)) + "\n")
	b.WriteString("    ")
	for x := 0; x < n; x++ {
		b.WriteString(dim.Render(fmt.Sprintf("%*d", cell, x+s.Min)))
	}
	b.WriteString("  " + dim.Render(s.XLabel) + "\n")

	legend := make([]string, 0, len(s.seriesSeen))
	for _, name := range s.seriesSeen {
		legend = append(legend, s.marker(name)+" "+name)
	}
	b.WriteString(strings.Join(legend, "   "))
	return b.String()
}
