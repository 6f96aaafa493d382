package charts

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/zjrosen/txdash/internal/ui/styles"
)

var printer = message.NewPrinter(language.English)

// KPI is one headline number card. Value is shown as given unless it is a
// plain integer, which gets thousands separators.
type KPI struct {
	Label string
	Value string
	Delta string
	Note  string
}

// FormatValue groups plain integers ("4890" -> "4,890") and leaves anything
// else (percentages, currency, placeholders) untouched.
func FormatValue(v string) string {
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return v
	}
	return printer.Sprintf("%d", n)
}

// Render draws the card as three lines inside width cells: label, value
// with its delta, and the note.
func (k KPI) Render(width int) string {
	if width <= 0 {
		return ""
	}
	value := styles.KPIValueStyle.Render(FormatValue(k.Value))
	if k.Delta != "" {
		deltaStyle := styles.KPIDeltaStyle
		if strings.HasPrefix(k.Delta, "-") {
			deltaStyle = lipgloss.NewStyle().Foreground(styles.StatusErrorColor)
		}
		value += " " + deltaStyle.Render(k.Delta)
	}
	lines := []string{
		styles.PadRight(styles.ChipStyle.Render(k.Label), width),
		styles.PadRight(value, width),
		styles.PadRight(styles.MutedStyle.Render(k.Note), width),
	}
	return strings.Join(lines, "\n")
}

// RenderKPIs lays the cards out side by side, splitting width evenly with a
// two-cell gap between cards.
func RenderKPIs(kpis []KPI, width int) string {
	n := len(kpis)
	if n == 0 || width <= 0 {
		return ""
	}
	cardWidth := max((width-(n-1)*2)/n, 1)
	cards := make([]string, 0, 2*n-1)
	for i, k := range kpis {
		if i > 0 {
			cards = append(cards, "  ")
		}
		cards = append(cards, k.Render(cardWidth))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cards...)
}
