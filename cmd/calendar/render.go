package main

import (
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss/v2"

	"github.com/zapponejosh/bengali-calendar-api/internal/bangla"
)

const cellWidth = 6

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212")).Width(cellWidth * 7).Align(lipgloss.Center)
	todayLine     = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	headerStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Bold(true).Width(cellWidth).Align(lipgloss.Right)
	dayStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Width(cellWidth).Align(lipgloss.Right)
	emptyStyle    = lipgloss.NewStyle().Width(cellWidth)
	todayStyle    = dayStyle.Underline(true).Bold(true)
	festivalStyle = dayStyle.Foreground(lipgloss.Color("203"))
	listStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	frameStyle    = lipgloss.NewStyle().Border(lipgloss.NormalBorder()).Padding(0, 1)
)

// Render draws the today line, then the framed grid and the month's
// festivals. With bengali set every number is printed in Bengali numerals.
func Render(grid *bangla.MonthGrid, today time.Time, bengali bool) string {
	num := strconv.Itoa
	if bengali {
		num = bangla.Digits
	}

	rows := []string{titleStyle.Render(grid.MonthName + " " + num(grid.Year))}

	header := make([]string, 0, len(bangla.WeekdayNames))
	for _, name := range bangla.WeekdayNames {
		header = append(header, headerStyle.Render(name))
	}
	rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, header...))

	for _, week := range grid.Weeks {
		slots := make([]string, 0, len(week))
		for _, cell := range week {
			slots = append(slots, renderCell(cell, num))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, slots...))
	}

	var b strings.Builder
	b.WriteString(todayLine.Render("আজকের তারিখ: " + bangla.FormatToday(today)))
	b.WriteString("\n")
	b.WriteString(frameStyle.Render(lipgloss.JoinVertical(lipgloss.Left, rows...)))

	for _, cell := range grid.Cells() {
		if cell.Festival == "" {
			continue
		}
		b.WriteString("\n")
		b.WriteString(listStyle.Render(num(cell.BengaliDay) + " " + grid.MonthName + " (" + cell.GregorianDate + "): " + cell.Festival))
	}

	return b.String()
}

func renderCell(cell *bangla.Cell, num func(int) string) string {
	switch {
	case cell == nil:
		return emptyStyle.Render("")
	case cell.IsToday:
		return todayStyle.Render(num(cell.BengaliDay))
	case cell.Festival != "":
		return festivalStyle.Render(num(cell.BengaliDay) + "*")
	default:
		return dayStyle.Render(num(cell.BengaliDay))
	}
}
