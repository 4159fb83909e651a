package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/appengine-ltd/yukemuri/internal/game"
	"github.com/appengine-ltd/yukemuri/internal/parser"
)

// Keep the message pane from growing without bound across long runs.
const maxRunMessages = 200

func (m menuModel) submitRunInput() (tea.Model, tea.Cmd) {
	raw := strings.TrimSpace(m.runInput)
	m.runInput = ""
	if raw == "" {
		return m, nil
	}

	cmd := parser.Parse(raw)

	// A fuzzy verb match is honored but called out, so a typo never queues
	// an action silently.
	note := ""
	if cmd.Verb != parser.VerbUnknown && cmd.Confidence < 0.8 {
		note = fmt.Sprintf("Read %q as %q.", strings.Fields(raw)[0], cmd.Verb)
	}

	switch cmd.Verb {
	case parser.VerbUnknown:
		m.status = fmt.Sprintf("Did not understand %q. Try \"help\".", raw)
		return m, nil
	case parser.VerbQuit:
		return m, tea.Quit
	case parser.VerbHelp:
		m.screen = screenHelp
		m.status = note
		return m, nil
	case parser.VerbStatus:
		m.runMessages = appendMessages(m.runMessages, statusLines(m.resort)...)
		m.status = note
		return m, nil
	case parser.VerbNext:
		return m.endDay()
	}

	action, label, err := actionFromCommand(cmd)
	if err != nil {
		m.status = err.Error()
		return m, nil
	}
	m.pending = append(m.pending, action)
	m.pendingLabels = append(m.pendingLabels, label)
	m.status = note
	return m, nil
}

func (m menuModel) endDay() (tea.Model, tea.Cmd) {
	actions := m.pending
	m.pending = nil
	m.pendingLabels = nil

	result, err := m.resort.AdvanceDay(actions)
	if err != nil {
		m.status = fmt.Sprintf("Day could not be resolved: %v", err)
		return m, nil
	}
	if m.archive != nil {
		if err := m.archive.SaveDay(result); err != nil {
			m.status = fmt.Sprintf("Day resolved but not archived: %v", err)
		} else {
			m.status = ""
		}
	} else {
		m.status = ""
	}

	m.runMessages = appendMessages(m.runMessages, resultLines(result)...)
	return m, nil
}

func appendMessages(messages []string, lines ...string) []string {
	messages = append(messages, lines...)
	if over := len(messages) - maxRunMessages; over > 0 {
		messages = messages[over:]
	}
	return messages
}

func (m menuModel) runBody() string {
	r := m.resort
	out := brightBlue.Render(fmt.Sprintf("%s  day %d  %s", r.Name, r.Day, r.Season().Label())) + "\n"
	out += blue.Render(fmt.Sprintf("%s %d°C  cash %s  reputation %.1f  entry fee %s",
		r.Weather.Type, r.Weather.TemperatureC, yen(r.Cash), r.Reputation, yen(r.EntryFee))) + "\n"
	out += dimBlue.Render(fmt.Sprintf("pools %d  facilities %d  staff %d",
		len(r.Pools), len(r.Facilities), len(r.Staff))) + "\n\n"

	out += dimBlue.Render("Message History") + "\n"
	start := 0
	if len(m.runMessages) > 12 {
		start = len(m.runMessages) - 12
	}
	for _, msg := range m.runMessages[start:] {
		out += blue.Render("  "+msg) + "\n"
	}

	if len(m.pendingLabels) > 0 {
		out += "\n" + dimBlue.Render("Queued for tomorrow") + "\n"
		for _, label := range m.pendingLabels {
			out += blue.Render("  * "+label) + "\n"
		}
	}

	out += "\n" + brightBlue.Render("> "+m.runInput+"_") + "\n"
	return out
}

func (m menuModel) historyBody() string {
	if len(m.historyRows) == 0 {
		return dimBlue.Render("No archived days yet.") + "\n"
	}
	out := dimBlue.Render("  day  season  weather   guests   profit       cash   reputation") + "\n"
	for _, row := range m.historyRows {
		line := fmt.Sprintf("%5d  %-6s  %-7s  %6d  %8s  %10s  %6.1f",
			row.Day, row.Season, row.Weather, row.Customers, yen(row.Profit), yen(row.Cash), row.Reputation)
		out += blue.Render(line) + "\n"
	}
	return out
}

func statusLines(r *game.Resort) []string {
	lines := []string{
		fmt.Sprintf("Day %d, %s. Cash %s, reputation %.1f, entry fee %s.",
			r.Day, r.Season().Label(), yen(r.Cash), r.Reputation, yen(r.EntryFee)),
	}
	for _, p := range r.Pools {
		lines = append(lines, fmt.Sprintf("Pool %q (%s, %d°C): cleanliness %d, daily cost %s.",
			p.Name, p.Size, p.TemperatureC, p.Cleanliness, yen(p.DailyCost())))
	}
	for _, f := range r.Facilities {
		lines = append(lines, fmt.Sprintf("%s %q tier %d: quality %d, popularity %d.",
			f.Kind, f.Name, f.Tier, f.Quality, f.Popularity))
	}
	for _, s := range r.Staff {
		lines = append(lines, fmt.Sprintf("%s %q skill %d, happiness %d.",
			s.Role, s.Name, s.SkillLevel, s.Happiness))
	}
	return lines
}

func resultLines(result game.DailyResult) []string {
	lines := []string{
		fmt.Sprintf("Day %d (%s, %s %d°C): %d guests, satisfaction %.1f.",
			result.Day, result.Season.Label(), result.Weather.Type,
			result.Weather.TemperatureC, result.CustomerCount, result.AvgSatisfaction),
		fmt.Sprintf("Revenue %s, expenses %s, profit %s. Cash %s.",
			yen(result.Revenue.Total()), yen(result.Expenses.Total()),
			yen(result.Profit), yen(result.Cash)),
		fmt.Sprintf("Reputation %.1f (%+.1f).", result.Reputation, result.ReputationDelta),
	}
	for _, ev := range result.Events {
		lines = append(lines, "Event: "+ev.Description)
	}
	for _, name := range result.StaffDepartures {
		lines = append(lines, fmt.Sprintf("%s walked out over unpaid wages.", name))
	}
	for _, fb := range result.Feedback {
		lines = append(lines, fmt.Sprintf("A %s says: %q", fb.Type, fb.Comment))
	}
	for _, rej := range result.RejectedActions {
		lines = append(lines, fmt.Sprintf("Skipped %s: %s", rej.Kind, rej.Reason))
	}
	return lines
}

// yen renders an integer amount with thousands separators, negative sign
// ahead of the currency mark.
func yen(amount int) string {
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}
	digits := fmt.Sprintf("%d", amount)
	var b strings.Builder
	for i, d := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(d)
	}
	return sign + "¥" + b.String()
}
