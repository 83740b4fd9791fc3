package display

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/greenside/greenside/golf"
	"github.com/greenside/greenside/internal/round"
)

// Styles contains the styling for settlement output.
type Styles struct {
	Header    lipgloss.Style
	SubHeader lipgloss.Style
	Winner    lipgloss.Style
	Loser     lipgloss.Style
	Muted     lipgloss.Style
	Invalid   lipgloss.Style
}

// NewStyles creates the default style set.
func NewStyles() *Styles {
	return &Styles{
		Header: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(lipgloss.Color("#04724D")).
			Padding(0, 2).
			Bold(true),
		SubHeader: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#04B575")).
			Bold(true),
		Winner: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFD700")).
			Bold(true),
		Loser: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B")),
		Muted: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#626262")),
		Invalid: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B")).
			Bold(true),
	}
}

// Renderer formats settlement results for the terminal.
type Renderer struct {
	styles *Styles
}

// NewRenderer creates a renderer with default styles.
func NewRenderer() *Renderer {
	return &Renderer{styles: NewStyles()}
}

// Render formats every computed game in the results.
func (r *Renderer) Render(players []golf.Player, results round.Results) string {
	var b strings.Builder

	if results.Vegas != nil {
		r.renderVegas(&b, players, results)
	}
	if results.Banker != nil {
		r.renderBanker(&b, players, results)
	}
	if results.Skins != nil {
		r.renderSkins(&b, players, results)
	}
	if results.Junk != nil {
		r.renderJunk(&b, players, results)
	}
	if results.HiLo != nil {
		r.renderHiLo(&b, players, results)
	}
	if results.Wolf != nil {
		r.renderWolf(&b, players, results)
	}

	if b.Len() == 0 {
		return r.styles.Muted.Render("no games enabled") + "\n"
	}
	return b.String()
}

func (r *Renderer) header(b *strings.Builder, title string) {
	fmt.Fprintf(b, "%s\n", r.styles.Header.Render(title))
}

func (r *Renderer) invalid(b *strings.Builder, reason string) {
	fmt.Fprintf(b, "  %s\n\n", r.styles.Invalid.Render("invalid: "+reason))
}

func name(players []golf.Player, i int) string {
	if i < 0 || i >= len(players) {
		return fmt.Sprintf("#%d", i)
	}
	return players[i].Name
}

func (r *Renderer) renderVegas(b *strings.Builder, players []golf.Player, results round.Results) {
	v := results.Vegas
	r.header(b, "Vegas")
	if !v.Valid {
		r.invalid(b, v.Reason)
		return
	}

	for _, h := range v.Holes {
		flip := ""
		if h.Flipped[0] || h.Flipped[1] {
			flip = r.styles.Muted.Render(" (flip)")
		}
		fmt.Fprintf(b, "  hole %2d  %3d vs %3d%s", h.Hole, h.Numbers[0], h.Numbers[1], flip)
		if h.Winner >= 0 {
			fmt.Fprintf(b, "  %s", r.styles.Winner.Render(fmt.Sprintf("team %d +%d", h.Winner+1, h.Points)))
		}
		b.WriteString("\n")
	}
	fmt.Fprintf(b, "  %s  team 1 %+d ($%.2f)  team 2 %+d ($%.2f)\n\n",
		r.styles.SubHeader.Render("totals"),
		v.Points[0], v.Dollars[0], v.Points[1], v.Dollars[1])
}

func (r *Renderer) renderBanker(b *strings.Builder, players []golf.Player, results round.Results) {
	v := results.Banker
	r.header(b, "Banker")
	if !v.Valid {
		r.invalid(b, v.Reason)
		return
	}

	fmt.Fprintf(b, "  %s\n", r.styles.SubHeader.Render("totals"))
	for p, total := range v.Totals {
		style := r.styles.Muted
		if total > 0 {
			style = r.styles.Winner
		} else if total < 0 {
			style = r.styles.Loser
		}
		fmt.Fprintf(b, "  %-12s %s\n", name(players, p), style.Render(fmt.Sprintf("%+.2f", total)))
	}
	b.WriteString("\n")
}

func (r *Renderer) renderSkins(b *strings.Builder, players []golf.Player, results round.Results) {
	v := results.Skins
	r.header(b, "Skins")
	if !v.Valid {
		r.invalid(b, v.Reason)
		return
	}

	for _, h := range v.Holes {
		if h.Winner < 0 {
			continue
		}
		fmt.Fprintf(b, "  hole %2d  %s takes %d\n", h.Hole,
			r.styles.Winner.Render(name(players, h.Winner)), h.Pot)
	}
	fmt.Fprintf(b, "  %s", r.styles.SubHeader.Render("payouts"))
	for p, payout := range v.Payouts {
		fmt.Fprintf(b, "  %s $%.2f (%d)", name(players, p), payout, v.Skins[p])
	}
	b.WriteString("\n\n")
}

func (r *Renderer) renderJunk(b *strings.Builder, players []golf.Player, results round.Results) {
	v := results.Junk
	r.header(b, "Junk")
	if !v.Valid {
		r.invalid(b, v.Reason)
		return
	}

	fmt.Fprintf(b, "  %s", r.styles.SubHeader.Render("totals"))
	for p, total := range v.Totals {
		fmt.Fprintf(b, "  %s %d", name(players, p), total)
	}
	b.WriteString("\n\n")
}

func (r *Renderer) renderHiLo(b *strings.Builder, players []golf.Player, results round.Results) {
	v := results.HiLo
	r.header(b, "Hi-Lo")
	if !v.Valid {
		r.invalid(b, v.Reason)
		return
	}

	fmt.Fprintf(b, "  team A: %s / %s   team B: %s / %s\n",
		name(players, v.TeamA[0]), name(players, v.TeamA[1]),
		name(players, v.TeamB[0]), name(players, v.TeamB[1]))
	if v.StrokeReceiver >= 0 {
		fmt.Fprintf(b, "  %s\n", r.styles.Muted.Render(
			fmt.Sprintf("%s gets %d strokes", name(players, v.StrokeReceiver), v.Strokes)))
	}
	for _, g := range v.Games {
		outcome := "push"
		switch g.Winner {
		case 0:
			outcome = r.styles.Winner.Render("team A")
		case 1:
			outcome = r.styles.Winner.Render("team B")
		}
		fmt.Fprintf(b, "  %-10s %d-%d  %s\n", g.Name, g.A, g.B, outcome)
	}
	fmt.Fprintf(b, "  %s  A %d units ($%.2f)  B %d units ($%.2f)\n\n",
		r.styles.SubHeader.Render("totals"), v.UnitsA, v.DollarsA, v.UnitsB, v.DollarsB)
}

func (r *Renderer) renderWolf(b *strings.Builder, players []golf.Player, results round.Results) {
	v := results.Wolf
	r.header(b, "Wolf")
	if !v.Valid {
		r.invalid(b, v.Reason)
		return
	}

	fmt.Fprintf(b, "  %s", r.styles.SubHeader.Render("totals"))
	for p, total := range v.Totals {
		fmt.Fprintf(b, "  %s %.2f", name(players, p), total)
	}
	b.WriteString("\n\n")
}
