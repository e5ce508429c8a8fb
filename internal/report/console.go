package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/ZygmuntJakub/bridge/internal/engine"
)

var (
	clrSubtle = lipgloss.Color("#8b949e")
	clrGold   = lipgloss.Color("#e3b341")
	clrGreen  = lipgloss.Color("#3fb950")
	clrRed    = lipgloss.Color("#f85149")
	clrTitle  = lipgloss.Color("#58a6ff")

	suitColors = [4]lipgloss.Color{
		lipgloss.Color("#44AAFF"), // Clubs
		lipgloss.Color("#FFD700"), // Diamonds
		lipgloss.Color("#FF6B6B"), // Hearts
		lipgloss.Color("#50FA7B"), // Spades
	}
)

func fg(c lipgloss.Color) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(c)
}

func bold(c lipgloss.Color) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(c).Bold(true)
}

// Console prints a human-readable account of the game.
type Console struct {
	w          io.Writer
	names      []string
	thresholds [engine.PlayerCount]int
	// Verbose also prints every bid and card.
	Verbose bool
}

// NewConsole renders events to w, naming seats in order.
func NewConsole(w io.Writer, names []string) *Console {
	return &Console{w: w, names: names}
}

func (c *Console) plain(s engine.Seat) string {
	if !s.Valid() || int(s) >= len(c.names) {
		return "nobody"
	}
	return c.names[s]
}

func (c *Console) name(s engine.Seat) string {
	if !s.Valid() || int(s) >= len(c.names) {
		return "nobody"
	}
	return bold(clrTitle).Render(fmt.Sprintf("%s (Player %d)", c.names[s], s+1))
}

// CardLabel colours a card code by suit.
func CardLabel(card engine.Card) string {
	return fg(suitColors[card.Suit]).Render(card.Code())
}

// BidLabel colours a bid by strain.
func BidLabel(b engine.Bid) string {
	if b.IsPass() {
		return fg(clrSubtle).Render(b.String())
	}
	if s, ok := b.Strain.Suit(); ok {
		return bold(suitColors[s]).Render(b.String())
	}
	return bold(clrGold).Render(b.String())
}

func (c *Console) printf(format string, args ...any) {
	fmt.Fprintf(c.w, format, args...)
}

func (c *Console) Observe(e engine.Event) {
	switch e.Kind {
	case engine.EventDealt:
		c.printf("%s\n", bold(clrTitle).Render("── New deal "+strings.Repeat("─", 28)))
	case engine.EventBidPlaced, engine.EventPassed:
		if c.Verbose {
			c.printf("%s: %s\n", c.name(e.Seat), BidLabel(e.Bid))
		}
	case engine.EventAuctionClosed:
		c.printf("%s won the bid with %s.\n", c.name(e.Seat), BidLabel(e.Contract.Bid))
	case engine.EventNoContract:
		c.printf("%s\n", fg(clrSubtle).Render("Everyone passed. No contract."))
	case engine.EventPartnershipFormed:
		c.thresholds = e.Thresholds
		partner := e.Partners.Partner(e.Seat)
		c.printf("Partner card %s belongs to %s.\n", CardLabel(e.PartnerCard), c.name(partner))
		bidders, defenders := engine.Thresholds(e.Contract.Bid.Level)
		c.printf("Bidders need %d sets, defenders need %d.\n", bidders, defenders)
	case engine.EventCardPlayed:
		if c.Verbose {
			c.printf("  %s plays %s\n", c.name(e.Seat), CardLabel(e.Card))
		}
	case engine.EventRoundResolved:
		cards := make([]string, len(e.Round.Plays))
		for i, p := range e.Round.Plays {
			cards[i] = CardLabel(p.Card)
		}
		c.printf("%s wins the set with %s\n", c.name(e.Seat), strings.Join(cards, " "))
		c.printProgress(e.Progress)
	case engine.EventGameOver:
		if e.Outcome.Reason == engine.OutcomeExhausted {
			c.printf("%s\n", bold(clrRed).Render("All hands played out with no partnership reaching its threshold."))
			return
		}
		c.printf("%s and %s have won!\n", c.name(e.Outcome.Winners[0]), c.name(e.Outcome.Winners[1]))
	case engine.EventDecisionRejected:
		c.printf("%s\n", fg(clrRed).Render(fmt.Sprintf("%s: %v", c.plain(e.Seat), e.Err)))
	}
}

func (c *Console) printProgress(progress [engine.PlayerCount]int) {
	parts := make([]string, 0, engine.PlayerCount)
	for s := range progress {
		style := fg(clrSubtle)
		if progress[s] >= c.thresholds[s] {
			style = bold(clrGreen)
		}
		parts = append(parts, style.Render(fmt.Sprintf("%s: %d/%d", c.plain(engine.Seat(s)), progress[s], c.thresholds[s])))
	}
	c.printf("%s\n", strings.Join(parts, "\t"))
}
