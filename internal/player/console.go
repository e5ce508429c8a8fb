package player

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	"github.com/ZygmuntJakub/bridge/internal/engine"
)

// Console asks a human at a terminal. Answers are either the option number
// or the option text ("1 Hearts", "QH", "Queen of Hearts"). Cards are
// listed sorted by suit, then rank.
type Console struct {
	PlayerName string
	Order      int
	in         *bufio.Scanner
	out        io.Writer
}

// NewConsole reads answers from r and writes prompts to w.
func NewConsole(name string, order int, r io.Reader, w io.Writer) *Console {
	return &Console{PlayerName: name, Order: order, in: bufio.NewScanner(r), out: w}
}

func (c *Console) Name() string { return c.PlayerName }

func (c *Console) Rejected(err error) {
	fmt.Fprintf(c.out, "Not allowed: %v\n", err)
}

func (c *Console) MakeBidDecision(hand []engine.Card, legalBids []engine.Bid) (engine.Bid, error) {
	c.showHand(hand)
	prompt := fmt.Sprintf("%s (Player %d) bidding.", c.PlayerName, c.Order)
	return ask(c, prompt, legalBids, engine.Bid.String, engine.ParseBid)
}

func (c *Console) ChoosePartnerCard(hand []engine.Card, candidates []engine.Card) (engine.Card, error) {
	c.showHand(hand)
	prompt := fmt.Sprintf("%s won the bid. Select your partner's card:", c.PlayerName)
	return ask(c, prompt, sortedCards(candidates), engine.Card.String, engine.ParseCard)
}

func (c *Console) PlayCard(hand []engine.Card, round engine.Round, legal []engine.Card) (engine.Card, error) {
	if len(round.Plays) > 0 {
		played := make([]string, len(round.Plays))
		for i, p := range round.Plays {
			played[i] = p.Card.Code()
		}
		fmt.Fprintf(c.out, "On the table: %s\n", strings.Join(played, " "))
	}
	prompt := fmt.Sprintf("%s's turn to play. Legal cards:", c.PlayerName)
	return ask(c, prompt, sortedCards(legal), engine.Card.String, engine.ParseCard)
}

func (c *Console) showHand(hand []engine.Card) {
	codes := make([]string, 0, len(hand))
	for _, card := range sortedCards(hand) {
		codes = append(codes, card.Code())
	}
	fmt.Fprintf(c.out, "\nYour hand: %s (value %d)\n", strings.Join(codes, " "), engine.HandValue(hand))
}

// ask prints the numbered options and reads answers until one is either an
// option number or text that parse accepts. Blank lines, out-of-range numbers
// and unreadable text are asked again. Whether parsed text is legal is left to
// the engine.
func ask[T any](c *Console, prompt string, options []T, label func(T) string, parse func(string) (T, error)) (T, error) {
	var zero T
	fmt.Fprintln(c.out, prompt)
	for i, o := range options {
		fmt.Fprintf(c.out, "%3d: %s\n", i+1, label(o))
	}
	for {
		fmt.Fprint(c.out, "> ")
		if !c.in.Scan() {
			if err := c.in.Err(); err != nil {
				return zero, err
			}
			return zero, io.EOF
		}
		text := strings.TrimSpace(c.in.Text())
		if text == "" {
			continue
		}
		n, err := strconv.Atoi(text)
		if errors.Is(err, strconv.ErrSyntax) {
			v, err := parse(text)
			if err != nil {
				fmt.Fprintf(c.out, "Unrecognised answer %q.\n", text)
				continue
			}
			return v, nil
		}
		if err != nil || n < 1 || n > len(options) {
			fmt.Fprintf(c.out, "Enter a number between 1 and %d.\n", len(options))
			continue
		}
		return options[n-1], nil
	}
}

func sortedCards(cards []engine.Card) []engine.Card {
	out := slices.Clone(cards)
	engine.SortCards(out)
	return out
}
