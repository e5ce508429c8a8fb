package engine

import (
	"context"
	"fmt"
	"math/rand/v2"
	"slices"
)

// DeckSize is the number of cards in a full deck.
const DeckSize = 52

// Deck is an ordered sequence of 52 unique cards.
type Deck struct {
	cards []Card
}

// NewDeck returns a full deck ordered by suit, then rank.
func NewDeck() *Deck {
	cards := make([]Card, 0, DeckSize)
	for _, s := range Suits {
		for _, r := range Ranks {
			cards = append(cards, Card{Suit: s, Rank: r})
		}
	}
	return &Deck{cards: cards}
}

// NewDeckFrom builds a deck from supplied cards, which must be exactly the
// 52 distinct rank and suit combinations.
func NewDeckFrom(cards []Card) (*Deck, error) {
	if len(cards) != DeckSize {
		return nil, fmt.Errorf("%w: expected %d cards, got %d", ErrInvalidArgument, DeckSize, len(cards))
	}
	seen := make(map[Card]bool, DeckSize)
	for _, c := range cards {
		if c.Suit < Clubs || c.Suit > Spades || c.Rank < Two || c.Rank > Ace {
			return nil, fmt.Errorf("%w: unknown card %v", ErrInvalidArgument, c)
		}
		if seen[c] {
			return nil, fmt.Errorf("%w: duplicate card %v", ErrInvalidArgument, c)
		}
		seen[c] = true
	}
	return &Deck{cards: slices.Clone(cards)}, nil
}

// Cards returns a copy of the deck order.
func (d *Deck) Cards() []Card { return slices.Clone(d.cards) }

// Len returns the number of cards in the deck.
func (d *Deck) Len() int { return len(d.cards) }

// Shuffle permutes the deck in place.
func (d *Deck) Shuffle(rng *rand.Rand) {
	rng.Shuffle(len(d.cards), func(i, j int) {
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	})
}

// Deal partitions the deck round-robin: hand i receives cards i, i+n, i+2n...
// Every card lands in exactly one hand; sizes differ by at most one.
func (d *Deck) Deal(n int) ([][]Card, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: cannot deal into %d hands", ErrInvalidArgument, n)
	}
	hands := make([][]Card, n)
	for i := range hands {
		hands[i] = make([]Card, 0, (len(d.cards)+n-1)/n)
	}
	for i, c := range d.cards {
		hands[i%n] = append(hands[i%n], c)
	}
	return hands, nil
}

// HandValue scores a hand: Ace 4, King 3, Queen 2, Jack 1, plus one point
// for every suit holding five or more cards.
func HandValue(hand []Card) int {
	value := 0
	var perSuit [len(Suits)]int
	for _, c := range hand {
		switch c.Rank {
		case Ace:
			value += 4
		case King:
			value += 3
		case Queen:
			value += 2
		case Jack:
			value++
		}
		if c.Suit >= Clubs && c.Suit <= Spades {
			perSuit[c.Suit]++
		}
	}
	for _, n := range perSuit {
		if n >= 5 {
			value++
		}
	}
	return value
}

// SortCards orders cards by suit, then rank.
func SortCards(cards []Card) {
	slices.SortFunc(cards, compareCards)
}

func compareCards(a, b Card) int {
	if a.Suit != b.Suit {
		return int(a.Suit) - int(b.Suit)
	}
	return int(a.Rank) - int(b.Rank)
}

func indexOfCard(cards []Card, target Card) (int, bool) {
	for i, c := range cards {
		if c == target {
			return i, true
		}
	}
	return -1, false
}

func hasCardOfSuit(hand []Card, s Suit) bool {
	for _, c := range hand {
		if c.Suit == s {
			return true
		}
	}
	return false
}

// CardSupplier provides the 52 cards a game is played with.
type CardSupplier interface {
	Cards(ctx context.Context) ([]Card, error)
}

// StandardSupplier generates the cards in memory.
type StandardSupplier struct{}

func (StandardSupplier) Cards(ctx context.Context) ([]Card, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return NewDeck().Cards(), nil
}

// LoadDeck asks the supplier for cards and validates them into a deck.
func LoadDeck(ctx context.Context, s CardSupplier) (*Deck, error) {
	cards, err := s.Cards(ctx)
	if err != nil {
		return nil, fmt.Errorf("supply cards: %w", err)
	}
	return NewDeckFrom(cards)
}

// DealValidHands shuffles and deals until every hand reaches minValue.
// It returns the hands and the number of deals it took.
func DealValidHands(d *Deck, rng *rand.Rand, n, minValue, maxAttempts int) ([][]Card, int, error) {
	if maxAttempts <= 0 {
		return nil, 0, fmt.Errorf("%w: max attempts %d", ErrInvalidArgument, maxAttempts)
	}
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		d.Shuffle(rng)
		hands, err := d.Deal(n)
		if err != nil {
			return nil, attempt, err
		}
		if allHandsReach(hands, minValue) {
			return hands, attempt, nil
		}
	}
	return nil, maxAttempts, fmt.Errorf("%w: no valid deal in %d attempts", ErrRedealLimit, maxAttempts)
}

func allHandsReach(hands [][]Card, minValue int) bool {
	for _, h := range hands {
		if HandValue(h) < minValue {
			return false
		}
	}
	return true
}
