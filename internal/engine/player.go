package engine

import (
	"fmt"
	"slices"
)

// Player holds one seat's hand, captured sets and win threshold.
type Player struct {
	Name  string
	Order int // 1-based seat number
	Hand  []Card
	// SetsWon holds the rounds this player captured.
	SetsWon []Round

	threshold    int
	hasThreshold bool
}

// ReceiveHand replaces the player's hand with a copy of cards.
func (p *Player) ReceiveHand(cards []Card) {
	p.Hand = slices.Clone(cards)
}

// Threshold returns the number of sets the player's partnership must capture.
func (p *Player) Threshold() (int, bool) { return p.threshold, p.hasThreshold }

// SetThreshold records the threshold. It can only be set once.
func (p *Player) SetThreshold(n int) error {
	if p.hasThreshold {
		return fmt.Errorf("%s: %w", p.Name, ErrThresholdSet)
	}
	p.threshold = n
	p.hasThreshold = true
	return nil
}

func (p *Player) removeCard(c Card) bool {
	idx, ok := indexOfCard(p.Hand, c)
	if !ok {
		return false
	}
	p.Hand = slices.Delete(p.Hand, idx, idx+1)
	return true
}

// Players is the table, indexed by seat.
type Players [PlayerCount]*Player

// NewPlayers seats the named players in order.
func NewPlayers(names []string) (Players, error) {
	var ps Players
	if len(names) != PlayerCount {
		return ps, fmt.Errorf("%w: expected %d players, got %d", ErrInvalidArgument, PlayerCount, len(names))
	}
	seen := map[string]bool{}
	for i, name := range names {
		if name == "" {
			return ps, fmt.Errorf("%w: player %d has no name", ErrInvalidArgument, i+1)
		}
		if seen[name] {
			return ps, fmt.Errorf("%w: duplicate player name %q", ErrInvalidArgument, name)
		}
		seen[name] = true
		ps[i] = &Player{Name: name, Order: i + 1}
	}
	return ps, nil
}

// Owner returns the seat holding card, skipping the excluded seat.
func (ps Players) Owner(card Card, exclude Seat) (Seat, bool) {
	for s, p := range ps {
		if Seat(s) == exclude {
			continue
		}
		if _, ok := indexOfCard(p.Hand, card); ok {
			return Seat(s), true
		}
	}
	return NoSeat, false
}

// HandsEmpty reports whether every hand is exhausted.
func (ps Players) HandsEmpty() bool {
	for _, p := range ps {
		if len(p.Hand) > 0 {
			return false
		}
	}
	return true
}
