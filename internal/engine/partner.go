package engine

import "fmt"

// Partnership maps each seat to its partner.
type Partnership [PlayerCount]Seat

// NewPartnership pairs a with b and the two remaining seats with each other.
func NewPartnership(a, b Seat) (Partnership, error) {
	var p Partnership
	if !a.Valid() || !b.Valid() || a == b {
		return p, fmt.Errorf("%w: cannot pair seats %d and %d", ErrInvalidArgument, a, b)
	}
	rest := make([]Seat, 0, 2)
	for s := Seat(0); s < PlayerCount; s++ {
		if s != a && s != b {
			rest = append(rest, s)
		}
	}
	p[a], p[b] = b, a
	p[rest[0]], p[rest[1]] = rest[1], rest[0]
	return p, nil
}

// Partner returns the partner of s.
func (p Partnership) Partner(s Seat) Seat { return p[s] }

// Team returns s and its partner, lower seat first.
func (p Partnership) Team(s Seat) [2]Seat {
	q := p[s]
	if q < s {
		return [2]Seat{q, s}
	}
	return [2]Seat{s, q}
}

// Valid reports whether p is a perfect matching: nobody partners themselves
// and every pairing is mutual.
func (p Partnership) Valid() bool {
	for s, q := range p {
		if !q.Valid() || q == Seat(s) || p[q] != Seat(s) {
			return false
		}
	}
	return true
}

// Thresholds returns the sets needed by the bidder's side and by the
// defenders for a contract at level. They always sum to 14.
func Thresholds(level int) (bidders, defenders int) {
	return level + 6, 8 - level
}

// PartnerCandidates returns every card held by a seat other than bidder,
// sorted by suit then rank.
func PartnerCandidates(players Players, bidder Seat) []Card {
	var cards []Card
	for s, p := range players {
		if Seat(s) == bidder {
			continue
		}
		cards = append(cards, p.Hand...)
	}
	SortCards(cards)
	return cards
}

// SelectPartner makes the owner of card the bidder's partner and writes both
// sides' thresholds.
func SelectPartner(players Players, contract Contract, card Card) (Partnership, error) {
	owner, ok := players.Owner(card, contract.Bidder)
	if !ok {
		return Partnership{}, fmt.Errorf("%w: no other player holds %v", ErrCardNotFound, card)
	}
	for _, p := range players {
		if _, set := p.Threshold(); set {
			return Partnership{}, fmt.Errorf("%s: %w", p.Name, ErrThresholdSet)
		}
	}
	partners, err := NewPartnership(contract.Bidder, owner)
	if err != nil {
		return Partnership{}, err
	}
	bidders, defenders := Thresholds(contract.Bid.Level)
	for s, p := range players {
		n := defenders
		if Seat(s) == contract.Bidder || Seat(s) == owner {
			n = bidders
		}
		if err := p.SetThreshold(n); err != nil {
			return Partnership{}, err
		}
	}
	return partners, nil
}
