package engine

import (
	"fmt"
	"slices"
)

// OpeningLeader returns who leads the first round: with a trump suit the seat
// two ahead of the bidder, at no trump the bidder.
func OpeningLeader(c Contract) Seat {
	if _, ok := c.Trump().Suit(); ok {
		return (c.Bidder + 2) % PlayerCount
	}
	return c.Bidder
}

// LegalPlays returns the cards a hand may play into round. A player must
// follow the lead suit when able; otherwise any card is legal.
func LegalPlays(hand []Card, round Round) ([]Card, error) {
	if len(hand) == 0 {
		return nil, ErrEmptyHand
	}
	led, ok := round.LeadSuit()
	if !ok || !hasCardOfSuit(hand, led) {
		return slices.Clone(hand), nil
	}
	var out []Card
	for _, c := range hand {
		if c.Suit == led {
			out = append(out, c)
		}
	}
	return out, nil
}

// ResolveRound returns the seat that wins round under trump.
func ResolveRound(round Round, trump Strain) (Seat, error) {
	if len(round.Plays) == 0 {
		return NoSeat, fmt.Errorf("%w: empty round", ErrInvalidArgument)
	}
	best := round.Plays[0]
	for _, p := range round.Plays[1:] {
		if beats(p.Card, best.Card, trump) {
			best = p
		}
	}
	return best.Seat, nil
}

// beats reports whether a takes the round from the current best b.
func beats(a, b Card, trump Strain) bool {
	t, hasTrump := trump.Suit()
	aTrump := hasTrump && a.Suit == t
	bTrump := hasTrump && b.Suit == t
	switch {
	case aTrump && !bTrump:
		return true
	case aTrump && bTrump:
		return a.Rank > b.Rank
	case !bTrump && a.Suit == b.Suit:
		return a.Rank > b.Rank
	}
	return false
}

// PlayState tracks play progress after the partnership is formed.
type PlayState struct {
	players   Players
	partners  Partnership
	contract  Contract
	current   Round
	completed []Round
	outcome   *Outcome
}

// NewPlayState starts play with the opening leader to act.
func NewPlayState(players Players, partners Partnership, contract Contract) (*PlayState, error) {
	if !partners.Valid() {
		return nil, fmt.Errorf("%w: partnership is not a perfect matching", ErrInvalidArgument)
	}
	for _, p := range players {
		if _, ok := p.Threshold(); !ok {
			return nil, fmt.Errorf("%w: %s has no threshold", ErrInvalidArgument, p.Name)
		}
	}
	leader := OpeningLeader(contract)
	return &PlayState{
		players:  players,
		partners: partners,
		contract: contract,
		current:  Round{Leader: leader, Winner: NoSeat},
	}, nil
}

// Trump returns the trump strain in force.
func (ps *PlayState) Trump() Strain { return ps.contract.Trump() }

// Turn returns the seat to play next, or NoSeat once over.
func (ps *PlayState) Turn() Seat {
	if ps.outcome != nil {
		return NoSeat
	}
	return (ps.current.Leader + Seat(len(ps.current.Plays))) % PlayerCount
}

// Current returns a copy of the round in progress.
func (ps *PlayState) Current() Round {
	r := ps.current
	r.Plays = slices.Clone(r.Plays)
	return r
}

// Completed returns the resolved rounds in order.
func (ps *PlayState) Completed() []Round { return slices.Clone(ps.completed) }

// LegalPlays returns the cards seat may play now.
func (ps *PlayState) LegalPlays(seat Seat) ([]Card, error) {
	if ps.outcome != nil {
		return nil, PhaseError("game over")
	}
	if seat != ps.Turn() {
		return nil, fmt.Errorf("seat %d: %w", seat, ErrNotYourTurn)
	}
	return LegalPlays(ps.players[seat].Hand, ps.current)
}

// PlayCard plays card for seat. When the card completes the round it returns
// the resolved round, otherwise nil.
func (ps *PlayState) PlayCard(seat Seat, card Card) (*Round, error) {
	legal, err := ps.LegalPlays(seat)
	if err != nil {
		return nil, err
	}
	if !slices.Contains(legal, card) {
		return nil, fmt.Errorf("%w: %v", ErrIllegalPlay, card)
	}
	ps.players[seat].removeCard(card)
	ps.current.Plays = append(ps.current.Plays, Play{Seat: seat, Card: card})
	if !ps.current.Complete() {
		return nil, nil
	}

	winner, err := ResolveRound(ps.current, ps.Trump())
	if err != nil {
		return nil, err
	}
	done := ps.current
	done.Winner = winner
	ps.players[winner].SetsWon = append(ps.players[winner].SetsWon, done)
	ps.completed = append(ps.completed, done)
	ps.current = Round{Leader: winner, Winner: NoSeat}
	ps.checkGameOver()
	return &done, nil
}

// Progress returns each seat's partnership total of captured sets.
func (ps *PlayState) Progress() [PlayerCount]int {
	var out [PlayerCount]int
	for s, p := range ps.players {
		out[s] = len(p.SetsWon) + len(ps.players[ps.partners.Partner(Seat(s))].SetsWon)
	}
	return out
}

func (ps *PlayState) checkGameOver() {
	progress := ps.Progress()
	for s, p := range ps.players {
		threshold, _ := p.Threshold()
		if progress[s] == threshold {
			team := ps.partners.Team(Seat(s))
			ps.outcome = &Outcome{
				Reason:    OutcomeThreshold,
				Winners:   team,
				Declarers: team[0] == ps.contract.Bidder || team[1] == ps.contract.Bidder,
				Rounds:    len(ps.completed),
			}
			return
		}
	}
	if ps.players.HandsEmpty() {
		ps.outcome = &Outcome{
			Reason:  OutcomeExhausted,
			Winners: [2]Seat{NoSeat, NoSeat},
			Rounds:  len(ps.completed),
		}
	}
}

// Over reports whether play has ended.
func (ps *PlayState) Over() bool { return ps.outcome != nil }

// Outcome returns the result once play has ended.
func (ps *PlayState) Outcome() (Outcome, bool) {
	if ps.outcome == nil {
		return Outcome{}, false
	}
	return *ps.outcome, true
}
