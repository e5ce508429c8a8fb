package player

import (
	"errors"

	"github.com/ZygmuntJakub/bridge/internal/engine"
)

// ErrScriptExhausted is returned when a scripted player runs out of answers.
var ErrScriptExhausted = errors.New("script exhausted")

// Scripted answers from fixed queues. Bids must be scripted in full. Once
// the card queues run dry, partner and play decisions fall back to the first
// offered option.
type Scripted struct {
	PlayerName string
	Bids       []engine.Bid
	Partners   []engine.Card
	Plays      []engine.Card

	Rejections []error
}

func (s *Scripted) Name() string { return s.PlayerName }

func (s *Scripted) MakeBidDecision(hand []engine.Card, legalBids []engine.Bid) (engine.Bid, error) {
	if len(s.Bids) == 0 {
		return engine.Bid{}, ErrScriptExhausted
	}
	b := s.Bids[0]
	s.Bids = s.Bids[1:]
	return b, nil
}

func (s *Scripted) ChoosePartnerCard(hand []engine.Card, candidates []engine.Card) (engine.Card, error) {
	if len(s.Partners) > 0 {
		c := s.Partners[0]
		s.Partners = s.Partners[1:]
		return c, nil
	}
	if len(candidates) == 0 {
		return engine.Card{}, ErrScriptExhausted
	}
	return candidates[0], nil
}

func (s *Scripted) PlayCard(hand []engine.Card, round engine.Round, legal []engine.Card) (engine.Card, error) {
	if len(s.Plays) > 0 {
		c := s.Plays[0]
		s.Plays = s.Plays[1:]
		return c, nil
	}
	if len(legal) == 0 {
		return engine.Card{}, ErrScriptExhausted
	}
	return legal[0], nil
}

func (s *Scripted) Rejected(err error) { s.Rejections = append(s.Rejections, err) }
