package player

import "github.com/ZygmuntJakub/bridge/internal/engine"

type Player interface {
	Name() string
	MakeBidDecision(hand []engine.Card, legalBids []engine.Bid) (engine.Bid, error)
	ChoosePartnerCard(hand []engine.Card, candidates []engine.Card) (engine.Card, error)
	PlayCard(hand []engine.Card, round engine.Round, legal []engine.Card) (engine.Card, error)
}

// Rejectable is implemented by players that want to hear why an answer was
// refused before they are asked again.
type Rejectable interface {
	Rejected(err error)
}

// PlayerFactory builds the player sitting in seat.
type PlayerFactory func(seat engine.Seat, name string) Player
