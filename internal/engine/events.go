//go:generate stringer -type=EventKind -linecomment

package engine

import "github.com/google/uuid"

// EventKind identifies what happened.
type EventKind int

const (
	EventDealt             EventKind = iota + 1 // dealt
	EventBidPlaced                              // bid placed
	EventPassed                                 // passed
	EventAuctionClosed                          // auction closed
	EventNoContract                             // no contract
	EventPartnershipFormed                      // partnership formed
	EventCardPlayed                             // card played
	EventRoundResolved                          // round resolved
	EventGameOver                               // game over
	EventDecisionRejected                       // decision rejected
)

// Event is emitted at every state change. Only the fields relevant to Kind
// are set.
type Event struct {
	Kind   EventKind
	GameID uuid.UUID
	Seat   Seat
	Bid    Bid
	Card   Card

	Contract    Contract
	PartnerCard Card
	Partners    Partnership
	Thresholds  [PlayerCount]int

	Round    Round
	Progress [PlayerCount]int
	Outcome  Outcome

	Err error
}

// Observer receives engine events.
type Observer interface {
	Observe(Event)
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(Event)

func (f ObserverFunc) Observe(e Event) { f(e) }

// Observers fans an event out to each observer in order.
type Observers []Observer

func (os Observers) Observe(e Event) {
	for _, o := range os {
		if o != nil {
			o.Observe(e)
		}
	}
}
