package engine

import "errors"

// PhaseError reports an operation attempted in the wrong game phase.
type PhaseError string

func (e PhaseError) Error() string { return string(e) }

var (
	// ErrIllegalBid is returned for a bid outside the offered set.
	ErrIllegalBid = errors.New("illegal bid")
	// ErrIllegalPlay is returned for a card outside the offered set.
	ErrIllegalPlay = errors.New("illegal play")
	// ErrNoContract is returned when every player passed without a bid.
	ErrNoContract = errors.New("no contract")
	// ErrCardNotFound is returned when no other player holds the partner card.
	ErrCardNotFound = errors.New("card not found")
	// ErrInvalidArgument is returned for malformed requests.
	ErrInvalidArgument = errors.New("invalid argument")

	ErrNotYourTurn  = errors.New("not your turn")
	ErrEmptyHand    = errors.New("empty hand")
	ErrAuctionOpen  = errors.New("auction still open")
	ErrThresholdSet = errors.New("threshold already set")
	ErrRedealLimit  = errors.New("redeal limit reached")
)

// Recoverable reports whether err should be handed back to the decision
// provider for another attempt.
func Recoverable(err error) bool {
	return errors.Is(err, ErrIllegalBid) ||
		errors.Is(err, ErrIllegalPlay) ||
		errors.Is(err, ErrCardNotFound)
}
