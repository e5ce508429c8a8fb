package engine

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/google/uuid"
)

// BidRequest asks a seat for a bid drawn from Legal.
type BidRequest struct {
	GameID  uuid.UUID
	Seat    Seat
	Hand    []Card
	Legal   []Bid
	History []AuctionBid
	// Rejected is the error for the seat's previous answer, if it was refused.
	Rejected error
}

// PartnerRequest asks the bidder to name a partner card from Candidates.
type PartnerRequest struct {
	GameID     uuid.UUID
	Seat       Seat
	Contract   Contract
	Hand       []Card
	Candidates []Card
	Rejected   error
}

// PlayRequest asks a seat for a card drawn from Legal.
type PlayRequest struct {
	GameID   uuid.UUID
	Seat     Seat
	Hand     []Card
	Round    Round
	Legal    []Card
	Trump    Strain
	Rejected error
}

// Decider supplies player decisions. Each call blocks until the seat answers.
type Decider interface {
	Bid(ctx context.Context, req BidRequest) (Bid, error)
	PartnerCard(ctx context.Context, req PartnerRequest) (Card, error)
	Play(ctx context.Context, req PlayRequest) (Card, error)
}

// Options tune a game.
type Options struct {
	// MaxAttempts bounds how many refused answers a seat may give for one
	// decision before the game fails. Zero or less asks until the seat
	// gives an accepted answer.
	MaxAttempts int
	Observer    Observer
	ID          uuid.UUID
}

// Game drives one deal from auction to outcome.
type Game struct {
	ID      uuid.UUID
	Phase   Phase
	Players Players

	opts Options
}

// NewGame seats the named players and waits for a deal.
func NewGame(names []string, opts Options) (*Game, error) {
	players, err := NewPlayers(names)
	if err != nil {
		return nil, err
	}
	if opts.ID == uuid.Nil {
		opts.ID = uuid.New()
	}
	return &Game{ID: opts.ID, Phase: PhaseDeal, Players: players, opts: opts}, nil
}

func (g *Game) emit(e Event) {
	if g.opts.Observer == nil {
		return
	}
	e.GameID = g.ID
	g.opts.Observer.Observe(e)
}

// SetDealtCards hands out one pre-validated hand per seat.
func (g *Game) SetDealtCards(hands [][]Card) error {
	if g.Phase != PhaseDeal {
		return PhaseError("not in deal phase")
	}
	if len(hands) != PlayerCount {
		return fmt.Errorf("%w: expected %d hands, got %d", ErrInvalidArgument, PlayerCount, len(hands))
	}
	seen := map[Card]bool{}
	for i, h := range hands {
		if len(h) == 0 || len(h) != len(hands[0]) {
			return fmt.Errorf("%w: hand %d has %d cards", ErrInvalidArgument, i, len(h))
		}
		for _, c := range h {
			if seen[c] {
				return fmt.Errorf("%w: duplicate card %v", ErrInvalidArgument, c)
			}
			seen[c] = true
		}
	}
	for i, h := range hands {
		g.Players[i].ReceiveHand(h)
		g.Players[i].SetsWon = nil
	}
	g.Phase = PhaseAuction
	g.emit(Event{Kind: EventDealt, Seat: NoSeat})
	return nil
}

// Run plays the dealt hands to the end. ErrNoContract means everyone passed;
// the game is back in the deal phase and the caller may deal again.
func (g *Game) Run(ctx context.Context, d Decider) (Outcome, error) {
	contract, err := g.RunAuction(ctx, d)
	if err != nil {
		return Outcome{}, err
	}
	partners, err := g.FormPartnership(ctx, d, contract)
	if err != nil {
		return Outcome{}, err
	}
	return g.RunPlay(ctx, d, contract, partners)
}

// RunAuction collects bids in seat order until the auction closes.
func (g *Game) RunAuction(ctx context.Context, d Decider) (Contract, error) {
	if g.Phase != PhaseAuction {
		return Contract{}, PhaseError("not in auction phase")
	}
	a := NewAuction(0)
	for !a.Closed() {
		seat := a.Turn()
		err := g.decide(seat, func(rejected error) error {
			bid, err := d.Bid(ctx, BidRequest{
				GameID:   g.ID,
				Seat:     seat,
				Hand:     slices.Clone(g.Players[seat].Hand),
				Legal:    a.AvailableBids(),
				History:  a.History(),
				Rejected: rejected,
			})
			if err != nil {
				return fmt.Errorf("request bid from seat %d: %w", seat, err)
			}
			if err := a.Apply(seat, bid); err != nil {
				return err
			}
			kind := EventBidPlaced
			if bid.IsPass() {
				kind = EventPassed
			}
			g.emit(Event{Kind: kind, Seat: seat, Bid: bid})
			return nil
		})
		if err != nil {
			return Contract{}, err
		}
	}

	contract, err := a.Result()
	if errors.Is(err, ErrNoContract) {
		g.Phase = PhaseDeal
		g.emit(Event{Kind: EventNoContract, Seat: NoSeat})
		return Contract{}, err
	}
	if err != nil {
		return Contract{}, err
	}
	g.Phase = PhasePartner
	g.emit(Event{Kind: EventAuctionClosed, Seat: contract.Bidder, Bid: contract.Bid, Contract: contract})
	return contract, nil
}

// FormPartnership asks the bidder for a partner card and sets thresholds.
func (g *Game) FormPartnership(ctx context.Context, d Decider, contract Contract) (Partnership, error) {
	if g.Phase != PhasePartner {
		return Partnership{}, PhaseError("not in partner phase")
	}
	var partners Partnership
	var chosen Card
	seat := contract.Bidder
	err := g.decide(seat, func(rejected error) error {
		card, err := d.PartnerCard(ctx, PartnerRequest{
			GameID:     g.ID,
			Seat:       seat,
			Contract:   contract,
			Hand:       slices.Clone(g.Players[seat].Hand),
			Candidates: PartnerCandidates(g.Players, seat),
			Rejected:   rejected,
		})
		if err != nil {
			return fmt.Errorf("request partner card from seat %d: %w", seat, err)
		}
		p, err := SelectPartner(g.Players, contract, card)
		if err != nil {
			return err
		}
		partners, chosen = p, card
		return nil
	})
	if err != nil {
		return Partnership{}, err
	}

	var thresholds [PlayerCount]int
	for s, p := range g.Players {
		thresholds[s], _ = p.Threshold()
	}
	g.Phase = PhasePlay
	g.emit(Event{
		Kind:        EventPartnershipFormed,
		Seat:        seat,
		Contract:    contract,
		PartnerCard: chosen,
		Partners:    partners,
		Thresholds:  thresholds,
	})
	return partners, nil
}

// RunPlay plays rounds until a partnership reaches its threshold or the hands
// run out.
func (g *Game) RunPlay(ctx context.Context, d Decider, contract Contract, partners Partnership) (Outcome, error) {
	if g.Phase != PhasePlay {
		return Outcome{}, PhaseError("not in play phase")
	}
	ps, err := NewPlayState(g.Players, partners, contract)
	if err != nil {
		return Outcome{}, err
	}
	for !ps.Over() {
		seat := ps.Turn()
		err := g.decide(seat, func(rejected error) error {
			legal, err := ps.LegalPlays(seat)
			if err != nil {
				return err
			}
			card, err := d.Play(ctx, PlayRequest{
				GameID:   g.ID,
				Seat:     seat,
				Hand:     slices.Clone(g.Players[seat].Hand),
				Round:    ps.Current(),
				Legal:    legal,
				Trump:    ps.Trump(),
				Rejected: rejected,
			})
			if err != nil {
				return fmt.Errorf("request card from seat %d: %w", seat, err)
			}
			done, err := ps.PlayCard(seat, card)
			if err != nil {
				return err
			}
			g.emit(Event{Kind: EventCardPlayed, Seat: seat, Card: card})
			if done != nil {
				g.emit(Event{Kind: EventRoundResolved, Seat: done.Winner, Round: *done, Progress: ps.Progress()})
			}
			return nil
		})
		if err != nil {
			return Outcome{}, err
		}
	}

	outcome, _ := ps.Outcome()
	g.Phase = PhaseGameOver
	g.emit(Event{Kind: EventGameOver, Seat: outcome.Winners[0], Outcome: outcome, Progress: ps.Progress()})
	return outcome, nil
}

// decide runs attempt until it succeeds, handing each recoverable refusal
// back to the next attempt.
func (g *Game) decide(seat Seat, attempt func(rejected error) error) error {
	var rejected error
	for i := 0; g.opts.MaxAttempts <= 0 || i < g.opts.MaxAttempts; i++ {
		err := attempt(rejected)
		if err == nil {
			return nil
		}
		if !Recoverable(err) {
			return err
		}
		g.emit(Event{Kind: EventDecisionRejected, Seat: seat, Err: err})
		rejected = err
	}
	return fmt.Errorf("seat %d refused %d times: %w", seat, g.opts.MaxAttempts, rejected)
}
