package player

import (
	"context"
	"fmt"

	"github.com/ZygmuntJakub/bridge/internal/engine"
)

// Table seats one Player per seat and answers engine decision requests by
// asking the player in the requested seat.
type Table [engine.PlayerCount]Player

// NewTable seats one player per name, built by newPlayer.
func NewTable(names []string, newPlayer PlayerFactory) (*Table, error) {
	if len(names) != engine.PlayerCount {
		return nil, fmt.Errorf("%w: expected %d players, got %d", engine.ErrInvalidArgument, engine.PlayerCount, len(names))
	}
	t := &Table{}
	for i, name := range names {
		t[i] = newPlayer(engine.Seat(i), name)
	}
	return t, nil
}

// Names returns the players' names in seat order.
func (t *Table) Names() []string {
	names := make([]string, len(t))
	for i, p := range t {
		names[i] = p.Name()
	}
	return names
}

func (t *Table) seat(ctx context.Context, s engine.Seat, rejected error) (Player, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if !s.Valid() || t[s] == nil {
		return nil, fmt.Errorf("%w: nobody in seat %d", engine.ErrInvalidArgument, s)
	}
	p := t[s]
	if rejected != nil {
		if r, ok := p.(Rejectable); ok {
			r.Rejected(rejected)
		}
	}
	return p, nil
}

func (t *Table) Bid(ctx context.Context, req engine.BidRequest) (engine.Bid, error) {
	p, err := t.seat(ctx, req.Seat, req.Rejected)
	if err != nil {
		return engine.Bid{}, err
	}
	return p.MakeBidDecision(req.Hand, req.Legal)
}

func (t *Table) PartnerCard(ctx context.Context, req engine.PartnerRequest) (engine.Card, error) {
	p, err := t.seat(ctx, req.Seat, req.Rejected)
	if err != nil {
		return engine.Card{}, err
	}
	return p.ChoosePartnerCard(req.Hand, req.Candidates)
}

func (t *Table) Play(ctx context.Context, req engine.PlayRequest) (engine.Card, error) {
	p, err := t.seat(ctx, req.Seat, req.Rejected)
	if err != nil {
		return engine.Card{}, err
	}
	return p.PlayCard(req.Hand, req.Round, req.Legal)
}

var _ engine.Decider = (*Table)(nil)
