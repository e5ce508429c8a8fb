// Package match wires a card supplier, a dealer and a table of players into
// complete games, re-dealing when nobody bids.
package match

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"

	"github.com/ZygmuntJakub/bridge/internal/engine"
)

// Settings control how games are dealt.
type Settings struct {
	MinHandValue int
	// MaxRedeals bounds both the hand-value reshuffles per deal and the
	// number of passed-out deals per game.
	MaxRedeals int
	// MaxAttempts is handed to engine.Options; zero asks without limit.
	MaxAttempts int
}

// Result summarises one finished game.
type Result struct {
	Game     *engine.Game
	Outcome  engine.Outcome
	Deals    int // deals including passed-out ones
	Shuffles int // shuffles spent reaching valid hands
}

// Runner plays games at one table.
type Runner struct {
	Supplier engine.CardSupplier
	Rand     *rand.Rand
	Decider  engine.Decider
	Observer engine.Observer
	Settings Settings
}

// Play runs one game for the named players. A passed-out deal is dealt again
// until a contract is made or MaxRedeals deals have been passed out.
func (r *Runner) Play(ctx context.Context, names []string) (*Result, error) {
	deck, err := engine.LoadDeck(ctx, r.Supplier)
	if err != nil {
		return nil, err
	}
	game, err := engine.NewGame(names, engine.Options{
		MaxAttempts: r.Settings.MaxAttempts,
		Observer:    r.Observer,
	})
	if err != nil {
		return nil, err
	}

	res := &Result{Game: game}
	for res.Deals < r.Settings.MaxRedeals {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		hands, shuffles, err := engine.DealValidHands(deck, r.Rand, engine.PlayerCount, r.Settings.MinHandValue, r.Settings.MaxRedeals)
		res.Shuffles += shuffles
		if err != nil {
			return nil, err
		}
		if err := game.SetDealtCards(hands); err != nil {
			return nil, err
		}
		res.Deals++

		outcome, err := game.Run(ctx, r.Decider)
		if errors.Is(err, engine.ErrNoContract) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("game %s: %w", game.ID, err)
		}
		res.Outcome = outcome
		return res, nil
	}
	return nil, fmt.Errorf("game %s: %w after %d deals", game.ID, engine.ErrNoContract, res.Deals)
}

// Summary tallies a run of games.
type Summary struct {
	Games     int
	Declarers int // games won by the bidder's side
	Defenders int
	Exhausted int
	Wins      map[string]int
}

// Add records one result.
func (s *Summary) Add(r *Result) {
	if s.Wins == nil {
		s.Wins = map[string]int{}
	}
	s.Games++
	switch {
	case r.Outcome.Reason == engine.OutcomeExhausted:
		s.Exhausted++
		return
	case r.Outcome.Declarers:
		s.Declarers++
	default:
		s.Defenders++
	}
	for _, seat := range r.Outcome.Winners {
		s.Wins[r.Game.Players[seat].Name]++
	}
}
