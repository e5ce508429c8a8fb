package match

import (
	"context"
	"errors"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ZygmuntJakub/bridge/internal/engine"
	"github.com/ZygmuntJakub/bridge/internal/player"
)

var names = []string{"Alice", "Bob", "Charlie", "Diana"}

func randomTable(t *testing.T, rng *rand.Rand) *player.Table {
	t.Helper()
	table, err := player.NewTable(names, func(_ engine.Seat, name string) player.Player {
		return player.NewRandomBot(name, rng)
	})
	require.NoError(t, err)
	return table
}

func defaultSettings() Settings {
	return Settings{MinHandValue: 5, MaxRedeals: 1000, MaxAttempts: 3}
}

type passAll struct{ player.Table }

func (passAll) Bid(context.Context, engine.BidRequest) (engine.Bid, error) { return engine.Pass, nil }

type staticSupplier []engine.Card

func (s staticSupplier) Cards(context.Context) ([]engine.Card, error) { return s, nil }

func TestRunnerPlaysGames(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 1))
	kinds := map[engine.EventKind]int{}
	r := &Runner{
		Supplier: engine.StandardSupplier{},
		Rand:     rng,
		Decider:  randomTable(t, rng),
		Observer: engine.ObserverFunc(func(e engine.Event) { kinds[e.Kind]++ }),
		Settings: defaultSettings(),
	}

	var sum Summary
	for i := 0; i < 20; i++ {
		res, err := r.Play(context.Background(), names)
		require.NoError(t, err)
		require.GreaterOrEqual(t, res.Deals, 1)
		require.GreaterOrEqual(t, res.Shuffles, res.Deals)
		assert.Equal(t, engine.PhaseGameOver, res.Game.Phase)
		sum.Add(res)
	}

	assert.Equal(t, 20, sum.Games)
	assert.Equal(t, 20, sum.Declarers+sum.Defenders+sum.Exhausted)
	assert.Zero(t, sum.Exhausted, "full hands always settle a threshold")
	total := 0
	for _, n := range sum.Wins {
		total += n
	}
	assert.Equal(t, 2*(sum.Declarers+sum.Defenders), total)
	assert.Equal(t, 20, kinds[engine.EventGameOver])
	assert.Equal(t, kinds[engine.EventDealt], kinds[engine.EventNoContract]+20)
}

func TestRunnerGivesUpAfterPassedOutDeals(t *testing.T) {
	rng := rand.New(rand.NewPCG(2, 2))
	settings := defaultSettings()
	settings.MaxRedeals = 3
	settings.MinHandValue = 0
	r := &Runner{
		Supplier: engine.StandardSupplier{},
		Rand:     rng,
		Decider:  &passAll{*randomTable(t, rng)},
		Settings: settings,
	}
	_, err := r.Play(context.Background(), names)
	assert.ErrorIs(t, err, engine.ErrNoContract)
}

func TestRunnerRejectsBadSupply(t *testing.T) {
	r := &Runner{
		Supplier: staticSupplier(engine.NewDeck().Cards()[:40]),
		Rand:     rand.New(rand.NewPCG(3, 3)),
		Decider:  randomTable(t, rand.New(rand.NewPCG(3, 3))),
		Settings: defaultSettings(),
	}
	_, err := r.Play(context.Background(), names)
	assert.ErrorIs(t, err, engine.ErrInvalidArgument)
}

func TestRunnerStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	r := &Runner{
		Supplier: engine.StandardSupplier{},
		Rand:     rand.New(rand.NewPCG(4, 4)),
		Decider:  randomTable(t, rand.New(rand.NewPCG(4, 4))),
		Settings: defaultSettings(),
	}
	_, err := r.Play(ctx, names)
	assert.True(t, errors.Is(err, context.Canceled), err)
}

func TestSummaryExhausted(t *testing.T) {
	g, err := engine.NewGame(names, engine.Options{})
	require.NoError(t, err)
	var sum Summary
	sum.Add(&Result{Game: g, Outcome: engine.Outcome{Reason: engine.OutcomeExhausted}})
	sum.Add(&Result{Game: g, Outcome: engine.Outcome{Reason: engine.OutcomeThreshold, Winners: [2]engine.Seat{1, 3}}})
	assert.Equal(t, 1, sum.Exhausted)
	assert.Equal(t, 1, sum.Defenders)
	assert.Equal(t, 1, sum.Wins["Bob"])
	assert.Equal(t, 1, sum.Wins["Diana"])
	assert.Zero(t, sum.Wins["Alice"])
}
