package player

import (
	"bytes"
	"context"
	"errors"
	"io"
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ZygmuntJakub/bridge/internal/engine"
)

func dealt(t *testing.T, seed uint64) [][]engine.Card {
	t.Helper()
	d := engine.NewDeck()
	d.Shuffle(rand.New(rand.NewPCG(seed, seed)))
	hands, err := d.Deal(engine.PlayerCount)
	require.NoError(t, err)
	return hands
}

func TestRandomBotPicksLegalOptions(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	bot := NewRandomBot("Bot", rng)
	assert.Equal(t, "Bot", bot.Name())

	legal := engine.NewAuction(0).AvailableBids()
	for i := 0; i < 100; i++ {
		b, err := bot.MakeBidDecision(nil, legal)
		require.NoError(t, err)
		assert.Contains(t, legal, b)
	}

	cards := []engine.Card{{Suit: engine.Hearts, Rank: engine.Two}, {Suit: engine.Spades, Rank: engine.Ace}}
	c, err := bot.PlayCard(nil, engine.Round{}, cards)
	require.NoError(t, err)
	assert.Contains(t, cards, c)

	_, err = bot.ChoosePartnerCard(nil, nil)
	assert.ErrorIs(t, err, errNoOptions)
}

func TestRandomBotNamesItself(t *testing.T) {
	bot := &RandomBot{}
	name := bot.Name()
	assert.True(t, strings.HasPrefix(name, "RandomBot_"), name)
	assert.Equal(t, name, bot.Name())
}

func TestRandomTablePlaysFullGames(t *testing.T) {
	rng := rand.New(rand.NewPCG(9, 9))
	table, err := NewTable([]string{"Alice", "Bob", "Charlie", "Diana"}, func(_ engine.Seat, name string) Player {
		return NewRandomBot(name, rng)
	})
	require.NoError(t, err)

	played := 0
	for seed := uint64(0); seed < 30; seed++ {
		g, err := engine.NewGame(table.Names(), engine.Options{})
		require.NoError(t, err)
		require.NoError(t, g.SetDealtCards(dealt(t, seed)))

		outcome, err := g.Run(context.Background(), table)
		if errors.Is(err, engine.ErrNoContract) {
			continue
		}
		require.NoError(t, err)
		assert.Equal(t, engine.OutcomeThreshold, outcome.Reason)
		played++
	}
	assert.Positive(t, played)
}

func TestNewTableSeatsFactoryPlayers(t *testing.T) {
	var seats []engine.Seat
	table, err := NewTable([]string{"N", "E", "S", "W"}, func(s engine.Seat, name string) Player {
		seats = append(seats, s)
		return &Scripted{PlayerName: name}
	})
	require.NoError(t, err)
	assert.Equal(t, []engine.Seat{0, 1, 2, 3}, seats)
	assert.Equal(t, []string{"N", "E", "S", "W"}, table.Names())

	_, err = NewTable([]string{"N", "E"}, func(engine.Seat, string) Player { return nil })
	assert.ErrorIs(t, err, engine.ErrInvalidArgument)
}

func TestTableHandsRejectionToPlayer(t *testing.T) {
	s := &Scripted{
		PlayerName: "Alice",
		Bids:       []engine.Bid{{Level: 9, Strain: engine.NoTrump}, {Level: 1, Strain: engine.StrainClubs}},
	}
	table := &Table{s, &Scripted{PlayerName: "Bob", Bids: []engine.Bid{engine.Pass}}, &Scripted{PlayerName: "Charlie", Bids: []engine.Bid{engine.Pass}}, &Scripted{PlayerName: "Diana", Bids: []engine.Bid{engine.Pass}}}

	g, err := engine.NewGame(table.Names(), engine.Options{})
	require.NoError(t, err)
	require.NoError(t, g.SetDealtCards(dealt(t, 3)))

	c, err := g.RunAuction(context.Background(), table)
	require.NoError(t, err)
	assert.Equal(t, engine.Contract{Bidder: 0, Bid: engine.Bid{Level: 1, Strain: engine.StrainClubs}}, c)
	require.Len(t, s.Rejections, 1)
	assert.ErrorIs(t, s.Rejections[0], engine.ErrIllegalBid)
}

func TestScriptedRunsOut(t *testing.T) {
	s := &Scripted{PlayerName: "Alice"}
	_, err := s.MakeBidDecision(nil, []engine.Bid{engine.Pass})
	assert.ErrorIs(t, err, ErrScriptExhausted)

	legal := []engine.Card{{Suit: engine.Clubs, Rank: engine.Four}}
	c, err := s.PlayCard(nil, engine.Round{}, legal)
	require.NoError(t, err)
	assert.Equal(t, legal[0], c)
}

func TestTableChecksContextAndSeat(t *testing.T) {
	table := &Table{}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := table.Bid(ctx, engine.BidRequest{Seat: 0})
	assert.ErrorIs(t, err, context.Canceled)

	_, err = table.Play(context.Background(), engine.PlayRequest{Seat: 2})
	assert.ErrorIs(t, err, engine.ErrInvalidArgument)
}

func TestConsoleChoices(t *testing.T) {
	legal := []engine.Bid{engine.Pass, {Level: 1, Strain: engine.StrainClubs}, {Level: 1, Strain: engine.StrainHearts}}
	hand := []engine.Card{{Suit: engine.Hearts, Rank: engine.Queen}, {Suit: engine.Clubs, Rank: engine.Ten}}

	type tc struct {
		name  string
		input string
		want  engine.Bid
		err   error
	}
	cases := []tc{
		{name: "by number", input: "3\n", want: legal[2]},
		{name: "by text", input: "1 hearts\n", want: legal[2]},
		{name: "blank then number", input: "\n\n2\n", want: legal[1]},
		{name: "out of range then number", input: "9\n1\n", want: engine.Pass},
		{name: "unreadable text is asked again", input: "banana\nbanana\n2\n", want: legal[1]},
		{name: "unreadable text then end of input", input: "banana\n", err: io.EOF},
		{name: "end of input", input: "", err: io.EOF},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			var out bytes.Buffer
			con := NewConsole("Alice", 1, strings.NewReader(c.input), &out)
			got, err := con.MakeBidDecision(hand, legal)
			if c.err != nil {
				assert.ErrorIs(t, err, c.err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, c.want, got)
			assert.Contains(t, out.String(), "Alice (Player 1) bidding.")
			assert.Contains(t, out.String(), "Q♥")
		})
	}
}

func TestConsoleCards(t *testing.T) {
	legal := []engine.Card{{Suit: engine.Hearts, Rank: engine.Queen}, {Suit: engine.Hearts, Rank: engine.Ten}}
	round := engine.Round{Plays: []engine.Play{{Seat: 0, Card: engine.Card{Suit: engine.Hearts, Rank: engine.Two}}}}

	var out bytes.Buffer
	con := NewConsole("Bob", 2, strings.NewReader("10H\n"), &out)
	got, err := con.PlayCard(legal, round, legal)
	require.NoError(t, err)
	assert.Equal(t, legal[1], got)
	assert.Contains(t, out.String(), "On the table: 2♥")

	con = NewConsole("Bob", 2, strings.NewReader("Queen of Hearts\n"), &out)
	got, err = con.ChoosePartnerCard(nil, legal)
	require.NoError(t, err)
	assert.Equal(t, legal[0], got)

	out.Reset()
	con = NewConsole("Bob", 2, strings.NewReader("nothing\n1\n"), &out)
	got, err = con.PlayCard(legal, round, legal)
	require.NoError(t, err)
	assert.Equal(t, legal[1], got, "cards are numbered in suit and rank order")
	assert.Contains(t, out.String(), `Unrecognised answer "nothing".`)
	assert.Less(t, strings.Index(out.String(), "10 of Hearts"), strings.Index(out.String(), "Queen of Hearts"))

	out.Reset()
	con.Rejected(engine.ErrIllegalPlay)
	assert.Equal(t, "Not allowed: illegal play\n", out.String())
}
