package engine

import (
	"context"
	"errors"
	"math/rand/v2"
	"testing"
)

func testRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed))
}

func TestNewDeck(t *testing.T) {
	d := NewDeck()
	if d.Len() != DeckSize {
		t.Fatalf("expected %d cards, got %d", DeckSize, d.Len())
	}
	seen := map[Card]bool{}
	perSuit := map[Suit]int{}
	for _, c := range d.Cards() {
		if seen[c] {
			t.Fatalf("duplicate card %v", c)
		}
		seen[c] = true
		perSuit[c.Suit]++
	}
	for _, s := range Suits {
		if perSuit[s] != 13 {
			t.Fatalf("expected 13 %v, got %d", s, perSuit[s])
		}
	}
}

func TestShuffleIsPermutation(t *testing.T) {
	want := map[Card]bool{}
	for _, c := range NewDeck().Cards() {
		want[c] = true
	}
	rng := testRand(7)
	d := NewDeck()
	for i := 0; i < 50; i++ {
		d.Shuffle(rng)
		got := map[Card]bool{}
		for _, c := range d.Cards() {
			if got[c] {
				t.Fatalf("shuffle %d duplicated %v", i, c)
			}
			got[c] = true
		}
		if len(got) != len(want) {
			t.Fatalf("shuffle %d: expected %d cards, got %d", i, len(want), len(got))
		}
		for c := range want {
			if !got[c] {
				t.Fatalf("shuffle %d dropped %v", i, c)
			}
		}
	}
}

func TestShuffleChangesOrder(t *testing.T) {
	d := NewDeck()
	d.Shuffle(testRand(1))
	fresh := NewDeck().Cards()
	same := true
	for i, c := range d.Cards() {
		if c != fresh[i] {
			same = false
			break
		}
	}
	if same {
		t.Fatalf("shuffled deck kept the factory order")
	}
}

func TestDealRoundRobin(t *testing.T) {
	d := NewDeck()
	cards := d.Cards()
	hands, err := d.Deal(4)
	if err != nil {
		t.Fatalf("deal: %v", err)
	}
	for i, h := range hands {
		if len(h) != 13 {
			t.Fatalf("hand %d: expected 13 cards, got %d", i, len(h))
		}
		for j, c := range h {
			if c != cards[i+j*4] {
				t.Fatalf("hand %d card %d: expected %v, got %v", i, j, cards[i+j*4], c)
			}
		}
	}
}

func TestDealPartitionsAnyHandCount(t *testing.T) {
	d := NewDeck()
	d.Shuffle(testRand(3))
	for n := 1; n <= 10; n++ {
		hands, err := d.Deal(n)
		if err != nil {
			t.Fatalf("deal %d: %v", n, err)
		}
		if len(hands) != n {
			t.Fatalf("deal %d: got %d hands", n, len(hands))
		}
		seen := map[Card]bool{}
		lo, hi := DeckSize, 0
		for _, h := range hands {
			lo, hi = min(lo, len(h)), max(hi, len(h))
			for _, c := range h {
				if seen[c] {
					t.Fatalf("deal %d: %v dealt twice", n, c)
				}
				seen[c] = true
			}
		}
		if len(seen) != DeckSize {
			t.Fatalf("deal %d: %d cards dealt", n, len(seen))
		}
		if hi-lo > 1 {
			t.Fatalf("deal %d: hand sizes range %d..%d", n, lo, hi)
		}
	}
}

func TestDealRejectsNonPositive(t *testing.T) {
	for _, n := range []int{0, -1} {
		if _, err := NewDeck().Deal(n); !errors.Is(err, ErrInvalidArgument) {
			t.Fatalf("deal %d: expected ErrInvalidArgument, got %v", n, err)
		}
	}
}

func TestHandValue(t *testing.T) {
	cases := []struct {
		name string
		hand []Card
		want int
	}{
		{name: "empty", hand: nil, want: 0},
		{
			name: "honours",
			hand: []Card{{Spades, Ace}, {Hearts, King}, {Diamonds, Queen}, {Clubs, Jack}, {Clubs, Ten}},
			want: 10,
		},
		{
			name: "five card suit",
			hand: []Card{{Hearts, Two}, {Hearts, Three}, {Hearts, Four}, {Hearts, Five}, {Hearts, Six}, {Spades, Two}},
			want: 1,
		},
		{
			name: "two long suits with an ace",
			hand: []Card{
				{Hearts, Ace}, {Hearts, Three}, {Hearts, Four}, {Hearts, Five}, {Hearts, Six},
				{Spades, Two}, {Spades, Three}, {Spades, Four}, {Spades, Five}, {Spades, Six},
			},
			want: 6,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := HandValue(tc.hand); got != tc.want {
				t.Fatalf("expected %d, got %d", tc.want, got)
			}
		})
	}
}

func TestNewDeckFromValidates(t *testing.T) {
	full := NewDeck().Cards()
	if _, err := NewDeckFrom(full); err != nil {
		t.Fatalf("full deck: %v", err)
	}
	if _, err := NewDeckFrom(full[:51]); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("short deck: expected ErrInvalidArgument, got %v", err)
	}
	dup := append([]Card(nil), full...)
	dup[51] = dup[0]
	if _, err := NewDeckFrom(dup); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("duplicate: expected ErrInvalidArgument, got %v", err)
	}
	bad := append([]Card(nil), full...)
	bad[0] = Card{Suit: Spades, Rank: 15}
	if _, err := NewDeckFrom(bad); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("unknown card: expected ErrInvalidArgument, got %v", err)
	}
}

type failingSupplier struct{ err error }

func (f failingSupplier) Cards(context.Context) ([]Card, error) { return nil, f.err }

func TestLoadDeck(t *testing.T) {
	d, err := LoadDeck(context.Background(), StandardSupplier{})
	if err != nil {
		t.Fatalf("standard supplier: %v", err)
	}
	if d.Len() != DeckSize {
		t.Fatalf("expected %d cards, got %d", DeckSize, d.Len())
	}

	boom := errors.New("store offline")
	if _, err := LoadDeck(context.Background(), failingSupplier{err: boom}); !errors.Is(err, boom) {
		t.Fatalf("expected supplier error, got %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := LoadDeck(ctx, StandardSupplier{}); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestDealValidHands(t *testing.T) {
	d := NewDeck()
	hands, attempts, err := DealValidHands(d, testRand(11), PlayerCount, 5, 1000)
	if err != nil {
		t.Fatalf("deal: %v", err)
	}
	if attempts < 1 {
		t.Fatalf("expected at least one attempt, got %d", attempts)
	}
	for i, h := range hands {
		if v := HandValue(h); v < 5 {
			t.Fatalf("hand %d has value %d", i, v)
		}
	}

	// No deal gives all four hands 40 points each.
	if _, _, err := DealValidHands(d, testRand(11), PlayerCount, 40, 5); !errors.Is(err, ErrRedealLimit) {
		t.Fatalf("expected ErrRedealLimit, got %v", err)
	}
	if _, _, err := DealValidHands(d, testRand(11), PlayerCount, 5, 0); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument, got %v", err)
	}
}

func TestSortCards(t *testing.T) {
	cards := []Card{{Spades, Two}, {Clubs, Ace}, {Hearts, Ten}, {Clubs, Three}}
	SortCards(cards)
	want := []Card{{Clubs, Three}, {Clubs, Ace}, {Hearts, Ten}, {Spades, Two}}
	for i := range want {
		if cards[i] != want[i] {
			t.Fatalf("position %d: expected %v, got %v", i, want[i], cards[i])
		}
	}
}

func TestEnumNames(t *testing.T) {
	cases := []struct {
		got, want string
	}{
		{Hearts.String(), "Hearts"},
		{Ten.String(), "10"},
		{Queen.String(), "Queen"},
		{Card{Spades, Ace}.String(), "Ace of Spades"},
		{NoTrump.String(), "No Trump"},
		{StrainDiamonds.String(), "Diamonds"},
		{PhaseGameOver.String(), "game over"},
		{OutcomeExhausted.String(), "exhausted"},
		{EventPartnershipFormed.String(), "partnership formed"},
		{EventDecisionRejected.String(), "decision rejected"},
		{Rank(1).String(), "Rank(1)"},
		{Strain(0).String(), "Strain(0)"},
		{EventKind(0).String(), "EventKind(0)"},
	}
	for _, c := range cases {
		if c.got != c.want {
			t.Fatalf("expected %q, got %q", c.want, c.got)
		}
	}
}
