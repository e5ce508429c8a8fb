//go:generate stringer -type=Suit,Rank,Strain,Phase,OutcomeReason -linecomment

package engine

import (
	"fmt"
	"strconv"
	"strings"
)

// Suit represents a card suit.
type Suit int

const (
	Clubs    Suit = iota // Clubs
	Diamonds             // Diamonds
	Hearts               // Hearts
	Spades               // Spades
)

// Suits lists the suits in ascending bidding order.
var Suits = [...]Suit{Clubs, Diamonds, Hearts, Spades}

// Symbol returns the one-rune suit glyph.
func (s Suit) Symbol() string {
	switch s {
	case Clubs:
		return "♣"
	case Diamonds:
		return "♦"
	case Hearts:
		return "♥"
	case Spades:
		return "♠"
	default:
		return "?"
	}
}

// Rank represents a card rank. Numeric value equals trick strength.
type Rank int

const (
	Two   Rank = iota + 2 // 2
	Three                 // 3
	Four                  // 4
	Five                  // 5
	Six                   // 6
	Seven                 // 7
	Eight                 // 8
	Nine                  // 9
	Ten                   // 10
	Jack                  // Jack
	Queen                 // Queen
	King                  // King
	Ace                   // Ace
)

// Ranks lists the ranks from lowest to highest.
var Ranks = [...]Rank{Two, Three, Four, Five, Six, Seven, Eight, Nine, Ten, Jack, Queen, King, Ace}

// Short returns the compact rank label used in card codes.
func (r Rank) Short() string {
	switch r {
	case Jack:
		return "J"
	case Queen:
		return "Q"
	case King:
		return "K"
	case Ace:
		return "A"
	}
	return r.String()
}

// Card represents a playing card.
type Card struct {
	Suit Suit
	Rank Rank
}

func (c Card) String() string {
	return c.Rank.String() + " of " + c.Suit.String()
}

// Code returns the compact form, e.g. "10♥".
func (c Card) Code() string {
	return c.Rank.Short() + c.Suit.Symbol()
}

// ParseCard accepts "Queen of Hearts", "Hearts-Queen", "QH" or "10H".
func ParseCard(s string) (Card, error) {
	s = strings.TrimSpace(s)
	if rank, suit, ok := strings.Cut(s, " of "); ok {
		return cardFromParts(rank, suit, s)
	}
	if suit, rank, ok := strings.Cut(s, "-"); ok {
		return cardFromParts(rank, suit, s)
	}
	if rs := []rune(s); len(rs) >= 2 {
		return cardFromParts(string(rs[:len(rs)-1]), string(rs[len(rs)-1:]), s)
	}
	return Card{}, fmt.Errorf("%w: card %q", ErrInvalidArgument, s)
}

func cardFromParts(rank, suit, raw string) (Card, error) {
	r, ok := parseRank(strings.TrimSpace(rank))
	if !ok {
		return Card{}, fmt.Errorf("%w: card %q", ErrInvalidArgument, raw)
	}
	su, ok := parseSuit(strings.TrimSpace(suit))
	if !ok {
		return Card{}, fmt.Errorf("%w: card %q", ErrInvalidArgument, raw)
	}
	return Card{Suit: su, Rank: r}, nil
}

func parseRank(s string) (Rank, bool) {
	for _, r := range Ranks {
		if strings.EqualFold(s, r.String()) || strings.EqualFold(s, r.Short()) {
			return r, true
		}
	}
	return 0, false
}

func parseSuit(s string) (Suit, bool) {
	for _, su := range Suits {
		name := su.String()
		if strings.EqualFold(s, name) || strings.EqualFold(s, name[:1]) || s == su.Symbol() {
			return su, true
		}
	}
	return 0, false
}

// Strain is a bid denomination: one of the four suits or no trump.
type Strain int

const (
	StrainClubs    Strain = iota + 1 // Clubs
	StrainDiamonds                   // Diamonds
	StrainHearts                     // Hearts
	StrainSpades                     // Spades
	NoTrump                          // No Trump
)

// Strains lists the denominations in ascending bidding order.
var Strains = [...]Strain{StrainClubs, StrainDiamonds, StrainHearts, StrainSpades, NoTrump}

// StrainOf returns the trump strain for a suit.
func StrainOf(s Suit) Strain { return Strain(int(s) + 1) }

// Suit returns the trump suit, or false for no trump.
func (s Strain) Suit() (Suit, bool) {
	if s >= StrainClubs && s <= StrainSpades {
		return Suit(int(s) - 1), true
	}
	return 0, false
}

// Bid is either Pass (the zero value) or a level 1..7 in a strain.
type Bid struct {
	Level  int
	Strain Strain
}

// Pass is the pass bid.
var Pass = Bid{}

const (
	MinLevel = 1
	MaxLevel = 7
)

// IsPass reports whether b is a pass.
func (b Bid) IsPass() bool { return b.Level == 0 }

// Value orders bids: level*10 + strain rank (Clubs 1 .. No Trump 5).
func (b Bid) Value() int {
	if b.IsPass() {
		return 0
	}
	return b.Level*10 + int(b.Strain)
}

func (b Bid) String() string {
	if b.IsPass() {
		return "Pass"
	}
	return strconv.Itoa(b.Level) + " " + b.Strain.String()
}

// ParseBid accepts "Pass", "1 Hearts", "3 No Trump" or "3NT", case-insensitively.
func ParseBid(s string) (Bid, error) {
	s = strings.TrimSpace(s)
	if strings.EqualFold(s, "pass") {
		return Pass, nil
	}
	if len(s) < 2 {
		return Bid{}, fmt.Errorf("%w: bid %q", ErrInvalidArgument, s)
	}
	level, err := strconv.Atoi(s[:1])
	if err != nil || level < MinLevel || level > MaxLevel {
		return Bid{}, fmt.Errorf("%w: bid %q", ErrInvalidArgument, s)
	}
	rest := strings.TrimSpace(s[1:])
	switch {
	case strings.EqualFold(rest, "no trump"), strings.EqualFold(rest, "notrump"), strings.EqualFold(rest, "nt"):
		return Bid{Level: level, Strain: NoTrump}, nil
	}
	su, ok := parseSuit(rest)
	if !ok {
		return Bid{}, fmt.Errorf("%w: bid %q", ErrInvalidArgument, s)
	}
	return Bid{Level: level, Strain: StrainOf(su)}, nil
}

// Seat is a stable 0-based seat index.
type Seat int

// PlayerCount is the fixed number of seats at the table.
const PlayerCount = 4

// NoSeat marks an absent seat.
const NoSeat Seat = -1

// Next returns the following seat in rotation.
func (s Seat) Next() Seat { return (s + 1) % PlayerCount }

// Valid reports whether s is a real seat.
func (s Seat) Valid() bool { return s >= 0 && s < PlayerCount }

// Phase represents the game phase.
type Phase int

const (
	PhaseDeal     Phase = iota // deal
	PhaseAuction               // auction
	PhasePartner               // partner
	PhasePlay                  // play
	PhaseGameOver              // game over
)

// Contract is the auction's outcome.
type Contract struct {
	Bidder Seat
	Bid    Bid
}

// Trump returns the contract strain.
func (c Contract) Trump() Strain { return c.Bid.Strain }

// Play represents a single card played in a round.
type Play struct {
	Seat Seat
	Card Card
}

// Round holds the cards of one set, in play order from the leader.
type Round struct {
	Leader Seat
	Plays  []Play
	Winner Seat
}

// LeadSuit returns the suit of the first card played.
func (r Round) LeadSuit() (Suit, bool) {
	if len(r.Plays) == 0 {
		return 0, false
	}
	return r.Plays[0].Card.Suit, true
}

// Complete reports whether every seat has played.
func (r Round) Complete() bool { return len(r.Plays) == PlayerCount }

// OutcomeReason says how play ended.
type OutcomeReason int

const (
	// OutcomeThreshold means a partnership captured its threshold of sets.
	OutcomeThreshold OutcomeReason = iota + 1 // threshold
	// OutcomeExhausted means every hand emptied with no threshold met.
	OutcomeExhausted // exhausted
)

// Outcome is the result of the play phase.
type Outcome struct {
	Reason OutcomeReason
	// Winners is the winning partnership; both NoSeat when exhausted.
	Winners [2]Seat
	// Declarers is true when the bidder's side won.
	Declarers bool
	Rounds    int
}
