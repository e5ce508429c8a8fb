package engine

import (
	"fmt"
	"slices"
)

// AuctionBid represents a single auction action.
type AuctionBid struct {
	Seat Seat
	Bid  Bid
}

// Auction holds the bidding state. Seats are asked in seat order, skipping
// anyone who has passed; a pass is final.
type Auction struct {
	highest Bid
	bidder  Seat
	active  [PlayerCount]bool
	passes  int
	turn    Seat
	bids    []AuctionBid
}

// NewAuction opens bidding with opener to act first.
func NewAuction(opener Seat) *Auction {
	a := &Auction{bidder: NoSeat, turn: opener}
	for i := range a.active {
		a.active[i] = true
	}
	return a
}

// Turn returns the seat to act, or NoSeat once closed.
func (a *Auction) Turn() Seat {
	if a.Closed() {
		return NoSeat
	}
	return a.turn
}

// Highest returns the standing bid and its bidder.
func (a *Auction) Highest() (Bid, Seat, bool) {
	return a.highest, a.bidder, a.bidder != NoSeat
}

// Active reports whether seat may still bid.
func (a *Auction) Active(s Seat) bool { return s.Valid() && a.active[s] }

// History returns every action in order.
func (a *Auction) History() []AuctionBid { return slices.Clone(a.bids) }

// AvailableBids returns Pass followed by every strictly higher bid, ordered by
// level then strain. Pass is offered while fewer than three seats have passed,
// or while no bid stands so the last seat can still pass the deal out.
func (a *Auction) AvailableBids() []Bid {
	var bids []Bid
	if a.passes < 3 || a.bidder == NoSeat {
		bids = append(bids, Pass)
	}
	high := a.highest.Value()
	for level := max(a.highest.Level, MinLevel); level <= MaxLevel; level++ {
		for _, s := range Strains {
			b := Bid{Level: level, Strain: s}
			if b.Value() > high {
				bids = append(bids, b)
			}
		}
	}
	return bids
}

// Apply records seat's bid. A pass retires the seat; any other bid must be
// one of AvailableBids.
func (a *Auction) Apply(seat Seat, bid Bid) error {
	if a.Closed() {
		return PhaseError("auction closed")
	}
	if seat != a.turn {
		return fmt.Errorf("seat %d: %w", seat, ErrNotYourTurn)
	}
	if !slices.Contains(a.AvailableBids(), bid) {
		return fmt.Errorf("%w: %v", ErrIllegalBid, bid)
	}
	if bid.IsPass() {
		a.active[seat] = false
		a.passes++
	} else {
		a.highest = bid
		a.bidder = seat
	}
	a.bids = append(a.bids, AuctionBid{Seat: seat, Bid: bid})
	a.advance()
	return nil
}

func (a *Auction) advance() {
	for next := a.turn.Next(); next != a.turn; next = next.Next() {
		if a.active[next] {
			a.turn = next
			return
		}
	}
}

func (a *Auction) activeCount() int {
	n := 0
	for _, ok := range a.active {
		if ok {
			n++
		}
	}
	return n
}

// Closed reports whether bidding is over: three passes behind a standing bid,
// the bidder alone still active, or every seat passed.
func (a *Auction) Closed() bool {
	if a.passes == PlayerCount {
		return true
	}
	if a.bidder == NoSeat {
		return false
	}
	return a.passes >= 3 || (a.activeCount() == 1 && a.active[a.bidder])
}

// Result returns the contract of a closed auction.
func (a *Auction) Result() (Contract, error) {
	if !a.Closed() {
		return Contract{}, ErrAuctionOpen
	}
	if a.bidder == NoSeat {
		return Contract{}, ErrNoContract
	}
	return Contract{Bidder: a.bidder, Bid: a.highest}, nil
}

// MaxAuctionDecisions bounds the number of accepted decisions in one auction:
// every bid slot plus the passes.
const MaxAuctionDecisions = PlayerCount * MaxLevel * len(Strains)
