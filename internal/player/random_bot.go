package player

import (
	"errors"
	"math/rand/v2"
	"strconv"

	"github.com/ZygmuntJakub/bridge/internal/engine"
)

var errNoOptions = errors.New("no options offered")

// RandomBot picks uniformly among the legal options.
type RandomBot struct {
	BotName string
	Rand    *rand.Rand
}

func (b *RandomBot) Name() string {
	if b.BotName == "" {
		b.BotName = "RandomBot_" + strconv.Itoa(b.rng().IntN(100))
	}
	return b.BotName
}

func (b *RandomBot) rng() *rand.Rand {
	if b.Rand == nil {
		b.Rand = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return b.Rand
}

func (b *RandomBot) MakeBidDecision(hand []engine.Card, legalBids []engine.Bid) (engine.Bid, error) {
	if len(legalBids) == 0 {
		return engine.Bid{}, errNoOptions
	}
	return legalBids[b.rng().IntN(len(legalBids))], nil
}

func (b *RandomBot) ChoosePartnerCard(hand []engine.Card, candidates []engine.Card) (engine.Card, error) {
	if len(candidates) == 0 {
		return engine.Card{}, errNoOptions
	}
	return candidates[b.rng().IntN(len(candidates))], nil
}

func (b *RandomBot) PlayCard(hand []engine.Card, round engine.Round, legal []engine.Card) (engine.Card, error) {
	if len(legal) == 0 {
		return engine.Card{}, errNoOptions
	}
	return legal[b.rng().IntN(len(legal))], nil
}

// NewRandomBot returns a bot drawing from rng; a nil rng is seeded randomly.
func NewRandomBot(name string, rng *rand.Rand) Player {
	return &RandomBot{BotName: name, Rand: rng}
}
