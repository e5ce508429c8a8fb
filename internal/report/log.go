// Package report renders engine events for people and logs.
package report

import (
	"go.uber.org/zap"

	"github.com/ZygmuntJakub/bridge/internal/engine"
)

// LogObserver writes every engine event as a structured log entry.
type LogObserver struct {
	logger *zap.Logger
	names  []string
}

// NewLogObserver logs through logger, naming seats with names.
func NewLogObserver(logger *zap.Logger, names []string) *LogObserver {
	return &LogObserver{logger: logger, names: names}
}

func (o *LogObserver) Observe(e engine.Event) {
	fields := []zap.Field{
		zap.String("game_id", e.GameID.String()),
		zap.String("event", e.Kind.String()),
	}
	if e.Seat.Valid() {
		fields = append(fields, zap.Int("seat", int(e.Seat)), o.seatAs("player", e.Seat))
	}

	switch e.Kind {
	case engine.EventBidPlaced, engine.EventPassed:
		o.logger.Debug("bid", append(fields, zap.Stringer("bid", e.Bid))...)
	case engine.EventAuctionClosed:
		o.logger.Info("auction closed", append(fields,
			zap.Stringer("contract", e.Contract.Bid),
			zap.Int("bid_value", e.Contract.Bid.Value()))...)
	case engine.EventNoContract:
		o.logger.Info("all players passed", fields...)
	case engine.EventPartnershipFormed:
		partner := e.Partners.Partner(e.Seat)
		fields = append(fields,
			zap.Stringer("partner_card", e.PartnerCard),
			zap.Int("partner_seat", int(partner)),
			o.seatAs("partner", partner),
			zap.Ints("thresholds", e.Thresholds[:]))
		o.logger.Info("partnership formed", fields...)
	case engine.EventCardPlayed:
		o.logger.Debug("card played", append(fields, zap.Stringer("card", e.Card))...)
	case engine.EventRoundResolved:
		cards := make([]string, len(e.Round.Plays))
		for i, p := range e.Round.Plays {
			cards[i] = p.Card.Code()
		}
		o.logger.Info("round resolved", append(fields,
			zap.Strings("cards", cards),
			zap.Ints("progress", e.Progress[:]))...)
	case engine.EventGameOver:
		fields = append(fields,
			zap.Stringer("reason", e.Outcome.Reason),
			zap.Int("rounds", e.Outcome.Rounds))
		if e.Outcome.Reason == engine.OutcomeThreshold {
			fields = append(fields,
				zap.Bool("declarers", e.Outcome.Declarers),
				o.seatAs("winner", e.Outcome.Winners[0]),
				o.seatAs("winner_partner", e.Outcome.Winners[1]))
		}
		o.logger.Info("game over", fields...)
	case engine.EventDecisionRejected:
		o.logger.Warn("decision rejected", append(fields, zap.Error(e.Err))...)
	default:
		o.logger.Debug(e.Kind.String(), fields...)
	}
}

func (o *LogObserver) seatAs(key string, s engine.Seat) zap.Field {
	if s.Valid() && int(s) < len(o.names) {
		return zap.String(key, o.names[s])
	}
	return zap.Skip()
}
