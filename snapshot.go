package blackjacktable

import (
	"github.com/thoas/go-funk"
)

// Snapshots are the render-ready view handed to the presentation layer.
// While a game is unsettled the dealer's hole card is withheld: only the
// up card is exposed and the dealer total is not reported.

type HandSnapshot struct {
	Cards       []Card `json:"cards"`
	Total       int    `json:"total"`
	IsBlackjack bool   `json:"is_blackjack"`
	IsBust      bool   `json:"is_bust"`
}

type PlayerSnapshot struct {
	PlayerID string       `json:"player_id"`
	Hand     HandSnapshot `json:"hand"`
	Result   Result       `json:"result"`
}

type TableSnapshot struct {
	TableID        string           `json:"table_id"`
	Status         TableStateStatus `json:"status"`
	HostID         string           `json:"host_id"`
	Dealer         HandSnapshot     `json:"dealer"`
	Players        []PlayerSnapshot `json:"players"`
	CurrentActorID string           `json:"current_actor_id,omitempty"`
	Finished       bool             `json:"finished"`
	UpdateSerial   int64            `json:"update_serial"`
}

type SoloSnapshot struct {
	GameID       string       `json:"game_id"`
	PlayerID     string       `json:"player_id"`
	Player       HandSnapshot `json:"player"`
	Dealer       HandSnapshot `json:"dealer"`
	Finished     bool         `json:"finished"`
	Result       Result       `json:"result"`
	UpdateSerial int64        `json:"update_serial"`
}

func newHandSnapshot(hand *Hand) HandSnapshot {
	total, isBlackjack := hand.Value()
	return HandSnapshot{
		Cards:       append([]Card(nil), hand.Cards...),
		Total:       total,
		IsBlackjack: isBlackjack,
		IsBust:      total > BlackjackTotal,
	}
}

// newDealerSnapshot masks the dealer hand down to the up card until the
// game is settled.
func newDealerSnapshot(hand *Hand, settled bool) HandSnapshot {
	if settled {
		return newHandSnapshot(hand)
	}

	shown := make([]Card, 0, 1)
	if len(hand.Cards) > 0 {
		shown = append(shown, hand.Cards[0])
	}
	return HandSnapshot{Cards: shown}
}

func newTableSnapshot(t *Table) *TableSnapshot {
	settled := t.State.Status == TableStateStatus_TableSettled

	return &TableSnapshot{
		TableID: t.ID,
		Status:  t.State.Status,
		HostID:  t.Meta.HostID,
		Dealer:  newDealerSnapshot(t.State.DealerHand, settled),
		Players: funk.Map(t.State.PlayerStates, func(player *TablePlayerState) PlayerSnapshot {
			return PlayerSnapshot{
				PlayerID: player.PlayerID,
				Hand:     newHandSnapshot(player.Hand),
				Result:   player.Result,
			}
		}).([]PlayerSnapshot),
		CurrentActorID: t.CurrentActorID(),
		Finished:       t.IsFinished(),
		UpdateSerial:   t.UpdateSerial,
	}
}

func newSoloSnapshot(g *SoloGame) *SoloSnapshot {
	return &SoloSnapshot{
		GameID:       g.ID,
		PlayerID:     g.PlayerID,
		Player:       newHandSnapshot(g.PlayerHand),
		Dealer:       newDealerSnapshot(g.DealerHand, g.Finished),
		Finished:     g.Finished,
		Result:       g.Result,
		UpdateSerial: g.UpdateSerial,
	}
}
