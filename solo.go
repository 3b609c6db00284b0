package blackjacktable

import (
	"time"
)

// SoloGame is the state of one player playing against the dealer.
type SoloGame struct {
	ID           string `json:"id"`
	ContextID    string `json:"context_id"`
	PlayerID     string `json:"player_id"`
	PlayerHand   *Hand  `json:"player_hand"`
	DealerHand   *Hand  `json:"dealer_hand"`
	Finished     bool   `json:"finished"`
	Result       Result `json:"result"`
	UpdateAt     int64  `json:"update_at"`
	UpdateSerial int64  `json:"update_serial"`

	shoe *Shoe
}

func (g *SoloGame) RefreshUpdateAt() {
	g.UpdateAt = time.Now().Unix()
	g.UpdateSerial++
}

func (g *SoloGame) deal() {
	g.PlayerHand.AddCard(g.shoe.Draw())
	g.PlayerHand.AddCard(g.shoe.Draw())
	g.DealerHand.AddCard(g.shoe.Draw())
	g.DealerHand.AddCard(g.shoe.Draw())
}

func (g *SoloGame) hit() {
	g.PlayerHand.AddCard(g.shoe.Draw())
}

func (g *SoloGame) dealerPlay() {
	dealerAutoPlay(g.DealerHand, g.shoe)
}

func (g *SoloGame) settle() {
	g.Result = settleAgainstDealer(g.PlayerHand, g.DealerHand)
	g.Finished = true
}
