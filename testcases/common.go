package testcases

import (
	"github.com/cardhive/blackjacktable"
)

func card(rank, suit string) blackjacktable.Card {
	return blackjacktable.Card{Rank: rank, Suit: suit}
}

// stackedOptions wires every session created by the manager to deal the
// given cards in order.
func stackedOptions(cards ...blackjacktable.Card) *blackjacktable.EngineOptions {
	options := blackjacktable.NewEngineOptions()
	options.ShoeFactory = func() *blackjacktable.Shoe {
		return blackjacktable.NewStackedShoe(cards...)
	}
	return options
}
