package blackjacktable

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func handOf(ranks ...string) *Hand {
	hand := NewHand()
	for _, rank := range ranks {
		hand.AddCard(card(rank))
	}
	return hand
}

func Test_Hand_Value(t *testing.T) {
	testCases := []struct {
		name          string
		ranks         []string
		expectedTotal int
		expectedBJ    bool
	}{
		{"hard total", []string{"10", "9"}, 19, false},
		{"face cards count ten", []string{"K", "Q"}, 20, false},
		{"natural blackjack", []string{"A", "K"}, 21, true},
		{"three card 21 is not blackjack", []string{"7", "7", "7"}, 21, false},
		{"soft ace stays eleven", []string{"A", "6"}, 17, false},
		{"ace reduces on bust", []string{"A", "6", "9"}, 16, false},
		{"two aces reduce one at a time", []string{"A", "A", "9"}, 21, false},
		{"all aces", []string{"A", "A", "A", "A"}, 14, false},
		{"bust", []string{"10", "9", "5"}, 24, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			total, isBlackjack := handOf(tc.ranks...).Value()
			assert.Equal(t, tc.expectedTotal, total)
			assert.Equal(t, tc.expectedBJ, isBlackjack)
		})
	}
}

func Test_Hand_ValueMonotonicUntilReduction(t *testing.T) {
	hand := NewHand()
	previous := 0
	for _, rank := range []string{"2", "3", "4", "5", "6"} {
		hand.AddCard(card(rank))
		total := hand.Total()
		assert.GreaterOrEqual(t, total, previous)
		previous = total
	}
}

func Test_Hand_IsBust(t *testing.T) {
	assert.False(t, handOf("10", "9").IsBust())
	assert.False(t, handOf("A", "K", "Q").IsBust()) // soft ace saves it
	assert.True(t, handOf("10", "9", "5").IsBust())
}
