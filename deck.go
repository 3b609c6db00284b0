package blackjacktable

import (
	"math/rand"
)

type Card struct {
	Rank string `json:"rank"`
	Suit string `json:"suit"`
}

func (c Card) String() string {
	return c.Rank + c.Suit
}

var (
	Suits = []string{"♠", "♥", "♦", "♣"}
	Ranks = []string{"A", "2", "3", "4", "5", "6", "7", "8", "9", "10", "J", "Q", "K"}
)

// rankValues maps a rank to its base value. Aces count as 11 here and are
// reduced to 1 by the hand evaluator when the total would bust.
var rankValues = map[string]int{
	"A": 11, "2": 2, "3": 3, "4": 4, "5": 5, "6": 6, "7": 7, "8": 8, "9": 9,
	"10": 10, "J": 10, "Q": 10, "K": 10,
}

// Shoe is the card supply a session draws from. It is owned by exactly one
// session and is never shared.
type Shoe struct {
	cards []Card
}

func NewShoe() *Shoe {
	s := &Shoe{}
	s.refill()
	return s
}

// NewStackedShoe builds a shoe that deals the given cards in order. Once the
// stacked cards run out the normal refill rule applies.
func NewStackedShoe(cards ...Card) *Shoe {
	stacked := make([]Card, len(cards))
	// Draw takes from the back, so store in reverse.
	for i, card := range cards {
		stacked[len(cards)-1-i] = card
	}
	return &Shoe{cards: stacked}
}

func (s *Shoe) refill() {
	cards := make([]Card, 0, DecksPerShoe*CardsPerDeck)
	for i := 0; i < DecksPerShoe; i++ {
		for _, suit := range Suits {
			for _, rank := range Ranks {
				cards = append(cards, Card{Rank: rank, Suit: suit})
			}
		}
	}
	rand.Shuffle(len(cards), func(i, j int) {
		cards[i], cards[j] = cards[j], cards[i]
	})
	s.cards = cards
}

// Draw never fails. An exhausted shoe is replaced with a freshly shuffled
// two-deck set before dealing.
func (s *Shoe) Draw() Card {
	if len(s.cards) == 0 {
		s.refill()
	}
	card := s.cards[len(s.cards)-1]
	s.cards = s.cards[:len(s.cards)-1]
	return card
}

func (s *Shoe) Remaining() int {
	return len(s.cards)
}
