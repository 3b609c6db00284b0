package blackjacktable

type Hand struct {
	Cards []Card `json:"cards"`
}

func NewHand() *Hand {
	return &Hand{Cards: make([]Card, 0, 10)}
}

func (h *Hand) AddCard(card Card) {
	h.Cards = append(h.Cards, card)
}

// Value returns the hand total and whether the hand is a natural blackjack.
// Aces start at 11 and are reduced to 1 one at a time while the total
// exceeds 21. Blackjack is exactly two cards totaling 21; a 3+ card 21 is
// not a blackjack.
func (h *Hand) Value() (int, bool) {
	total := 0
	aces := 0
	for _, card := range h.Cards {
		total += rankValues[card.Rank]
		if card.Rank == "A" {
			aces++
		}
	}
	for total > BlackjackTotal && aces > 0 {
		total -= 10
		aces--
	}
	isBlackjack := len(h.Cards) == InitialHandSize && total == BlackjackTotal
	return total, isBlackjack
}

func (h *Hand) Total() int {
	total, _ := h.Value()
	return total
}

func (h *Hand) IsBlackjack() bool {
	_, isBlackjack := h.Value()
	return isBlackjack
}

func (h *Hand) IsBust() bool {
	return h.Total() > BlackjackTotal
}
