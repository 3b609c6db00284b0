package blackjacktable

/*
settleAgainstDealer applies the fixed tie-break order shared by both
session types:
  - player bust -> lose
  - dealer bust -> win
  - natural blackjack beats any other 21
  - otherwise higher total wins, equal totals push
*/
func settleAgainstDealer(player *Hand, dealer *Hand) Result {
	playerTotal, playerBlackjack := player.Value()
	dealerTotal, dealerBlackjack := dealer.Value()

	switch {
	case playerTotal > BlackjackTotal:
		return Result_Lose
	case dealerTotal > BlackjackTotal:
		return Result_Win
	case playerBlackjack && !dealerBlackjack:
		return Result_Win
	case dealerBlackjack && !playerBlackjack:
		return Result_Lose
	case playerTotal > dealerTotal:
		return Result_Win
	case playerTotal < dealerTotal:
		return Result_Lose
	default:
		return Result_Push
	}
}

// dealerAutoPlay draws into the dealer hand until it reaches 17 or more.
// The dealer stands on any 17, soft or hard.
func dealerAutoPlay(dealer *Hand, shoe *Shoe) {
	for dealer.Total() < DealerStandsAt {
		dealer.AddCard(shoe.Draw())
	}
}
