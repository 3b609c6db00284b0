package blackjacktable

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func newSoloForTest(t *testing.T, shoe *Shoe) SoloEngine {
	t.Helper()

	engine := NewSoloEngine(NewEngineOptions(), WithShoe(shoe))
	_, err := engine.CreateGame(SoloSetting{ContextID: "guild-1", PlayerID: "alice"})
	assert.Nil(t, err)

	return engine
}

func Test_Solo_StandWins(t *testing.T) {
	// player 10+9=19, dealer 10+8=18, dealer stands at 18
	engine := newSoloForTest(t, NewStackedShoe(card("10"), card("9"), card("10"), card("8")))

	err := engine.Stand("alice")
	assert.Nil(t, err)

	game := engine.GetGame()
	assert.True(t, game.Finished)
	assert.Equal(t, Result_Win, game.Result)
	assert.Equal(t, 19, game.PlayerHand.Total())
	assert.Equal(t, 18, game.DealerHand.Total())
}

func Test_Solo_HitBustSettlesImmediately(t *testing.T) {
	engine := newSoloForTest(t, NewStackedShoe(card("10"), card("9"), card("10"), card("8"), card("5")))

	err := engine.Hit("alice")
	assert.Nil(t, err)

	game := engine.GetGame()
	assert.True(t, game.Finished)
	assert.Equal(t, Result_Lose, game.Result)
	assert.True(t, game.PlayerHand.IsBust())

	// no further action possible
	assert.Equal(t, ErrSoloGameFinished, engine.Hit("alice"))
	assert.Equal(t, ErrSoloGameFinished, engine.Stand("alice"))
}

func Test_Solo_HitThenStand(t *testing.T) {
	// player 10+6 hits a 5 for 21, dealer 10+8
	engine := newSoloForTest(t, NewStackedShoe(card("10"), card("6"), card("10"), card("8"), card("5")))

	assert.Nil(t, engine.Hit("alice"))
	game := engine.GetGame()
	assert.False(t, game.Finished)
	assert.Equal(t, 21, game.PlayerHand.Total())

	assert.Nil(t, engine.Stand("alice"))
	assert.True(t, game.Finished)
	assert.Equal(t, Result_Win, game.Result)
}

func Test_Solo_DoubleSettlesRegardless(t *testing.T) {
	// double draws exactly one card then the game is over either way
	engine := newSoloForTest(t, NewStackedShoe(card("10"), card("6"), card("10"), card("8"), card("5")))

	assert.Nil(t, engine.Double("alice"))

	game := engine.GetGame()
	assert.True(t, game.Finished)
	assert.Equal(t, 3, len(game.PlayerHand.Cards))
	assert.Equal(t, Result_Win, game.Result) // 21 vs 18
}

func Test_Solo_DoubleBustSkipsDealerPlay(t *testing.T) {
	// player 10+9 doubles into a 5 for 24; dealer sits at 10+5 and never draws
	engine := newSoloForTest(t, NewStackedShoe(card("10"), card("9"), card("10"), card("5"), card("5")))

	assert.Nil(t, engine.Double("alice"))

	game := engine.GetGame()
	assert.True(t, game.Finished)
	assert.Equal(t, Result_Lose, game.Result)
	assert.Equal(t, 2, len(game.DealerHand.Cards))
}

func Test_Solo_BlackjackBeatsDealerTwentyOne(t *testing.T) {
	// player A+K natural, dealer 10+5 draws a 6 for a three card 21
	engine := newSoloForTest(t, NewStackedShoe(card("A"), card("K"), card("10"), card("5"), card("6")))

	assert.Nil(t, engine.Stand("alice"))

	game := engine.GetGame()
	assert.Equal(t, 21, game.DealerHand.Total())
	assert.Equal(t, Result_Win, game.Result)
}

func Test_Solo_BothBlackjackPush(t *testing.T) {
	engine := newSoloForTest(t, NewStackedShoe(card("A"), card("K"), card("A"), card("Q")))

	assert.Nil(t, engine.Stand("alice"))

	assert.Equal(t, Result_Push, engine.GetGame().Result)
}

func Test_Solo_RejectsOtherPlayers(t *testing.T) {
	engine := newSoloForTest(t, NewStackedShoe(card("10"), card("9"), card("10"), card("8")))

	err := engine.Hit("bob")
	assert.Equal(t, ErrSoloInvalidActor, err)

	// state unchanged
	game := engine.GetGame()
	assert.False(t, game.Finished)
	assert.Equal(t, 2, len(game.PlayerHand.Cards))
}

func Test_Solo_SnapshotMasksDealerHoleCard(t *testing.T) {
	engine := newSoloForTest(t, NewStackedShoe(card("10"), card("9"), card("10"), card("8")))

	snapshot := engine.Snapshot()
	assert.Equal(t, 1, len(snapshot.Dealer.Cards))
	assert.Equal(t, 0, snapshot.Dealer.Total)
	assert.Equal(t, 19, snapshot.Player.Total)
	assert.False(t, snapshot.Finished)

	assert.Nil(t, engine.Stand("alice"))

	snapshot = engine.Snapshot()
	assert.Equal(t, 2, len(snapshot.Dealer.Cards))
	assert.Equal(t, 18, snapshot.Dealer.Total)
	assert.True(t, snapshot.Finished)
	assert.Equal(t, Result_Win, snapshot.Result)
}
