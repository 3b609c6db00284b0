package blackjacktable

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func newTableForTest(shoe *Shoe, playerIDs ...string) *Table {
	table := &Table{ID: "test-table", shoe: shoe}
	table.ConfigureWithSetting(TableSetting{
		ContextID:   "guild-1",
		ChannelID:   "channel-1",
		HostID:      "alice",
		JoinPlayers: playerIDs,
	})
	return table
}

func Test_Table_LobbySeating(t *testing.T) {
	table := newTableForTest(NewShoe())

	assert.Nil(t, table.PlayerJoin("alice"))
	assert.Nil(t, table.PlayerJoin("bob"))
	assert.Equal(t, ErrTableAlreadySeated, table.PlayerJoin("bob"))
	assert.Equal(t, []string{"alice", "bob"}, table.SeatedPlayerIDs())

	assert.Equal(t, ErrTableNotSeated, table.PlayerLeave("carol"))
	assert.Nil(t, table.PlayerLeave("bob"))
	assert.Equal(t, []string{"alice"}, table.SeatedPlayerIDs())
}

func Test_Table_StartGameNeedsPlayers(t *testing.T) {
	table := newTableForTest(NewShoe())
	assert.Equal(t, ErrTableNoSeatedPlayers, table.StartGame())
	assert.Equal(t, TableStateStatus_TableLobby, table.State.Status)
}

func Test_Table_StartGameDealsInSeatOrder(t *testing.T) {
	// dealer 10+8, alice 10+9, bob 7+7
	shoe := NewStackedShoe(card("10"), card("8"), card("10"), card("9"), card("7"), card("7"))
	table := newTableForTest(shoe, "alice", "bob")

	assert.Nil(t, table.StartGame())

	assert.Equal(t, TableStateStatus_TableActive, table.State.Status)
	assert.Equal(t, 18, table.State.DealerHand.Total())
	assert.Equal(t, 19, table.State.PlayerStates[0].Hand.Total())
	assert.Equal(t, 14, table.State.PlayerStates[1].Hand.Total())
	assert.Equal(t, "alice", table.CurrentActorID())

	// no seat changes once started
	assert.Equal(t, ErrTableInvalidState, table.PlayerJoin("carol"))
	assert.Equal(t, ErrTableInvalidState, table.PlayerLeave("bob"))
	assert.Equal(t, []string{"alice", "bob"}, table.SeatedPlayerIDs())
}

func Test_Table_HitBustAdvancesWithoutStand(t *testing.T) {
	// alice 10+6 hits a 9 into 25 and the turn moves straight to bob
	shoe := NewStackedShoe(
		card("10"), card("8"), // dealer
		card("10"), card("6"), // alice
		card("10"), card("9"), // bob
		card("9"), // alice's hit
	)
	table := newTableForTest(shoe, "alice", "bob")
	assert.Nil(t, table.StartGame())

	assert.Nil(t, table.Hit("alice"))
	assert.True(t, table.State.PlayerStates[0].Hand.IsBust())
	assert.Equal(t, "bob", table.CurrentActorID())

	assert.Nil(t, table.Stand("bob"))
	assert.Equal(t, TableStateStatus_TableSettled, table.State.Status)
	assert.Equal(t, Result_Lose, table.State.PlayerStates[0].Result)
	assert.Equal(t, Result_Win, table.State.PlayerStates[1].Result) // 19 vs 18
}

func Test_Table_DoubleEndsTurnUnconditionally(t *testing.T) {
	shoe := NewStackedShoe(
		card("10"), card("8"), // dealer
		card("5"), card("6"), // alice
		card("10"), card("9"), // bob
		card("9"), // alice's double
	)
	table := newTableForTest(shoe, "alice", "bob")
	assert.Nil(t, table.StartGame())

	assert.Nil(t, table.Double("alice"))
	assert.Equal(t, 20, table.State.PlayerStates[0].Hand.Total())
	assert.Equal(t, "bob", table.CurrentActorID())
}

func Test_Table_RejectsOutOfTurnActions(t *testing.T) {
	shoe := NewStackedShoe(
		card("10"), card("8"),
		card("10"), card("6"),
		card("10"), card("9"),
	)
	table := newTableForTest(shoe, "alice", "bob")
	assert.Nil(t, table.StartGame())

	assert.Equal(t, ErrTableInvalidActor, table.Hit("bob"))
	assert.Equal(t, ErrTableInvalidActor, table.Stand("carol"))
	assert.Equal(t, 2, len(table.State.PlayerStates[1].Hand.Cards))
	assert.Equal(t, "alice", table.CurrentActorID())
}

func Test_Table_AdvanceTurnSkipsBustedSeat(t *testing.T) {
	jsonStr := `
	{"id":"6a7a918d-skip","meta":{"context_id":"guild-1","channel_id":"channel-1","host_id":"alice"},"state":{"status":"table_active","start_at":1686421171,"dealer_hand":{"cards":[{"rank":"10","suit":"♠"},{"rank":"10","suit":"♥"}]},"player_states":[{"player_id":"alice","hand":{"cards":[{"rank":"10","suit":"♦"},{"rank":"9","suit":"♣"}]},"result":"none"},{"player_id":"bob","hand":{"cards":[{"rank":"10","suit":"♠"},{"rank":"9","suit":"♥"},{"rank":"5","suit":"♦"}]},"result":"none"},{"player_id":"carol","hand":{"cards":[{"rank":"10","suit":"♣"},{"rank":"7","suit":"♠"}]},"result":"none"}],"current_turn_index":0},"update_at":1686421171,"update_serial":7}
	`

	var table Table
	err := json.Unmarshal([]byte(jsonStr), &table)
	assert.Nil(t, err)

	// bob is already bust, so alice's stand hands the turn straight to carol
	assert.Nil(t, table.Stand("alice"))
	assert.Equal(t, "carol", table.CurrentActorID())

	// the cursor still reaches settlement after the last seat
	assert.Nil(t, table.Stand("carol"))
	assert.Equal(t, TableStateStatus_TableSettled, table.State.Status)
	assert.Equal(t, Result_Lose, table.State.PlayerStates[0].Result) // 19 vs 20
	assert.Equal(t, Result_Lose, table.State.PlayerStates[1].Result) // bust
	assert.Equal(t, Result_Lose, table.State.PlayerStates[2].Result) // 17 vs 20
	assert.Equal(t, "", table.CurrentActorID())
}

func Test_Table_SettledRejectsActions(t *testing.T) {
	shoe := NewStackedShoe(
		card("10"), card("8"),
		card("10"), card("9"),
	)
	table := newTableForTest(shoe, "alice")
	assert.Nil(t, table.StartGame())
	assert.Nil(t, table.Stand("alice"))
	assert.Equal(t, TableStateStatus_TableSettled, table.State.Status)

	assert.Equal(t, ErrTableInvalidState, table.Hit("alice"))
	assert.Equal(t, ErrTableInvalidState, table.PlayerJoin("bob"))
	assert.Equal(t, []string{"alice"}, table.SeatedPlayerIDs())
}
