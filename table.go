package blackjacktable

import (
	"encoding/json"
	"time"

	"github.com/thoas/go-funk"
)

type Table struct {
	ID           string      `json:"id"`
	Meta         TableMeta   `json:"meta"`
	State        *TableState `json:"state"`
	UpdateAt     int64       `json:"update_at"`
	UpdateSerial int64       `json:"update_serial"`

	shoe *Shoe
}

type TableMeta struct {
	ContextID string `json:"context_id"` // hosting scope (guild / workspace)
	ChannelID string `json:"channel_id"` // channel the table lives in
	HostID    string `json:"host_id"`    // player who created the table
}

type TableState struct {
	Status           TableStateStatus    `json:"status"`
	StartAt          int64               `json:"start_at"`
	DealerHand       *Hand               `json:"dealer_hand"`
	PlayerStates     []*TablePlayerState `json:"player_states"` // seat order
	CurrentTurnIndex int                 `json:"current_turn_index"`
}

type TablePlayerState struct {
	PlayerID string `json:"player_id"`
	Hand     *Hand  `json:"hand"`
	Result   Result `json:"result"`
}

// Setters
func (t *Table) RefreshUpdateAt() {
	t.UpdateAt = time.Now().Unix()
	t.UpdateSerial++
}

func (t *Table) ConfigureWithSetting(setting TableSetting) {
	t.Meta = TableMeta{
		ContextID: setting.ContextID,
		ChannelID: setting.ChannelID,
		HostID:    setting.HostID,
	}

	state := TableState{
		Status:           TableStateStatus_TableLobby,
		StartAt:          UnsetValue,
		DealerHand:       NewHand(),
		PlayerStates:     make([]*TablePlayerState, 0),
		CurrentTurnIndex: UnsetValue,
	}
	t.State = &state

	// handle auto join players
	for _, playerID := range setting.JoinPlayers {
		if t.FindPlayerIdx(playerID) == UnsetValue {
			t.State.PlayerStates = append(t.State.PlayerStates, &TablePlayerState{
				PlayerID: playerID,
				Hand:     NewHand(),
				Result:   Result_None,
			})
		}
	}
}

func (t *Table) PlayerJoin(playerID string) error {
	if t.State.Status != TableStateStatus_TableLobby {
		return ErrTableInvalidState
	}

	if t.FindPlayerIdx(playerID) != UnsetValue {
		return ErrTableAlreadySeated
	}

	t.State.PlayerStates = append(t.State.PlayerStates, &TablePlayerState{
		PlayerID: playerID,
		Hand:     NewHand(),
		Result:   Result_None,
	})

	return nil
}

func (t *Table) PlayerLeave(playerID string) error {
	if t.State.Status != TableStateStatus_TableLobby {
		return ErrTableInvalidState
	}

	if t.FindPlayerIdx(playerID) == UnsetValue {
		return ErrTableNotSeated
	}

	t.State.PlayerStates = funk.Filter(t.State.PlayerStates, func(player *TablePlayerState) bool {
		return player.PlayerID != playerID
	}).([]*TablePlayerState)

	return nil
}

// StartGame deals two cards to the dealer and two to each seated player in
// seat order, then hands the turn to seat 0.
func (t *Table) StartGame() error {
	if t.State.Status != TableStateStatus_TableLobby {
		return ErrTableInvalidState
	}

	if len(t.State.PlayerStates) == 0 {
		return ErrTableNoSeatedPlayers
	}

	t.State.StartAt = time.Now().Unix()
	t.State.DealerHand.AddCard(t.shoe.Draw())
	t.State.DealerHand.AddCard(t.shoe.Draw())
	for _, player := range t.State.PlayerStates {
		player.Hand.AddCard(t.shoe.Draw())
		player.Hand.AddCard(t.shoe.Draw())
	}

	t.State.Status = TableStateStatus_TableActive
	t.State.CurrentTurnIndex = 0

	return nil
}

func (t *Table) Hit(playerID string) error {
	if err := t.validateTurnAction(playerID); err != nil {
		return err
	}

	player := t.State.PlayerStates[t.State.CurrentTurnIndex]
	player.Hand.AddCard(t.shoe.Draw())
	if player.Hand.IsBust() {
		t.advanceTurn()
	}

	return nil
}

func (t *Table) Stand(playerID string) error {
	if err := t.validateTurnAction(playerID); err != nil {
		return err
	}

	t.advanceTurn()

	return nil
}

func (t *Table) Double(playerID string) error {
	if err := t.validateTurnAction(playerID); err != nil {
		return err
	}

	// One final draw, then the turn ends no matter what.
	player := t.State.PlayerStates[t.State.CurrentTurnIndex]
	player.Hand.AddCard(t.shoe.Draw())
	t.advanceTurn()

	return nil
}

// advanceTurn moves the cursor forward, skipping seats that are already
// bust. Once the cursor runs past the last seat the dealer plays out and
// the table settles.
func (t *Table) advanceTurn() {
	if t.State.Status != TableStateStatus_TableActive {
		return
	}

	t.State.CurrentTurnIndex++
	for t.State.CurrentTurnIndex < len(t.State.PlayerStates) {
		player := t.State.PlayerStates[t.State.CurrentTurnIndex]
		if player.Hand.IsBust() {
			t.State.CurrentTurnIndex++
			continue
		}
		break
	}

	if t.State.CurrentTurnIndex >= len(t.State.PlayerStates) {
		t.dealerPlay()
		t.settleAll()
	}
}

func (t *Table) dealerPlay() {
	dealerAutoPlay(t.State.DealerHand, t.shoe)
}

// settleAll computes each seat's result against the single shared dealer
// hand and transitions the table to settled.
func (t *Table) settleAll() {
	for _, player := range t.State.PlayerStates {
		player.Result = settleAgainstDealer(player.Hand, t.State.DealerHand)
	}
	t.State.Status = TableStateStatus_TableSettled
	t.State.CurrentTurnIndex = UnsetValue
}

func (t *Table) validateTurnAction(playerID string) error {
	if t.State.Status != TableStateStatus_TableActive {
		return ErrTableInvalidState
	}

	if t.CurrentActorID() != playerID {
		return ErrTableInvalidActor
	}

	return nil
}

// Table Getters
func (t Table) GetJSON() (string, error) {
	encoded, err := json.Marshal(t)
	if err != nil {
		return "", err
	}
	return string(encoded), nil
}

func (t Table) IsFinished() bool {
	return t.State.Status == TableStateStatus_TableSettled || t.State.Status == TableStateStatus_TableClosed
}

// CurrentActorID returns the seated player whose turn it is, or an empty
// string when the table is not active.
func (t Table) CurrentActorID() string {
	if t.State.Status != TableStateStatus_TableActive {
		return ""
	}

	if t.State.CurrentTurnIndex < 0 || t.State.CurrentTurnIndex >= len(t.State.PlayerStates) {
		return ""
	}

	return t.State.PlayerStates[t.State.CurrentTurnIndex].PlayerID
}

func (t Table) SeatedPlayerIDs() []string {
	return funk.Map(t.State.PlayerStates, func(player *TablePlayerState) string {
		return player.PlayerID
	}).([]string)
}

func (t Table) FindPlayerIdx(playerID string) int {
	for idx, player := range t.State.PlayerStates {
		if player.PlayerID == playerID {
			return idx
		}
	}
	return UnsetValue
}
