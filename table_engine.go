package blackjacktable

import (
	"errors"
	"sync"

	"github.com/google/uuid"
	"github.com/weedbox/syncsaga"
	"github.com/weedbox/timebank"
)

var (
	ErrTableInvalidCreateSetting = errors.New("table: invalid create table setting")
	ErrTableInvalidState         = errors.New("table: action not allowed in current state")
	ErrTableInvalidActor         = errors.New("table: not this player's turn")
	ErrTableAlreadySeated        = errors.New("table: player already seated")
	ErrTableNotSeated            = errors.New("table: player not seated")
	ErrTableHostOnly             = errors.New("table: host only action")
	ErrTableNoSeatedPlayers      = errors.New("table: no seated players")
)

type TableEngineOpt func(*tableEngine)

type TableEngine interface {
	// Events
	OnTableUpdated(fn func(*Table))             // state update listener
	OnTableErrorUpdated(fn func(*Table, error)) // rejected action listener

	// Getters
	GetTable() *Table
	Snapshot() *TableSnapshot

	// Table lifecycle
	CreateTable(setting TableSetting) (*Table, error)
	StartTableGame(actorID string) error // host only
	CancelTable(actorID string) error    // host only
	CloseTable() error

	// Player seat actions
	PlayerJoin(playerID string) error
	PlayerLeave(playerID string) error
	PlayerReady(playerID string) error

	// Player game actions
	PlayerHit(playerID string) error
	PlayerStand(playerID string) error
	PlayerDouble(playerID string) error
}

type tableEngine struct {
	lock                sync.Mutex
	options             *EngineOptions
	table               *Table
	shoeOverride        *Shoe
	rg                  *syncsaga.ReadyGroup
	tb                  *timebank.TimeBank
	onTableUpdated      func(*Table)
	onTableErrorUpdated func(*Table, error)
}

func NewTableEngine(options *EngineOptions, opts ...TableEngineOpt) TableEngine {
	callbacks := NewCallbacks()
	te := &tableEngine{
		options:             options,
		rg:                  syncsaga.NewReadyGroup(),
		tb:                  timebank.NewTimeBank(),
		onTableUpdated:      callbacks.OnTableUpdated,
		onTableErrorUpdated: callbacks.OnTableErrorUpdated,
	}

	for _, opt := range opts {
		opt(te)
	}

	return te
}

// WithTableShoe injects a prepared shoe, overriding the options shoe factory.
func WithTableShoe(shoe *Shoe) TableEngineOpt {
	return func(te *tableEngine) {
		te.shoeOverride = shoe
	}
}

func (te *tableEngine) OnTableUpdated(fn func(*Table)) {
	te.onTableUpdated = fn
}

func (te *tableEngine) OnTableErrorUpdated(fn func(*Table, error)) {
	te.onTableErrorUpdated = fn
}

func (te *tableEngine) GetTable() *Table {
	return te.table
}

func (te *tableEngine) Snapshot() *TableSnapshot {
	te.lock.Lock()
	defer te.lock.Unlock()

	return newTableSnapshot(te.table)
}

func (te *tableEngine) CreateTable(setting TableSetting) (*Table, error) {
	te.lock.Lock()
	defer te.lock.Unlock()

	if setting.HostID == "" {
		return nil, ErrTableInvalidCreateSetting
	}

	tableID := setting.TableID
	if tableID == "" {
		tableID = uuid.New().String()
	}

	table := &Table{
		ID:   tableID,
		shoe: te.shoeOverride,
	}
	if table.shoe == nil {
		table.shoe = te.options.newShoe()
	}
	table.ConfigureWithSetting(setting)
	te.table = table

	te.resetLobbyReadyGroup()

	te.emitEvent(RequestAction_CreateTable, setting.HostID)

	return te.table, nil
}

func (te *tableEngine) StartTableGame(actorID string) error {
	te.lock.Lock()
	defer te.lock.Unlock()

	if actorID != te.table.Meta.HostID {
		te.emitErrorEvent(RequestAction_StartGame, actorID, ErrTableHostOnly)
		return ErrTableHostOnly
	}

	return te.startGame(RequestAction_StartGame, actorID)
}

func (te *tableEngine) CancelTable(actorID string) error {
	te.lock.Lock()
	defer te.lock.Unlock()

	if actorID != te.table.Meta.HostID {
		te.emitErrorEvent(RequestAction_CancelTable, actorID, ErrTableHostOnly)
		return ErrTableHostOnly
	}

	te.close(RequestAction_CancelTable, actorID)
	return nil
}

func (te *tableEngine) CloseTable() error {
	te.lock.Lock()
	defer te.lock.Unlock()

	te.close(RequestAction_CloseGame, "")
	return nil
}

func (te *tableEngine) PlayerJoin(playerID string) error {
	te.lock.Lock()
	defer te.lock.Unlock()

	if err := te.table.PlayerJoin(playerID); err != nil {
		te.emitErrorEvent(RequestAction_PlayerJoin, playerID, err)
		return err
	}

	te.resetLobbyReadyGroup()

	te.emitEvent(RequestAction_PlayerJoin, playerID)
	return nil
}

func (te *tableEngine) PlayerLeave(playerID string) error {
	te.lock.Lock()
	defer te.lock.Unlock()

	if playerID == te.table.Meta.HostID {
		te.emitErrorEvent(RequestAction_PlayerLeave, playerID, ErrTableHostOnly)
		return ErrTableHostOnly
	}

	if err := te.table.PlayerLeave(playerID); err != nil {
		te.emitErrorEvent(RequestAction_PlayerLeave, playerID, err)
		return err
	}

	te.resetLobbyReadyGroup()

	te.emitEvent(RequestAction_PlayerLeave, playerID)
	return nil
}

func (te *tableEngine) PlayerReady(playerID string) error {
	te.lock.Lock()
	defer te.lock.Unlock()

	if !te.options.AutoStartOnReady || te.table.State.Status != TableStateStatus_TableLobby {
		te.emitErrorEvent(RequestAction_PlayerReady, playerID, ErrTableInvalidState)
		return ErrTableInvalidState
	}

	playerIdx := te.table.FindPlayerIdx(playerID)
	if playerIdx == UnsetValue {
		te.emitErrorEvent(RequestAction_PlayerReady, playerID, ErrTableNotSeated)
		return ErrTableNotSeated
	}

	te.rg.Ready(int64(playerIdx))

	te.emitEvent(RequestAction_PlayerReady, playerID)
	return nil
}

func (te *tableEngine) PlayerHit(playerID string) error {
	te.lock.Lock()
	defer te.lock.Unlock()

	if err := te.table.Hit(playerID); err != nil {
		te.emitErrorEvent(RequestAction_PlayerHit, playerID, err)
		return err
	}

	te.afterTurnAction(RequestAction_PlayerHit, playerID)
	return nil
}

func (te *tableEngine) PlayerStand(playerID string) error {
	te.lock.Lock()
	defer te.lock.Unlock()

	if err := te.table.Stand(playerID); err != nil {
		te.emitErrorEvent(RequestAction_PlayerStand, playerID, err)
		return err
	}

	te.afterTurnAction(RequestAction_PlayerStand, playerID)
	return nil
}

func (te *tableEngine) PlayerDouble(playerID string) error {
	te.lock.Lock()
	defer te.lock.Unlock()

	if err := te.table.Double(playerID); err != nil {
		te.emitErrorEvent(RequestAction_PlayerDouble, playerID, err)
		return err
	}

	te.afterTurnAction(RequestAction_PlayerDouble, playerID)
	return nil
}
