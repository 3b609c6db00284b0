package blackjacktable

import (
	"errors"
	"sync"

	"github.com/google/uuid"
)

var (
	ErrSoloInvalidCreateSetting = errors.New("solo: invalid create game setting")
	ErrSoloInvalidActor         = errors.New("solo: game belongs to another player")
	ErrSoloGameFinished         = errors.New("solo: game already finished")
)

type SoloEngineOpt func(*soloEngine)

type SoloEngine interface {
	// Events
	OnGameUpdated(fn func(*SoloGame))             // state update listener
	OnGameErrorUpdated(fn func(*SoloGame, error)) // rejected action listener

	// Getters
	GetGame() *SoloGame
	Snapshot() *SoloSnapshot

	// Actions
	CreateGame(setting SoloSetting) (*SoloGame, error) // deals the opening hands
	Hit(playerID string) error
	Stand(playerID string) error
	Double(playerID string) error
	Close() error
}

type soloEngine struct {
	lock               sync.Mutex
	options            *EngineOptions
	game               *SoloGame
	shoe               *Shoe
	onGameUpdated      func(*SoloGame)
	onGameErrorUpdated func(*SoloGame, error)
}

func NewSoloEngine(options *EngineOptions, opts ...SoloEngineOpt) SoloEngine {
	callbacks := NewCallbacks()
	se := &soloEngine{
		options:            options,
		onGameUpdated:      callbacks.OnGameUpdated,
		onGameErrorUpdated: callbacks.OnGameErrorUpdated,
	}

	for _, opt := range opts {
		opt(se)
	}

	return se
}

// WithShoe injects a prepared shoe, overriding the options shoe factory.
func WithShoe(shoe *Shoe) SoloEngineOpt {
	return func(se *soloEngine) {
		se.shoe = shoe
	}
}

func (se *soloEngine) OnGameUpdated(fn func(*SoloGame)) {
	se.onGameUpdated = fn
}

func (se *soloEngine) OnGameErrorUpdated(fn func(*SoloGame, error)) {
	se.onGameErrorUpdated = fn
}

func (se *soloEngine) GetGame() *SoloGame {
	return se.game
}

func (se *soloEngine) Snapshot() *SoloSnapshot {
	se.lock.Lock()
	defer se.lock.Unlock()

	return newSoloSnapshot(se.game)
}

func (se *soloEngine) CreateGame(setting SoloSetting) (*SoloGame, error) {
	se.lock.Lock()
	defer se.lock.Unlock()

	if setting.PlayerID == "" {
		return nil, ErrSoloInvalidCreateSetting
	}

	gameID := setting.GameID
	if gameID == "" {
		gameID = uuid.New().String()
	}

	if se.shoe == nil {
		se.shoe = se.options.newShoe()
	}

	se.game = &SoloGame{
		ID:         gameID,
		ContextID:  setting.ContextID,
		PlayerID:   setting.PlayerID,
		PlayerHand: NewHand(),
		DealerHand: NewHand(),
		Finished:   false,
		Result:     Result_None,
		shoe:       se.shoe,
	}
	se.game.deal()

	se.emitEvent(RequestAction_SoloStart, setting.PlayerID)

	return se.game, nil
}

func (se *soloEngine) Hit(playerID string) error {
	se.lock.Lock()
	defer se.lock.Unlock()

	if err := se.validatePlayerAction(playerID); err != nil {
		se.emitErrorEvent(RequestAction_PlayerHit, playerID, err)
		return err
	}

	se.game.hit()
	if se.game.PlayerHand.IsBust() {
		// No further player action is possible once bust.
		se.game.dealerPlay()
		se.game.settle()
	}

	se.emitEvent(RequestAction_PlayerHit, playerID)
	return nil
}

func (se *soloEngine) Stand(playerID string) error {
	se.lock.Lock()
	defer se.lock.Unlock()

	if err := se.validatePlayerAction(playerID); err != nil {
		se.emitErrorEvent(RequestAction_PlayerStand, playerID, err)
		return err
	}

	se.game.dealerPlay()
	se.game.settle()

	se.emitEvent(RequestAction_PlayerStand, playerID)
	return nil
}

func (se *soloEngine) Double(playerID string) error {
	se.lock.Lock()
	defer se.lock.Unlock()

	if err := se.validatePlayerAction(playerID); err != nil {
		se.emitErrorEvent(RequestAction_PlayerDouble, playerID, err)
		return err
	}

	// One final draw, then the game settles regardless of the outcome.
	se.game.hit()
	if !se.game.PlayerHand.IsBust() {
		se.game.dealerPlay()
	}
	se.game.settle()

	se.emitEvent(RequestAction_PlayerDouble, playerID)
	return nil
}

func (se *soloEngine) Close() error {
	se.lock.Lock()
	defer se.lock.Unlock()

	if se.game == nil || se.game.Finished {
		return nil
	}

	se.game.Finished = true

	se.emitEvent(RequestAction_CloseGame, "")
	return nil
}

func (se *soloEngine) validatePlayerAction(playerID string) error {
	if se.game == nil || se.game.Finished {
		return ErrSoloGameFinished
	}

	if se.game.PlayerID != playerID {
		return ErrSoloInvalidActor
	}

	return nil
}
