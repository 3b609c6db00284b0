package blackjacktable

import (
	"errors"
	"sync"
	"time"

	"github.com/weedbox/timebank"
)

var (
	ErrManagerTableNotFound = errors.New("manager: table not found")
	ErrManagerGameNotFound  = errors.New("manager: game not found")
)

// SessionKey scopes a session to its hosting context plus the owner that
// identifies it inside that context: the participant for solo games, the
// channel for tables.
type SessionKey struct {
	ContextID string
	OwnerID   string
}

type Manager interface {
	Reset()

	// Solo sessions (keyed by context + player)
	StartSolo(contextID, playerID string) (*SoloSnapshot, error)
	GetSolo(contextID, playerID string) (*SoloSnapshot, error)
	SoloHit(contextID, playerID string) (*SoloSnapshot, error)
	SoloStand(contextID, playerID string) (*SoloSnapshot, error)
	SoloDouble(contextID, playerID string) (*SoloSnapshot, error)
	RemoveSolo(contextID, playerID string)

	// Table sessions (keyed by context + channel)
	CreateTable(contextID, channelID, hostID string) (*TableSnapshot, error)
	GetTable(contextID, channelID string) (*TableSnapshot, error)
	TableJoin(contextID, channelID, playerID string) (*TableSnapshot, error)
	TableLeave(contextID, channelID, playerID string) (*TableSnapshot, error)
	TableReady(contextID, channelID, playerID string) (*TableSnapshot, error)
	TableStart(contextID, channelID, actorID string) (*TableSnapshot, error)
	TableCancel(contextID, channelID, actorID string) (*TableSnapshot, error)
	TableHit(contextID, channelID, playerID string) (*TableSnapshot, error)
	TableStand(contextID, channelID, playerID string) (*TableSnapshot, error)
	TableDouble(contextID, channelID, playerID string) (*TableSnapshot, error)
	RemoveTable(contextID, channelID string)
}

// soloSession and tableSession pair a registry entry with its own time bank
// so the idle timer of one session never disturbs another's.
type soloSession struct {
	engine SoloEngine
	tb     *timebank.TimeBank
}

type tableSession struct {
	engine TableEngine
	tb     *timebank.TimeBank
}

type manager struct {
	options      *EngineOptions
	callbacks    *Callbacks
	createLock   sync.Mutex
	soloEngines  sync.Map
	tableEngines sync.Map
}

func NewManager(options *EngineOptions, callbacks *Callbacks) Manager {
	if options == nil {
		options = NewEngineOptions()
	}
	if callbacks == nil {
		callbacks = NewCallbacks()
	}

	return &manager{
		options:   options,
		callbacks: callbacks,
	}
}

func (m *manager) Reset() {
	m.soloEngines.Range(func(key, value interface{}) bool {
		value.(*soloSession).tb.Cancel()
		m.soloEngines.Delete(key)
		return true
	})
	m.tableEngines.Range(func(key, value interface{}) bool {
		value.(*tableSession).tb.Cancel()
		m.tableEngines.Delete(key)
		return true
	})
}

// Solo sessions

// StartSolo reuses an unfinished game for the same player in the same
// context; otherwise it deals a fresh one, replacing any finished entry.
func (m *manager) StartSolo(contextID, playerID string) (*SoloSnapshot, error) {
	m.createLock.Lock()
	defer m.createLock.Unlock()

	key := SessionKey{ContextID: contextID, OwnerID: playerID}
	if existing, ok := m.soloEngines.Load(key); ok {
		session := existing.(*soloSession)
		if snapshot := session.engine.Snapshot(); !snapshot.Finished {
			return snapshot, nil
		}
		session.tb.Cancel()
	}

	engine := NewSoloEngine(m.options)
	engine.OnGameUpdated(m.callbacks.OnGameUpdated)
	engine.OnGameErrorUpdated(m.callbacks.OnGameErrorUpdated)

	if _, err := engine.CreateGame(SoloSetting{ContextID: contextID, PlayerID: playerID}); err != nil {
		return nil, err
	}

	session := &soloSession{engine: engine, tb: timebank.NewTimeBank()}
	m.soloEngines.Store(key, session)
	m.scheduleSoloEviction(key, session, engine.Snapshot().UpdateSerial)

	return engine.Snapshot(), nil
}

func (m *manager) GetSolo(contextID, playerID string) (*SoloSnapshot, error) {
	engine, err := m.soloEngine(contextID, playerID)
	if err != nil {
		return nil, err
	}
	return engine.Snapshot(), nil
}

func (m *manager) SoloHit(contextID, playerID string) (*SoloSnapshot, error) {
	engine, err := m.soloEngine(contextID, playerID)
	if err != nil {
		return nil, err
	}
	err = engine.Hit(playerID)
	return engine.Snapshot(), err
}

func (m *manager) SoloStand(contextID, playerID string) (*SoloSnapshot, error) {
	engine, err := m.soloEngine(contextID, playerID)
	if err != nil {
		return nil, err
	}
	err = engine.Stand(playerID)
	return engine.Snapshot(), err
}

func (m *manager) SoloDouble(contextID, playerID string) (*SoloSnapshot, error) {
	engine, err := m.soloEngine(contextID, playerID)
	if err != nil {
		return nil, err
	}
	err = engine.Double(playerID)
	return engine.Snapshot(), err
}

func (m *manager) RemoveSolo(contextID, playerID string) {
	key := SessionKey{ContextID: contextID, OwnerID: playerID}
	if existing, ok := m.soloEngines.Load(key); ok {
		existing.(*soloSession).tb.Cancel()
	}
	m.soloEngines.Delete(key)
}

// Table sessions

// CreateTable reuses an unfinished table in the same scope; otherwise it
// opens a fresh lobby, replacing any finished entry.
func (m *manager) CreateTable(contextID, channelID, hostID string) (*TableSnapshot, error) {
	m.createLock.Lock()
	defer m.createLock.Unlock()

	key := SessionKey{ContextID: contextID, OwnerID: channelID}
	if existing, ok := m.tableEngines.Load(key); ok {
		session := existing.(*tableSession)
		if snapshot := session.engine.Snapshot(); !snapshot.Finished {
			return snapshot, nil
		}
		session.tb.Cancel()
	}

	engine := NewTableEngine(m.options)
	engine.OnTableUpdated(m.callbacks.OnTableUpdated)
	engine.OnTableErrorUpdated(m.callbacks.OnTableErrorUpdated)

	setting := TableSetting{
		ContextID: contextID,
		ChannelID: channelID,
		HostID:    hostID,
	}
	if _, err := engine.CreateTable(setting); err != nil {
		return nil, err
	}

	session := &tableSession{engine: engine, tb: timebank.NewTimeBank()}
	m.tableEngines.Store(key, session)
	m.scheduleTableEviction(key, session, engine.Snapshot().UpdateSerial)

	return engine.Snapshot(), nil
}

func (m *manager) GetTable(contextID, channelID string) (*TableSnapshot, error) {
	engine, err := m.tableEngine(contextID, channelID)
	if err != nil {
		return nil, err
	}
	return engine.Snapshot(), nil
}

func (m *manager) TableJoin(contextID, channelID, playerID string) (*TableSnapshot, error) {
	engine, err := m.tableEngine(contextID, channelID)
	if err != nil {
		return nil, err
	}
	err = engine.PlayerJoin(playerID)
	return engine.Snapshot(), err
}

func (m *manager) TableLeave(contextID, channelID, playerID string) (*TableSnapshot, error) {
	engine, err := m.tableEngine(contextID, channelID)
	if err != nil {
		return nil, err
	}
	err = engine.PlayerLeave(playerID)
	return engine.Snapshot(), err
}

func (m *manager) TableReady(contextID, channelID, playerID string) (*TableSnapshot, error) {
	engine, err := m.tableEngine(contextID, channelID)
	if err != nil {
		return nil, err
	}
	err = engine.PlayerReady(playerID)
	return engine.Snapshot(), err
}

func (m *manager) TableStart(contextID, channelID, actorID string) (*TableSnapshot, error) {
	engine, err := m.tableEngine(contextID, channelID)
	if err != nil {
		return nil, err
	}
	err = engine.StartTableGame(actorID)
	return engine.Snapshot(), err
}

// TableCancel marks the table finished and drops it from the registry, so
// the next create in the same scope opens a fresh lobby.
func (m *manager) TableCancel(contextID, channelID, actorID string) (*TableSnapshot, error) {
	engine, err := m.tableEngine(contextID, channelID)
	if err != nil {
		return nil, err
	}

	if err := engine.CancelTable(actorID); err != nil {
		return engine.Snapshot(), err
	}

	m.RemoveTable(contextID, channelID)
	return engine.Snapshot(), nil
}

func (m *manager) TableHit(contextID, channelID, playerID string) (*TableSnapshot, error) {
	engine, err := m.tableEngine(contextID, channelID)
	if err != nil {
		return nil, err
	}
	err = engine.PlayerHit(playerID)
	return engine.Snapshot(), err
}

func (m *manager) TableStand(contextID, channelID, playerID string) (*TableSnapshot, error) {
	engine, err := m.tableEngine(contextID, channelID)
	if err != nil {
		return nil, err
	}
	err = engine.PlayerStand(playerID)
	return engine.Snapshot(), err
}

func (m *manager) TableDouble(contextID, channelID, playerID string) (*TableSnapshot, error) {
	engine, err := m.tableEngine(contextID, channelID)
	if err != nil {
		return nil, err
	}
	err = engine.PlayerDouble(playerID)
	return engine.Snapshot(), err
}

func (m *manager) RemoveTable(contextID, channelID string) {
	key := SessionKey{ContextID: contextID, OwnerID: channelID}
	if existing, ok := m.tableEngines.Load(key); ok {
		existing.(*tableSession).tb.Cancel()
	}
	m.tableEngines.Delete(key)
}

func (m *manager) soloEngine(contextID, playerID string) (SoloEngine, error) {
	existing, exist := m.soloEngines.Load(SessionKey{ContextID: contextID, OwnerID: playerID})
	if !exist {
		return nil, ErrManagerGameNotFound
	}
	return existing.(*soloSession).engine, nil
}

func (m *manager) tableEngine(contextID, channelID string) (TableEngine, error) {
	existing, exist := m.tableEngines.Load(SessionKey{ContextID: contextID, OwnerID: channelID})
	if !exist {
		return nil, ErrManagerTableNotFound
	}
	return existing.(*tableSession).engine, nil
}

/*
	Idle eviction. A session that sees no actions for IdleTimeout seconds is
	closed and dropped from the registry. Each session carries its own time
	bank, so arming or cancelling one session's timer never touches another's.
	The timer compares the update serial against the one captured when it was
	armed: an unchanged serial means nothing happened for the whole window,
	otherwise the timer re-arms for a fresh window. All state is read through
	Snapshot(), which takes the engine lock.
*/

func (m *manager) scheduleTableEviction(key SessionKey, session *tableSession, serial int64) {
	if m.options.IdleTimeout <= 0 {
		return
	}

	var arm func(serial int64)
	arm = func(serial int64) {
		session.tb.NewTask(time.Duration(m.options.IdleTimeout)*time.Second, func(isCancelled bool) {
			if isCancelled {
				return
			}

			current, ok := m.tableEngines.Load(key)
			if !ok || current.(*tableSession) != session {
				return
			}

			snapshot := session.engine.Snapshot()
			if snapshot.Finished {
				m.tableEngines.Delete(key)
				return
			}

			if snapshot.UpdateSerial != serial {
				arm(snapshot.UpdateSerial)
				return
			}

			_ = session.engine.CloseTable()
			m.tableEngines.Delete(key)
		})
	}
	arm(serial)
}

func (m *manager) scheduleSoloEviction(key SessionKey, session *soloSession, serial int64) {
	if m.options.IdleTimeout <= 0 {
		return
	}

	var arm func(serial int64)
	arm = func(serial int64) {
		session.tb.NewTask(time.Duration(m.options.IdleTimeout)*time.Second, func(isCancelled bool) {
			if isCancelled {
				return
			}

			current, ok := m.soloEngines.Load(key)
			if !ok || current.(*soloSession) != session {
				return
			}

			snapshot := session.engine.Snapshot()
			if snapshot.Finished {
				m.soloEngines.Delete(key)
				return
			}

			if snapshot.UpdateSerial != serial {
				arm(snapshot.UpdateSerial)
				return
			}

			_ = session.engine.Close()
			m.soloEngines.Delete(key)
		})
	}
	arm(serial)
}
