package blackjacktable

type Callbacks struct {
	OnTableUpdated      func(t *Table)
	OnTableErrorUpdated func(t *Table, err error)
	OnGameUpdated       func(g *SoloGame)
	OnGameErrorUpdated  func(g *SoloGame, err error)
}

func NewCallbacks() *Callbacks {
	return &Callbacks{
		OnTableUpdated:      func(*Table) {},
		OnTableErrorUpdated: func(*Table, error) {},
		OnGameUpdated:       func(*SoloGame) {},
		OnGameErrorUpdated:  func(*SoloGame, error) {},
	}
}

type EngineOptions struct {
	ActionTime       int  // seconds a table actor may think before being auto-stood, 0 = no clock
	AutoStartOnReady bool // deal the table once every seated player is ready
	LobbyCountdown   int  // seconds before lobby stragglers are auto-readied, 0 = wait forever
	IdleTimeout      int  // seconds without actions before the registry evicts a session, 0 = never

	// ShoeFactory overrides how sessions build their shoe. Tests stack
	// the shoe through this hook.
	ShoeFactory func() *Shoe
}

func NewEngineOptions() *EngineOptions {
	return &EngineOptions{
		ActionTime:       0,
		AutoStartOnReady: false,
		LobbyCountdown:   0,
		IdleTimeout:      0,
	}
}

func (o *EngineOptions) newShoe() *Shoe {
	if o.ShoeFactory != nil {
		return o.ShoeFactory()
	}
	return NewShoe()
}
