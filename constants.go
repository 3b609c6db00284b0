package blackjacktable

const (
	// General
	UnsetValue = -1

	// Hand thresholds
	BlackjackTotal  = 21
	DealerStandsAt  = 17
	InitialHandSize = 2

	// Shoe
	DecksPerShoe = 2
	CardsPerDeck = 52
)

type TableStateStatus string

const (
	// TableStateStatus: Lifecycle
	TableStateStatus_TableLobby   TableStateStatus = "table_lobby"   // seats open, not dealt yet
	TableStateStatus_TableActive  TableStateStatus = "table_active"  // players acting in turn order
	TableStateStatus_TableSettled TableStateStatus = "table_settled" // dealer played, results computed
	TableStateStatus_TableClosed  TableStateStatus = "table_closed"  // canceled or evicted before settlement
)

type Result string

const (
	Result_None Result = "none"
	Result_Win  Result = "win"
	Result_Lose Result = "lose"
	Result_Push Result = "push"
)
