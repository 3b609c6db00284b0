package blackjacktable

type RequestAction string

const (
	// Solo
	RequestAction_SoloStart RequestAction = "SoloStart"

	// Table lifecycle
	RequestAction_CreateTable RequestAction = "CreateTable"
	RequestAction_PlayerJoin  RequestAction = "PlayerJoin"
	RequestAction_PlayerLeave RequestAction = "PlayerLeave"
	RequestAction_PlayerReady RequestAction = "PlayerReady"
	RequestAction_StartGame   RequestAction = "StartGame"
	RequestAction_CancelTable RequestAction = "CancelTable"
	RequestAction_CloseGame   RequestAction = "CloseGame"

	// Play
	RequestAction_PlayerHit    RequestAction = "PlayerHit"
	RequestAction_PlayerStand  RequestAction = "PlayerStand"
	RequestAction_PlayerDouble RequestAction = "PlayerDouble"

	// Internal transitions
	RequestAction_AutoStand  RequestAction = "AutoStand"
	RequestAction_AutoStart  RequestAction = "AutoStart"
	RequestAction_Settlement RequestAction = "Settlement"
)
