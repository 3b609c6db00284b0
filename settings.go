package blackjacktable

type TableSetting struct {
	TableID     string   `json:"table_id"` // generated when empty
	ContextID   string   `json:"context_id"`
	ChannelID   string   `json:"channel_id"`
	HostID      string   `json:"host_id"`
	JoinPlayers []string `json:"join_players"` // pre-seated players, host included if it plays
}

type SoloSetting struct {
	GameID    string `json:"game_id"` // generated when empty
	ContextID string `json:"context_id"`
	PlayerID  string `json:"player_id"`
}
