package blackjacktable

import (
	"github.com/sirupsen/logrus"
)

func (te *tableEngine) emitEvent(action RequestAction, playerID string) {
	// refresh table
	te.table.RefreshUpdateAt()

	logrus.WithFields(logrus.Fields{
		"table_id":  te.table.ID,
		"serial":    te.table.UpdateSerial,
		"status":    te.table.State.Status,
		"player_id": playerID,
	}).Debugf("table event: %s", action)

	te.onTableUpdated(te.table)
}

func (te *tableEngine) emitErrorEvent(action RequestAction, playerID string, err error) {
	logrus.WithFields(logrus.Fields{
		"table_id":  te.table.ID,
		"serial":    te.table.UpdateSerial,
		"status":    te.table.State.Status,
		"player_id": playerID,
	}).Warnf("table event rejected: %s, error: %v", action, err)

	te.onTableErrorUpdated(te.table, err)
}

func (se *soloEngine) emitEvent(action RequestAction, playerID string) {
	se.game.RefreshUpdateAt()

	logrus.WithFields(logrus.Fields{
		"game_id":   se.game.ID,
		"serial":    se.game.UpdateSerial,
		"finished":  se.game.Finished,
		"player_id": playerID,
	}).Debugf("solo event: %s", action)

	se.onGameUpdated(se.game)
}

func (se *soloEngine) emitErrorEvent(action RequestAction, playerID string, err error) {
	logrus.WithFields(logrus.Fields{
		"game_id":   se.game.ID,
		"serial":    se.game.UpdateSerial,
		"finished":  se.game.Finished,
		"player_id": playerID,
	}).Warnf("solo event rejected: %s, error: %v", action, err)

	se.onGameErrorUpdated(se.game, err)
}
