package blackjacktable

import (
	"time"

	"github.com/weedbox/syncsaga"
)

// startGame deals the table and arms the first action clock. Caller must
// hold the engine lock.
func (te *tableEngine) startGame(action RequestAction, actorID string) error {
	if err := te.table.StartGame(); err != nil {
		te.emitErrorEvent(action, actorID, err)
		return err
	}

	te.rg.Stop()

	te.emitEvent(action, actorID)
	te.resetActionClock()
	return nil
}

// afterTurnAction runs the shared post-action pipeline: emit the update,
// announce settlement if the action closed the table, and re-arm the clock
// for the next actor.
func (te *tableEngine) afterTurnAction(action RequestAction, playerID string) {
	te.emitEvent(action, playerID)

	if te.table.State.Status == TableStateStatus_TableSettled {
		te.emitEvent(RequestAction_Settlement, "")
		return
	}

	te.resetActionClock()
}

func (te *tableEngine) close(action RequestAction, actorID string) {
	te.rg.Stop()

	if te.table.IsFinished() {
		return
	}

	te.table.State.Status = TableStateStatus_TableClosed
	te.table.State.CurrentTurnIndex = UnsetValue

	te.emitEvent(action, actorID)
}

/*
resetLobbyReadyGroup rebuilds the lobby ready group after any seat
change. When every seated player has signaled ready the table deals
itself without waiting for the host; stragglers are auto-readied once
the countdown expires. Disabled unless AutoStartOnReady is set.
*/
func (te *tableEngine) resetLobbyReadyGroup() {
	if !te.options.AutoStartOnReady {
		return
	}

	te.rg.Stop()

	if te.options.LobbyCountdown > 0 {
		te.rg.SetTimeoutInterval(te.options.LobbyCountdown)
		te.rg.OnTimeout(func(rg *syncsaga.ReadyGroup) {
			// Auto ready by default
			states := rg.GetParticipantStates()
			for playerIdx, isReady := range states {
				if !isReady {
					rg.Ready(playerIdx)
				}
			}
		})
	}

	te.rg.OnCompleted(func(rg *syncsaga.ReadyGroup) {
		// Completion may fire from the ready call itself, so take the
		// lock on a fresh goroutine.
		go func() {
			te.lock.Lock()
			defer te.lock.Unlock()

			if te.table.State.Status != TableStateStatus_TableLobby {
				return
			}

			_ = te.startGame(RequestAction_AutoStart, te.table.Meta.HostID)
		}()
	})

	te.rg.ResetParticipants()
	for playerIdx := range te.table.State.PlayerStates {
		te.rg.Add(int64(playerIdx), false)
	}

	if len(te.table.State.PlayerStates) > 0 {
		te.rg.Start()
	}
}

/*
resetActionClock arms the turn timer for the current actor. A timer that
fires after the table has moved on is detected by comparing the update
serial it captured. Disabled unless ActionTime is set.
*/
func (te *tableEngine) resetActionClock() {
	if te.options.ActionTime <= 0 {
		return
	}

	if te.table.State.Status != TableStateStatus_TableActive {
		return
	}

	actorID := te.table.CurrentActorID()
	serial := te.table.UpdateSerial

	te.tb.NewTask(time.Duration(te.options.ActionTime)*time.Second, func(isCancelled bool) {
		if isCancelled {
			return
		}

		te.lock.Lock()
		defer te.lock.Unlock()

		// A later action already consumed this turn.
		if te.table.UpdateSerial != serial {
			return
		}

		if te.table.State.Status != TableStateStatus_TableActive || te.table.CurrentActorID() != actorID {
			return
		}

		if err := te.table.Stand(actorID); err != nil {
			te.emitErrorEvent(RequestAction_AutoStand, actorID, err)
			return
		}

		te.afterTurnAction(RequestAction_AutoStand, actorID)
	})
}
