package testcases

import (
	"fmt"
	"time"

	"github.com/cardhive/blackjacktable"
)

func DebugPrintTable(snapshot *blackjacktable.TableSnapshot) {
	timeString := func(timestamp int64) string {
		return time.Unix(timestamp, 0).Format("2006-01-02 15:04:05")
	}

	fmt.Printf("---------- [%s] ----------\n", snapshot.Status)
	fmt.Println("[Time] ", timeString(time.Now().Unix()))
	fmt.Println("[Table ID] ", snapshot.TableID)
	fmt.Println("[Table Host] ", snapshot.HostID)
	fmt.Println("[Table Players]")
	for _, player := range snapshot.Players {
		marker := ""
		if player.PlayerID == snapshot.CurrentActorID {
			marker = " <- acting"
		}
		fmt.Printf("player: %s, total: %d, result: %s, cards: %v%s\n",
			player.PlayerID, player.Hand.Total, player.Result, player.Hand.Cards, marker)
	}
	fmt.Printf("[Table Dealer] total: %d, cards: %v\n", snapshot.Dealer.Total, snapshot.Dealer.Cards)
	fmt.Printf("[Table Serial] #%d\n", snapshot.UpdateSerial)
}
