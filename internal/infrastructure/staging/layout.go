package staging

import (
	"fmt"
	"path"
)

// Staged file names, relative to the staging root.
const (
	FileBootstrapDynamic = "bootstrap-dynamic.json"
	FileGame             = "game.json"
	FileBootstrapStatic  = "bootstrap-static.json"
	FileEventStatus      = "event-status.json"
	FileDetails          = "details.json"
	FileElementStatus    = "element-status.json"
	FileTransactions     = "transactions.json"
	FileChoices          = "choices.json"

	FileLiveCSV  = "gw_live.csv"
	FileEventCSV = "gw_event.csv"

	liveDir = "gw"
)

// Side files written to the state directory after scope resolution.
const (
	SideFileTeams = "data_teams"
	SideFileGW    = "data_gw"
)

func EntryDir(entryID int64) string {
	return fmt.Sprintf("team_%d", entryID)
}

func EntryPublic(entryID int64) string {
	return path.Join(EntryDir(entryID), "public.json")
}

func EntryHistory(entryID int64) string {
	return path.Join(EntryDir(entryID), "history.json")
}

func EntryHistoryCSV(entryID int64) string {
	return path.Join(EntryDir(entryID), "history.csv")
}

func EntryEvent(entryID int64, gw int) string {
	return path.Join(EntryDir(entryID), fmt.Sprintf("%d_event.json", gw))
}

func Live(gw int) string {
	return path.Join(liveDir, fmt.Sprintf("%d_live.json", gw))
}
