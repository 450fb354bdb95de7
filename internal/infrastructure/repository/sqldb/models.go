package sqldb

import "database/sql"

type leagueEntryModel struct {
	ID              int64  `db:"id"`
	EntryID         int64  `db:"entry_id"`
	EntryName       string `db:"entry_name"`
	PlayerFirstName string `db:"player_first_name"`
	PlayerLastName  string `db:"player_last_name"`
	ShortName       string `db:"short_name"`
	WaiverPick      int    `db:"waiver_pick"`
}

type leagueModel struct {
	ID              int64  `db:"id"`
	Name            string `db:"name"`
	AdminEntry      int64  `db:"admin_entry"`
	DraftStatus     string `db:"draft_status"`
	Scoring         string `db:"scoring"`
	StartEvent      int    `db:"start_event"`
	StopEvent       int    `db:"stop_event"`
	Trades          string `db:"trades"`
	TransactionMode string `db:"transaction_mode"`
}

type standingModel struct {
	LeagueEntry int64 `db:"league_entry"`
	Rank        int   `db:"rank"`
	LastRank    int   `db:"last_rank"`
	RankSort    int   `db:"rank_sort"`
	Total       int   `db:"total"`
	EventTotal  int   `db:"event_total"`
}

type statusModel struct {
	Event      int    `db:"event"`
	EventDate  string `db:"event_date"`
	Points     string `db:"points"`
	BonusAdded bool   `db:"bonus_added"`
}

type profileModel struct {
	EntryID         int64  `db:"entry_id"`
	Name            string `db:"name"`
	PlayerFirstName string `db:"player_first_name"`
	PlayerLastName  string `db:"player_last_name"`
	StartedEvent    int    `db:"started_event"`
}

type elementStatusModel struct {
	Element         int64         `db:"element"`
	Owner           sql.NullInt64 `db:"owner"`
	Status          string        `db:"status"`
	InAcceptedTrade bool          `db:"in_accepted_trade"`
}

type draftChoiceModel struct {
	ID         int64  `db:"id"`
	Entry      int64  `db:"entry"`
	Element    int64  `db:"element"`
	DraftRound int    `db:"draft_round"`
	DraftPick  int    `db:"draft_pick"`
	WasAuto    bool   `db:"was_auto"`
	ChoiceTime string `db:"choice_time"`
}

type elementModel struct {
	ID          int64  `db:"id"`
	WebName     string `db:"web_name"`
	FirstName   string `db:"first_name"`
	SecondName  string `db:"second_name"`
	Team        int    `db:"team"`
	ElementType int    `db:"element_type"`
}

type transactionModel struct {
	ID         int64  `db:"id"`
	Entry      int64  `db:"entry"`
	Event      int    `db:"event"`
	ElementIn  int64  `db:"element_in"`
	ElementOut int64  `db:"element_out"`
	Kind       string `db:"kind"`
	Result     string `db:"result"`
	Priority   int    `db:"priority"`
	Added      string `db:"added"`
}

type historyModel struct {
	EntryID        int64 `db:"entry_id"`
	GW             int   `db:"gw"`
	Points         int   `db:"points"`
	TotalPoints    int   `db:"total_points"`
	OverallRank    int   `db:"overall_rank"`
	RankSort       int   `db:"rank_sort"`
	EventTransfers int   `db:"event_transfers"`
	PointsOnBench  int   `db:"points_on_bench"`
	SquadValue     int   `db:"squad_value"`
	Bank           int   `db:"bank"`
}

type liveModel struct {
	Element         int64 `db:"element"`
	GW              int   `db:"gw"`
	Minutes         int   `db:"minutes"`
	GoalsScored     int   `db:"goals_scored"`
	Assists         int   `db:"assists"`
	CleanSheets     int   `db:"clean_sheets"`
	GoalsConceded   int   `db:"goals_conceded"`
	OwnGoals        int   `db:"own_goals"`
	PenaltiesSaved  int   `db:"penalties_saved"`
	PenaltiesMissed int   `db:"penalties_missed"`
	YellowCards     int   `db:"yellow_cards"`
	RedCards        int   `db:"red_cards"`
	Saves           int   `db:"saves"`
	Bonus           int   `db:"bonus"`
	BPS             int   `db:"bps"`
	TotalPoints     int   `db:"total_points"`
}

type pickModel struct {
	EntryID int64 `db:"entry_id"`
	GW      int   `db:"gw"`
	Element int64 `db:"element"`
	Slot    int   `db:"slot"`
}

type teamPointsModel struct {
	EntryID     int64  `db:"entry_id"`
	Team        string `db:"team"`
	GW          int    `db:"gw"`
	Points      int    `db:"points"`
	TotalPoints int    `db:"total_points"`
}

type benchLossModel struct {
	EntryID        int64  `db:"entry_id"`
	Team           string `db:"team"`
	GW             int    `db:"gw"`
	Position       string `db:"position"`
	StartingMinPts int    `db:"starting_min_pts"`
	BenchMaxPts    int    `db:"bench_max_pts"`
	PtsLost        int    `db:"pts_lost"`
}

type benchTotalModel struct {
	EntryID  int64  `db:"entry_id"`
	Team     string `db:"team"`
	BenchPts int    `db:"bench_pts"`
}

type blunderModel struct {
	TransactionID int64  `db:"transaction_id"`
	EntryID       int64  `db:"entry_id"`
	Team          string `db:"team"`
	WaiverOrFree  string `db:"waiver_or_free"`
	WaiverGW      int    `db:"waiver_gw"`
	NextGW        int    `db:"next_gw"`
	PlayerIn      string `db:"player_in"`
	PlayerInPts   int    `db:"player_in_pts"`
	PlayerOut     string `db:"player_out"`
	PlayerOutPts  int    `db:"player_out_pts"`
	NetPts        int    `db:"net_pts"`
}

type bracketStandingModel struct {
	Bracket  string `db:"bracket"`
	Rank     int    `db:"rank"`
	EntryID  int64  `db:"entry_id"`
	TeamName string `db:"team_name"`
	Points   int    `db:"points"`
}

type timelineModel struct {
	GW      int    `db:"gw"`
	Pos     int    `db:"pos"`
	EntryID int64  `db:"entry_id"`
	Name    string `db:"name"`
}

type cumulativeModel struct {
	EntryID    int64  `db:"entry_id"`
	Team       string `db:"team"`
	GW         int    `db:"gw"`
	Points     int    `db:"points"`
	CummPoints int    `db:"cumm_points"`
}
