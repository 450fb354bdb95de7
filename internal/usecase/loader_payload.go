package usecase

import (
	"github.com/riskibarqy/drafty/internal/domain/entryhistory"
	"github.com/riskibarqy/drafty/internal/domain/league"
	"github.com/riskibarqy/drafty/internal/domain/livestats"
	"github.com/riskibarqy/drafty/internal/domain/player"
	"github.com/riskibarqy/drafty/internal/domain/transaction"
)

type leagueEntryPayload struct {
	ID              int64  `json:"id"`
	EntryID         int64  `json:"entry_id"`
	EntryName       string `json:"entry_name"`
	PlayerFirstName string `json:"player_first_name"`
	PlayerLastName  string `json:"player_last_name"`
	ShortName       string `json:"short_name"`
	WaiverPick      int    `json:"waiver_pick"`
}

func (p leagueEntryPayload) toDomain() league.Entry {
	return league.Entry{
		ID:              p.ID,
		EntryID:         p.EntryID,
		EntryName:       p.EntryName,
		PlayerFirstName: p.PlayerFirstName,
		PlayerLastName:  p.PlayerLastName,
		ShortName:       p.ShortName,
		WaiverPick:      p.WaiverPick,
	}
}

type leaguePayload struct {
	ID              int64  `json:"id"`
	Name            string `json:"name"`
	AdminEntry      int64  `json:"admin_entry"`
	DraftStatus     string `json:"draft_status"`
	Scoring         string `json:"scoring"`
	StartEvent      int    `json:"start_event"`
	StopEvent       int    `json:"stop_event"`
	Trades          string `json:"trades"`
	TransactionMode string `json:"transaction_mode"`
}

func (p leaguePayload) toDomain() league.League {
	return league.League(p)
}

type standingPayload struct {
	LeagueEntry int64 `json:"league_entry"`
	Rank        int   `json:"rank"`
	LastRank    int   `json:"last_rank"`
	RankSort    int   `json:"rank_sort"`
	Total       int   `json:"total"`
	EventTotal  int   `json:"event_total"`
}

type statusPayload struct {
	Event      int    `json:"event"`
	Date       string `json:"date"`
	Points     string `json:"points"`
	BonusAdded bool   `json:"bonus_added"`
}

type elementPayload struct {
	ID          int64  `json:"id"`
	WebName     string `json:"web_name"`
	FirstName   string `json:"first_name"`
	SecondName  string `json:"second_name"`
	Team        int    `json:"team"`
	ElementType int    `json:"element_type"`
}

func (p elementPayload) toDomain() player.Element {
	return player.Element{
		ID:         p.ID,
		WebName:    p.WebName,
		FirstName:  p.FirstName,
		SecondName: p.SecondName,
		Team:       p.Team,
		Position:   player.Position(p.ElementType),
	}
}

type transactionPayload struct {
	ID         int64  `json:"id"`
	Entry      int64  `json:"entry"`
	Event      int    `json:"event"`
	ElementIn  int64  `json:"element_in"`
	ElementOut int64  `json:"element_out"`
	Kind       string `json:"kind"`
	Result     string `json:"result"`
	Priority   int    `json:"priority"`
	Added      string `json:"added"`
}

func (p transactionPayload) toDomain() transaction.Transaction {
	return transaction.Transaction{
		ID:         p.ID,
		Entry:      p.Entry,
		GW:         p.Event,
		ElementIn:  p.ElementIn,
		ElementOut: p.ElementOut,
		Kind:       p.Kind,
		Result:     p.Result,
		Priority:   p.Priority,
		Added:      p.Added,
	}
}

type elementStatusPayload struct {
	Element         int64  `json:"element"`
	Owner           *int64 `json:"owner"`
	Status          string `json:"status"`
	InAcceptedTrade bool   `json:"in_accepted_trade"`
}

type choicePayload struct {
	ID         int64  `json:"id"`
	Entry      int64  `json:"entry"`
	Element    int64  `json:"element"`
	Round      int    `json:"round"`
	Pick       int    `json:"pick"`
	WasAuto    bool   `json:"was_auto"`
	ChoiceTime string `json:"choice_time"`
}

type publicPayload struct {
	Entry struct {
		ID              int64  `json:"id"`
		Name            string `json:"name"`
		PlayerFirstName string `json:"player_first_name"`
		PlayerLastName  string `json:"player_last_name"`
		StartedEvent    int    `json:"started_event"`
	} `json:"entry"`
}

type historyPayload struct {
	History []struct {
		Event          int `json:"event"`
		Points         int `json:"points"`
		TotalPoints    int `json:"total_points"`
		Rank           int `json:"rank"`
		RankSort       int `json:"rank_sort"`
		EventTransfers int `json:"event_transfers"`
		PointsOnBench  int `json:"points_on_bench"`
		Value          int `json:"value"`
		Bank           int `json:"bank"`
	} `json:"history"`
}

func (p historyPayload) toDomain(entryID int64) []entryhistory.History {
	out := make([]entryhistory.History, 0, len(p.History))
	for _, h := range p.History {
		out = append(out, entryhistory.History{
			EntryID:        entryID,
			GW:             h.Event,
			Points:         h.Points,
			TotalPoints:    h.TotalPoints,
			OverallRank:    h.Rank,
			RankSort:       h.RankSort,
			EventTransfers: h.EventTransfers,
			PointsOnBench:  h.PointsOnBench,
			SquadValue:     h.Value,
			Bank:           h.Bank,
		})
	}
	return out
}

type eventPayload struct {
	Picks []struct {
		Element    int64 `json:"element"`
		Position   int   `json:"position"`
		Multiplier *int  `json:"multiplier"`
	} `json:"picks"`
}

type livePayload struct {
	Elements map[string]struct {
		Stats struct {
			Minutes         int `json:"minutes"`
			GoalsScored     int `json:"goals_scored"`
			Assists         int `json:"assists"`
			CleanSheets     int `json:"clean_sheets"`
			GoalsConceded   int `json:"goals_conceded"`
			OwnGoals        int `json:"own_goals"`
			PenaltiesSaved  int `json:"penalties_saved"`
			PenaltiesMissed int `json:"penalties_missed"`
			YellowCards     int `json:"yellow_cards"`
			RedCards        int `json:"red_cards"`
			Saves           int `json:"saves"`
			Bonus           int `json:"bonus"`
			BPS             int `json:"bps"`
			TotalPoints     int `json:"total_points"`
		} `json:"stats"`
	} `json:"elements"`
}

func liveStatsRow(element int64, gw int, p livePayload, key string) livestats.Stats {
	s := p.Elements[key].Stats
	return livestats.Stats{
		Element:         element,
		GW:              gw,
		Minutes:         s.Minutes,
		GoalsScored:     s.GoalsScored,
		Assists:         s.Assists,
		CleanSheets:     s.CleanSheets,
		GoalsConceded:   s.GoalsConceded,
		OwnGoals:        s.OwnGoals,
		PenaltiesSaved:  s.PenaltiesSaved,
		PenaltiesMissed: s.PenaltiesMissed,
		YellowCards:     s.YellowCards,
		RedCards:        s.RedCards,
		Saves:           s.Saves,
		Bonus:           s.Bonus,
		BPS:             s.BPS,
		TotalPoints:     s.TotalPoints,
	}
}
