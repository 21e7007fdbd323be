package response_models

import "time"

type TimeRange struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

type AccountKPIs struct {
	Total    int64            `json:"total"`
	ByStatus map[string]int64 `json:"byStatus"`
	New      int64            `json:"new"`
}

type ActivityKPIs struct {
	MessagesSent      int64 `json:"messagesSent"`
	AlertsSent        int64 `json:"alertsSent"`
	FriendshipsFormed int64 `json:"friendshipsFormed"`
	MoodCheckIns      int64 `json:"moodCheckIns"`
}

type MoodShare struct {
	Mood    string  `json:"mood"`
	Count   int64   `json:"count"`
	Percent float64 `json:"percent"`
}

type DayPoint struct {
	Day   string `json:"day"`
	Value int64  `json:"value"`
}

type DashboardReport struct {
	Range         TimeRange        `json:"range"`
	Accounts      AccountKPIs      `json:"accounts"`
	Activity      ActivityKPIs     `json:"activity"`
	OpenFeedback  map[string]int64 `json:"openFeedback"`
	MoodMix       []MoodShare      `json:"moodMix"`
	CheckInSeries []DayPoint       `json:"checkInSeries"`
}
