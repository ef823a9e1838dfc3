// Package dashboard holds the data behind the viewer and YouTuber
// dashboards. Figures other than the session's own are demo literals.
package dashboard

import (
	"math/rand/v2"
	"strconv"
)

// View is a dashboard tab.
type View string

const (
	Overview  View = "overview"
	Tasks     View = "tasks"
	Referrals View = "referrals"
	Withdraw  View = "withdraw"
	History   View = "history"
	Submit    View = "submit"
)

// Tab is a sidebar entry.
type Tab struct {
	View  View
	Label string
}

// ViewerTabs lists the viewer sidebar.
func ViewerTabs() []Tab {
	return []Tab{
		{Overview, "Overview"},
		{Tasks, "Daily Tasks"},
		{Referrals, "Referrals"},
		{Withdraw, "Withdraw"},
		{History, "Payment History"},
	}
}

// YouTuberTabs lists the YouTuber sidebar.
func YouTuberTabs() []Tab {
	return []Tab{
		{Overview, "Analytics"},
		{Submit, "Submit Video"},
		{History, "Payment History"},
	}
}

// Video is one daily task.
type Video struct {
	ID              int
	Title           string
	DurationMinutes int
	Earnings        int64
	Watched         bool
}

// DailyVideoCount is how many videos the task list shows.
const DailyVideoCount = 20

const demoWatched = 3

// DailyTasks builds the demo task list. Durations and earnings come from
// rng so tests can pin them.
func DailyTasks(rng *rand.Rand) []Video {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	out := make([]Video, DailyVideoCount)
	for i := range out {
		out[i] = Video{
			ID:              i + 1,
			Title:           "Promotional Video " + strconv.Itoa(i+1),
			DurationMinutes: rng.IntN(3) + 1,
			Earnings:        int64(rng.IntN(10) + 5),
			Watched:         i < demoWatched,
		}
	}
	return out
}

// TaskSummary totals a task list.
type TaskSummary struct {
	Total     int
	Watched   int
	Remaining int
	Earnings  int64
}

// Summarize counts watched videos and what they earned.
func Summarize(videos []Video) TaskSummary {
	s := TaskSummary{Total: len(videos)}
	for _, v := range videos {
		if v.Watched {
			s.Watched++
			s.Earnings += v.Earnings
		}
	}
	s.Remaining = s.Total - s.Watched
	return s
}

// ReferralStats are the figures on the referrals tab.
type ReferralStats struct {
	Total      int
	Active     int
	Commission int64
}

// Member is someone who joined through a referral link.
type Member struct {
	Email    string
	JoinDate string
	Active   bool
}

// ReferralsFor returns the demo referral figures for a session total.
func ReferralsFor(total int) (ReferralStats, []Member) {
	return ReferralStats{Total: total, Active: 18, Commission: 3450}, []Member{
		{"user1@example.com", "2023-10-15", true},
		{"user2@example.com", "2023-10-12", true},
		{"user3@example.com", "2023-10-11", false},
	}
}

// Entry is a payment history row.
type Entry struct {
	Date   string
	Label  string
	Amount int64
	Status string
}

// ViewerHistory lists deposits and withdrawals.
func ViewerHistory() []Entry {
	return []Entry{
		{"2023-10-20", "Withdrawal", 5000, "Pending"},
		{"2023-09-28", "Withdrawal", 7500, "Completed"},
		{"2023-09-01", "Deposit", 5000, "Completed"},
	}
}

// CampaignHistory lists a YouTuber's campaign payments.
func CampaignHistory() []Entry {
	return []Entry{
		{"2023-10-18", `"New Gadget Review"`, 2500, "Paid"},
		{"2023-09-25", `"Travel Vlog Part 1"`, 5000, "Paid"},
	}
}

// DayViews is one bar of the views chart.
type DayViews struct {
	Day   string
	Views int64
}

// Analytics is the YouTuber overview.
type Analytics struct {
	TotalViews      int64
	EngagementRate  int
	ActiveCampaigns int
	LastWeek        []DayViews
}

// CampaignAnalytics returns the demo analytics.
func CampaignAnalytics() Analytics {
	return Analytics{
		TotalViews:      12450,
		EngagementRate:  78,
		ActiveCampaigns: 2,
		LastWeek: []DayViews{
			{"Day 1", 400}, {"Day 2", 300}, {"Day 3", 500}, {"Day 4", 780},
			{"Day 5", 600}, {"Day 6", 800}, {"Day 7", 950},
		},
	}
}

// PeakViews returns the largest daily count, for scaling bars.
func (a Analytics) PeakViews() int64 {
	var peak int64
	for _, d := range a.LastWeek {
		peak = max(peak, d.Views)
	}
	return peak
}

// EstimateCost prices a promotion at half a rupee per view, rounded up.
func EstimateCost(views int64) int64 {
	if views <= 0 {
		return 0
	}
	return (views + 1) / 2
}
