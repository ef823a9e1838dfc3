package dashboard

import (
	"errors"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jask/vidcash/internal/session"
	"github.com/jask/vidcash/internal/submit"
)

func TestTabs(t *testing.T) {
	require.Len(t, ViewerTabs(), 5)
	require.Equal(t, Overview, ViewerTabs()[0].View)
	require.Len(t, YouTuberTabs(), 3)
	require.Equal(t, "Analytics", YouTuberTabs()[0].Label)
}

func TestDailyTasks(t *testing.T) {
	videos := DailyTasks(rand.New(rand.NewPCG(1, 2)))
	require.Len(t, videos, DailyVideoCount)
	require.Equal(t, "Promotional Video 1", videos[0].Title)
	for _, v := range videos {
		require.GreaterOrEqual(t, v.DurationMinutes, 1)
		require.LessOrEqual(t, v.DurationMinutes, 3)
		require.GreaterOrEqual(t, v.Earnings, int64(5))
		require.LessOrEqual(t, v.Earnings, int64(14))
	}

	s := Summarize(videos)
	require.Equal(t, 20, s.Total)
	require.Equal(t, 3, s.Watched)
	require.Equal(t, 17, s.Remaining)
	require.Equal(t, videos[0].Earnings+videos[1].Earnings+videos[2].Earnings, s.Earnings)
}

func TestDailyTasksNilRNG(t *testing.T) {
	require.Len(t, DailyTasks(nil), DailyVideoCount)
}

func TestAnalytics(t *testing.T) {
	a := CampaignAnalytics()
	require.Len(t, a.LastWeek, 7)
	require.Equal(t, int64(950), a.PeakViews())
}

func TestEstimateCost(t *testing.T) {
	require.Equal(t, int64(2500), EstimateCost(5000))
	require.Equal(t, int64(1), EstimateCost(1))
	require.Equal(t, int64(0), EstimateCost(-4))
}

func TestReferralsFor(t *testing.T) {
	stats, team := ReferralsFor(23)
	require.Equal(t, 23, stats.Total)
	require.Len(t, team, 3)
}

func eligible() session.Session {
	s := session.Simulated(session.Viewer, "")
	s.WithdrawalStatus = session.EligibleStatus
	return s
}

func TestWithdrawalIneligible(t *testing.T) {
	w := NewWithdrawal(0)
	w.SetAmount("500")
	w.SetAccount("0300")
	_, err := w.Begin(session.Simulated(session.Viewer, ""))
	require.ErrorIs(t, err, ErrNotEligible)
	require.False(t, w.Submitting())
}

func TestWithdrawalValidation(t *testing.T) {
	tests := []struct {
		name    string
		amount  string
		account string
		want    map[string]string
	}{
		{"empty", "", "", map[string]string{"amount": "Amount is required", "account": "Account number is required"}},
		{"not a number", "abc", "0300", map[string]string{"amount": "Amount must be a whole number"}},
		{"below minimum", "99", "0300", map[string]string{"amount": "Minimum withdrawal: 100 PKR"}},
		{"above balance", "12501", "0300", map[string]string{"amount": "Amount exceeds your balance"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := NewWithdrawal(DefaultMinWithdrawal)
			w.SetAmount(tt.amount)
			w.SetAccount(tt.account)
			_, err := w.Begin(eligible())
			require.ErrorIs(t, err, ErrInvalid)
			require.Equal(t, tt.want, w.Errors())
		})
	}
}

func TestWithdrawalSubmitCycle(t *testing.T) {
	w := NewWithdrawal(DefaultMinWithdrawal)
	w.CycleMethod()
	require.Equal(t, EasyPaisa, w.Method)
	w.SetAmount(" 12500 ")
	w.SetAccount("03001234567")

	req, err := w.Begin(eligible())
	require.NoError(t, err)
	require.Equal(t, WithdrawRequest{Amount: 12500, Method: EasyPaisa, AccountNumber: "03001234567"}, req)
	require.True(t, w.Submitting())

	_, err = w.Begin(eligible())
	require.ErrorIs(t, err, ErrInFlight)

	w.Finish(submit.Result{Err: errors.New("down")})
	require.False(t, w.Submitting())
	require.Equal(t, " 12500 ", w.Amount, "failure keeps the form")
	require.Contains(t, w.Notice(), "failed")

	_, err = w.Begin(eligible())
	require.NoError(t, err)
	w.Finish(submit.Result{})
	require.Empty(t, w.Amount)
	require.Empty(t, w.AccountNumber)
	require.Equal(t, "Withdrawal request submitted.", w.Notice())
}

func TestWithdrawalEditClearsError(t *testing.T) {
	w := NewWithdrawal(0)
	_, err := w.Begin(eligible())
	require.ErrorIs(t, err, ErrInvalid)
	w.SetAmount("1")
	require.NotContains(t, w.Errors(), "amount")
	require.Contains(t, w.Errors(), "account")
}

func TestCycleMethodWraps(t *testing.T) {
	w := NewWithdrawal(0)
	for range Methods() {
		w.CycleMethod()
	}
	require.Equal(t, JazzCash, w.Method)
	w.Method = "Cash"
	w.CycleMethod()
	require.Equal(t, JazzCash, w.Method)
}
