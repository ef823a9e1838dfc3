package tui

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jask/vidcash/internal/dashboard"
	"github.com/jask/vidcash/internal/session"
)

func makeEligible(a *App) {
	s, _ := a.Session()
	s.WithdrawalStatus = session.EligibleStatus
	a.sessions.Begin(s)
}

func TestViewerTabs(t *testing.T) {
	a := newTestApp(t)
	login(t, a, false)
	view := a.View()
	require.Contains(t, view, "Account Summary")
	require.Contains(t, view, "12,500 PKR")
	require.Contains(t, view, "Eligible in 5 days")

	press(a, "2")
	require.Equal(t, dashboard.Tasks, a.dash.view())
	require.Contains(t, a.View(), "3/20 Videos Watched")

	press(a, "5")
	require.Contains(t, a.View(), "7,500 PKR")

	press(a, "tab")
	require.Equal(t, dashboard.Overview, a.dash.view(), "tabs wrap")
}

func TestReferralCopy(t *testing.T) {
	cb := &fakeClipboard{}
	a := newTestApp(t, func(d *Deps, _ *Options) { d.Clipboard = cb })
	login(t, a, false)
	press(a, "3")
	require.Contains(t, a.View(), "https://vidcash.com/ref/alex123")
	require.NotContains(t, a.View(), "Copied!")

	settle(a, press(a, "c"))
	require.Equal(t, "https://vidcash.com/ref/alex123", cb.text)
	require.Contains(t, a.View(), "Copied!")
}

func TestReferralCopyFailure(t *testing.T) {
	cb := &fakeClipboard{err: errors.New("no display")}
	a := newTestApp(t, func(d *Deps, o *Options) {
		d.Clipboard = cb
		o.ReferralBase = "https://example.test"
	})
	login(t, a, false)
	press(a, "3")
	require.Contains(t, a.View(), "https://example.test/ref/alex123")
	settle(a, press(a, "c"))
	require.Contains(t, a.Status(), "error: copy referral link: no display")
	require.NotContains(t, a.View(), "Copied!")
}

func TestWithdrawBlockedWhenIneligible(t *testing.T) {
	a := newTestApp(t)
	login(t, a, false)
	press(a, "4")
	press(a, "500")
	press(a, "tab")
	press(a, "0300")
	require.Nil(t, press(a, "enter"))
	require.False(t, a.dash.withdraw.Submitting())
	require.Contains(t, a.View(), "Eligible in 5 days")
}

func TestWithdrawValidation(t *testing.T) {
	a := newTestApp(t)
	login(t, a, false)
	makeEligible(a)
	press(a, "4")
	require.Nil(t, press(a, "enter"))
	view := a.View()
	require.Contains(t, view, "Amount is required")
	require.Contains(t, view, "Account number is required")

	press(a, "99999")
	press(a, "enter")
	require.Contains(t, a.View(), "Amount exceeds your balance")
}

func TestWithdrawSubmit(t *testing.T) {
	a := newTestApp(t)
	login(t, a, false)
	makeEligible(a)
	press(a, "4")
	press(a, "500")
	press(a, "tab")
	press(a, "03001234567")
	press(a, "ctrl+n")
	require.Equal(t, dashboard.EasyPaisa, a.dash.withdraw.Method)

	cmd := press(a, "enter")
	require.NotNil(t, cmd)
	require.True(t, a.dash.withdraw.Submitting())
	require.Contains(t, a.View(), "Processing...")
	require.Nil(t, press(a, "enter"))

	settle(a, cmd)
	require.False(t, a.dash.withdraw.Submitting())
	require.Equal(t, "Withdrawal request submitted.", a.dash.withdraw.Notice())
	require.Empty(t, a.dash.inputs[fieldAmount].Value())
	require.Empty(t, a.dash.inputs[fieldAccount].Value())
	require.False(t, a.withdrawFlight.Pending())
}

func TestYouTuberSubmitEstimate(t *testing.T) {
	a := newTestApp(t)
	login(t, a, true)
	require.Contains(t, a.View(), "Views Over Last 7 Days")

	press(a, "2")
	require.Equal(t, dashboard.Submit, a.dash.view())
	require.Contains(t, a.View(), "Estimated Cost: 2,500 PKR")

	press(a, "tab")
	press(a, "0")
	require.Contains(t, a.View(), "Estimated Cost: 25,000 PKR")

	settle(a, press(a, "enter"))
	require.Equal(t, "Campaign payments are not open yet.", a.Status())

	press(a, "pgdown")
	require.Contains(t, a.View(), "Campaign Payment History")
}
