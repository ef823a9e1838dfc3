package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/vidcash/internal/dashboard"
	"github.com/jask/vidcash/internal/referral"
	"github.com/jask/vidcash/internal/router"
	"github.com/jask/vidcash/internal/session"
	"github.com/jask/vidcash/internal/submit"
)

type dashField string

const (
	fieldAmount   dashField = "amount"
	fieldAccount  dashField = "account"
	fieldVideoURL dashField = "video-url"
	fieldViews    dashField = "views"
)

var dashLabels = map[dashField]string{
	fieldAmount:   "Amount (PKR)",
	fieldAccount:  "Account Number",
	fieldVideoURL: "YouTube Video URL",
	fieldViews:    "Desired Views",
}

// dashView is the mounted dashboard of either role.
type dashView struct {
	page     router.Page
	tabs     []dashboard.Tab
	tab      int
	tasks    []dashboard.Video
	withdraw *dashboard.Withdrawal
	inputs   map[dashField]*textinput.Model
	focus    int
	copied   bool
}

func newDashView(page router.Page, minWithdrawal int64) *dashView {
	tabs := dashboard.ViewerTabs()
	if page == router.YouTuberDashboard {
		tabs = dashboard.YouTuberTabs()
	}
	placeholders := map[dashField]string{
		fieldAmount:   "Enter amount to withdraw",
		fieldAccount:  "Your account number",
		fieldVideoURL: "https://youtube.com/watch?v=...",
		fieldViews:    "5000",
	}
	d := &dashView{
		page:     page,
		tabs:     tabs,
		tasks:    dashboard.DailyTasks(nil),
		withdraw: dashboard.NewWithdrawal(minWithdrawal),
		inputs:   make(map[dashField]*textinput.Model, len(placeholders)),
	}
	for f, p := range placeholders {
		in := textinput.New()
		in.Placeholder = p
		in.Prompt = ""
		in.CharLimit = 64
		d.inputs[f] = &in
	}
	d.inputs[fieldViews].SetValue("5000")
	return d
}

func (d *dashView) view() dashboard.View { return d.tabs[d.tab].View }

// viewFields lists the inputs of the current tab, in tab order.
func (d *dashView) viewFields() []dashField {
	switch d.view() {
	case dashboard.Withdraw:
		return []dashField{fieldAmount, fieldAccount}
	case dashboard.Submit:
		return []dashField{fieldVideoURL, fieldViews}
	}
	return nil
}

func (d *dashView) focusCmd() tea.Cmd {
	for _, in := range d.inputs {
		in.Blur()
	}
	fields := d.viewFields()
	if len(fields) == 0 {
		return nil
	}
	d.focus = (d.focus%len(fields) + len(fields)) % len(fields)
	if d.withdraw.Submitting() {
		return nil
	}
	return d.inputs[fields[d.focus]].Focus()
}

func (d *dashView) selectTab(i int) tea.Cmd {
	if i < 0 || i >= len(d.tabs) {
		return nil
	}
	d.tab = i
	d.focus = 0
	d.copied = false
	return d.focusCmd()
}

func (a *App) handleDashboardKey(m tea.KeyMsg) tea.Cmd {
	s, ok := a.sessions.Current()
	if !ok || a.dash == nil {
		switch m.String() {
		case "q":
			return a.quit()
		case "esc":
			return a.navigate(router.Landing)
		}
		return nil
	}
	d := a.dash
	switch m.String() {
	case "esc":
		return a.navigate(router.Landing)
	case "ctrl+x":
		return a.logout()
	case "pgdown":
		return d.selectTab((d.tab + 1) % len(d.tabs))
	case "pgup":
		return d.selectTab((d.tab - 1 + len(d.tabs)) % len(d.tabs))
	}

	fields := d.viewFields()
	if len(fields) == 0 {
		switch k := m.String(); k {
		case "q":
			return a.quit()
		case "x":
			return a.logout()
		case "tab", "right", "l":
			return d.selectTab((d.tab + 1) % len(d.tabs))
		case "shift+tab", "left", "h":
			return d.selectTab((d.tab - 1 + len(d.tabs)) % len(d.tabs))
		case "up", "k":
			if a.scroll > 0 {
				a.scroll--
			}
		case "down", "j":
			a.scroll++
		case "c":
			if d.view() == dashboard.Referrals {
				return a.copyReferral(s)
			}
		default:
			if len(k) == 1 && k[0] >= '1' && k[0] <= '9' {
				return d.selectTab(int(k[0] - '1'))
			}
		}
		return nil
	}

	switch m.String() {
	case "tab", "down":
		d.focus++
		return d.focusCmd()
	case "shift+tab", "up":
		d.focus--
		return d.focusCmd()
	case "enter":
		if d.view() == dashboard.Withdraw {
			return a.submitWithdrawal(s)
		}
		return func() tea.Msg { return statusMsg("Campaign payments are not open yet.") }
	case "ctrl+n":
		if d.view() == dashboard.Withdraw && !d.withdraw.Submitting() {
			d.withdraw.CycleMethod()
		}
		return nil
	}
	return d.edit(m)
}

func (d *dashView) edit(m tea.KeyMsg) tea.Cmd {
	fields := d.viewFields()
	if len(fields) == 0 || d.withdraw.Submitting() {
		return nil
	}
	f := fields[d.focus%len(fields)]
	in := d.inputs[f]
	before := in.Value()
	updated, cmd := in.Update(m)
	*in = updated
	if in.Value() == before {
		return cmd
	}
	switch f {
	case fieldAmount:
		d.withdraw.SetAmount(in.Value())
	case fieldAccount:
		d.withdraw.SetAccount(in.Value())
	}
	return cmd
}

func (a *App) copyReferral(s session.Session) tea.Cmd {
	cb, base := a.deps.Clipboard, a.opts.ReferralBase
	return func() tea.Msg {
		link, err := referral.Copy(cb, base, s.ReferralCode)
		if err != nil {
			return errMsg{fmt.Errorf("copy referral link: %w", err)}
		}
		return copiedMsg{Link: link}
	}
}

func (a *App) submitWithdrawal(s session.Session) tea.Cmd {
	w := a.dash.withdraw
	req, err := w.Begin(s)
	if err != nil {
		return nil
	}
	ctx, ok := a.withdrawFlight.Start(a.ctx)
	if !ok {
		w.Finish(submit.Result{Err: dashboard.ErrInFlight})
		return nil
	}
	for _, in := range a.dash.inputs {
		in.Blur()
	}
	a.log.Info().
		Str("session", s.ID).
		Int64("amount", req.Amount).
		Str("method", string(req.Method)).
		Msg("withdrawal submitted")
	withdrawals := a.deps.Withdrawals
	return tea.Batch(a.spinner.Tick, func() tea.Msg {
		return withdrawDoneMsg{Result: submit.Run(ctx, withdrawals, req)}
	})
}

func (a *App) finishWithdrawal(res submit.Result) tea.Cmd {
	if a.dash == nil || !a.dash.withdraw.Submitting() {
		a.log.Debug().Err(res.Err).Msg("withdrawal result dropped")
		return nil
	}
	d := a.dash
	d.withdraw.Finish(res)
	if res.OK() {
		a.log.Info().Str("receipt", res.Receipt.ID).Msg("withdrawal accepted")
		d.inputs[fieldAmount].SetValue("")
		d.inputs[fieldAccount].SetValue("")
	} else {
		a.log.Warn().Err(res.Err).Msg("withdrawal failed")
	}
	return d.focusCmd()
}

func (a *App) renderDashboard(st styles) string {
	s, ok := a.sessions.Current()
	if !ok || a.dash == nil {
		return st.Muted.Render("Loading...")
	}
	d := a.dash
	var b strings.Builder
	b.WriteString(st.Brand.Render("VidCash") + "  ")
	for i, t := range d.tabs {
		label := fmt.Sprintf("[%d] %s", i+1, t.Label)
		if i == d.tab {
			b.WriteString(st.Selected.Render(label) + "  ")
		} else {
			b.WriteString(st.Muted.Render(label) + "  ")
		}
	}
	b.WriteString("\n\n")

	if d.page == router.YouTuberDashboard {
		b.WriteString(st.Title.Render("Advertiser Dashboard") + "\n")
		b.WriteString(st.Muted.Render("Promote your content and track its performance.") + "\n\n")
	} else {
		b.WriteString(st.Title.Render(fmt.Sprintf("Hello, %s!", s.DisplayName)) + "\n")
		b.WriteString(st.Muted.Render("Welcome to your dashboard.") + "\n\n")
	}

	switch d.view() {
	case dashboard.Overview:
		if d.page == router.YouTuberDashboard {
			b.WriteString(a.renderAnalytics(st))
		} else {
			b.WriteString(a.renderOverview(st, s))
		}
	case dashboard.Tasks:
		b.WriteString(a.renderTasks(st))
	case dashboard.Referrals:
		b.WriteString(a.renderReferrals(st, s))
	case dashboard.Withdraw:
		b.WriteString(a.renderWithdraw(st, s))
	case dashboard.History:
		b.WriteString(a.renderHistory(st))
	case dashboard.Submit:
		b.WriteString(a.renderSubmitVideo(st))
	}

	b.WriteString("\n")
	if len(d.viewFields()) > 0 {
		b.WriteString("[tab] Next field  [pgup/pgdown] Switch tab  [ctrl+x] Logout  [esc] Home")
	} else {
		b.WriteString("[1-9/tab] Switch tab  [x] Logout  [esc] Home  [ctrl+t] Theme  [q] Quit")
	}
	return b.String()
}

func (a *App) renderOverview(st styles, s session.Session) string {
	f := a.opts.Money
	summary := fmt.Sprintf("%s\n%s %s\n%s %s\n%s %s\n%s %s",
		st.Label.Render("Account Summary"),
		st.Muted.Render("Package:"), st.Brand.Render(string(s.Tier)),
		st.Muted.Render("Referrals:"), st.Success.Render(strconv.Itoa(s.ReferralCount)),
		st.Muted.Render("Current Balance:"), st.Text.Render(f.Amount(s.Balance)),
		st.Muted.Render("Withdrawal Status:"), st.Warning.Render(s.WithdrawalStatus))
	sum := dashboard.Summarize(a.dash.tasks)
	progress := fmt.Sprintf("%s\n%d/%d Videos Watched\n%d videos remaining",
		st.Label.Render("Today's Progress"), sum.Watched, sum.Total, sum.Remaining)
	return st.Card.Render(summary) + "\n" + st.Card.Render(progress) + "\n"
}

func (a *App) renderTasks(st styles) string {
	f := a.opts.Money
	sum := dashboard.Summarize(a.dash.tasks)
	var b strings.Builder
	b.WriteString(st.Label.Render("Daily Tasks") + "\n")
	b.WriteString(fmt.Sprintf("%d/%d Videos Watched   %s Earned Today   %d Remaining\n\n",
		sum.Watched, sum.Total, f.Amount(sum.Earnings), sum.Remaining))
	for _, v := range a.dash.tasks {
		status := st.Button.Render("Watch Now")
		if v.Watched {
			status = st.Success.Render("✓ Watched")
		}
		b.WriteString(fmt.Sprintf("%-22s %d min • %s  %s\n", v.Title, v.DurationMinutes, f.Amount(v.Earnings), status))
	}
	return b.String()
}

func (a *App) renderReferrals(st styles, s session.Session) string {
	f := a.opts.Money
	var b strings.Builder
	b.WriteString(st.Label.Render("Referral System") + "\n\n")
	link, err := referral.Link(a.opts.ReferralBase, s.ReferralCode)
	if err != nil {
		link = err.Error()
	}
	copyLabel := "Copy"
	if a.dash.copied {
		copyLabel = "Copied!"
	}
	b.WriteString(st.Muted.Render("Your Referral Link") + "\n")
	b.WriteString(st.Card.Render(link) + " " + st.Button.Render(copyLabel) + "\n\n")
	stats, members := dashboard.ReferralsFor(s.ReferralCount)
	b.WriteString(fmt.Sprintf("Total Referrals: %d   Active Referrals: %d   Commission Earned: %s\n\n",
		stats.Total, stats.Active, f.Amount(stats.Commission)))
	b.WriteString(st.Label.Render("Your Team") + "\n")
	b.WriteString(fmt.Sprintf("%-20s %-12s %s\n", "User", "Join Date", "Status"))
	for _, m := range members {
		status := st.Success.Render("Active")
		if !m.Active {
			status = st.Error.Render("Inactive")
		}
		b.WriteString(fmt.Sprintf("%-20s %-12s %s\n", m.Email, m.JoinDate, status))
	}
	b.WriteString("\n[c] Copy link\n")
	return b.String()
}

func (a *App) renderWithdraw(st styles, s session.Session) string {
	d := a.dash
	w := d.withdraw
	f := a.opts.Money
	errs := w.Errors()
	var b strings.Builder
	b.WriteString(st.Label.Render("Withdraw Earnings") + "\n")
	b.WriteString("Your current balance is " + st.Success.Render(f.Amount(s.Balance)) + ".\n\n")

	fields := d.viewFields()
	focused := fields[d.focus%len(fields)]
	for _, fd := range fields {
		label := dashLabels[fd]
		if fd == focused && !w.Submitting() {
			b.WriteString(st.Selected.Render("> "+label) + "\n")
		} else {
			b.WriteString(st.Label.Render("  "+label) + "\n")
		}
		b.WriteString("  " + d.inputs[fd].View() + "\n")
		if msg := errs[string(fd)]; msg != "" {
			b.WriteString("  " + st.Error.Render(msg) + "\n")
		}
		if fd == fieldAmount {
			b.WriteString("  " + st.Muted.Render("Minimum withdrawal: "+f.Amount(w.MinAmount)) + "\n")
			b.WriteString(st.Label.Render("  Payment Method") + "\n")
			b.WriteString("  " + st.Text.Render(string(w.Method)) + st.Muted.Render("  [ctrl+n] change") + "\n")
		}
	}
	switch {
	case w.Submitting():
		b.WriteString("\n" + st.Disabled.Render(a.spinner.View()+" Processing...") + "\n")
	case !s.CanWithdraw():
		b.WriteString("\n" + st.Disabled.Render("Request Withdrawal") + "\n")
		b.WriteString(st.Error.Render(s.WithdrawalStatus) + "\n")
	default:
		b.WriteString("\n" + st.Button.Render("Request Withdrawal") + "\n")
	}
	if n := w.Notice(); n != "" {
		b.WriteString(st.Muted.Render(n) + "\n")
	}
	return b.String()
}

func (a *App) renderHistory(st styles) string {
	f := a.opts.Money
	rows, title, col := dashboard.ViewerHistory(), "Payment History", "Type"
	if a.dash.page == router.YouTuberDashboard {
		rows, title, col = dashboard.CampaignHistory(), "Campaign Payment History", "Campaign"
	}
	var b strings.Builder
	b.WriteString(st.Label.Render(title) + "\n")
	b.WriteString(fmt.Sprintf("%-12s %-22s %-12s %s\n", "Date", col, "Amount", "Status"))
	for _, r := range rows {
		b.WriteString(fmt.Sprintf("%-12s %-22s %-12s %s\n", r.Date, r.Label, f.Amount(r.Amount), r.Status))
	}
	return b.String()
}

func (a *App) renderAnalytics(st styles) string {
	f := a.opts.Money
	an := dashboard.CampaignAnalytics()
	var b strings.Builder
	b.WriteString(fmt.Sprintf("Total Views: %s   Engagement Rate: %d%%   Active Campaigns: %d\n\n",
		f.Number(an.TotalViews), an.EngagementRate, an.ActiveCampaigns))
	b.WriteString(st.Label.Render("Views Over Last 7 Days") + "\n")
	peak := an.PeakViews()
	const width = 30
	for _, day := range an.LastWeek {
		n := 0
		if peak > 0 {
			n = int(day.Views * width / peak)
		}
		b.WriteString(fmt.Sprintf("%-6s %s %d\n", day.Day, st.Brand.Render(strings.Repeat("█", n)), day.Views))
	}
	return b.String()
}

func (a *App) renderSubmitVideo(st styles) string {
	d := a.dash
	var b strings.Builder
	b.WriteString(st.Label.Render("Submit New Video for Promotion") + "\n")
	b.WriteString(st.Muted.Render("Enter your video details and desired views to create a new campaign.") + "\n\n")
	fields := d.viewFields()
	focused := fields[d.focus%len(fields)]
	for _, fd := range fields {
		label := dashLabels[fd]
		if fd == focused {
			b.WriteString(st.Selected.Render("> "+label) + "\n")
		} else {
			b.WriteString(st.Label.Render("  "+label) + "\n")
		}
		b.WriteString("  " + d.inputs[fd].View() + "\n")
	}
	views, _ := strconv.ParseInt(strings.TrimSpace(d.inputs[fieldViews].Value()), 10, 64)
	b.WriteString("\nEstimated Cost: " + st.Brand.Render(a.opts.Money.Amount(dashboard.EstimateCost(views))) + "\n")
	b.WriteString(st.Muted.Render("Based on 0.5 PKR per view.") + "\n")
	b.WriteString(st.Button.Render("Proceed to Payment") + "\n")
	return b.String()
}
