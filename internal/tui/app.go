package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/jask/vidcash/internal/catalog"
	"github.com/jask/vidcash/internal/content"
	"github.com/jask/vidcash/internal/dashboard"
	"github.com/jask/vidcash/internal/money"
	"github.com/jask/vidcash/internal/referral"
	"github.com/jask/vidcash/internal/router"
	"github.com/jask/vidcash/internal/session"
	"github.com/jask/vidcash/internal/submit"
	"github.com/jask/vidcash/internal/theme"
	"github.com/jask/vidcash/internal/wizard"
)

// App is the root model. It owns the router, the session and the theme,
// and mounts the page the router points at.
type App struct {
	ctx      context.Context
	deps     Deps
	opts     Options
	log      zerolog.Logger
	router   *router.Router
	sessions *session.Holder
	spinner  spinner.Model

	auth *authView
	dash *dashView

	paymentFlight  submit.Flight
	withdrawFlight submit.Flight

	scroll int
	width  int
	height int
	status string
}

// Deps are the collaborators the UI calls into.
type Deps struct {
	Catalog     *catalog.Catalog
	Pages       content.Pages
	Theme       theme.Store
	Clipboard   referral.Clipboard
	Payments    submit.Submitter[wizard.Request]
	Withdrawals submit.Submitter[dashboard.WithdrawRequest]
	Log         zerolog.Logger
}

// Options are presentation settings taken from config.
type Options struct {
	StartPage     router.Page
	Money         money.Formatter
	ReferralBase  string
	MinWithdrawal int64
}

func New(ctx context.Context, deps Deps, opts Options) *App {
	if deps.Catalog == nil {
		deps.Catalog = catalog.Default()
	}
	if deps.Theme == nil {
		deps.Theme = theme.NewMemory(theme.Light)
	}
	if deps.Clipboard == nil {
		deps.Clipboard = referral.SystemClipboard{}
	}
	if deps.Payments == nil {
		deps.Payments = submit.Simulated[wizard.Request]{Delay: submit.DefaultDelay}
	}
	if deps.Withdrawals == nil {
		deps.Withdrawals = submit.Simulated[dashboard.WithdrawRequest]{Delay: submit.DefaultDelay}
	}
	if opts.Money.Currency() == "" {
		opts.Money = money.NewFormatter("en", money.DefaultCurrency)
	}
	if opts.ReferralBase == "" {
		opts.ReferralBase = referral.DefaultBaseURL
	}
	a := &App{
		ctx:      ctx,
		deps:     deps,
		opts:     opts,
		log:      deps.Log,
		sessions: &session.Holder{},
		spinner:  spinner.New(spinner.WithSpinner(spinner.Dot)),
	}
	a.router = router.New(router.Landing, router.ScrollerFunc(func() { a.scroll = 0 }))
	a.navigate(opts.StartPage)
	return a
}

func (a *App) Init() tea.Cmd {
	if a.auth != nil {
		return a.auth.focusCmd()
	}
	return nil
}

// Page returns the page being shown.
func (a *App) Page() router.Page { return a.router.Current() }

// Session returns the signed-in session, if any.
func (a *App) Session() (session.Session, bool) { return a.sessions.Current() }

// Theme returns the active theme.
func (a *App) Theme() theme.Theme { return a.deps.Theme.Current() }

// Status returns the footer message.
func (a *App) Status() string { return a.status }

// navigate switches pages. Entering the auth page always mounts a fresh
// wizard; entering a dashboard resets its tabs.
func (a *App) navigate(page router.Page) tea.Cmd {
	from := a.router.Current()
	a.router.Navigate(page)
	to := a.router.Current()
	a.log.Debug().Str("from", string(from)).Str("to", string(to)).Msg("navigate")

	// A pending submission belongs to the form it was started from.
	if from == router.Auth {
		a.paymentFlight.Cancel()
	}
	if from != to && (from == router.Dashboard || from == router.YouTuberDashboard) {
		a.withdrawFlight.Cancel()
	}

	a.auth = nil
	switch to {
	case router.Auth:
		a.auth = newAuthView(wizard.New(a.deps.Catalog))
		return a.auth.focusCmd()
	case router.Dashboard, router.YouTuberDashboard:
		if a.dash == nil || a.dash.page != to {
			a.dash = newDashView(to, a.opts.MinWithdrawal)
		}
	default:
		a.dash = nil
	}
	return nil
}

func (a *App) login(role session.Role) tea.Cmd {
	s := session.Simulated(role, a.auth.wizard.Form().Email)
	a.sessions.Begin(s)
	a.log.Info().Str("session", s.ID).Str("role", string(role)).Msg("login")
	a.status = ""
	a.dash = nil
	return a.navigate(router.DashboardFor(role))
}

func (a *App) logout() tea.Cmd {
	if s, ok := a.sessions.Current(); ok {
		a.log.Info().Str("session", s.ID).Msg("logout")
	}
	a.withdrawFlight.Cancel()
	a.sessions.End()
	a.status = ""
	a.dash = nil
	return a.navigate(router.Landing)
}

func (a *App) toggleTheme() {
	t := a.deps.Theme.Toggle()
	a.log.Debug().Str("theme", string(t)).Msg("theme toggled")
}

func (a *App) quit() tea.Cmd {
	a.paymentFlight.Cancel()
	a.withdrawFlight.Cancel()
	return tea.Quit
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = m.Width, m.Height
	case tea.KeyMsg:
		switch m.String() {
		case "ctrl+c":
			return a, a.quit()
		case "ctrl+t":
			a.toggleTheme()
			return a, nil
		}
		switch a.router.Current() {
		case router.Auth:
			return a, a.handleAuthKey(m)
		case router.Dashboard, router.YouTuberDashboard:
			return a, a.handleDashboardKey(m)
		default:
			return a, a.handlePageKey(m)
		}
	case spinner.TickMsg:
		if !a.paymentFlight.Pending() && !a.withdrawFlight.Pending() {
			return a, nil
		}
		var cmd tea.Cmd
		a.spinner, cmd = a.spinner.Update(m)
		return a, cmd
	case paymentDoneMsg:
		a.paymentFlight.Done()
		return a, a.finishPayment(m.Result)
	case withdrawDoneMsg:
		a.withdrawFlight.Done()
		return a, a.finishWithdrawal(m.Result)
	case copiedMsg:
		if a.dash != nil {
			a.dash.copied = true
		}
		a.status = "Referral link copied: " + m.Link
	case statusMsg:
		a.status = string(m)
	case errMsg:
		a.log.Warn().Err(m.error).Msg("ui error")
		a.status = "error: " + m.Error()
	}
	return a, nil
}

// handlePageKey serves the public pages: landing and the static documents.
func (a *App) handlePageKey(m tea.KeyMsg) tea.Cmd {
	switch m.String() {
	case "q":
		return a.quit()
	case "up", "k":
		if a.scroll > 0 {
			a.scroll--
		}
	case "down", "j":
		a.scroll++
	case "l", "esc":
		return a.navigate(router.Landing)
	case "a", "s", "enter":
		return a.navigate(router.Auth)
	case "r":
		return a.navigate(router.Rules)
	case "f":
		return a.navigate(router.FAQ)
	case "t":
		return a.navigate(router.Terms)
	case "p":
		return a.navigate(router.Privacy)
	case "d":
		if s, ok := a.sessions.Current(); ok {
			return a.navigate(router.DashboardFor(s.Role))
		}
	}
	return nil
}

func (a *App) View() string {
	st := newStyles(a.Theme())
	var body string
	switch a.router.Current() {
	case router.Auth:
		body = a.renderAuth(st)
	case router.Dashboard, router.YouTuberDashboard:
		body = a.renderDashboard(st)
	case router.Rules:
		body = a.renderDocument(st, a.deps.Pages.Rules)
	case router.FAQ:
		body = a.renderDocument(st, a.deps.Pages.FAQ)
	case router.Terms:
		body = a.renderDocument(st, a.deps.Pages.Terms)
	case router.Privacy:
		body = a.renderDocument(st, a.deps.Pages.Privacy)
	default:
		body = a.renderLanding(st)
	}
	body = a.scrolled(body)
	if a.status != "" {
		body += "\n" + st.Muted.Render(a.status)
	}
	return body
}

// scrolled drops the lines above the scroll offset and clips to the window.
func (a *App) scrolled(body string) string {
	lines := strings.Split(body, "\n")
	if a.scroll >= len(lines) {
		a.scroll = max(len(lines)-1, 0)
	}
	lines = lines[a.scroll:]
	if a.height > 1 && len(lines) > a.height-1 {
		lines = lines[:a.height-1]
	}
	return strings.Join(lines, "\n")
}

type paymentDoneMsg struct {
	Result submit.Result
}

type withdrawDoneMsg struct {
	Result submit.Result
}

type copiedMsg struct {
	Link string
}

type statusMsg string

type errMsg struct{ error }
