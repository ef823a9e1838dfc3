package tui

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/jask/vidcash/internal/catalog"
	"github.com/jask/vidcash/internal/content"
	"github.com/jask/vidcash/internal/dashboard"
	"github.com/jask/vidcash/internal/logging"
	"github.com/jask/vidcash/internal/router"
	"github.com/jask/vidcash/internal/session"
	"github.com/jask/vidcash/internal/submit"
	"github.com/jask/vidcash/internal/theme"
	"github.com/jask/vidcash/internal/wizard"
)

type fakeClipboard struct {
	text string
	err  error
}

func (c *fakeClipboard) WriteAll(text string) error {
	if c.err != nil {
		return c.err
	}
	c.text = text
	return nil
}

func accept[R any]() submit.Submitter[R] {
	return submit.Func[R](func(ctx context.Context, _ R) (submit.Receipt, error) {
		return submit.Receipt{ID: "rcpt-1", SubmittedAt: time.Unix(0, 0)}, nil
	})
}

func newTestApp(t *testing.T, edit ...func(*Deps, *Options)) *App {
	t.Helper()
	deps := Deps{
		Catalog:     catalog.Default(),
		Pages:       content.MustLoad(),
		Theme:       theme.NewMemory(theme.Light),
		Clipboard:   &fakeClipboard{},
		Payments:    accept[wizard.Request](),
		Withdrawals: accept[dashboard.WithdrawRequest](),
		Log:         logging.Nop(),
	}
	var opts Options
	for _, fn := range edit {
		fn(&deps, &opts)
	}
	return New(context.Background(), deps, opts)
}

var namedKeys = map[string]tea.KeyType{
	"enter":     tea.KeyEnter,
	"esc":       tea.KeyEsc,
	"tab":       tea.KeyTab,
	"shift+tab": tea.KeyShiftTab,
	"pgdown":    tea.KeyPgDown,
	"pgup":      tea.KeyPgUp,
	"ctrl+c":    tea.KeyCtrlC,
	"ctrl+g":    tea.KeyCtrlG,
	"ctrl+n":    tea.KeyCtrlN,
	"ctrl+t":    tea.KeyCtrlT,
	"ctrl+x":    tea.KeyCtrlX,
	"ctrl+y":    tea.KeyCtrlY,
}

// press sends one key. Unnamed keys are sent as typed runes.
func press(a *App, k string) tea.Cmd {
	msg := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
	if t, ok := namedKeys[k]; ok {
		msg = tea.KeyMsg{Type: t}
	}
	_, cmd := a.Update(msg)
	return cmd
}

// collect runs cmd and flattens batches into their messages.
func collect(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, collect(c)...)
		}
		return out
	}
	return []tea.Msg{msg}
}

// settle runs cmd and feeds its results back, ignoring spinner frames.
func settle(a *App, cmd tea.Cmd) {
	for _, msg := range collect(cmd) {
		if _, ok := msg.(spinner.TickMsg); ok {
			continue
		}
		a.Update(msg)
	}
}

func login(t *testing.T, a *App, youtuber bool) {
	t.Helper()
	press(a, "a")
	require.Equal(t, router.Auth, a.Page())
	press(a, "a@b.com")
	press(a, "tab")
	press(a, "abc123")
	if youtuber {
		press(a, "ctrl+y")
	} else {
		press(a, "enter")
	}
}

func TestStartsOnLanding(t *testing.T) {
	a := newTestApp(t)
	require.Equal(t, router.Landing, a.Page())
	view := a.View()
	require.Contains(t, view, "VidCash")
	require.Contains(t, view, "Our Packages")
	require.Contains(t, view, "Diamond")
}

func TestStartPageFromOptions(t *testing.T) {
	a := newTestApp(t, func(_ *Deps, o *Options) { o.StartPage = router.FAQ })
	require.Equal(t, router.FAQ, a.Page())

	a = newTestApp(t, func(_ *Deps, o *Options) { o.StartPage = "nowhere" })
	require.Equal(t, router.Landing, a.Page())
}

func TestStaticPages(t *testing.T) {
	pages := content.MustLoad()
	a := newTestApp(t)
	for key, want := range map[string]struct {
		page  router.Page
		title string
	}{
		"r": {router.Rules, pages.Rules.Title},
		"f": {router.FAQ, pages.FAQ.Title},
		"t": {router.Terms, pages.Terms.Title},
		"p": {router.Privacy, pages.Privacy.Title},
	} {
		press(a, key)
		require.Equal(t, want.page, a.Page())
		require.Contains(t, a.View(), want.title)
		press(a, "esc")
		require.Equal(t, router.Landing, a.Page())
	}
}

func TestNavigateScrollsToTop(t *testing.T) {
	a := newTestApp(t)
	press(a, "r")
	press(a, "j")
	press(a, "j")
	require.Equal(t, 2, a.scroll)
	press(a, "f")
	require.Equal(t, 0, a.scroll)
	press(a, "j")
	press(a, "f")
	require.Equal(t, 0, a.scroll, "navigating to the current page still scrolls")
}

func TestLoginRoutesByRole(t *testing.T) {
	a := newTestApp(t)
	login(t, a, false)
	require.Equal(t, router.Dashboard, a.Page())
	s, ok := a.Session()
	require.True(t, ok)
	require.Equal(t, session.Viewer, s.Role)
	require.Equal(t, "a@b.com", s.Email)
	require.Contains(t, a.View(), "Hello, Alex Doe!")

	b := newTestApp(t)
	login(t, b, true)
	require.Equal(t, router.YouTuberDashboard, b.Page())
	s, _ = b.Session()
	require.Equal(t, session.YouTuber, s.Role)
	require.Contains(t, b.View(), "Advertiser Dashboard")
}

func TestInvalidLoginStaysOnAuth(t *testing.T) {
	a := newTestApp(t)
	press(a, "a")
	press(a, "enter")
	require.Equal(t, router.Auth, a.Page())
	_, ok := a.Session()
	require.False(t, ok)
	view := a.View()
	require.Contains(t, view, "Email is required")
	require.Contains(t, view, "Password is required")

	press(a, "x")
	require.NotContains(t, a.View(), "Email is required", "editing clears the field error")
	require.Contains(t, a.View(), "Password is required")
}

func TestLogoutReturnsToLanding(t *testing.T) {
	a := newTestApp(t)
	login(t, a, false)
	press(a, "ctrl+x")
	require.Equal(t, router.Landing, a.Page())
	_, ok := a.Session()
	require.False(t, ok)
}

func TestDashboardWithoutSessionShowsLoading(t *testing.T) {
	for _, page := range []router.Page{router.Dashboard, router.YouTuberDashboard} {
		a := newTestApp(t, func(_ *Deps, o *Options) { o.StartPage = page })
		require.Equal(t, page, a.Page())
		require.Contains(t, a.View(), "Loading...")
		require.Nil(t, press(a, "x"))
		press(a, "esc")
		require.Equal(t, router.Landing, a.Page())
	}
}

func TestAuthRemountsFreshWizard(t *testing.T) {
	a := newTestApp(t)
	press(a, "a")
	press(a, "ctrl+g")
	require.Equal(t, wizard.StepSignup, a.auth.wizard.Step())
	press(a, "someone@example.com")
	press(a, "esc")
	require.Equal(t, router.Landing, a.Page())

	press(a, "a")
	require.Equal(t, wizard.StepLogin, a.auth.wizard.Step())
	require.Empty(t, a.auth.wizard.Form().Email)
}

func TestThemeToggle(t *testing.T) {
	a := newTestApp(t)
	require.Equal(t, theme.Light, a.Theme())
	press(a, "ctrl+t")
	require.Equal(t, theme.Dark, a.Theme())
	press(a, "a")
	press(a, "ctrl+t")
	require.Equal(t, theme.Light, a.Theme(), "toggle works from any page")
	require.Equal(t, router.Auth, a.Page())
}

func TestQuitCancelsPendingSubmission(t *testing.T) {
	a := newTestApp(t, func(d *Deps, _ *Options) {
		d.Payments = submit.Simulated[wizard.Request]{Delay: time.Hour}
	})
	cmd := toSubmitted(t, a)
	require.True(t, a.paymentFlight.Pending())

	quit := press(a, "ctrl+c")
	require.NotNil(t, quit)
	require.IsType(t, tea.QuitMsg{}, quit())

	var res submit.Result
	for _, msg := range collect(cmd) {
		if done, ok := msg.(paymentDoneMsg); ok {
			res = done.Result
		}
	}
	require.ErrorIs(t, res.Err, context.Canceled)
}

func TestUnknownMessagesAreIgnored(t *testing.T) {
	a := newTestApp(t)
	_, cmd := a.Update(struct{}{})
	require.Nil(t, cmd)
	_, cmd = a.Update(tea.WindowSizeMsg{Width: 80, Height: 10})
	require.Nil(t, cmd)
	press(a, "r")
	require.LessOrEqual(t, len(strings.Split(a.View(), "\n")), 10)
}

func TestErrMsgSetsStatus(t *testing.T) {
	a := newTestApp(t)
	a.Update(errMsg{errors.New("boom")})
	require.Equal(t, "error: boom", a.Status())
	require.Contains(t, a.View(), "error: boom")
}

func writeProof(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "receipt.png")
	require.NoError(t, os.WriteFile(path, []byte("png"), 0o600))
	return path
}
