package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/vidcash/internal/router"
	"github.com/jask/vidcash/internal/session"
	"github.com/jask/vidcash/internal/submit"
	"github.com/jask/vidcash/internal/wizard"
)

// authView is the mounted auth page: the wizard plus its text inputs.
// Inputs are shared across steps the way the form data is.
type authView struct {
	wizard   *wizard.Wizard
	inputs   map[wizard.Field]*textinput.Model
	focus    int
	cursor   int
	proofErr string
}

type fieldSpec struct {
	label       string
	placeholder string
	secret      bool
}

var fieldSpecs = map[wizard.Field]fieldSpec{
	wizard.FieldEmail:      {label: "Email", placeholder: "m@example.com"},
	wizard.FieldPassword:   {label: "Password", secret: true},
	wizard.FieldPhone:      {label: "Phone Number", placeholder: "03001234567"},
	wizard.FieldCode:       {label: "Verification Code", placeholder: "123456"},
	wizard.FieldTID:        {label: "Transaction ID (TID)", placeholder: "Enter the transaction ID"},
	wizard.FieldScreenshot: {label: "Payment Screenshot", placeholder: "path/to/screenshot.png"},
}

func newAuthView(w *wizard.Wizard) *authView {
	v := &authView{wizard: w, inputs: make(map[wizard.Field]*textinput.Model, len(fieldSpecs))}
	for f, fs := range fieldSpecs {
		in := textinput.New()
		in.Placeholder = fs.placeholder
		in.Prompt = ""
		in.CharLimit = 256
		if fs.secret {
			in.EchoMode = textinput.EchoPassword
		}
		v.inputs[f] = &in
	}
	return v
}

// stepFields lists the inputs shown on a step, in tab order.
func stepFields(s wizard.Step) []wizard.Field {
	switch s {
	case wizard.StepLogin:
		return []wizard.Field{wizard.FieldEmail, wizard.FieldPassword}
	case wizard.StepSignup:
		return []wizard.Field{wizard.FieldEmail, wizard.FieldPhone, wizard.FieldPassword}
	case wizard.StepVerify:
		return []wizard.Field{wizard.FieldCode}
	case wizard.StepPayment:
		return []wizard.Field{wizard.FieldTID, wizard.FieldScreenshot}
	}
	return nil
}

// focusCmd focuses the input at v.focus and blurs the rest.
func (v *authView) focusCmd() tea.Cmd {
	fields := stepFields(v.wizard.Step())
	for _, in := range v.inputs {
		in.Blur()
	}
	if len(fields) == 0 || v.wizard.Completed() {
		return nil
	}
	v.focus = (v.focus%len(fields) + len(fields)) % len(fields)
	return v.inputs[fields[v.focus]].Focus()
}

func (v *authView) focused() (wizard.Field, bool) {
	fields := stepFields(v.wizard.Step())
	if len(fields) == 0 {
		return "", false
	}
	return fields[v.focus%len(fields)], true
}

// enterStep resets focus after the wizard moved.
func (v *authView) enterStep() tea.Cmd {
	v.focus = 0
	return v.focusCmd()
}

func (a *App) handleAuthKey(m tea.KeyMsg) tea.Cmd {
	v := a.auth
	w := v.wizard
	if m.String() == "esc" {
		return a.navigate(router.Landing)
	}
	switch w.Step() {
	case wizard.StepLogin:
		switch m.String() {
		case "enter":
			return a.submitLogin(session.Viewer)
		case "ctrl+y":
			return a.submitLogin(session.YouTuber)
		case "ctrl+g":
			if w.GoToSignup() == nil {
				return v.enterStep()
			}
			return nil
		}
	case wizard.StepSignup:
		switch m.String() {
		case "enter":
			if w.ContinueSignup() == nil {
				return v.enterStep()
			}
			return nil
		case "ctrl+g":
			if w.GoToLogin() == nil {
				return v.enterStep()
			}
			return nil
		}
	case wizard.StepVerify:
		if m.String() == "enter" {
			if w.Verify() == nil {
				return v.enterStep()
			}
			return nil
		}
	case wizard.StepPackage:
		return a.handlePackageKey(m)
	case wizard.StepPayment:
		if w.Completed() {
			if m.String() == "enter" || m.String() == "q" {
				return a.navigate(router.Landing)
			}
			return nil
		}
		switch m.String() {
		case "enter":
			return a.submitPayment()
		case "ctrl+n":
			if !w.Submitting() {
				w.SetPaymentMethod(nextMethod(w.PaymentMethod()))
			}
			return nil
		}
	}
	switch m.String() {
	case "tab", "down":
		v.focus++
		return v.focusCmd()
	case "shift+tab", "up":
		v.focus--
		return v.focusCmd()
	}
	return v.edit(m)
}

// edit forwards a key to the focused input and records changed values.
func (v *authView) edit(m tea.KeyMsg) tea.Cmd {
	f, ok := v.focused()
	if !ok || v.wizard.Submitting() {
		return nil
	}
	in := v.inputs[f]
	before := in.Value()
	updated, cmd := in.Update(m)
	*in = updated
	if in.Value() == before {
		return cmd
	}
	if f == wizard.FieldScreenshot {
		v.proofErr = ""
		v.wizard.AttachProof(nil)
	} else {
		v.wizard.SetField(f, in.Value())
	}
	return cmd
}

func (a *App) handlePackageKey(m tea.KeyMsg) tea.Cmd {
	v := a.auth
	cat := a.deps.Catalog
	switch k := m.String(); k {
	case "up", "k", "shift+tab":
		if v.cursor > 0 {
			v.cursor--
		}
	case "down", "j", "tab":
		if v.cursor < cat.Len()-1 {
			v.cursor++
		}
	case "enter":
		return a.selectPackage(v.cursor)
	default:
		if len(k) == 1 && k[0] >= '1' && k[0] <= '9' {
			return a.selectPackage(int(k[0] - '1'))
		}
	}
	return nil
}

func (a *App) selectPackage(i int) tea.Cmd {
	p, ok := a.deps.Catalog.At(i)
	if !ok {
		return nil
	}
	if err := a.auth.wizard.SelectPackage(p.Tier); err != nil {
		return func() tea.Msg { return errMsg{err} }
	}
	return a.auth.enterStep()
}

func (a *App) submitLogin(role session.Role) tea.Cmd {
	if _, err := a.auth.wizard.Login(role); err != nil {
		return nil
	}
	return a.login(role)
}

// attachProof resolves the screenshot path into an attachment.
func (v *authView) attachProof() {
	path := strings.TrimSpace(v.inputs[wizard.FieldScreenshot].Value())
	v.proofErr = ""
	if path == "" {
		return
	}
	info, err := os.Stat(path)
	switch {
	case err != nil:
		v.proofErr = fmt.Sprintf("cannot read %s", path)
		v.wizard.AttachProof(nil)
	case info.IsDir():
		v.proofErr = fmt.Sprintf("%s is a directory", path)
		v.wizard.AttachProof(nil)
	default:
		v.wizard.AttachProof(&wizard.Attachment{Name: filepath.Base(path), Size: info.Size()})
	}
}

func (a *App) submitPayment() tea.Cmd {
	w := a.auth.wizard
	if w.Submitting() {
		return nil
	}
	a.auth.attachProof()
	req, err := w.BeginSubmit()
	if err != nil {
		return nil
	}
	ctx, ok := a.paymentFlight.Start(a.ctx)
	if !ok {
		w.FinishSubmit(submit.Result{Err: wizard.ErrSubmitInFlight})
		return nil
	}
	for _, in := range a.auth.inputs {
		in.Blur()
	}
	a.log.Info().
		Str("package", string(req.Package.Tier)).
		Str("method", string(req.Method)).
		Msg("payment submitted")
	payments := a.deps.Payments
	return tea.Batch(a.spinner.Tick, func() tea.Msg {
		return paymentDoneMsg{Result: submit.Run(ctx, payments, req)}
	})
}

func (a *App) finishPayment(res submit.Result) tea.Cmd {
	if a.auth == nil || !a.auth.wizard.Submitting() {
		a.log.Debug().Err(res.Err).Msg("payment result dropped")
		return nil
	}
	a.auth.wizard.FinishSubmit(res)
	if !res.OK() {
		a.log.Warn().Err(res.Err).Msg("payment failed")
		return a.auth.focusCmd()
	}
	a.log.Info().Str("receipt", res.Receipt.ID).Msg("payment accepted")
	return nil
}

func nextMethod(m wizard.PaymentMethod) wizard.PaymentMethod {
	ms := wizard.PaymentMethods()
	for i, x := range ms {
		if x == m {
			return ms[(i+1)%len(ms)]
		}
	}
	return ms[0]
}

func (a *App) renderAuth(st styles) string {
	v := a.auth
	w := v.wizard
	var b strings.Builder
	b.WriteString(a.renderHeader(st) + "\n\n")

	switch w.Step() {
	case wizard.StepLogin:
		b.WriteString(st.Title.Render("Welcome Back") + "\n")
		b.WriteString(st.Muted.Render("Login to your account") + "\n\n")
		b.WriteString(v.renderFields(st))
		b.WriteString("\n" + st.Button.Render("Login as Viewer") + "  " + st.Button.Render("Login as YouTuber") + "\n")
		b.WriteString(st.Muted.Render("Don't have an account? Sign Up") + "\n")
		b.WriteString("[enter] Login  [ctrl+y] Login as YouTuber  [ctrl+g] Sign Up  [esc] Home")
	case wizard.StepSignup:
		b.WriteString(st.Title.Render("Create an Account") + "\n")
		b.WriteString(st.Muted.Render("Enter your details to get started.") + "\n\n")
		b.WriteString(v.renderFields(st))
		b.WriteString("\n" + st.Button.Render("Continue") + "\n")
		b.WriteString(st.Muted.Render("Already have an account? Login") + "\n")
		b.WriteString("[enter] Continue  [ctrl+g] Login  [esc] Home")
	case wizard.StepVerify:
		b.WriteString(st.Title.Render("Two-Step Verification") + "\n")
		b.WriteString(st.Muted.Render("We've sent a code to your email. Please enter it below.") + "\n\n")
		b.WriteString(v.renderFields(st))
		b.WriteString("\n" + st.Button.Render("Verify & Continue") + "\n")
		b.WriteString("[enter] Verify  [esc] Home")
	case wizard.StepPackage:
		b.WriteString(a.renderPackages(st))
	case wizard.StepPayment:
		b.WriteString(a.renderPayment(st))
	}
	return b.String()
}

func (v *authView) renderFields(st styles) string {
	var b strings.Builder
	focused, _ := v.focused()
	for _, f := range stepFields(v.wizard.Step()) {
		label := fieldSpecs[f].label
		if f == focused && !v.wizard.Submitting() {
			b.WriteString(st.Selected.Render("> "+label) + "\n")
		} else {
			b.WriteString(st.Label.Render("  "+label) + "\n")
		}
		b.WriteString("  " + v.inputs[f].View() + "\n")
		if msg := v.wizard.Error(f); msg != "" {
			b.WriteString("  " + st.Error.Render(msg) + "\n")
		} else if f == wizard.FieldScreenshot && v.proofErr != "" {
			b.WriteString("  " + st.Error.Render(v.proofErr) + "\n")
		}
	}
	return b.String()
}

func (a *App) renderPackages(st styles) string {
	var b strings.Builder
	b.WriteString(st.Title.Render("Choose Your Package") + "\n")
	b.WriteString(st.Muted.Render("Select a package to start your earning journey.") + "\n\n")
	for i, p := range a.deps.Catalog.All() {
		card := fmt.Sprintf("%s\n%s\n%d videos/day\n%s per referral\n%s commission",
			st.Brand.Render(string(p.Tier)),
			st.Label.Render(a.opts.Money.Amount(p.Price)),
			p.DailyVideoQuota,
			a.opts.Money.Amount(p.ReferralBonus),
			a.opts.Money.Percent(p.ReferralCommissionPercent))
		style := st.Card
		if i == a.auth.cursor {
			style = st.Featured
		}
		b.WriteString(fmt.Sprintf("[%d]\n", i+1) + style.Render(card) + "\n")
	}
	b.WriteString("[up/down] Move  [enter] Choose  [1-9] Pick  [esc] Home")
	return b.String()
}

func (a *App) renderPayment(st styles) string {
	w := a.auth.wizard
	var b strings.Builder
	if w.Completed() {
		b.WriteString(st.Title.Render("Submission Received!") + "\n\n")
		b.WriteString(st.Success.Render(w.Confirmation()) + "\n\n")
		b.WriteString(st.Button.Render("Back to Home") + "\n")
		b.WriteString("[enter] Home")
		return b.String()
	}
	// SelectedPackage always holds here: the payment step is entered only
	// through SelectPackage.
	pkg, _ := w.SelectedPackage()
	b.WriteString(st.Title.Render("Final Step: Payment") + "\n")
	b.WriteString(fmt.Sprintf("Send %s to one of the accounts below to activate your %s package.\n\n",
		a.opts.Money.Amount(pkg.Price), st.Brand.Render(string(pkg.Tier))))

	var methods []string
	for _, m := range wizard.PaymentMethods() {
		if m == w.PaymentMethod() {
			methods = append(methods, st.Button.Render(string(m)))
		} else {
			methods = append(methods, st.Muted.Render(string(m)))
		}
	}
	b.WriteString(strings.Join(methods, " ") + "\n")
	payee := wizard.PayeeFor(w.PaymentMethod())
	details := fmt.Sprintf("Account Title: %s\nAccount Number: %s", payee.AccountTitle, payee.AccountNumber)
	if payee.BankName != "" {
		details += "\nBank Name: " + payee.BankName
	}
	b.WriteString(st.Card.Render(details) + "\n\n")
	b.WriteString(a.auth.renderFields(st))
	if w.Submitting() {
		b.WriteString("\n" + st.Disabled.Render(a.spinner.View()+" Submitting...") + "\n")
	} else {
		b.WriteString("\n" + st.Button.Render("Submit for Verification") + "\n")
	}
	if msg := w.Failure(); msg != "" {
		b.WriteString(st.Error.Render(msg) + "\n")
	}
	b.WriteString("[enter] Submit  [ctrl+n] Payment method  [tab] Next field  [esc] Home")
	return b.String()
}
