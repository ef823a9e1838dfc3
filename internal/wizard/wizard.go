// Package wizard drives the login, signup and package activation flow.
//
// The flow is linear: signup, verify, package, payment. Login leaves the
// wizard altogether once its fields pass. The payment step carries the
// package it was entered with, so it cannot exist without one.
package wizard

import (
	"errors"
	"fmt"
	"maps"

	"github.com/jask/vidcash/internal/catalog"
	"github.com/jask/vidcash/internal/session"
	"github.com/jask/vidcash/internal/submit"
)

// Step is a wizard screen.
type Step string

const (
	StepLogin   Step = "login"
	StepSignup  Step = "signup"
	StepVerify  Step = "verify"
	StepPackage Step = "package"
	StepPayment Step = "payment"
)

var (
	// ErrValidation means the step's fields have inline errors.
	ErrValidation = errors.New("validation failed")
	// ErrWrongStep means the operation does not belong to the current step.
	ErrWrongStep = errors.New("operation not allowed in this step")
	// ErrUnknownPackage means the tier is not in the catalog.
	ErrUnknownPackage = errors.New("unknown package")
	// ErrSubmitInFlight means a payment submission is already pending.
	ErrSubmitInFlight = errors.New("submission already in progress")
	// ErrCompleted means the payment was already accepted.
	ErrCompleted = errors.New("payment already submitted")
)

const (
	// ConfirmationMessage replaces the payment form once accepted.
	ConfirmationMessage = "Your payment has been submitted for verification. An admin will review it and activate your account within 24 hours. You will be notified via email."
	// FailureMessage is shown under the payment form when submission fails.
	FailureMessage = "An error occurred. Please try again."
)

// Attachment is the payment proof picked by the user.
type Attachment struct {
	Name string
	Size int64
}

// Form is every input the wizard collects.
type Form struct {
	Email            string
	Password         string
	Phone            string
	VerificationCode string
	TransactionID    string
	Proof            *Attachment
}

// Request is a payment submission.
type Request struct {
	Package       catalog.Package
	Method        PaymentMethod
	TransactionID string
	Proof         Attachment
	Email         string
	Phone         string
}

// Wizard is the onboarding state machine.
type Wizard struct {
	cat    *catalog.Catalog
	step   Step
	form   Form
	errors map[Field]string

	// set only while step == StepPayment
	pkg *catalog.Package

	method       PaymentMethod
	submitting   bool
	confirmation string
	failure      string
	receipt      submit.Receipt
}

// New starts a wizard on the login step.
func New(cat *catalog.Catalog) *Wizard {
	if cat == nil {
		cat = catalog.Default()
	}
	return &Wizard{
		cat:    cat,
		step:   StepLogin,
		errors: map[Field]string{},
		method: JazzCash,
	}
}

// Catalog returns the packages offered on the package step.
func (w *Wizard) Catalog() *catalog.Catalog { return w.cat }

// Step returns the current step.
func (w *Wizard) Step() Step { return w.step }

// Form returns a copy of the collected inputs.
func (w *Wizard) Form() Form {
	f := w.form
	if f.Proof != nil {
		p := *f.Proof
		f.Proof = &p
	}
	return f
}

// Errors returns a copy of the inline errors.
func (w *Wizard) Errors() map[Field]string {
	return maps.Clone(w.errors)
}

// Error returns the inline error for f, or "".
func (w *Wizard) Error(f Field) string { return w.errors[f] }

// SetField stores a text input and clears its error. It does not
// re-validate.
func (w *Wizard) SetField(f Field, value string) {
	switch f {
	case FieldEmail:
		w.form.Email = value
	case FieldPassword:
		w.form.Password = value
	case FieldPhone:
		w.form.Phone = value
	case FieldCode:
		w.form.VerificationCode = value
	case FieldTID:
		w.form.TransactionID = value
	default:
		return
	}
	delete(w.errors, f)
}

// AttachProof sets or clears the payment proof and clears its error.
func (w *Wizard) AttachProof(a *Attachment) {
	if a == nil {
		w.form.Proof = nil
	} else {
		p := *a
		w.form.Proof = &p
	}
	delete(w.errors, FieldScreenshot)
}

// validate replaces the error map with the result of checking fields.
func (w *Wizard) validate(fields any) error {
	w.errors = check(fields)
	if len(w.errors) > 0 {
		return ErrValidation
	}
	return nil
}

// Login checks the credentials. On success the caller creates the session
// for role and routes away from the wizard; the step does not change.
func (w *Wizard) Login(role session.Role) (session.Role, error) {
	if w.step != StepLogin {
		return "", fmt.Errorf("login: %w", ErrWrongStep)
	}
	if err := w.validate(loginFields{Email: w.form.Email, Password: w.form.Password}); err != nil {
		return "", fmt.Errorf("login: %w", err)
	}
	return role, nil
}

// GoToSignup follows the "Sign Up" link on the login card.
func (w *Wizard) GoToSignup() error {
	if w.step != StepLogin {
		return fmt.Errorf("go to signup: %w", ErrWrongStep)
	}
	w.step = StepSignup
	return nil
}

// GoToLogin follows the "Login" link on the signup card.
func (w *Wizard) GoToLogin() error {
	if w.step != StepSignup {
		return fmt.Errorf("go to login: %w", ErrWrongStep)
	}
	w.step = StepLogin
	return nil
}

// ContinueSignup advances signup to verify.
func (w *Wizard) ContinueSignup() error {
	if w.step != StepSignup {
		return fmt.Errorf("signup: %w", ErrWrongStep)
	}
	fields := signupFields{Email: w.form.Email, Password: w.form.Password, Phone: w.form.Phone}
	if err := w.validate(fields); err != nil {
		return fmt.Errorf("signup: %w", err)
	}
	w.step = StepVerify
	return nil
}

// Verify advances verify to package. Any non-empty code is accepted.
func (w *Wizard) Verify() error {
	if w.step != StepVerify {
		return fmt.Errorf("verify: %w", ErrWrongStep)
	}
	if err := w.validate(verifyFields{Code: w.form.VerificationCode}); err != nil {
		return fmt.Errorf("verify: %w", err)
	}
	w.step = StepPackage
	return nil
}

// SelectPackage picks a package and enters the payment step with it.
func (w *Wizard) SelectPackage(t catalog.Tier) error {
	if w.step != StepPackage {
		return fmt.Errorf("select package: %w", ErrWrongStep)
	}
	p, ok := w.cat.Lookup(t)
	if !ok {
		return fmt.Errorf("select package %q: %w", t, ErrUnknownPackage)
	}
	w.pkg = &p
	w.step = StepPayment
	return nil
}

// SelectedPackage returns the package the payment step was entered with.
func (w *Wizard) SelectedPackage() (catalog.Package, bool) {
	if w.pkg == nil {
		return catalog.Package{}, false
	}
	return *w.pkg, true
}

// PaymentMethod returns the chosen payment channel.
func (w *Wizard) PaymentMethod() PaymentMethod { return w.method }

// SetPaymentMethod switches the payment channel. Unknown methods are ignored.
func (w *Wizard) SetPaymentMethod(m PaymentMethod) {
	if m.Valid() {
		w.method = m
	}
}

// Submitting reports whether a payment submission is pending.
func (w *Wizard) Submitting() bool { return w.submitting }

// Confirmation returns the success message once the payment is accepted.
func (w *Wizard) Confirmation() string { return w.confirmation }

// Failure returns the message of the last failed submission.
func (w *Wizard) Failure() string { return w.failure }

// Receipt returns the receipt of the accepted payment.
func (w *Wizard) Receipt() submit.Receipt { return w.receipt }

// Completed reports whether the confirmation has replaced the form.
func (w *Wizard) Completed() bool { return w.confirmation != "" }

// BeginSubmit validates the payment fields and enters the pending state.
// While pending, further calls fail with ErrSubmitInFlight.
func (w *Wizard) BeginSubmit() (Request, error) {
	if w.step != StepPayment || w.pkg == nil {
		return Request{}, fmt.Errorf("submit payment: %w", ErrWrongStep)
	}
	if w.Completed() {
		return Request{}, fmt.Errorf("submit payment: %w", ErrCompleted)
	}
	if w.submitting {
		return Request{}, fmt.Errorf("submit payment: %w", ErrSubmitInFlight)
	}
	if err := w.validate(paymentFields{TID: w.form.TransactionID, Proof: w.form.Proof}); err != nil {
		return Request{}, fmt.Errorf("submit payment: %w", err)
	}
	w.submitting = true
	w.failure = ""
	return Request{
		Package:       *w.pkg,
		Method:        w.method,
		TransactionID: w.form.TransactionID,
		Proof:         *w.form.Proof,
		Email:         w.form.Email,
		Phone:         w.form.Phone,
	}, nil
}

// FinishSubmit leaves the pending state with the submission outcome. It is
// a no-op when nothing is pending.
func (w *Wizard) FinishSubmit(res submit.Result) {
	if !w.submitting {
		return
	}
	w.submitting = false
	if !res.OK() {
		w.failure = FailureMessage
		return
	}
	w.receipt = res.Receipt
	w.confirmation = ConfirmationMessage
}
