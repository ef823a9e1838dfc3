package dashboard

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/jask/vidcash/internal/session"
	"github.com/jask/vidcash/internal/submit"
)

// Method is a payout channel.
type Method string

const (
	JazzCash     Method = "JazzCash"
	EasyPaisa    Method = "EasyPaisa"
	BankTransfer Method = "Bank Transfer"
)

// Methods lists the payout channels in display order.
func Methods() []Method { return []Method{JazzCash, EasyPaisa, BankTransfer} }

// DefaultMinWithdrawal is the smallest payout in PKR.
const DefaultMinWithdrawal = 100

var (
	// ErrNotEligible means the session's withdrawal status blocks payouts.
	ErrNotEligible = errors.New("not eligible to withdraw")
	// ErrInvalid means the form has inline errors.
	ErrInvalid = errors.New("withdrawal form invalid")
	// ErrInFlight means a withdrawal request is already pending.
	ErrInFlight = errors.New("withdrawal already in progress")
)

// WithdrawRequest is a validated payout request.
type WithdrawRequest struct {
	Amount        int64
	Method        Method
	AccountNumber string
}

// Withdrawal is the state of the withdraw tab.
type Withdrawal struct {
	Amount        string
	Method        Method
	AccountNumber string

	MinAmount int64

	errs       map[string]string
	submitting bool
	notice     string
}

// NewWithdrawal returns an empty form. min <= 0 means DefaultMinWithdrawal.
func NewWithdrawal(min int64) *Withdrawal {
	if min <= 0 {
		min = DefaultMinWithdrawal
	}
	return &Withdrawal{Method: JazzCash, MinAmount: min, errs: map[string]string{}}
}

var validate = validator.New()

// Errors returns the inline errors keyed by "amount" and "account".
func (w *Withdrawal) Errors() map[string]string {
	out := make(map[string]string, len(w.errs))
	for k, v := range w.errs {
		out[k] = v
	}
	return out
}

// Submitting reports whether a request is pending.
func (w *Withdrawal) Submitting() bool { return w.submitting }

// Notice is the message left by the last finished request.
func (w *Withdrawal) Notice() string { return w.notice }

// SetAmount edits the amount and clears its error.
func (w *Withdrawal) SetAmount(s string) {
	w.Amount = s
	delete(w.errs, "amount")
}

// SetAccount edits the account number and clears its error.
func (w *Withdrawal) SetAccount(s string) {
	w.AccountNumber = s
	delete(w.errs, "account")
}

// CycleMethod moves to the next payout channel.
func (w *Withdrawal) CycleMethod() {
	ms := Methods()
	for i, m := range ms {
		if m == w.Method {
			w.Method = ms[(i+1)%len(ms)]
			return
		}
	}
	w.Method = ms[0]
}

// Begin validates the form against the session and enters the pending
// state.
func (w *Withdrawal) Begin(s session.Session) (WithdrawRequest, error) {
	if w.submitting {
		return WithdrawRequest{}, ErrInFlight
	}
	if !s.CanWithdraw() {
		return WithdrawRequest{}, fmt.Errorf("%w: %s", ErrNotEligible, s.WithdrawalStatus)
	}
	w.errs = map[string]string{}
	amount, err := strconv.ParseInt(strings.TrimSpace(w.Amount), 10, 64)
	switch {
	case strings.TrimSpace(w.Amount) == "":
		w.errs["amount"] = "Amount is required"
	case err != nil:
		w.errs["amount"] = "Amount must be a whole number"
	case validate.Var(amount, fmt.Sprintf("min=%d", w.MinAmount)) != nil:
		w.errs["amount"] = fmt.Sprintf("Minimum withdrawal: %d PKR", w.MinAmount)
	case validate.Var(amount, fmt.Sprintf("max=%d", s.Balance)) != nil:
		w.errs["amount"] = "Amount exceeds your balance"
	}
	if validate.Var(strings.TrimSpace(w.AccountNumber), "required") != nil {
		w.errs["account"] = "Account number is required"
	}
	if len(w.errs) > 0 {
		return WithdrawRequest{}, ErrInvalid
	}
	w.submitting = true
	w.notice = ""
	return WithdrawRequest{Amount: amount, Method: w.Method, AccountNumber: strings.TrimSpace(w.AccountNumber)}, nil
}

// Finish leaves the pending state. Success clears the form.
func (w *Withdrawal) Finish(res submit.Result) {
	if !w.submitting {
		return
	}
	w.submitting = false
	if !res.OK() {
		w.notice = "Withdrawal request failed. Please try again."
		return
	}
	w.Amount = ""
	w.AccountNumber = ""
	w.notice = "Withdrawal request submitted."
}
