package wizard

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidEmail(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"a@b.com", true},
		{"alex.doe@example.com", true},
		{"abc", false},
		{"abc@def", false},
		{"@b.com", false},
		{"a@.com", false},
		{"", false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			require.Equal(t, tt.want, ValidEmail(tt.in))
		})
	}
}

func TestCheckPassword(t *testing.T) {
	tests := []struct {
		password string
		want     string
	}{
		{"", "Password is required"},
		{"abc12", "Password must be at least 6 characters"},
		{"abc123", ""},
	}
	for _, tt := range tests {
		t.Run(tt.password, func(t *testing.T) {
			errs := check(loginFields{Email: "a@b.com", Password: tt.password})
			require.Equal(t, tt.want, errs[FieldPassword])
		})
	}
}

func TestCheckReportsOnlyFailingFields(t *testing.T) {
	errs := check(signupFields{Email: "abc", Password: "abc123"})
	require.Equal(t, map[Field]string{
		FieldEmail: "Email is invalid",
		FieldPhone: "Phone number is required",
	}, errs)

	require.Empty(t, check(verifyFields{Code: "123456"}))
	require.Empty(t, check(paymentFields{TID: "T1", Proof: &Attachment{Name: "proof.png"}}))
}
