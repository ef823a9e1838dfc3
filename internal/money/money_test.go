package money

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAmount(t *testing.T) {
	f := NewFormatter("en", "PKR")
	tests := []struct {
		in   int64
		want string
	}{
		{0, "0 PKR"},
		{500, "500 PKR"},
		{12500, "12,500 PKR"},
		{1234567, "1,234,567 PKR"},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, f.Amount(tt.in))
	}
}

func TestDefaults(t *testing.T) {
	f := NewFormatter("not a tag!!", "")
	require.Equal(t, DefaultCurrency, f.Currency())
	require.Equal(t, "7,000 PKR", f.Amount(7000))
}

func TestZeroFormatter(t *testing.T) {
	var f Formatter
	require.Equal(t, "2500", f.Number(2500))
}

func TestPercent(t *testing.T) {
	f := NewFormatter("en", "PKR")
	require.Equal(t, "2.5%", f.Percent(2.5))
	require.Equal(t, "10%", f.Percent(10))
}
