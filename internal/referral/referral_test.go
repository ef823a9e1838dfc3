package referral

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

type memClipboard struct {
	text string
	err  error
}

func (m *memClipboard) WriteAll(text string) error {
	if m.err != nil {
		return m.err
	}
	m.text = text
	return nil
}

func TestLink(t *testing.T) {
	link, err := Link("", "alex123")
	require.NoError(t, err)
	require.Equal(t, "https://vidcash.com/ref/alex123", link)

	link, err = Link("https://example.org/app/", "abc")
	require.NoError(t, err)
	require.Equal(t, "https://example.org/app/ref/abc", link)

	_, err = Link("", " ")
	require.ErrorIs(t, err, ErrNoCode)
}

func TestCopy(t *testing.T) {
	cb := &memClipboard{}
	link, err := Copy(cb, "", "alex123")
	require.NoError(t, err)
	require.Equal(t, link, cb.text)

	failing := &memClipboard{err: errors.New("no display")}
	_, err = Copy(failing, "", "alex123")
	require.Error(t, err)
}
