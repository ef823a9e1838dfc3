// Package referral builds referral links and copies them out.
package referral

import (
	"errors"
	"net/url"
	"strings"

	"github.com/atotto/clipboard"
)

// DefaultBaseURL is the public site referral links point at.
const DefaultBaseURL = "https://vidcash.com"

// ErrNoCode is returned for an empty referral code.
var ErrNoCode = errors.New("empty referral code")

// Link returns base/ref/code.
func Link(base, code string) (string, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return "", ErrNoCode
	}
	if base == "" {
		base = DefaultBaseURL
	}
	return url.JoinPath(base, "ref", code)
}

// Clipboard receives copied text.
type Clipboard interface {
	WriteAll(text string) error
}

// SystemClipboard writes to the OS clipboard.
type SystemClipboard struct{}

func (SystemClipboard) WriteAll(text string) error {
	if clipboard.Unsupported {
		return errors.New("clipboard not available on this system")
	}
	return clipboard.WriteAll(text)
}

// Copy builds the link for code and writes it to cb.
func Copy(cb Clipboard, base, code string) (string, error) {
	link, err := Link(base, code)
	if err != nil {
		return "", err
	}
	if err := cb.WriteAll(link); err != nil {
		return "", err
	}
	return link, nil
}
