// Package content carries the static copy shown on informational pages.
package content

import (
	_ "embed"
	"fmt"

	"github.com/BurntSushi/toml"
)

//go:embed pages.toml
var document []byte

// Section is a heading with one paragraph.
type Section struct {
	Heading string `toml:"heading"`
	Text    string `toml:"text"`
}

// Document is a titled list of sections.
type Document struct {
	Title    string    `toml:"title"`
	Intro    string    `toml:"intro"`
	Sections []Section `toml:"section"`
}

// Testimonial is a quote on the landing page.
type Testimonial struct {
	Name string `toml:"name"`
	Role string `toml:"role"`
	Text string `toml:"text"`
}

// Landing is the marketing copy of the front page.
type Landing struct {
	Headline string   `toml:"headline"`
	Steps    []string `toml:"steps"`
}

// Pages is every static page.
type Pages struct {
	Landing      Landing       `toml:"landing"`
	Testimonials []Testimonial `toml:"testimonial"`
	Rules        Document      `toml:"rules"`
	FAQ          Document      `toml:"faq"`
	Terms        Document      `toml:"terms"`
	Privacy      Document      `toml:"privacy"`
}

// Load decodes the embedded copy.
func Load() (Pages, error) {
	var p Pages
	if _, err := toml.Decode(string(document), &p); err != nil {
		return Pages{}, fmt.Errorf("decode content: %w", err)
	}
	return p, nil
}

// MustLoad is Load for callers that cannot recover from a broken build.
func MustLoad() Pages {
	p, err := Load()
	if err != nil {
		panic(err)
	}
	return p
}
