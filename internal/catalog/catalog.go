// Package catalog holds the read-only list of activation packages.
package catalog

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

//go:embed packages.toml
var defaultDocument []byte

// Tier names a package.
type Tier string

const (
	Bronze  Tier = "Bronze"
	Silver  Tier = "Silver"
	Gold    Tier = "Gold"
	Diamond Tier = "Diamond"
)

// Tiers lists every known tier, cheapest first.
func Tiers() []Tier {
	return []Tier{Bronze, Silver, Gold, Diamond}
}

// Valid reports whether t is a known tier.
func (t Tier) Valid() bool {
	switch t {
	case Bronze, Silver, Gold, Diamond:
		return true
	}
	return false
}

// ErrInvalidCatalog is returned when a catalog document fails validation.
var ErrInvalidCatalog = errors.New("invalid catalog")

// Package is one pricing plan. Prices and bonuses are whole PKR.
type Package struct {
	Tier                      Tier    `toml:"tier"`
	Price                     int64   `toml:"price"`
	DailyVideoQuota           int     `toml:"daily_video_quota"`
	ReferralBonus             int64   `toml:"referral_bonus"`
	ReferralCommissionPercent float64 `toml:"referral_commission_percent"`
	Featured                  bool    `toml:"featured"`
}

// Catalog is an immutable, ordered set of packages.
type Catalog struct {
	packages []Package
	byTier   map[Tier]int
}

type document struct {
	Packages []Package `toml:"package"`
}

// Default returns the embedded catalog.
func Default() *Catalog {
	c, err := Parse(defaultDocument)
	if err != nil {
		panic(fmt.Sprintf("catalog: embedded document: %v", err))
	}
	return c
}

// Load reads a catalog document from path. An empty path yields Default().
func Load(path string) (*Catalog, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog %s: %w", path, err)
	}
	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("catalog %s: %w", path, err)
	}
	return c, nil
}

// Parse decodes and validates a TOML catalog document.
func Parse(data []byte) (*Catalog, error) {
	var doc document
	if err := toml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	if len(doc.Packages) == 0 {
		return nil, fmt.Errorf("%w: no packages", ErrInvalidCatalog)
	}
	c := &Catalog{
		packages: make([]Package, 0, len(doc.Packages)),
		byTier:   make(map[Tier]int, len(doc.Packages)),
	}
	for _, p := range doc.Packages {
		if !p.Tier.Valid() {
			return nil, fmt.Errorf("%w: unknown tier %q", ErrInvalidCatalog, p.Tier)
		}
		if _, dup := c.byTier[p.Tier]; dup {
			return nil, fmt.Errorf("%w: duplicate tier %q", ErrInvalidCatalog, p.Tier)
		}
		if p.Price <= 0 {
			return nil, fmt.Errorf("%w: %s price must be positive", ErrInvalidCatalog, p.Tier)
		}
		if p.DailyVideoQuota < 0 || p.ReferralBonus < 0 || p.ReferralCommissionPercent < 0 {
			return nil, fmt.Errorf("%w: %s has a negative quota or bonus", ErrInvalidCatalog, p.Tier)
		}
		c.byTier[p.Tier] = len(c.packages)
		c.packages = append(c.packages, p)
	}
	return c, nil
}

// All returns the packages in catalog order. The slice is a copy.
func (c *Catalog) All() []Package {
	out := make([]Package, len(c.packages))
	copy(out, c.packages)
	return out
}

// Len returns the number of packages.
func (c *Catalog) Len() int { return len(c.packages) }

// At returns the package at index i in catalog order.
func (c *Catalog) At(i int) (Package, bool) {
	if i < 0 || i >= len(c.packages) {
		return Package{}, false
	}
	return c.packages[i], true
}

// Lookup finds a package by tier.
func (c *Catalog) Lookup(t Tier) (Package, bool) {
	i, ok := c.byTier[t]
	if !ok {
		return Package{}, false
	}
	return c.packages[i], true
}

// Featured returns the first featured package, if any.
func (c *Catalog) Featured() (Package, bool) {
	for _, p := range c.packages {
		if p.Featured {
			return p, true
		}
	}
	return Package{}, false
}
