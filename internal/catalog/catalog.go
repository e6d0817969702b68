package catalog

import (
	_ "embed"
	"fmt"

	"CardSentinel/internal/model"

	"gopkg.in/yaml.v3"
)

//go:embed cards.yaml
var defaultCardsYAML []byte

// Catalog is the read-only registry of cards. Build it once at startup and
// pass it in; it is safe for unsynchronized concurrent reads.
type Catalog struct {
	cards []model.Card
}

// New builds a catalog from the given cards, preserving their order. It
// returns an error on any malformed card; the process must not start with an
// invalid catalog.
func New(cards []model.Card) (*Catalog, error) {
	if len(cards) == 0 {
		return nil, fmt.Errorf("catalog has no cards")
	}
	seen := make(map[string]bool, len(cards))
	for i, c := range cards {
		if c.Name == "" {
			return nil, fmt.Errorf("card %d: name is required", i)
		}
		if seen[c.Name] {
			return nil, fmt.Errorf("card %q: duplicate name", c.Name)
		}
		seen[c.Name] = true
		if c.Unit != model.UnitPoints && c.Unit != model.UnitCashback {
			return nil, fmt.Errorf("card %q: unknown reward unit %q", c.Name, c.Unit)
		}
		if c.BaseRate < 0 {
			return nil, fmt.Errorf("card %q: negative base rate", c.Name)
		}
		for _, sp := range c.Specials {
			if sp.Category == "" {
				return nil, fmt.Errorf("card %q: special rate with empty category", c.Name)
			}
			if sp.Rate < 0 || sp.MonthlyCap < 0 {
				return nil, fmt.Errorf("card %q: invalid special rate for %q", c.Name, sp.Category)
			}
		}
		for _, v := range c.Vouchers {
			if v.Name == "" {
				return nil, fmt.Errorf("card %q: voucher rate with empty name", c.Name)
			}
			if v.Rate < 0 {
				return nil, fmt.Errorf("card %q: negative voucher rate for %q", c.Name, v.Name)
			}
			if v.MonthlyCap <= 0 {
				return nil, fmt.Errorf("card %q: voucher %q requires a positive monthly cap", c.Name, v.Name)
			}
		}
		if c.FeeWaiverSpend < 0 {
			return nil, fmt.Errorf("card %q: negative fee waiver threshold", c.Name)
		}
	}
	out := make([]model.Card, len(cards))
	copy(out, cards)
	return &Catalog{cards: out}, nil
}

// Default builds the catalog from the embedded card definitions.
func Default() (*Catalog, error) {
	var doc struct {
		Cards []model.Card `yaml:"cards"`
	}
	if err := yaml.Unmarshal(defaultCardsYAML, &doc); err != nil {
		return nil, fmt.Errorf("parse embedded catalog: %w", err)
	}
	return New(doc.Cards)
}

// Cards returns the cards in declaration order.
func (c *Catalog) Cards() []model.Card {
	out := make([]model.Card, len(c.cards))
	copy(out, c.cards)
	return out
}

// Find returns the card with the given name.
func (c *Catalog) Find(name string) (model.Card, bool) {
	for _, card := range c.cards {
		if card.Name == name {
			return card, true
		}
	}
	return model.Card{}, false
}

// FeeWaiverCard returns the first card carrying an annual fee waiver
// threshold. This is the card the fee-waiver preference steers toward.
func (c *Catalog) FeeWaiverCard() (model.Card, bool) {
	for _, card := range c.cards {
		if card.FeeWaiverSpend > 0 {
			return card, true
		}
	}
	return model.Card{}, false
}
