package engine

import (
	"fmt"
	"strings"
)

// Catalog is a read-only table of named rules. Build it once at startup and
// pass it to whatever needs rule lookups.
type Catalog struct {
	rules   []Rule
	byName  map[string]int
	aliases map[string]string
}

// NewCatalog builds a catalog preserving the order of rules. Later entries
// with a duplicate name replace earlier ones.
func NewCatalog(rules ...Rule) *Catalog {
	c := &Catalog{byName: make(map[string]int, len(rules)), aliases: map[string]string{}}
	for _, r := range rules {
		if i, ok := c.byName[r.Name()]; ok {
			c.rules[i] = r
			continue
		}
		c.byName[r.Name()] = len(c.rules)
		c.rules = append(c.rules, r)
	}
	return c
}

// WithAlias returns the catalog after registering alias as another name for
// an existing rule. Unknown targets are ignored.
func (c *Catalog) WithAlias(alias, target string) *Catalog {
	if _, ok := c.byName[target]; ok {
		c.aliases[alias] = target
	}
	return c
}

// DefaultCatalog returns the built-in rule set. Every rule except xD keeps a
// live cell alive on two or three live neighbours; Standard is Conway's Life.
func DefaultCatalog() *Catalog {
	moore := Kernel{{1, 1, 1}, {1, -9, 1}, {1, 1, 1}}
	return NewCatalog(
		NewRule("Standard", moore, 3, -6, -7),
		NewRule("Diagonals", Kernel{{1, 0, 1}, {0, -9, 0}, {1, 0, 1}}, 3, -6, -7),
		NewRule("Cross", Kernel{{0, 1, 0}, {1, -9, 1}, {0, 1, 0}}, 3, -6, -7),
		NewRule("Fast Grow", moore, 3, 4, 5, 6, 7, -5, -6, -7, -8),
		NewRule("Strong", moore, 3, 4, -5, -6, -7, -8),
		NewRule("xD", moore, 1, 8, -1),
	).
		WithAlias("Diagonales", "Diagonals").
		WithAlias("Cruz", "Cross")
}

// Lookup returns the rule registered under name or one of its aliases.
func (c *Catalog) Lookup(name string) (Rule, error) {
	key := strings.TrimSpace(name)
	if target, ok := c.aliases[key]; ok {
		key = target
	}
	i, ok := c.byName[key]
	if !ok {
		return Rule{}, fmt.Errorf("%w %q (available: %s)", ErrUnknownRule, name, strings.Join(c.Names(), ", "))
	}
	return c.rules[i], nil
}

// Index returns the position of the named rule, or -1.
func (c *Catalog) Index(name string) int {
	if target, ok := c.aliases[name]; ok {
		name = target
	}
	if i, ok := c.byName[name]; ok {
		return i
	}
	return -1
}

// At returns the rule at position i, wrapping around in both directions.
func (c *Catalog) At(i int) Rule {
	n := len(c.rules)
	if n == 0 {
		return Rule{}
	}
	return c.rules[(i%n+n)%n]
}

// Len reports the number of rules.
func (c *Catalog) Len() int { return len(c.rules) }

// Names lists rule names in catalog order, aliases excluded.
func (c *Catalog) Names() []string {
	names := make([]string, len(c.rules))
	for i, r := range c.rules {
		names[i] = r.Name()
	}
	return names
}
