// Package catalog provides the read-only technique and monster tables
package catalog

//go:generate mockgen -destination=mock/mock_catalog.go -package=catalogmock github.com/KirkDiggler/monster-api/internal/catalog Techniques,Monsters

import (
	"fmt"

	"github.com/KirkDiggler/monster-api/internal/entities/tuxemon"
	"github.com/KirkDiggler/monster-api/internal/errors"
)

// Techniques exposes every technique definition.
// Implementations are immutable once built and safe for concurrent reads.
type Techniques interface {
	// All returns every technique in load order
	All() []*tuxemon.Technique

	// Lookup returns the technique with the given slug
	// Returns errors.NotFound if the slug is not in the catalog
	Lookup(slug string) (*tuxemon.Technique, error)
}

// Monsters exposes every monster definition
type Monsters interface {
	// All returns every monster definition in load order
	All() []*tuxemon.MonsterDefinition

	// Lookup returns the monster definition with the given slug
	// Returns errors.NotFound if the slug is not in the catalog
	Lookup(slug string) (*tuxemon.MonsterDefinition, error)
}

// table is an ordered, slug-indexed, read-only set of records
type table[T any] struct {
	kind   string
	order  []*T
	bySlug map[string]*T
	clone  func(*T) *T
}

func newTable[T any](kind string, records []*T, slug func(*T) string, clone func(*T) *T) *table[T] {
	t := &table[T]{
		kind:   kind,
		order:  make([]*T, 0, len(records)),
		bySlug: make(map[string]*T, len(records)),
		clone:  clone,
	}
	for _, r := range records {
		c := clone(r)
		t.order = append(t.order, c)
		t.bySlug[slug(c)] = c
	}
	return t
}

func (t *table[T]) all() []*T {
	out := make([]*T, len(t.order))
	for i, r := range t.order {
		out[i] = t.clone(r)
	}
	return out
}

func (t *table[T]) lookup(slug string) (*T, error) {
	r, ok := t.bySlug[slug]
	if !ok {
		return nil, errors.NotFoundf("%s %s not found", t.kind, slug).
			WithMeta("slug", slug)
	}
	return t.clone(r), nil
}

type techniqueCatalog struct {
	*table[tuxemon.Technique]
}

// NewTechniques validates the definitions and builds the catalog.
// Returns errors.InvalidArgument describing every malformed record.
func NewTechniques(techniques []*tuxemon.Technique) (Techniques, error) {
	if err := validateTechniques(techniques); err != nil {
		return nil, err
	}

	return &techniqueCatalog{
		table: newTable("technique", techniques,
			func(t *tuxemon.Technique) string { return t.Slug },
			(*tuxemon.Technique).Clone),
	}, nil
}

func (c *techniqueCatalog) All() []*tuxemon.Technique {
	return c.all()
}

func (c *techniqueCatalog) Lookup(slug string) (*tuxemon.Technique, error) {
	return c.lookup(slug)
}

func validateTechniques(techniques []*tuxemon.Technique) error {
	vb := errors.NewValidationBuilder()
	seen := make(map[string]bool, len(techniques))

	for i, t := range techniques {
		if t == nil {
			vb.Field(recordField("technique", i, ""), "cannot be nil")
			continue
		}
		field := recordField("technique", i, t.Slug)
		if t.Slug == "" {
			vb.Field(field, "slug is required")
			continue
		}
		if seen[t.Slug] {
			vb.Field(field, "duplicate slug")
		}
		seen[t.Slug] = true

		if len(t.Types) == 0 {
			vb.Field(field, "at least one element type is required")
		}
		for _, e := range t.Types {
			if !e.IsValid() {
				vb.Fieldf(field, "unknown element type %q", e)
			}
		}
	}

	return vb.Build()
}

type monsterCatalog struct {
	*table[tuxemon.MonsterDefinition]
}

// NewMonsters validates the definitions and builds the catalog
func NewMonsters(monsters []*tuxemon.MonsterDefinition) (Monsters, error) {
	vb := errors.NewValidationBuilder()
	seen := make(map[string]bool, len(monsters))
	for i, m := range monsters {
		if m == nil {
			vb.Field(recordField("monster", i, ""), "cannot be nil")
			continue
		}
		field := recordField("monster", i, m.Slug)
		if m.Slug == "" {
			vb.Field(field, "slug is required")
			continue
		}
		if seen[m.Slug] {
			vb.Field(field, "duplicate slug")
		}
		seen[m.Slug] = true
		if m.TxmnID < 0 {
			vb.Field(field, "txmn_id cannot be negative")
		}
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}

	return &monsterCatalog{
		table: newTable("monster", monsters,
			func(m *tuxemon.MonsterDefinition) string { return m.Slug },
			func(m *tuxemon.MonsterDefinition) *tuxemon.MonsterDefinition {
				c := *m
				return &c
			}),
	}, nil
}

func (c *monsterCatalog) All() []*tuxemon.MonsterDefinition {
	return c.all()
}

func (c *monsterCatalog) Lookup(slug string) (*tuxemon.MonsterDefinition, error) {
	return c.lookup(slug)
}

func recordField(kind string, index int, slug string) string {
	if slug == "" {
		return fmt.Sprintf("%s[%d]", kind, index)
	}
	return fmt.Sprintf("%s[%s]", kind, slug)
}
