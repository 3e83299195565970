package testutils

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/monster-api/internal/catalog"
	"github.com/KirkDiggler/monster-api/internal/entities/tuxemon"
)

// Technique slugs used by the fixture catalog
const (
	TechniqueFireClaw  = "fire_claw"
	TechniqueEmber     = "ember"
	TechniqueFlameRing = "flame_ring"
	TechniqueFireball  = "fireball"
	TechniqueSplash    = "splash"
	TechniqueSteam     = "steam"
)

// FixtureTechniques returns a small catalog: three learnable fire
// techniques, one fire technique that is not randomly learnable, one water
// technique and one fire/water technique.
func FixtureTechniques() []*tuxemon.Technique {
	return []*tuxemon.Technique{
		{Slug: TechniqueFireClaw, Types: []tuxemon.ElementType{tuxemon.ElementFire}, Randomly: true},
		{Slug: TechniqueEmber, Types: []tuxemon.ElementType{tuxemon.ElementFire}, Randomly: true},
		{Slug: TechniqueFireball, Types: []tuxemon.ElementType{tuxemon.ElementFire}, Randomly: false},
		{Slug: TechniqueFlameRing, Types: []tuxemon.ElementType{tuxemon.ElementFire}, Randomly: true},
		{Slug: TechniqueSplash, Types: []tuxemon.ElementType{tuxemon.ElementWater}, Randomly: true},
		{Slug: TechniqueSteam, Types: []tuxemon.ElementType{tuxemon.ElementFire, tuxemon.ElementWater}, Randomly: true},
	}
}

// FixtureMonsters returns monster definitions; "prototype" has no journal
// number
func FixtureMonsters() []*tuxemon.MonsterDefinition {
	return []*tuxemon.MonsterDefinition{
		{Slug: "rockitten", TxmnID: 3},
		{Slug: "bigfin", TxmnID: 1},
		{Slug: "prototype", TxmnID: 0},
		{Slug: "fruitera", TxmnID: 2},
	}
}

// NewTechniqueCatalog builds a technique catalog or fails the test
func NewTechniqueCatalog(t *testing.T, techniques []*tuxemon.Technique) catalog.Techniques {
	t.Helper()
	c, err := catalog.NewTechniques(techniques)
	require.NoError(t, err)
	return c
}

// NewMonsterCatalog builds a monster catalog or fails the test
func NewMonsterCatalog(t *testing.T, monsters []*tuxemon.MonsterDefinition) catalog.Monsters {
	t.Helper()
	c, err := catalog.NewMonsters(monsters)
	require.NoError(t, err)
	return c
}
