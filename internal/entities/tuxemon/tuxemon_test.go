package tuxemon_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/monster-api/internal/entities/tuxemon"
	"github.com/KirkDiggler/monster-api/internal/errors"
)

func TestParseElementType(t *testing.T) {
	testCases := []struct {
		in      string
		want    tuxemon.ElementType
		wantErr bool
	}{
		{in: "fire", want: tuxemon.ElementFire},
		{in: " Water ", want: tuxemon.ElementWater},
		{in: "AETHER", want: tuxemon.ElementAether},
		{in: "plasma", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := tuxemon.ParseElementType(tc.in)
			if tc.wantErr {
				require.Error(t, err)
				assert.True(t, errors.IsInvalidArgument(err))
				assert.Equal(t, tc.in, errors.GetMeta(err)["element"])
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestAllElementTypesIsACopy(t *testing.T) {
	all := tuxemon.AllElementTypes()
	require.Len(t, all, 6)
	all[0] = "changed"
	assert.Equal(t, tuxemon.ElementAether, tuxemon.AllElementTypes()[0])
}

func TestTechniqueHasTypeAndClone(t *testing.T) {
	steam := &tuxemon.Technique{
		Slug:     "steam",
		Types:    []tuxemon.ElementType{tuxemon.ElementFire, tuxemon.ElementWater},
		Randomly: true,
	}
	assert.True(t, steam.HasType(tuxemon.ElementWater))
	assert.False(t, steam.HasType(tuxemon.ElementEarth))

	clone := steam.Clone()
	require.Equal(t, steam, clone)
	clone.Types[0] = tuxemon.ElementMetal
	assert.Equal(t, tuxemon.ElementFire, steam.Types[0])
}

func TestMonsterMoves(t *testing.T) {
	m := &tuxemon.Monster{ID: "mon-1", Slug: "rockitten", Moves: []string{"ram"}}
	assert.True(t, m.Knows("ram"))
	assert.False(t, m.Knows("ember"))

	known := m.KnownTechniques()
	known[0] = "changed"
	assert.Equal(t, "ram", m.Moves[0])

	assert.Equal(t, "mon-1", m.GetID())
	assert.Equal(t, "monster", m.GetType())
}

func TestMonsterValidate(t *testing.T) {
	var nilMonster *tuxemon.Monster
	assert.True(t, errors.IsInvalidArgument(nilMonster.Validate()))

	ok := &tuxemon.Monster{ID: "mon-1", Slug: "rockitten", Moves: []string{"a", "b", "c", "d"}}
	assert.NoError(t, ok.Validate())

	tooMany := &tuxemon.Monster{ID: "mon-1", Slug: "rockitten", Moves: []string{"a", "b", "c", "d", "e"}}
	err := tooMany.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "moves: must be between 0 and 4")
}

func TestParseSeenStatus(t *testing.T) {
	got, err := tuxemon.ParseSeenStatus("caught")
	require.NoError(t, err)
	assert.Equal(t, tuxemon.SeenStatusCaught, got)

	_, err = tuxemon.ParseSeenStatus("unseen")
	assert.True(t, errors.IsInvalidArgument(err))
}
