package catalog_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/monster-api/internal/catalog"
	"github.com/KirkDiggler/monster-api/internal/entities/tuxemon"
	"github.com/KirkDiggler/monster-api/internal/errors"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o600))
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	techDir := filepath.Join(dir, "technique")
	monDir := filepath.Join(dir, "monster")

	writeFile(t, techDir, "b_splash.yaml", "slug: splash\ntypes: [water]\nrandomly: true\n")
	writeFile(t, techDir, "a_fire_claw.json", `{"slug":"fire_claw","types":["fire"],"randomly":true,"power":1.5}`)
	writeFile(t, techDir, "README.md", "ignored")
	writeFile(t, monDir, "rockitten.json", `{"slug":"rockitten","txmn_id":1,"category":"kitten"}`)

	techniques, monsters, err := catalog.Load(dir)
	require.NoError(t, err)

	all := techniques.All()
	require.Len(t, all, 2)
	require.Equal(t, "fire_claw", all[0].Slug, "files load in lexical order")
	require.Equal(t, "splash", all[1].Slug)
	require.Equal(t, []tuxemon.ElementType{tuxemon.ElementWater}, all[1].Types)

	m, err := monsters.Lookup("rockitten")
	require.NoError(t, err)
	require.Equal(t, 1, m.TxmnID)
}

func TestLoadWithoutMonsterDir(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "technique"), "splash.yml", "slug: splash\ntypes: [water]\n")

	techniques, monsters, err := catalog.Load(dir)
	require.NoError(t, err)
	require.Len(t, techniques.All(), 1)
	require.Empty(t, monsters.All())
}

func TestLoadErrors(t *testing.T) {
	t.Run("missing technique dir", func(t *testing.T) {
		_, _, err := catalog.Load(t.TempDir())
		require.Error(t, err)
		require.True(t, errors.IsInvalidArgument(err))
	})

	t.Run("empty dir argument", func(t *testing.T) {
		_, err := catalog.LoadDir("")
		require.True(t, errors.IsInvalidArgument(err))
	})

	t.Run("malformed json", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "technique")
		writeFile(t, path, "broken.json", `{"slug":`)

		_, err := catalog.LoadDir(dir)
		require.Error(t, err)
		require.True(t, errors.IsInvalidArgument(err))
		require.Equal(t, filepath.Join(path, "broken.json"), errors.GetMeta(err)["file"])
	})

	t.Run("invalid record", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, filepath.Join(dir, "technique"), "nameless.json", `{"types":["fire"]}`)

		_, _, err := catalog.Load(dir)
		require.Error(t, err)
		require.True(t, errors.IsInvalidArgument(err))
		require.Contains(t, err.Error(), "slug is required")
	})
}
