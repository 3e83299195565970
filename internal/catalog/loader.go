package catalog

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/monster-api/internal/entities/tuxemon"
	"github.com/KirkDiggler/monster-api/internal/errors"
)

const (
	techniqueDir = "technique"
	monsterDir   = "monster"
)

// DB is the raw content of a db directory
type DB struct {
	Techniques []*tuxemon.Technique
	Monsters   []*tuxemon.MonsterDefinition
}

// LoadDir reads a db directory laid out as
//
//	<dir>/technique/<slug>.json
//	<dir>/monster/<slug>.yaml
//
// with one record per file. Files are read in lexical order. The monster
// directory is optional; the technique directory is not.
func LoadDir(dir string) (*DB, error) {
	if dir == "" {
		return nil, errors.InvalidArgument("db directory is required")
	}

	db := &DB{}

	err := readRecords(filepath.Join(dir, techniqueDir), true, func(path string, data []byte) error {
		var t tuxemon.Technique
		if err := decode(path, data, &t); err != nil {
			return err
		}
		db.Techniques = append(db.Techniques, &t)
		return nil
	})
	if err != nil {
		return nil, err
	}

	err = readRecords(filepath.Join(dir, monsterDir), false, func(path string, data []byte) error {
		var m tuxemon.MonsterDefinition
		if err := decode(path, data, &m); err != nil {
			return err
		}
		db.Monsters = append(db.Monsters, &m)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return db, nil
}

// Load reads a db directory and builds both catalogs
func Load(dir string) (Techniques, Monsters, error) {
	db, err := LoadDir(dir)
	if err != nil {
		return nil, nil, err
	}

	techniques, err := NewTechniques(db.Techniques)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "invalid technique data in %s", dir)
	}

	monsters, err := NewMonsters(db.Monsters)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "invalid monster data in %s", dir)
	}

	return techniques, monsters, nil
}

func readRecords(dir string, required bool, fn func(path string, data []byte) error) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) && !required {
			return nil
		}
		return errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to read db directory").
			WithMeta("dir", dir)
	}

	// os.ReadDir sorts by filename
	for _, entry := range entries {
		if entry.IsDir() || !isRecordFile(entry.Name()) {
			continue
		}

		path := filepath.Join(dir, entry.Name())
		data, err := os.ReadFile(path) // #nosec G304 -- path comes from the configured db dir
		if err != nil {
			return errors.Wrapf(err, "failed to read %s", path)
		}
		if err := fn(path, data); err != nil {
			return err
		}
	}

	return nil
}

func isRecordFile(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".json", ".yaml", ".yml":
		return true
	default:
		return false
	}
}

func decode(path string, data []byte, out any) error {
	var err error
	if strings.EqualFold(filepath.Ext(path), ".json") {
		err = json.Unmarshal(data, out)
	} else {
		err = yaml.Unmarshal(data, out)
	}
	if err != nil {
		return errors.WrapWithCode(err, errors.CodeInvalidArgument, "malformed db record").
			WithMeta("file", path)
	}
	return nil
}
