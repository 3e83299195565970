package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/KirkDiggler/monster-api/internal/catalog"
	"github.com/KirkDiggler/monster-api/internal/entities/tuxemon"
	redisclient "github.com/KirkDiggler/monster-api/internal/redis"
	"github.com/KirkDiggler/monster-api/internal/repositories/technique"
)

// connectRedis creates the client and checks the server answers
func connectRedis(ctx context.Context) (redisclient.Client, error) {
	client, err := redisclient.NewClient(cfg.Redis.Addr, &redisclient.Options{
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create redis client: %w", err)
	}

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to reach redis at %s: %w", cfg.Redis.Addr, err)
	}
	return client, nil
}

// loadCatalogs reads the catalog from dbDir and seeds Redis with its
// techniques, or reads the techniques back from Redis when dbDir is empty
func loadCatalogs(ctx context.Context, dbDir string, repo technique.Repository) (catalog.Techniques, catalog.Monsters, error) {
	if dbDir != "" {
		techniques, monsters, err := catalog.Load(dbDir)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to load catalog from %s: %w", dbDir, err)
		}

		seeded, err := repo.Seed(ctx, technique.SeedInput{Techniques: techniques.All()})
		if err != nil {
			return nil, nil, fmt.Errorf("failed to seed techniques: %w", err)
		}

		slog.Info("Loaded catalog from files",
			"dir", dbDir,
			"techniques", seeded.Stored,
			"monsters", len(monsters.All()))
		return techniques, monsters, nil
	}

	listed, err := repo.List(ctx, technique.ListInput{})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list stored techniques: %w", err)
	}
	if len(listed.Techniques) == 0 {
		return nil, nil, fmt.Errorf("no techniques stored; run `catalog import` or pass --db-dir")
	}

	techniques, err := catalog.NewTechniques(listed.Techniques)
	if err != nil {
		return nil, nil, fmt.Errorf("stored techniques are invalid: %w", err)
	}

	monsters, err := catalog.NewMonsters([]*tuxemon.MonsterDefinition{})
	if err != nil {
		return nil, nil, err
	}

	slog.Warn("Loaded techniques from redis; journal has no species without --db-dir",
		"techniques", len(listed.Techniques))
	return techniques, monsters, nil
}
