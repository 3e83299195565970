package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/monster-api/internal/catalog"
	"github.com/KirkDiggler/monster-api/internal/entities/tuxemon"
	"github.com/KirkDiggler/monster-api/internal/repositories/technique"
	"github.com/KirkDiggler/monster-api/internal/selector"
)

var (
	importDBDir   string
	selectDBDir   string
	selectElement string
	selectKnown   []string
	selectRounds  int
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Manage the stored technique catalog",
}

var catalogImportCmd = &cobra.Command{
	Use:   "import",
	Short: "Seed Redis with the techniques of a db directory",
	RunE:  runCatalogImport,
}

var selectCmd = &cobra.Command{
	Use:   "select",
	Short: "Pick a random technique offline from a db directory",
	Long: `Run the technique selector against db files without a server. Examples:

  select --db-dir ./db --element fire
  select --db-dir ./db --element water --known splash --rounds 5`,
	RunE: runSelect,
}

func init() {
	catalogImportCmd.Flags().StringVar(&importDBDir, "db-dir", "", "Tuxemon db directory (defaults to MONSTER_API_DB_DIR)")
	catalogCmd.AddCommand(catalogImportCmd)

	selectCmd.Flags().StringVar(&selectDBDir, "db-dir", "", "Tuxemon db directory (defaults to MONSTER_API_DB_DIR)")
	selectCmd.Flags().StringVar(&selectElement, "element", "", "Element to learn")
	selectCmd.Flags().StringSliceVar(&selectKnown, "known", nil, "Techniques the monster already knows")
	selectCmd.Flags().IntVar(&selectRounds, "rounds", 1, "Number of independent selections")
	_ = selectCmd.MarkFlagRequired("element")
}

func dbDirOrConfig(flag string) string {
	if flag != "" {
		return flag
	}
	return cfg.DBDir
}

func runCatalogImport(cmd *cobra.Command, args []string) error {
	dir := dbDirOrConfig(importDBDir)
	if dir == "" {
		return fmt.Errorf("--db-dir is required")
	}

	ctx := context.Background()
	client, err := connectRedis(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = client.Close() // nolint:errcheck // safe to ignore in cleanup
	}()

	repo, err := technique.NewRedis(&technique.RedisConfig{Client: client})
	if err != nil {
		return err
	}

	techniques, _, err := loadCatalogs(ctx, dir, repo)
	if err != nil {
		return err
	}

	fmt.Printf("Imported %d techniques from %s\n", len(techniques.All()), dir)
	return nil
}

func runSelect(cmd *cobra.Command, args []string) error {
	dir := dbDirOrConfig(selectDBDir)
	if dir == "" {
		return fmt.Errorf("--db-dir is required")
	}

	element, err := tuxemon.ParseElementType(selectElement)
	if err != nil {
		return err
	}

	techniques, _, err := catalog.Load(dir)
	if err != nil {
		return err
	}

	svc, err := selector.New(&selector.Config{Techniques: techniques})
	if err != nil {
		return err
	}

	for i := 0; i < selectRounds; i++ {
		result, err := svc.SelectRandomTechnique(&selector.SelectRandomTechniqueInput{
			Element: element,
			Known:   selectKnown,
		})
		if err != nil {
			return err
		}

		if !result.Success {
			fmt.Printf("No %s technique left to learn (known: %s)\n", element, strings.Join(selectKnown, ", "))
			return nil
		}
		fmt.Println(result.Slug)
	}
	return nil
}
