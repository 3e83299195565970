package client

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"google.golang.org/protobuf/types/known/structpb"
)

var selectKnown []string

var selectTechniqueCmd = &cobra.Command{
	Use:   "select-technique [element]",
	Short: "Pick a random learnable technique of an element",
	Long: `Ask the server for a random technique. Examples:

  select-technique fire
  select-technique water --known splash,bubble`,
	Args: cobra.ExactArgs(1),
	RunE: selectTechnique,
}

func init() {
	selectTechniqueCmd.Flags().StringSliceVar(&selectKnown, "known", nil, "Techniques the monster already knows")
}

func selectTechnique(cmd *cobra.Command, args []string) error {
	client, cleanup, err := createTechniqueClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	known := make([]any, 0, len(selectKnown))
	for _, slug := range selectKnown {
		known = append(known, slug)
	}

	req, err := structpb.NewStruct(map[string]any{
		"element": args[0],
		"known":   known,
	})
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}

	resp, err := client.SelectTechnique(ctx, req)
	if err != nil {
		return describeError("select technique", err)
	}

	if !resp.GetFields()["success"].GetBoolValue() {
		fmt.Printf("No %s technique left to learn\n", args[0])
		return nil
	}

	fmt.Printf("Selected: %s\n", resp.GetFields()["slug"].GetStringValue())
	return nil
}
