package client

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"google.golang.org/protobuf/types/known/structpb"
)

var useItemCmd = &cobra.Command{
	Use:   "use-item [monster-id] [effect...]",
	Short: "Apply an item effect to a monster",
	Long: `Apply an item effect. Examples:

  use-item mon-123 learn_mm fire`,
	Args: cobra.MinimumNArgs(2),
	RunE: useItem,
}

func useItem(cmd *cobra.Command, args []string) error {
	client, cleanup, err := createTechniqueClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	effect := strings.Join(args[1:], " ")
	fmt.Printf("Using %q on monster %s...\n", effect, args[0])

	req, err := structpb.NewStruct(map[string]any{
		"monster_id": args[0],
		"effect":     effect,
	})
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}

	resp, err := client.UseItem(ctx, req)
	if err != nil {
		return describeError("use item", err)
	}

	return printResponse(resp)
}
