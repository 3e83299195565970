package client

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"google.golang.org/protobuf/types/known/structpb"
)

var replaceSlot int

var confirmLearnCmd = &cobra.Command{
	Use:   "confirm-learn [monster-id]",
	Short: "Write a monster's pending technique into its moves",
	Long: `Confirm a queued technique. Without --slot it is appended. Examples:

  confirm-learn mon-123
  confirm-learn mon-123 --slot 2`,
	Args: cobra.ExactArgs(1),
	RunE: confirmLearn,
}

func init() {
	confirmLearnCmd.Flags().IntVar(&replaceSlot, "slot", -1, "Move slot to overwrite")
}

func confirmLearn(cmd *cobra.Command, args []string) error {
	client, cleanup, err := createTechniqueClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	req, err := structpb.NewStruct(map[string]any{
		"monster_id":   args[0],
		"replace_slot": replaceSlot,
	})
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}

	resp, err := client.ConfirmLearn(ctx, req)
	if err != nil {
		return describeError("confirm learn", err)
	}

	fields := resp.GetFields()
	fmt.Printf("Learned: %s\n", fields["learned"].GetStringValue())
	if replaced := fields["replaced"].GetStringValue(); replaced != "" {
		fmt.Printf("Forgot: %s\n", replaced)
	}
	for i, move := range fields["moves"].GetListValue().GetValues() {
		fmt.Printf("  %d. %s\n", i+1, move.GetStringValue())
	}
	return nil
}
