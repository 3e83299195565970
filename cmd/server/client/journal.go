package client

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"google.golang.org/protobuf/types/known/structpb"
)

var journalCmd = &cobra.Command{
	Use:   "journal [player-id]",
	Short: "List a player's tuxepedia",
	Args:  cobra.ExactArgs(1),
	RunE:  listJournal,
}

var recordEncounterCmd = &cobra.Command{
	Use:   "record-encounter [player-id] [slug] [seen|caught]",
	Short: "Mark a species as seen or caught",
	Args:  cobra.ExactArgs(3),
	RunE:  recordEncounter,
}

func listJournal(cmd *cobra.Command, args []string) error {
	client, cleanup, err := createTechniqueClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	req, err := structpb.NewStruct(map[string]any{"player_id": args[0]})
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}

	resp, err := client.ListJournal(ctx, req)
	if err != nil {
		return describeError("list journal", err)
	}

	fields := resp.GetFields()
	for _, v := range fields["entries"].GetListValue().GetValues() {
		entry := v.GetStructValue().GetFields()
		fmt.Printf("%03d %-20s %s\n",
			int(entry["txmn_id"].GetNumberValue()),
			entry["slug"].GetStringValue(),
			entry["status"].GetStringValue())
	}
	fmt.Printf("\nSeen: %d  Caught: %d\n",
		int(fields["seen"].GetNumberValue()),
		int(fields["caught"].GetNumberValue()))
	return nil
}

func recordEncounter(cmd *cobra.Command, args []string) error {
	client, cleanup, err := createTechniqueClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	req, err := structpb.NewStruct(map[string]any{
		"player_id": args[0],
		"slug":      args[1],
		"status":    args[2],
	})
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}

	resp, err := client.RecordEncounter(ctx, req)
	if err != nil {
		return describeError("record encounter", err)
	}

	fmt.Printf("%s is now %s\n", args[1], resp.GetFields()["status"].GetStringValue())
	return nil
}
