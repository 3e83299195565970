// Package client provides test commands for the monster API gRPC service
package client

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/KirkDiggler/monster-api/internal/errors"
	"github.com/KirkDiggler/monster-api/internal/handlers/tuxemon/v1alpha1"
)

var (
	// Connection flags
	serverAddr string
	timeout    time.Duration
)

// ClientCmd is the root command for all client test commands
var ClientCmd = &cobra.Command{
	Use:   "client",
	Short: "Test client commands for the monster API",
	Long:  `Client commands allow you to test the monster API by making real gRPC requests.`,
}

func init() {
	ClientCmd.PersistentFlags().StringVar(&serverAddr, "server", "localhost:50051", "gRPC server address")
	ClientCmd.PersistentFlags().DurationVar(&timeout, "timeout", 30*time.Second, "Request timeout")

	ClientCmd.AddCommand(selectTechniqueCmd)
	ClientCmd.AddCommand(useItemCmd)
	ClientCmd.AddCommand(confirmLearnCmd)
	ClientCmd.AddCommand(journalCmd)
	ClientCmd.AddCommand(recordEncounterCmd)
}

// createConnection creates a gRPC connection to the server
func createConnection() (*grpc.ClientConn, error) {
	conn, err := grpc.NewClient(serverAddr,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to server: %w", err)
	}

	return conn, nil
}

// createTechniqueClient creates a technique service client
func createTechniqueClient() (v1alpha1.TechniqueServiceClient, func(), error) {
	conn, err := createConnection()
	if err != nil {
		return nil, nil, err
	}

	cleanup := func() {
		_ = conn.Close() // nolint:errcheck // safe to ignore in cleanup
	}

	return v1alpha1.NewTechniqueServiceClient(conn), cleanup, nil
}

// describeError turns a gRPC status into an error that keeps its code
// and metadata
func describeError(action string, err error) error {
	converted := errors.FromGRPCError(err)
	if meta := errors.GetMeta(converted); len(meta) > 0 {
		return fmt.Errorf("failed to %s: %w %v", action, converted, meta)
	}
	return fmt.Errorf("failed to %s: %w", action, converted)
}

func printResponse(resp *structpb.Struct) error {
	out, err := protojson.MarshalOptions{Multiline: true, Indent: "  "}.Marshal(resp)
	if err != nil {
		return fmt.Errorf("failed to format response: %w", err)
	}
	fmt.Println(string(out))
	return nil
}
