// Package client provides commands that call a running targeting server
package client

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/rpg-targeting/internal/entities"
	"github.com/KirkDiggler/rpg-targeting/internal/errors"
	"github.com/KirkDiggler/rpg-targeting/internal/handlers/targeting/v1alpha1"
	engine "github.com/KirkDiggler/rpg-targeting/internal/targeting"
)

var (
	// Connection flags
	serverAddr string
	timeout    time.Duration

	// Query option flags shared by the query commands
	method     string
	tolerance  float64
	percentage bool
	tokenShape string
)

// ClientCmd is the root command for all client commands
var ClientCmd = &cobra.Command{
	Use:   "client",
	Short: "Client commands for the targeting server",
	Long:  `Client commands make real gRPC requests against a running targeting server.`,
}

func init() {
	ClientCmd.PersistentFlags().StringVar(&serverAddr, "server", "localhost:50051", "gRPC server address")
	ClientCmd.PersistentFlags().DurationVar(&timeout, "timeout", 30*time.Second, "Request timeout")

	// Queries
	ClientCmd.AddCommand(collidesCmd)
	ClientCmd.AddCommand(tokensInCmd)
	ClientCmd.AddCommand(templatesContainingCmd)

	// Scenes
	ClientCmd.AddCommand(saveSceneCmd)
	ClientCmd.AddCommand(getSceneCmd)
	ClientCmd.AddCommand(deleteSceneCmd)
	ClientCmd.AddCommand(listScenesCmd)

	// Defaults
	ClientCmd.AddCommand(getDefaultsCmd)
	ClientCmd.AddCommand(updateDefaultsCmd)

	for _, cmd := range []*cobra.Command{collidesCmd, tokensInCmd, templatesContainingCmd, updateDefaultsCmd} {
		addOptionFlags(cmd)
	}
}

func addOptionFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&method, "method", "", "POINTS_CENTER, GRID_SPACES_POINTS or AREA_INTERSECTION")
	cmd.Flags().Float64Var(&tolerance, "tolerance", 0, "Coverage tolerance in (0,1]")
	cmd.Flags().BoolVar(&percentage, "percentage", false, "Report the coverage ratio")
	cmd.Flags().StringVar(&tokenShape, "token-shape", "", "CIRCLE or RECTANGLE")
}

// optionsFromFlags returns the options the user set explicitly, or nil
func optionsFromFlags(cmd *cobra.Command) *engine.Options {
	opts := &engine.Options{}
	set := false
	if cmd.Flags().Changed("method") {
		opts.CollisionMethod = engine.Ptr(engine.Method(method))
		set = true
	}
	if cmd.Flags().Changed("tolerance") {
		opts.Tolerance = engine.Ptr(tolerance)
		set = true
	}
	if cmd.Flags().Changed("percentage") {
		opts.PercentageOutput = engine.Ptr(percentage)
		set = true
	}
	if cmd.Flags().Changed("token-shape") {
		opts.TokenCollisionShape = engine.Ptr(engine.TokenShapeKind(tokenShape))
		set = true
	}
	if !set {
		return nil
	}
	return opts
}

// createTargetingClient creates a targeting service client
func createTargetingClient() (v1alpha1.TargetingServiceClient, func(), error) {
	conn, err := grpc.NewClient(serverAddr,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to server: %w", err)
	}

	cleanup := func() {
		_ = conn.Close() // nolint:errcheck // safe to ignore in cleanup
	}

	return v1alpha1.NewTargetingServiceClient(conn), cleanup, nil
}

// readScene decodes a YAML or JSON scene file
func readScene(path string) (*entities.Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scene %s: %w", path, err)
	}

	var scene entities.Scene
	if err := yaml.Unmarshal(data, &scene); err != nil {
		return nil, fmt.Errorf("failed to parse scene %s: %w", path, err)
	}
	return &scene, nil
}

func printJSON(cmd *cobra.Command, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return err
}

// callError restores the structured error a server call failed with and
// names the rejected input when the server reported one.
func callError(action string, err error) error {
	converted := errors.FromGRPCError(err)
	if field := errors.GetField(converted); field != "" {
		return fmt.Errorf("%s: %s %s (field %s)", action, errors.GetCode(converted), errors.GetMessage(converted), field)
	}
	return fmt.Errorf("%s: %w", action, converted)
}
