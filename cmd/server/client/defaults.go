package client

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-targeting/internal/handlers/targeting/v1alpha1"
)

var getDefaultsCmd = &cobra.Command{
	Use:   "get-defaults",
	Short: "Print the engine defaults in effect",
	Args:  cobra.NoArgs,
	RunE:  getDefaults,
}

var updateDefaultsCmd = &cobra.Command{
	Use:   "update-defaults",
	Short: "Change the engine defaults",
	Long: `Change the engine defaults. Only the flags given are changed. Example:

  update-defaults --method AREA_INTERSECTION --tolerance 0.25`,
	Args: cobra.NoArgs,
	RunE: updateDefaults,
}

func getDefaults(cmd *cobra.Command, _ []string) error {
	client, cleanup, err := createTargetingClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.GetDefaults(ctx, &v1alpha1.GetDefaultsRequest{})
	if err != nil {
		return callError("failed to get defaults", err)
	}

	return printJSON(cmd, resp.Defaults)
}

func updateDefaults(cmd *cobra.Command, _ []string) error {
	opts := optionsFromFlags(cmd)
	if opts == nil {
		return fmt.Errorf("at least one of --method, --tolerance, --percentage or --token-shape is required")
	}

	client, cleanup, err := createTargetingClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.UpdateDefaults(ctx, &v1alpha1.UpdateDefaultsRequest{Options: opts})
	if err != nil {
		return callError("failed to update defaults", err)
	}

	return printJSON(cmd, resp.Defaults)
}
