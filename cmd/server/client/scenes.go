package client

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-targeting/internal/handlers/targeting/v1alpha1"
)

var saveSceneCmd = &cobra.Command{
	Use:   "save-scene [file]",
	Short: "Create or replace a scene from a YAML or JSON file",
	Args:  cobra.ExactArgs(1),
	RunE:  saveScene,
}

var getSceneCmd = &cobra.Command{
	Use:   "get-scene [scene-id]",
	Short: "Print a stored scene",
	Args:  cobra.ExactArgs(1),
	RunE:  getScene,
}

var deleteSceneCmd = &cobra.Command{
	Use:   "delete-scene [scene-id]",
	Short: "Delete a stored scene",
	Args:  cobra.ExactArgs(1),
	RunE:  deleteScene,
}

var listScenesCmd = &cobra.Command{
	Use:   "list-scenes",
	Short: "List stored scene ids",
	Args:  cobra.NoArgs,
	RunE:  listScenes,
}

func saveScene(cmd *cobra.Command, args []string) error {
	scene, err := readScene(args[0])
	if err != nil {
		return err
	}

	client, cleanup, err := createTargetingClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.SaveScene(ctx, &v1alpha1.SaveSceneRequest{Scene: scene})
	if err != nil {
		return callError("failed to save scene", err)
	}

	action := "Updated"
	if resp.Created {
		action = "Created"
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s scene %s (%d tokens, %d templates)\n",
		action, resp.Scene.ID, len(resp.Scene.Tokens), len(resp.Scene.Templates))
	return nil
}

func getScene(cmd *cobra.Command, args []string) error {
	client, cleanup, err := createTargetingClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.GetScene(ctx, &v1alpha1.GetSceneRequest{SceneId: args[0]})
	if err != nil {
		return callError("failed to get scene", err)
	}

	return printJSON(cmd, resp.Scene)
}

func deleteScene(cmd *cobra.Command, args []string) error {
	client, cleanup, err := createTargetingClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if _, err := client.DeleteScene(ctx, &v1alpha1.DeleteSceneRequest{SceneId: args[0]}); err != nil {
		return callError("failed to delete scene", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Deleted scene %s\n", args[0])
	return nil
}

func listScenes(cmd *cobra.Command, _ []string) error {
	client, cleanup, err := createTargetingClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.ListScenes(ctx, &v1alpha1.ListScenesRequest{})
	if err != nil {
		return callError("failed to list scenes", err)
	}

	for _, id := range resp.SceneIds {
		fmt.Fprintln(cmd.OutOrStdout(), id)
	}
	return nil
}
