package client

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-targeting/internal/handlers/targeting/v1alpha1"
)

var templateSceneID string

var collidesCmd = &cobra.Command{
	Use:   "collides [scene-id] [token-id] [template-id]",
	Short: "Test whether a template covers a token",
	Long: `Test one token against one template. Examples:

  collides scene-1 tok-1 tpl-1
  collides scene-1 tok-1 tpl-1 --method AREA_INTERSECTION --percentage`,
	Args: cobra.ExactArgs(3),
	RunE: collides,
}

var tokensInCmd = &cobra.Command{
	Use:   "tokens-in [scene-id] [template-id]",
	Short: "List the tokens a template covers",
	Args:  cobra.ExactArgs(2),
	RunE:  tokensIn,
}

var templatesContainingCmd = &cobra.Command{
	Use:   "templates-containing [scene-id] [token-id]",
	Short: "List the templates covering a token",
	Args:  cobra.ExactArgs(2),
	RunE:  templatesContaining,
}

func init() {
	collidesCmd.Flags().StringVar(&templateSceneID, "template-scene", "",
		"Scene of the template when it differs from the token's")
}

func collides(cmd *cobra.Command, args []string) error {
	client, cleanup, err := createTargetingClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.Collides(ctx, &v1alpha1.CollidesRequest{
		TokenSceneId:    args[0],
		TokenId:         args[1],
		TemplateSceneId: templateSceneID,
		TemplateId:      args[2],
		Options:         optionsFromFlags(cmd),
	})
	if err != nil {
		return callError("failed to test collision", err)
	}

	if resp.PercentageOutput {
		fmt.Fprintf(cmd.OutOrStdout(), "Coverage: %.1f%% (covered: %t)\n", resp.Ratio*100, resp.Covered)
		return nil
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Covered: %t\n", resp.Covered)
	return nil
}

func tokensIn(cmd *cobra.Command, args []string) error {
	client, cleanup, err := createTargetingClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.TokensIn(ctx, &v1alpha1.TokensInRequest{
		SceneId:    args[0],
		TemplateId: args[1],
		Options:    optionsFromFlags(cmd),
	})
	if err != nil {
		return callError("failed to list tokens", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Template %s covers %d token(s)\n", args[1], len(resp.Tokens))
	for _, token := range resp.Tokens {
		fmt.Fprintf(cmd.OutOrStdout(), "  %s (%s) at %.0f,%.0f size %gx%g\n",
			token.ID, token.Name, token.X, token.Y, token.Width, token.Height)
	}
	return nil
}

func templatesContaining(cmd *cobra.Command, args []string) error {
	client, cleanup, err := createTargetingClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.TemplatesContaining(ctx, &v1alpha1.TemplatesContainingRequest{
		SceneId: args[0],
		TokenId: args[1],
		Options: optionsFromFlags(cmd),
	})
	if err != nil {
		return callError("failed to list templates", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Token %s is inside %d template(s)\n", args[1], len(resp.Templates))
	for _, template := range resp.Templates {
		fmt.Fprintf(cmd.OutOrStdout(), "  %s (%s) %s at %.0f,%.0f\n",
			template.ID, template.Name, template.Shape.Kind, template.X, template.Y)
	}
	return nil
}
