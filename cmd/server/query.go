package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/rpg-targeting/internal/config"
	"github.com/KirkDiggler/rpg-targeting/internal/entities"
	"github.com/KirkDiggler/rpg-targeting/internal/errors"
	"github.com/KirkDiggler/rpg-targeting/internal/logging"
	"github.com/KirkDiggler/rpg-targeting/internal/schema"
	engine "github.com/KirkDiggler/rpg-targeting/internal/targeting"
)

var (
	queryScenePath  string
	queryConfigPath string
	queryTemplateID string
	queryTokenID    string
	queryMethod     string
	queryTolerance  float64
	queryPercentage bool
	queryTokenShape string
)

var queryCmd = &cobra.Command{
	Use:   "query",
	Short: "Run a collision query against a scene file",
	Long: `Load a scene from YAML and run one query without a server.

  --template and --token   test one token against one template
  --template only          list the tokens the template covers
  --token only             list the templates covering the token`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		opts := &engine.Options{}
		if cmd.Flags().Changed("method") {
			opts.CollisionMethod = engine.Ptr(engine.Method(queryMethod))
		}
		if cmd.Flags().Changed("tolerance") {
			opts.Tolerance = engine.Ptr(queryTolerance)
		}
		if cmd.Flags().Changed("percentage") {
			opts.PercentageOutput = engine.Ptr(queryPercentage)
		}
		if cmd.Flags().Changed("token-shape") {
			opts.TokenCollisionShape = engine.Ptr(engine.TokenShapeKind(queryTokenShape))
		}

		return runQuery(cmd.OutOrStdout(), &queryInput{
			ScenePath:  queryScenePath,
			ConfigPath: queryConfigPath,
			TemplateID: queryTemplateID,
			TokenID:    queryTokenID,
			Options:    opts,
		})
	},
}

func init() {
	queryCmd.Flags().StringVar(&queryScenePath, "scene", "", "Path to scene YAML file")
	queryCmd.Flags().StringVar(&queryConfigPath, "config", "", "Path to config file for targeting defaults")
	queryCmd.Flags().StringVar(&queryTemplateID, "template", "", "Template id")
	queryCmd.Flags().StringVar(&queryTokenID, "token", "", "Token id")
	queryCmd.Flags().StringVar(&queryMethod, "method", "", "POINTS_CENTER, GRID_SPACES_POINTS or AREA_INTERSECTION")
	queryCmd.Flags().Float64Var(&queryTolerance, "tolerance", 0, "Coverage tolerance in (0,1]")
	queryCmd.Flags().BoolVar(&queryPercentage, "percentage", false, "Report the coverage ratio")
	queryCmd.Flags().StringVar(&queryTokenShape, "token-shape", "", "CIRCLE or RECTANGLE")
	_ = queryCmd.MarkFlagRequired("scene")
}

type queryInput struct {
	ScenePath  string
	ConfigPath string
	TemplateID string
	TokenID    string
	Options    *engine.Options
}

func runQuery(w io.Writer, input *queryInput) error {
	if input.TemplateID == "" && input.TokenID == "" {
		return errors.InvalidArgument("--template or --token is required")
	}

	cfg, err := config.Load(input.ConfigPath)
	if err != nil {
		return err
	}

	logger, err := logging.New(logging.Options{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Prefix: "query",
	})
	if err != nil {
		return err
	}

	scene, err := loadScene(input.ScenePath)
	if err != nil {
		return err
	}

	eng, err := engine.New(&engine.Config{
		Defaults: cfg.Targeting,
		Logger:   logger,
	})
	if err != nil {
		return err
	}

	var result any
	switch {
	case input.TemplateID != "" && input.TokenID != "":
		token, template, err := findPair(scene, input.TokenID, input.TemplateID)
		if err != nil {
			return err
		}
		res, err := eng.Collides(token, template, input.Options)
		if err != nil {
			return err
		}
		result = map[string]any{
			"token_id":    token.ID,
			"template_id": template.ID,
			"result":      res.Value(),
		}
	case input.TemplateID != "":
		template, ok := scene.Template(input.TemplateID)
		if !ok {
			return errors.NotFoundf("template %s not found", input.TemplateID)
		}
		tokens, err := eng.TokensIn(template, input.Options)
		if err != nil {
			return err
		}
		result = map[string]any{
			"template_id": template.ID,
			"tokens":      entityIDs(tokens),
		}
	default:
		token, ok := scene.Token(input.TokenID)
		if !ok {
			return errors.NotFoundf("token %s not found", input.TokenID)
		}
		templates, err := eng.TemplatesContaining(token, input.Options)
		if err != nil {
			return err
		}
		result = map[string]any{
			"token_id":  token.ID,
			"templates": entityIDs(templates),
		}
	}

	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

// loadScene reads a scene YAML file, validates it against the scene schema
// and links its tokens and templates.
func loadScene(path string) (*entities.Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read scene %s", path)
	}

	var scene entities.Scene
	if err := yaml.Unmarshal(data, &scene); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to parse scene")
	}

	validator, err := schema.NewSceneValidator()
	if err != nil {
		return nil, err
	}
	if err := validator.ValidateScene(&scene); err != nil {
		return nil, err
	}

	return scene.Link(), nil
}

func findPair(scene *entities.Scene, tokenID, templateID string) (*entities.Token, *entities.Template, error) {
	token, ok := scene.Token(tokenID)
	if !ok {
		return nil, nil, errors.NotFoundf("token %s not found", tokenID)
	}
	template, ok := scene.Template(templateID)
	if !ok {
		return nil, nil, errors.NotFoundf("template %s not found", templateID)
	}
	return token, template, nil
}

func entityIDs[T interface{ GetID() string }](items []T) []string {
	ids := make([]string, 0, len(items))
	for _, item := range items {
		ids = append(ids, item.GetID())
	}
	return ids
}
