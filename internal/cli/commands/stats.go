package commands

import (
	"OrderKeeper/internal/cli/api"
	"OrderKeeper/internal/config"
	"OrderKeeper/internal/model"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

type statsCmd struct{}

func (statsCmd) Name() string        { return "stats" }
func (statsCmd) Description() string { return "агрегированная статистика (только admin)" }
func (statsCmd) Usage() string       { return "stats" }

func (statsCmd) Run(ctx context.Context, cfg *config.Config, _ []string) error {
	token, err := requireSession(cfg, model.RoleAdmin)
	if err != nil {
		return err
	}

	env, err := api.NewClient(cfg.ServerURL).Call(ctx, http.MethodGet, "/statistics", nil, token)
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := json.Indent(&buf, env.Data, "", "  "); err != nil {
		return fmt.Errorf("decode: %w", err)
	}
	fmt.Fprintln(Out, buf.String())
	return nil
}

func init() { RegisterCmd(statsCmd{}) }
