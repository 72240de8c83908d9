package commands

import (
	"OrderKeeper/internal/cli/api"
	"OrderKeeper/internal/config"
	"OrderKeeper/internal/model"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

type ordersCmd struct{}

func (ordersCmd) Name() string        { return "orders" }
func (ordersCmd) Description() string { return "список заказов" }
func (ordersCmd) Usage() string       { return "orders" }

func (ordersCmd) Run(ctx context.Context, cfg *config.Config, _ []string) error {
	token, err := requireSession(cfg, model.RoleUser)
	if err != nil {
		return err
	}

	env, err := api.NewClient(cfg.ServerURL).Call(ctx, http.MethodGet, "/orders", nil, token)
	if err != nil {
		return err
	}
	var orders []model.Order
	if err := json.Unmarshal(env.Data, &orders); err != nil {
		return fmt.Errorf("decode: %w", err)
	}
	for _, o := range orders {
		fmt.Fprintf(Out, "%s\t%s\t%s\t%s\n", o.OrderID, o.PropertyName, o.ConstructionDate, o.KeyStatus)
	}
	fmt.Fprintf(Out, "Total: %d\n", len(orders))
	return nil
}

func init() { RegisterCmd(ordersCmd{}) }
