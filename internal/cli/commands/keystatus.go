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

type keyStatusCmd struct{}

func (keyStatusCmd) Name() string        { return "key-status" }
func (keyStatusCmd) Description() string { return "перевести статус ключа заказа" }
func (keyStatusCmd) Usage() string       { return "key-status <orderId> <pending|handed>" }

func (keyStatusCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 2 {
		return ErrUsage
	}
	orderID, status := args[0], model.KeyStatus(args[1])
	if orderID == "" || !status.Valid() {
		return ErrUsage
	}

	token, err := requireSession(cfg, model.RoleUser)
	if err != nil {
		return err
	}

	path := fmt.Sprintf("/orders/%s/key-status", orderID)
	body := map[string]any{"keyStatus": status}
	env, err := api.NewClient(cfg.ServerURL).Call(ctx, http.MethodPatch, path, body, token)
	if err != nil {
		return err
	}
	var order model.Order
	if err := json.Unmarshal(env.Data, &order); err != nil {
		return fmt.Errorf("decode: %w", err)
	}
	fmt.Fprintf(Out, "Order %s (%s): keyStatus=%s\n", order.OrderID, order.PropertyName, order.KeyStatus)
	return nil
}

func init() { RegisterCmd(keyStatusCmd{}) }
