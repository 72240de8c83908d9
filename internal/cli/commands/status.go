package commands

import (
	"OrderKeeper/internal/auth"
	"OrderKeeper/internal/config"
	"OrderKeeper/internal/model"
	"context"
	"fmt"
)

type statusCmd struct{}

func (statusCmd) Name() string        { return "status" }
func (statusCmd) Description() string { return "проверить сохранённую сессию" }
func (statusCmd) Usage() string       { return "status" }

func (statusCmd) Run(_ context.Context, cfg *config.Config, _ []string) error {
	store := auth.FileTokenStore{Dir: cfg.TokenDir}
	res := auth.CheckSession(store, cfg.AuthSecret, model.RoleUser)
	switch res.State {
	case auth.StateAuthenticated:
		fmt.Fprintf(Out, "Authenticated: user %s (role %s)\n", res.User.UserID, res.User.Role)
	case auth.StateUnauthorized:
		fmt.Fprintf(Out, "Unauthorized: user %s lacks the required role\n", res.User.UserID)
	default:
		fmt.Fprintln(Out, "Unauthenticated: run \"login <token>\" first")
	}
	return nil
}

func init() { RegisterCmd(statusCmd{}) }
