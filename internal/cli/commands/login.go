package commands

import (
	"OrderKeeper/internal/auth"
	"OrderKeeper/internal/config"
	"context"
	"fmt"
)

type loginCmd struct{}

func (loginCmd) Name() string        { return "login" }
func (loginCmd) Description() string { return "сохранить токен сессии" }
func (loginCmd) Usage() string       { return "login <token>" }

func (loginCmd) Run(_ context.Context, cfg *config.Config, args []string) error {
	if len(args) != 1 || args[0] == "" {
		return ErrUsage
	}
	store := auth.FileTokenStore{Dir: cfg.TokenDir}
	if err := store.Save(args[0]); err != nil {
		return err
	}
	fmt.Fprintln(Out, "Token saved")
	return nil
}

func init() { RegisterCmd(loginCmd{}) }
