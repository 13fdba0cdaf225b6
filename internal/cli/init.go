package cli

import (
	"fmt"
	"os"
)

type InitCmd struct {
	Force bool `help:"Rewrite the config file even if it exists."`
}

func (c *InitCmd) Run(ctx *Context) error {
	_, statErr := os.Stat(ctx.ConfigPath)
	if c.Force || os.IsNotExist(statErr) {
		if err := ctx.Config.Save(ctx.ConfigPath); err != nil {
			return err
		}
		ctx.printf("Wrote config: %s\n", ctx.ConfigPath)
	}

	raw, err := ctx.Store.Raw()
	if err != nil {
		return fmt.Errorf("failed to read journal: %w", err)
	}
	if raw == nil {
		l, err := ctx.AcquireLock("init")
		if err != nil {
			return err
		}
		defer l.Release()

		if err := ctx.Store.Persist(ctx.Store.Load()); err != nil {
			return err
		}
	}

	ctx.printf("Initialized moodlog %s storage at: %s\n", ctx.Config.Storage.Backend, ctx.Store.Backend().Path())
	return nil
}
