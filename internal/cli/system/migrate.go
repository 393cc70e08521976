package system

import (
	"fmt"

	"github.com/AshokKumar3502/facemirror/internal/cli"
	"github.com/AshokKumar3502/facemirror/internal/storage/sqlite"
)

type MigrateCmd struct{}

func (c *MigrateCmd) Run(ctx *cli.Context) error {
	store, ok := ctx.Store.(*sqlite.Store)
	if !ok {
		fmt.Println("The JSON store has no schema migrations.")
		return nil
	}

	// Open without schema validation; that's what we're here to fix.
	if err := store.Open(); err != nil {
		return err
	}

	runner, err := store.Runner()
	if err != nil {
		return err
	}

	applied, err := runner.ApplyMigrations(func(msg string) { fmt.Println(msg) })
	if err != nil {
		return err
	}
	if applied == 0 {
		fmt.Println("Nothing to do.")
	}
	return nil
}
