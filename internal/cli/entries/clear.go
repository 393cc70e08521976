package entries

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/AshokKumar3502/facemirror/internal/cli"
)

type ClearCmd struct {
	Yes bool `help:"Skip the confirmation prompt."`
}

func (c *ClearCmd) Run(ctx *cli.Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	entries, err := ctx.Journal.ListEntries()
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		fmt.Println("The journal is already empty.")
		return nil
	}

	if !c.Yes {
		fmt.Printf("This will permanently delete all %d journal entries. Type 'yes' to confirm: ", len(entries))
		reader := bufio.NewReader(os.Stdin)
		line, err := reader.ReadString('\n')
		if err != nil {
			return fmt.Errorf("failed to read confirmation: %w", err)
		}
		if strings.TrimSpace(line) != "yes" {
			fmt.Println("Aborted.")
			return nil
		}
	}

	// One last safety net before an irreversible delete.
	ctx.PerformAutomaticBackup()

	if err := ctx.Journal.ClearAll(); err != nil {
		return err
	}
	fmt.Println("Journal cleared.")
	return nil
}
