package system

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/AshokKumar3502/facemirror/internal/cli"
	"github.com/AshokKumar3502/facemirror/internal/keyring"
)

type KeySetCmd struct {
	Key string `arg:"" optional:"" help:"The analysis API key. Prompted for when omitted."`
}

func (c *KeySetCmd) Run(ctx *cli.Context) error {
	key := strings.TrimSpace(c.Key)
	if key == "" {
		fmt.Print("Enter API key: ")
		reader := bufio.NewReader(os.Stdin)
		line, err := reader.ReadString('\n')
		if err != nil {
			return fmt.Errorf("failed to read key: %w", err)
		}
		key = strings.TrimSpace(line)
	}
	if key == "" {
		return fmt.Errorf("no key provided")
	}

	if keyring.IsAvailable() {
		if err := keyring.SetAPIKey(key); err != nil {
			return err
		}
		fmt.Println("API key stored in the OS keyring.")
		return nil
	}

	// No keyring on this system; fall back to the settings record.
	if err := ctx.Store.Load(); err != nil {
		return err
	}
	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return err
	}
	settings.CustomAPIKey = key
	if err := ctx.Store.SaveSettings(settings); err != nil {
		return err
	}
	fmt.Println("OS keyring unavailable; API key stored in settings.")
	return nil
}

type KeyShowCmd struct{}

func (c *KeyShowCmd) Run(ctx *cli.Context) error {
	key := ctx.ResolveAPIKey()
	if key == "" {
		fmt.Println("No API key configured.")
		return nil
	}
	fmt.Printf("API key configured: %s\n", mask(key))
	return nil
}

type KeyDeleteCmd struct{}

func (c *KeyDeleteCmd) Run(ctx *cli.Context) error {
	removed := false

	if err := keyring.DeleteAPIKey(); err == nil {
		removed = true
	} else if err != keyring.ErrNotFound {
		return err
	}

	if err := ctx.Store.Load(); err != nil {
		if removed {
			fmt.Println("API key removed.")
		}
		return nil
	}
	settings, err := ctx.Store.GetSettings()
	if err == nil && settings.CustomAPIKey != "" {
		settings.CustomAPIKey = ""
		if err := ctx.Store.SaveSettings(settings); err != nil {
			return err
		}
		removed = true
	}

	if removed {
		fmt.Println("API key removed.")
	} else {
		fmt.Println("No API key was configured.")
	}
	return nil
}

func mask(key string) string {
	if len(key) <= 8 {
		return "********"
	}
	return key[:4] + strings.Repeat("*", len(key)-8) + key[len(key)-4:]
}
