package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/iudanet/gophbook/internal/client/storage"
)

// settingKeys имена настроек в порядке вывода
var settingKeys = []string{"include_system_groups", "read_only", "fake_emails"}

func settingRef(settings *storage.Settings, key string) (*bool, bool) {
	switch key {
	case "include_system_groups":
		return &settings.IncludeSystemGroups, true
	case "read_only":
		return &settings.ReadOnly, true
	case "fake_emails":
		return &settings.UseFakeEmailAddresses, true
	default:
		return nil, false
	}
}

func (c *Cli) runConfig(ctx context.Context, args []string) error {
	settings, err := c.settings.GetSettings(ctx)
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	if len(args) == 0 {
		for _, key := range settingKeys {
			ref, _ := settingRef(settings, key)
			c.io.Printf("%s = %t\n", key, *ref)
		}
		return nil
	}

	ref, ok := settingRef(settings, args[0])
	if !ok {
		return fmt.Errorf("unknown setting: %s", args[0])
	}

	if len(args) == 1 {
		c.io.Printf("%s = %t\n", args[0], *ref)
		return nil
	}

	value, err := strconv.ParseBool(args[1])
	if err != nil {
		return fmt.Errorf("invalid value for %s: %q, expected true or false", args[0], args[1])
	}
	*ref = value

	if err := c.settings.SaveSettings(ctx, settings); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}

	c.io.Printf("✓ %s = %t\n", args[0], value)
	return nil
}
