package cli

import (
	"context"
	"errors"
	"fmt"
)

// ErrUnknownCommand возвращается для неизвестной команды; вызывающий показывает справку
var ErrUnknownCommand = errors.New("unknown command")

func (c *Cli) Run(ctx context.Context, command string, args []string) error {
	switch command {
	case "register":
		return c.runRegister(ctx)
	case "login":
		return c.runLogin(ctx)
	case "logout":
		return c.runLogout(ctx)
	case "status":
		return c.runStatus(ctx)
	case "sync":
		return c.runSync(ctx)
	case "list":
		return c.runList(ctx, args)
	case "get":
		return c.runGet(ctx, args)
	case "members":
		return c.runMembers(ctx, args)
	case "add":
		return c.runAdd(ctx, args)
	case "edit":
		return c.runEdit(ctx, args)
	case "rename":
		return c.runRename(ctx, args)
	case "delete":
		return c.runDelete(ctx, args)
	case "config":
		return c.runConfig(ctx, args)
	case "changelog":
		return c.runChangeLog(ctx, args)
	case "help":
		PrintUsage(c.io)
		return nil
	default:
		return fmt.Errorf("%w: %s", ErrUnknownCommand, command)
	}
}
