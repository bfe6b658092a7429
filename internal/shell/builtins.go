package shell

import (
	"context"
	"fmt"
	"text/tabwriter"

	"github.com/GriffinCanCode/fileshell/internal/shared/types"
)

// builtins are the commands the shell answers itself
type builtins struct {
	shell *Shell
}

func (b *builtins) Definition() types.Service {
	return types.Service{
		ID:          "shell",
		Name:        "Shell",
		Description: "Built-in shell commands",
		Category:    types.CategoryShell,
		Tools: []types.Tool{
			{ID: "help", Name: "Help", Description: "List available commands"},
			{ID: ".exit", Name: "Exit", Description: "Leave the shell"},
		},
	}
}

func (b *builtins) Handlers() map[string]types.Handler {
	return map[string]types.Handler{
		"help":  b.help,
		".exit": b.exit,
	}
}

func (b *builtins) exit(ctx context.Context, sess *types.Session, args []string) error {
	return ErrExit
}

// help lists commands grouped by service in registration order
func (b *builtins) help(ctx context.Context, sess *types.Session, args []string) error {
	tw := tabwriter.NewWriter(sess.Out, 0, 0, 2, ' ', 0)
	for _, svc := range b.shell.services {
		fmt.Fprintf(tw, "%s:\n", svc.Name)
		for _, tool := range svc.Tools {
			fmt.Fprintf(tw, "  %s\t%s\n", tool.Usage(), tool.Description)
		}
	}
	return tw.Flush()
}
