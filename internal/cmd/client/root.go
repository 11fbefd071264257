package client

import (
	"github.com/spf13/cobra"
)

// NewRoot constructs a root Cobra command for the todo client.
// It registers all the CRUD verb commands.
func NewRoot(baseURL BaseURLFunc) *cobra.Command {
	root := &cobra.Command{
		Use:   "todo",
		Short: "Todo client commands",
	}
	AddCommands(root, baseURL)
	return root
}

// AddCommands registers the client verb commands on an existing root, so the
// standalone binary can mix them with its own commands.
func AddCommands(root *cobra.Command, baseURL BaseURLFunc) {
	root.AddCommand(
		NewListCommand(baseURL),
		NewGetCommand(baseURL),
		NewAddCommand(baseURL),
		NewUpdateCommand(baseURL),
		NewDoneCommand(baseURL),
		NewRmCommand(baseURL),
	)
}
