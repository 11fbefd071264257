// Package client contains Cobra CLI commands for the todo service.
package client

import (
	"encoding/json"
	"fmt"
	"net/http"
	neturl "net/url"

	"github.com/rzbill/todo/internal/todo"
	"github.com/spf13/cobra"
)

// BaseURLFunc provides the base HTTP API URL (e.g., from env or flag).
type BaseURLFunc func() string

// NewListCommand constructs the `list` command.
func NewListCommand(baseURL BaseURLFunc) *cobra.Command {
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List todos",
		RunE: func(cmd *cobra.Command, _ []string) error {
			filter, _ := cmd.Flags().GetString("filter")
			url := baseURL() + "/todos"
			if filter != "" {
				url += "?filter=" + neturl.QueryEscape(filter)
			}
			req, err := http.NewRequestWithContext(cmd.Context(), http.MethodGet, url, nil)
			if err != nil {
				return err
			}
			resp, err := http.DefaultClient.Do(req)
			if err != nil {
				return err
			}
			defer func() { _ = resp.Body.Close() }()
			if resp.StatusCode >= 300 {
				return apiError(resp)
			}
			var items []todo.Item
			if err := json.NewDecoder(resp.Body).Decode(&items); err != nil {
				return err
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(items)
		},
	}
	listCmd.Flags().String("filter", "", "CEL filter expression, e.g. 'completed == false'")
	return listCmd
}

// NewGetCommand constructs the `get` command.
func NewGetCommand(baseURL BaseURLFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Get a todo by id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseIDArg(args[0])
			if err != nil {
				return err
			}
			item, err := fetchItem(cmd, baseURL(), id)
			if err != nil {
				return err
			}
			return printItem(cmd, item)
		},
	}
}

// NewAddCommand constructs the `add` command.
func NewAddCommand(baseURL BaseURLFunc) *cobra.Command {
	addCmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Add a todo",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			completed, _ := cmd.Flags().GetBool("completed")
			item, err := sendItem(cmd, http.MethodPost, baseURL()+"/todos", &itemBody{Title: &args[0], Completed: &completed})
			if err != nil {
				return err
			}
			return printItem(cmd, item)
		},
	}
	addCmd.Flags().Bool("completed", false, "Create the todo already completed")
	return addCmd
}

// NewUpdateCommand constructs the `update` command.
func NewUpdateCommand(baseURL BaseURLFunc) *cobra.Command {
	updateCmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a todo's title or completed state",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseIDArg(args[0])
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("title") && !cmd.Flags().Changed("completed") {
				return fmt.Errorf("nothing to update; pass --title and/or --completed")
			}

			body := &itemBody{}
			if cmd.Flags().Changed("title") {
				title, _ := cmd.Flags().GetString("title")
				body.Title = &title
			} else {
				// The API requires a title on every update; carry the current one.
				current, err := fetchItem(cmd, baseURL(), id)
				if err != nil {
					return err
				}
				body.Title = &current.Title
			}
			if cmd.Flags().Changed("completed") {
				completed, _ := cmd.Flags().GetBool("completed")
				body.Completed = &completed
			}

			item, err := sendItem(cmd, http.MethodPut, itemURL(baseURL(), id), body)
			if err != nil {
				return err
			}
			return printItem(cmd, item)
		},
	}
	updateCmd.Flags().String("title", "", "New title")
	updateCmd.Flags().Bool("completed", false, "New completed state")
	return updateCmd
}

// NewDoneCommand constructs the `done` command, an update that marks the
// todo completed while carrying its current title through.
func NewDoneCommand(baseURL BaseURLFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "done <id>",
		Short: "Mark a todo completed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseIDArg(args[0])
			if err != nil {
				return err
			}
			current, err := fetchItem(cmd, baseURL(), id)
			if err != nil {
				return err
			}
			completed := true
			item, err := sendItem(cmd, http.MethodPut, itemURL(baseURL(), id), &itemBody{Title: &current.Title, Completed: &completed})
			if err != nil {
				return err
			}
			return printItem(cmd, item)
		},
	}
}

// NewRmCommand constructs the `rm` command.
func NewRmCommand(baseURL BaseURLFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a todo",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseIDArg(args[0])
			if err != nil {
				return err
			}
			item, err := sendItem(cmd, http.MethodDelete, itemURL(baseURL(), id), nil)
			if err != nil {
				return err
			}
			return printItem(cmd, item)
		},
	}
}
