package client

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/rzbill/todo/internal/todo"
	"github.com/spf13/cobra"
)

// itemBody carries optional fields for create and update requests. Pointer
// fields are omitted when unset so partial updates stay partial.
type itemBody struct {
	Title     *string `json:"title,omitempty"`
	Completed *bool   `json:"completed,omitempty"`
}

// parseIDArg converts a positional id argument.
func parseIDArg(raw string) (int, error) {
	id, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid id %q", raw)
	}
	return id, nil
}

// itemURL builds the single-item endpoint for an id.
func itemURL(base string, id int) string {
	return fmt.Sprintf("%s/todos/?id=%d", base, id)
}

// apiError surfaces the server's error body: JSON {"error": msg} on write
// endpoints, plain text on read endpoints.
func apiError(resp *http.Response) error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
	var je struct {
		Error string `json:"error"`
	}
	if json.Unmarshal(body, &je) == nil && je.Error != "" {
		return fmt.Errorf("http error: %s: %s", resp.Status, je.Error)
	}
	if msg := strings.TrimSpace(string(body)); msg != "" {
		return fmt.Errorf("http error: %s: %s", resp.Status, msg)
	}
	return fmt.Errorf("http error: %s", resp.Status)
}

// fetchItem GETs a single todo by id.
func fetchItem(cmd *cobra.Command, base string, id int) (todo.Item, error) {
	req, err := http.NewRequestWithContext(cmd.Context(), http.MethodGet, itemURL(base, id), nil)
	if err != nil {
		return todo.Item{}, err
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return todo.Item{}, err
	}
	defer func() { _ = resp.Body.Close() }()
	if resp.StatusCode >= 300 {
		return todo.Item{}, apiError(resp)
	}
	var item todo.Item
	if err := json.NewDecoder(resp.Body).Decode(&item); err != nil {
		return todo.Item{}, err
	}
	return item, nil
}

// sendItem issues a write request with an optional JSON body and decodes the
// returned todo.
func sendItem(cmd *cobra.Command, method, url string, body *itemBody) (todo.Item, error) {
	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return todo.Item{}, err
		}
		rd = bytes.NewReader(b)
	}
	req, err := http.NewRequestWithContext(cmd.Context(), method, url, rd)
	if err != nil {
		return todo.Item{}, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return todo.Item{}, err
	}
	defer func() { _ = resp.Body.Close() }()
	if resp.StatusCode >= 300 {
		return todo.Item{}, apiError(resp)
	}
	var item todo.Item
	if err := json.NewDecoder(resp.Body).Decode(&item); err != nil {
		return todo.Item{}, err
	}
	return item, nil
}

// printItem writes the todo as indented JSON to the command's stdout.
func printItem(cmd *cobra.Command, item todo.Item) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(item)
}
