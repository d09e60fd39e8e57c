package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/iho/splitledger/internal/adapter/http/dto"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// apiClient talks to the splitledger HTTP API.
type apiClient struct {
	baseURL        string
	timeout        time.Duration
	idempotencyKey string
	asJSON         bool
}

func newRootCmd() *cobra.Command {
	c := &apiClient{}

	rootCmd := &cobra.Command{
		Use:           "splitledger-cli",
		Short:         "Split bills with friends",
		Long:          `A command line interface for the splitledger API.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&c.baseURL, "url", "http://localhost:8080", "Base URL of the splitledger API")
	rootCmd.PersistentFlags().DurationVar(&c.timeout, "timeout", 10*time.Second, "Request timeout")
	rootCmd.PersistentFlags().StringVar(&c.idempotencyKey, "idempotency-key", "", "Idempotency-Key header sent with mutating requests")
	rootCmd.PersistentFlags().BoolVar(&c.asJSON, "json", false, "Print raw JSON responses")

	rootCmd.AddCommand(
		friendsCmd(c),
		selectCmd(c),
		unselectCmd(c),
		splitCmd(c),
	)

	return rootCmd
}

func friendsCmd(c *apiClient) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "friends",
		Short: "Friend operations",
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List friends and balances",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var resp dto.LedgerResponse
			if err := c.do(cmd.Context(), http.MethodGet, "/api/v1/friends", nil, &resp); err != nil {
				return err
			}
			if c.asJSON {
				return printJSON(cmd.OutOrStdout(), resp)
			}
			printLedger(cmd.OutOrStdout(), &resp)
			return nil
		},
	}

	getCmd := &cobra.Command{
		Use:   "get <id>",
		Short: "Show one friend",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var resp dto.FriendResponse
			if err := c.do(cmd.Context(), http.MethodGet, "/api/v1/friends/"+args[0], nil, &resp); err != nil {
				return err
			}
			return c.printFriend(cmd.OutOrStdout(), &resp)
		},
	}

	var image string
	addCmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Add a friend with a zero balance",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := dto.AddFriendRequest{Name: args[0]}
			if cmd.Flags().Changed("image") {
				req.Image = &image
			}

			var resp dto.FriendResponse
			if err := c.do(cmd.Context(), http.MethodPost, "/api/v1/friends", req, &resp); err != nil {
				return err
			}
			return c.printFriend(cmd.OutOrStdout(), &resp)
		},
	}
	addCmd.Flags().StringVar(&image, "image", "", "Avatar URL (defaults to the server placeholder)")

	removeCmd := &cobra.Command{
		Use:     "remove <id>",
		Aliases: []string{"rm"},
		Short:   "Remove a friend",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.do(cmd.Context(), http.MethodDelete, "/api/v1/friends/"+args[0], nil, nil); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "removed %s\n", args[0])
			return nil
		},
	}

	cmd.AddCommand(listCmd, getCmd, addCmd, removeCmd)
	return cmd
}

func selectCmd(c *apiClient) *cobra.Command {
	return &cobra.Command{
		Use:   "select <id>",
		Short: "Select the friend to split the next bill with",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var resp dto.SelectionResponse
			if err := c.do(cmd.Context(), http.MethodPut, "/api/v1/selection", dto.SelectFriendRequest{FriendID: args[0]}, &resp); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "selected %s\n", resp.SelectedID)
			return nil
		},
	}
}

func unselectCmd(c *apiClient) *cobra.Command {
	return &cobra.Command{
		Use:   "unselect",
		Short: "Clear the current selection",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.do(cmd.Context(), http.MethodDelete, "/api/v1/selection", nil, nil); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "selection cleared")
			return nil
		},
	}
}

func splitCmd(c *apiClient) *cobra.Command {
	var (
		bill        string
		yourExpense string
		payer       string
		friendID    string
	)

	cmd := &cobra.Command{
		Use:   "split",
		Short: "Split a bill with the selected friend",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			req := dto.SplitBillRequest{FriendID: friendID, Payer: payer}

			if bill != "" {
				d, err := decimal.NewFromString(bill)
				if err != nil {
					return fmt.Errorf("invalid --bill %q: %w", bill, err)
				}
				req.Bill = decimal.NewNullDecimal(d)
			}
			if yourExpense != "" {
				d, err := decimal.NewFromString(yourExpense)
				if err != nil {
					return fmt.Errorf("invalid --your-expense %q: %w", yourExpense, err)
				}
				req.YourExpense = d
			}

			var resp dto.FriendResponse
			if err := c.do(cmd.Context(), http.MethodPost, "/api/v1/splits", req, &resp); err != nil {
				return err
			}
			return c.printFriend(cmd.OutOrStdout(), &resp)
		},
	}

	cmd.Flags().StringVar(&bill, "bill", "", "Bill value")
	cmd.Flags().StringVar(&yourExpense, "your-expense", "", "Your part of the bill")
	cmd.Flags().StringVar(&payer, "payer", "user", "Who paid the bill: user or friend")
	cmd.Flags().StringVar(&friendID, "friend", "", "Friend ID; must match the current selection")

	return cmd
}

// apiError is returned for non-2xx responses.
type apiError struct {
	status int
	body   dto.ErrorResponse
}

func (e *apiError) Error() string {
	if e.body.Message != "" {
		return fmt.Sprintf("%s: %s (status %d)", e.body.Error, e.body.Message, e.status)
	}
	if e.body.Error != "" {
		return fmt.Sprintf("%s (status %d)", e.body.Error, e.status)
	}
	return fmt.Sprintf("request failed with status %d", e.status)
}

func (c *apiClient) do(ctx context.Context, method, path string, in, out any) error {
	if ctx == nil {
		ctx = context.Background()
	}

	var body io.Reader
	if in != nil {
		payload, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, strings.TrimRight(c.baseURL, "/")+path, body)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.idempotencyKey != "" && method != http.MethodGet {
		req.Header.Set("Idempotency-Key", c.idempotencyKey)
	}

	client := &http.Client{Timeout: c.timeout}
	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("error making request: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := &apiError{status: resp.StatusCode}
		_ = json.Unmarshal(data, &apiErr.body)
		return apiErr
	}

	if out == nil || len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to parse response: %w", err)
	}
	return nil
}

func (c *apiClient) printFriend(w io.Writer, f *dto.FriendResponse) error {
	if c.asJSON {
		return printJSON(w, f)
	}
	fmt.Fprintf(w, "%-28s %-16s %s\n", truncate(f.ID, 28), truncate(f.Name, 16), f.Message)
	return nil
}

func printLedger(w io.Writer, l *dto.LedgerResponse) {
	for _, f := range l.Friends {
		marker := " "
		if f.ID == l.SelectedID {
			marker = "*"
		}
		fmt.Fprintf(w, "%s %-28s %-16s %s\n", marker, truncate(f.ID, 28), truncate(f.Name, 16), f.Message)
	}
	fmt.Fprintf(w, "owed to you: %s  you owe: %s  net: %s\n", l.Totals.Owed, l.Totals.Owing, l.Totals.Net)
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	if n <= 3 {
		return string(r[:n])
	}
	return string(r[:n-3]) + "..."
}
