package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/spf13/cobra"
)

var (
	baseURL string
	timeout time.Duration
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "doubleentry-cli",
		Short: "Double-entry ledger CLI tool",
		Long:  `A command line interface for interacting with the double-entry ledger API.`,
	}

	rootCmd.PersistentFlags().StringVar(&baseURL, "url", "http://localhost:8080", "Base URL of the ledger API")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 10*time.Second, "Request timeout")

	rootCmd.AddCommand(accountsCmd(), transactionsCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func accountsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "accounts",
		Short: "Account operations",
	}

	var amount, currency string

	createCmd := &cobra.Command{
		Use:   "create REFERENCE",
		Short: "Create an account with an opening balance",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			postJSON("/api/v1/accounts", map[string]any{
				"reference": args[0],
				"opening_balance": map[string]string{
					"amount":   amount,
					"currency": currency,
				},
			})
		},
	}
	createCmd.Flags().StringVar(&amount, "amount", "0", "Opening balance amount")
	createCmd.Flags().StringVar(&currency, "currency", "EUR", "Opening balance currency")

	balanceCmd := &cobra.Command{
		Use:   "balance REFERENCE",
		Short: "Show the current committed balance",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			getJSON("/api/v1/accounts/" + args[0] + "/balance")
		},
	}

	transactionsCmd := &cobra.Command{
		Use:   "transactions REFERENCE",
		Short: "List transactions touching an account, in commit order",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			getJSON("/api/v1/accounts/" + args[0] + "/transactions")
		},
	}

	cmd.AddCommand(createCmd, balanceCmd, transactionsCmd)

	return cmd
}

func transactionsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "transactions",
		Short: "Transfer operations",
	}

	var (
		reference, transferType, currency string
		legs                              []string
	)

	createCmd := &cobra.Command{
		Use:   "create",
		Short: "Transfer funds between accounts",
		Long: `Transfer funds between accounts. Each --leg is ACCOUNT=AMOUNT with a
signed amount; the amounts of all legs must sum to zero.`,
		Run: func(cmd *cobra.Command, args []string) {
			if reference == "" {
				reference = ulid.Make().String()
			}

			legsPayload := make([]map[string]any, 0, len(legs))

			for _, leg := range legs {
				ref, amount, ok := strings.Cut(leg, "=")
				if !ok {
					fmt.Printf("invalid --leg %q, want ACCOUNT=AMOUNT\n", leg)
					os.Exit(1)
				}

				legsPayload = append(legsPayload, map[string]any{
					"account_ref": ref,
					"amount": map[string]string{
						"amount":   amount,
						"currency": currency,
					},
				})
			}

			postJSON("/api/v1/transactions", map[string]any{
				"reference": reference,
				"type":      transferType,
				"legs":      legsPayload,
			})
		},
	}
	createCmd.Flags().StringVar(&reference, "reference", "", "Transfer reference (generated when empty)")
	createCmd.Flags().StringVar(&transferType, "type", "transfer", "Transfer type")
	createCmd.Flags().StringVar(&currency, "currency", "EUR", "Currency shared by all legs")
	createCmd.Flags().StringArrayVar(&legs, "leg", nil, "Leg as ACCOUNT=AMOUNT (repeatable)")

	getCmd := &cobra.Command{
		Use:   "get REFERENCE",
		Short: "Show a committed transaction",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			getJSON("/api/v1/transactions/" + args[0])
		},
	}

	cmd.AddCommand(createCmd, getCmd)

	return cmd
}

func postJSON(path string, payload any) {
	body, err := json.Marshal(payload)
	if err != nil {
		fmt.Printf("Failed to encode request: %v\n", err)
		os.Exit(1)
	}

	client := &http.Client{Timeout: timeout}

	resp, err := client.Post(baseURL+path, "application/json", bytes.NewReader(body))
	if err != nil {
		fmt.Printf("Error making request: %v\n", err)
		os.Exit(1)
	}
	defer resp.Body.Close()

	printResponse(resp)
}

func getJSON(path string) {
	client := &http.Client{Timeout: timeout}

	resp, err := client.Get(baseURL + path)
	if err != nil {
		fmt.Printf("Error making request: %v\n", err)
		os.Exit(1)
	}
	defer resp.Body.Close()

	printResponse(resp)
}

func printResponse(resp *http.Response) {
	body, _ := io.ReadAll(resp.Body)

	var pretty bytes.Buffer
	if err := json.Indent(&pretty, body, "", "  "); err != nil {
		pretty.Write(body)
	}

	fmt.Println(pretty.String())

	if resp.StatusCode >= 400 {
		os.Exit(1)
	}
}
