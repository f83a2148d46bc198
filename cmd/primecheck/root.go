package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/pricofy/prime-checker/internal/config"
	"github.com/pricofy/prime-checker/internal/handler"
	"github.com/pricofy/prime-checker/internal/logx"
	"github.com/pricofy/prime-checker/internal/prime"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "primecheck",
		Short:        "Check numbers for primality locally",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			// Logs go to stderr so stdout stays parseable JSON.
			logx.InitWithWriter(cmd.ErrOrStderr(), cfg.Log, cfg.Environment)
			return nil
		},
	}
	root.AddCommand(newCheckCmd(), newInvokeCmd())
	return root
}

func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check <number>",
		Short: "Print the prime check result for a number",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid number %q: %w", args[0], err)
			}
			return writeJSON(cmd.OutOrStdout(), prime.Evaluate(n))
		},
	}
}

func newInvokeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "invoke [event.json]",
		Short: "Run the Lambda handler on an event read from a file or stdin",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				event []byte
				err   error
			)
			if len(args) == 1 && args[0] != "-" {
				event, err = os.ReadFile(args[0])
			} else {
				event, err = io.ReadAll(cmd.InOrStdin())
			}
			if err != nil {
				return fmt.Errorf("failed to read event: %w", err)
			}

			resp := handler.Handle(context.Background(), json.RawMessage(event))
			return writeJSON(cmd.OutOrStdout(), resp)
		},
	}
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}
