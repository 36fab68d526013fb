package cli

import (
	"fmt"
	"io"

	"grokcli/internal/grok"

	"github.com/spf13/cobra"
)

func newModelsCmd(root *Options) *cobra.Command {
	return &cobra.Command{
		Use:   "models",
		Short: "List available models",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient(root)
			if err != nil {
				return err
			}
			models, err := client.Models(cmd.Context())
			if err != nil {
				return err
			}
			printModels(cmd.OutOrStdout(), models)
			return nil
		},
	}
}

func newVerifyCmd(root *Options) *cobra.Command {
	return &cobra.Command{
		Use:   "verify",
		Short: "Verify the API key is valid",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient(root)
			if err != nil {
				return err
			}
			// /models needs no payload, which makes it a cheap auth check.
			models, err := client.Models(cmd.Context())
			if err != nil {
				return err
			}
			printVerify(cmd.OutOrStdout(), models)
			return nil
		},
	}
}

func printModels(out io.Writer, models []grok.Model) {
	for _, model := range models {
		fmt.Fprintln(out, model.ID)
	}
}

func printVerify(out io.Writer, models []grok.Model) {
	fmt.Fprintf(out, "OK — %d models available\n", len(models))
	for _, model := range models {
		fmt.Fprintf(out, "  %s\n", model.ID)
	}
}
