package cli

import (
	"fmt"

	"grokcli/internal/config"
	"grokcli/internal/grok"

	"github.com/spf13/cobra"
)

type chatOptions struct {
	Model  string
	Stream bool
}

func newChatCmd(root *Options) *cobra.Command {
	opts := &chatOptions{}
	cmd := &cobra.Command{
		Use:   "chat <message>",
		Short: "Send a single user message",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient(root)
			if err != nil {
				return err
			}
			return completeChat(cmd, client, opts, grok.UserMessage(args[0]))
		},
	}
	addChatFlags(cmd, opts)
	return cmd
}

func addChatFlags(cmd *cobra.Command, opts *chatOptions) {
	cmd.Flags().StringVar(&opts.Model, "model", "", "model id (default: "+config.DefaultModel+")")
	cmd.Flags().BoolVar(&opts.Stream, "stream", false, "stream the response")
}

func completeChat(cmd *cobra.Command, client *grok.Client, opts *chatOptions, messages []grok.Message) error {
	req := grok.ChatRequest{
		Model:    opts.Model,
		Messages: messages,
	}
	if opts.Stream {
		_, err := client.ChatStream(cmd.Context(), req, func(delta string) error {
			_, writeErr := fmt.Fprint(cmd.OutOrStdout(), delta)
			return writeErr
		})
		if err != nil {
			return err
		}
		_, _ = fmt.Fprintln(cmd.OutOrStdout())
		return nil
	}
	resp, err := client.Chat(cmd.Context(), req)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), resp.Content)
	return err
}
