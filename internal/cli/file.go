package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"grokcli/internal/grok"

	"github.com/spf13/cobra"
)

func newFileCmd(root *Options) *cobra.Command {
	opts := &chatOptions{}
	cmd := &cobra.Command{
		Use:   "file <path>",
		Short: "Send a messages array loaded from a JSON file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			messages, err := loadMessages(args[0], cmd.InOrStdin())
			if err != nil {
				return err
			}
			client, err := newClient(root)
			if err != nil {
				return err
			}
			return completeChat(cmd, client, opts, messages)
		},
	}
	addChatFlags(cmd, opts)
	return cmd
}

// loadMessages reads a JSON messages array from path, or stdin for "-".
// The messages go on the wire verbatim; roles are not validated.
func loadMessages(path string, stdin io.Reader) ([]grok.Message, error) {
	var data []byte
	var err error
	if path == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("read messages: %w", err)
	}
	var messages []grok.Message
	if err := json.Unmarshal(data, &messages); err != nil {
		return nil, fmt.Errorf("decode messages: %w", err)
	}
	if len(messages) == 0 {
		return nil, errors.New("messages file is empty")
	}
	return messages, nil
}
