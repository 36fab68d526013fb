package cli

import (
	"fmt"
	"io"

	"grokcli/internal/grok"

	"github.com/spf13/cobra"
)

func newImageCmd(root *Options) *cobra.Command {
	return &cobra.Command{
		Use:   "image <prompt>",
		Short: "Generate an image from a text prompt",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient(root)
			if err != nil {
				return err
			}
			content, err := client.GenerateImage(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			printImageResult(cmd.OutOrStdout(), content)
			return nil
		},
	}
}

// printImageResult prints the scraped URL, or the content verbatim when
// no src attribute is found.
func printImageResult(out io.Writer, content string) {
	if url, ok := grok.ExtractImageURL(content); ok {
		fmt.Fprintln(out, "Image URL:", url)
		return
	}
	fmt.Fprintln(out, content)
}
