package cli

import (
	"fmt"
	"io"

	"grokcli/internal/grok"

	"github.com/spf13/cobra"
)

const videoDiagnosticTail = 500

func newVideoCmd(root *Options) *cobra.Command {
	return &cobra.Command{
		Use:   "video <prompt>",
		Short: "Generate a video from a text prompt",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient(root)
			if err != nil {
				return err
			}
			errOut := cmd.ErrOrStderr()
			fmt.Fprintln(errOut, "Generating video (this takes 20–90 seconds)...")
			raw, err := client.GenerateVideo(cmd.Context(), args[0], func(progress string) {
				// overwrite a single progress line
				fmt.Fprintf(errOut, "\r%s", progress)
			})
			if err != nil {
				return err
			}
			fmt.Fprintln(errOut)
			printVideoResult(cmd.OutOrStdout(), errOut, raw)
			return nil
		},
	}
}

// printVideoResult scrapes the mp4 and poster URLs out of the raw stream
// payload. When no video URL matches, a tail of the payload goes to the
// error stream for diagnosis instead of failing.
func printVideoResult(out, errOut io.Writer, raw string) {
	if url, ok := grok.ExtractVideoURL(raw); ok {
		fmt.Fprintln(out, "Video URL:", url)
	} else {
		fmt.Fprintln(errOut, "Could not extract video URL. Raw output:")
		fmt.Fprintln(errOut, tail(raw, videoDiagnosticTail))
	}
	if url, ok := grok.ExtractPosterURL(raw); ok {
		fmt.Fprintln(out, "Preview URL:", url)
	}
}

func tail(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[len(s)-n:]
}
