// Command streamoutfmt is a small demonstration/debug harness for the
// streamout engine, the Go-native analogue of the ReactOS CRT's own
// sprintf test binary (original_source/modules/rostests/apitests/crt/sprintf.c).
package main

import (
	"fmt"
	"os"
	"unicode/utf16"

	"github.com/spf13/cobra"

	"github.com/tinywasm/streamout"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var wide bool

	cmd := &cobra.Command{
		Use:   "streamoutfmt <format> [args...]",
		Short: "Render a C-style printf format string",
		Long: "streamoutfmt renders its first argument as a streamout format " +
			"string against the remaining arguments, which are passed through " +
			"as strings and coerced per conversion (%d, %f, %s, ...).",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, rawArgs []string) error {
			format := rawArgs[0]
			args := make([]any, len(rawArgs)-1)
			for i, a := range rawArgs[1:] {
				args[i] = a
			}

			if wide {
				units, err := streamout.SprintfW(format, args...)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(utf16.Decode(units)))
				return nil
			}

			out, err := streamout.Sprintf(format, args...)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}

	cmd.Flags().BoolVar(&wide, "wide", false, "render through the UTF-16 engine instead of the byte engine")
	return cmd
}
