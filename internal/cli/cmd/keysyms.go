package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bnema/chordbar/internal/cli/styles"
	"github.com/bnema/chordbar/internal/domain/keysym"
	"github.com/bnema/chordbar/internal/logging"
)

var keysymsCmd = &cobra.Command{
	Use:   "keysyms [filter]",
	Short: "List the key names accepted in bindings",
	Long: `List the keysym names that can be used as keys in the bindings file
and in the back/exit key lists. A filter keeps names containing it,
ignoring case.

Any single printable character is also a valid key. Cyrillic and Greek
letters match on layouts that report either legacy or Unicode keysyms.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runKeysyms,
}

func init() {
	rootCmd.AddCommand(keysymsCmd)
}

func runKeysyms(cmd *cobra.Command, args []string) error {
	names := filterNames(keysym.Names(), args)
	logging.FromContext(cmd.Context()).Debug().Int("matches", len(names)).Msg("listing keysyms")
	fmt.Fprintln(cmd.OutOrStdout(), styles.NewKeysymRenderer(styles.NewTheme()).Render(names))
	return nil
}

func filterNames(names, args []string) []string {
	if len(args) == 0 || args[0] == "" {
		return names
	}
	needle := strings.ToLower(args[0])
	out := names[:0:0]
	for _, name := range names {
		if strings.Contains(strings.ToLower(name), needle) {
			out = append(out, name)
		}
	}
	return out
}
