package commands

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/glyphpath/glyphpath/internal/errors"
	"github.com/glyphpath/glyphpath/pkg/glyphname"
)

func init() {
	rootCmd.AddCommand(encodeCmd)
}

var encodeCmd = &cobra.Command{
	Use:   "encode PATH...",
	Short: "Encode native paths as reversible Unicode filenames",
	Long: `Encode one or more native file paths as reversible Unicode
filenames, printing one encoded filename per line in argument order.

Encoding never fails for valid text; only paths that are not valid
UTF-8 are rejected.`,
	Example: `  glyphpath encode /home/alice/Documents/report.doc
  glyphpath encode 'C:\Users\alice\Music\song.mp3' /tmp/scratch.txt`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, path := range args {
			name, err := glyphname.ToFilename(path)
			if err != nil {
				return errors.NewUserError(err, "paths must be valid UTF-8")
			}
			slog.Debug("encoded path", "path", path, "filename", name)
			fmt.Fprintln(cmd.OutOrStdout(), name)
		}
		return nil
	},
}
