package commands

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/glyphpath/glyphpath/internal/errors"
	"github.com/glyphpath/glyphpath/pkg/glyphname"
)

func init() {
	rootCmd.AddCommand(decodeCmd)
}

var decodeCmd = &cobra.Command{
	Use:   "decode FILENAME...",
	Short: "Decode encoded filenames back to native paths",
	Long: `Decode one or more filenames produced by encode back into the
original native paths, printing one path per line in argument order.

A filename whose platform icon is not followed by a valid directory
icon is rejected; it cannot have been produced by encode.`,
	Example: `  glyphpath decode "🐧📄alice／report.doc"
  glyphpath decode "💠🎵alice＼song.mp3" "／tmp／scratch.txt"`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, filename := range args {
			path, err := glyphname.ToPath(filename)
			if err != nil {
				return decodeError(err)
			}
			slog.Debug("decoded filename", "filename", filename, "path", path)
			fmt.Fprintln(cmd.OutOrStdout(), path)
		}
		return nil
	},
}

func decodeError(err error) error {
	switch {
	case errors.Is(err, glyphname.ErrPrefixSyntax), errors.Is(err, glyphname.ErrIncompleteInput):
		return errors.NewUserError(err, "the filename was not produced by glyphpath encode")
	default:
		return errors.NewUserError(err, "filenames must be valid UTF-8")
	}
}
