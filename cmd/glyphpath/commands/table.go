package commands

import (
	"fmt"

	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/glyphpath/glyphpath/internal/errors"
	"github.com/glyphpath/glyphpath/internal/escape"
	"github.com/glyphpath/glyphpath/internal/platform"
)

// tableFormatFlag holds the value of the --format flag.
var tableFormatFlag string

func init() {
	tableCmd.Flags().StringVarP(&tableFormatFlag, "format", "f", "",
		"output format: yaml, toml (default from config)")
	rootCmd.AddCommand(tableCmd)
}

// tableDoc is the serialized form of the encoding tables.
type tableDoc struct {
	Escapes   []escapeEntry   `yaml:"escapes" toml:"escapes"`
	Platforms []platformEntry `yaml:"platforms" toml:"platforms"`
	Roots     []rootEntry     `yaml:"roots" toml:"roots"`
}

type escapeEntry struct {
	Target  string `yaml:"target" toml:"target"`
	Escaped string `yaml:"escaped" toml:"escaped"`
}

type platformEntry struct {
	Name      string `yaml:"name" toml:"name"`
	Marker    string `yaml:"marker" toml:"marker"`
	Separator string `yaml:"separator" toml:"separator"`
	Home      string `yaml:"home" toml:"home"`
	Drive     string `yaml:"drive" toml:"drive"`
	AppData   string `yaml:"app_data" toml:"app_data"`
}

type rootEntry struct {
	Name string `yaml:"name" toml:"name"`
	Icon string `yaml:"icon" toml:"icon"`
}

var tableCmd = &cobra.Command{
	Use:   "table",
	Short: "Show the escape table and platform icon tables",
	Long: `Show the character escape table, the supported platforms with
their marker icons and directory conventions, and the well-known
directory icons, in a machine-readable format.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		format := tableFormatFlag
		if format == "" && cfg != nil {
			format = cfg.TableFormat
		}
		if format == "" {
			format = "yaml"
		}

		out, err := marshalTable(buildTable(), format)
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), string(out))
		return nil
	},
}

func buildTable() tableDoc {
	var doc tableDoc

	for _, pair := range escape.Pairs() {
		doc.Escapes = append(doc.Escapes, escapeEntry{
			Target:  string(pair.Target),
			Escaped: string(pair.Escaped),
		})
	}

	for _, p := range platform.Platforms() {
		doc.Platforms = append(doc.Platforms, platformEntry{
			Name:      p.Name(),
			Marker:    string(p.Marker()),
			Separator: string(p.Separator()),
			Home:      p.FormatHome("USER"),
			Drive:     p.FormatDrive("VOLUME"),
			AppData:   p.SubdirName(platform.AppData),
		})
	}

	for _, root := range platform.Roots() {
		doc.Roots = append(doc.Roots, rootEntry{
			Name: root.String(),
			Icon: string(root.Icon()),
		})
	}

	return doc
}

func marshalTable(doc tableDoc, format string) ([]byte, error) {
	switch format {
	case "yaml":
		return yaml.Marshal(doc)
	case "toml":
		return toml.Marshal(doc)
	default:
		err := errors.Wrapf(errors.ErrUnknownFormat, "%q", format)
		return nil, errors.NewUserError(err, "valid formats: yaml, toml")
	}
}
