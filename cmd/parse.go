package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/jsphweid/strumsheet/constants"
	"github.com/jsphweid/strumsheet/textparser"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var (
	parsePattern string
	parseLength  int
)

func init() {
	parseCmd.Flags().StringVar(&parsePattern, "pattern", constants.DefaultPatternName, "pattern name given to every line")
	parseCmd.Flags().IntVar(&parseLength, "len", constants.DefaultPatternLength, "pattern length used to space lyrics")
	rootCmd.AddCommand(parseCmd)
}

var parseCmd = &cobra.Command{
	Use:   "parse [file]",
	Short: "Parses tagged lyric text",
	Long: `Parses text like "<Am>hello world<$>more text" into song lines and
prints them as json. Reads stdin when no file is given.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var text []byte
		var err error
		if len(args) == 1 {
			text, err = os.ReadFile(args[0])
		} else {
			text, err = io.ReadAll(cmd.InOrStdin())
		}
		if err != nil {
			return errors.Wrap(err, "Could not read text")
		}

		blocks := textparser.Parse(string(text), parsePattern, parseLength)
		out, err := json.MarshalIndent(blocks, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(out))
		return nil
	},
}
