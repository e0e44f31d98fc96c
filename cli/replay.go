package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/mobile-next/mobileinput/commands"
	"github.com/spf13/cobra"
)

var replayCmd = &cobra.Command{
	Use:   "replay [script.json|-]",
	Short: "Run an input script and print the events it produces",
	Long: `Runs a JSON script of key, text, touch, trackball, generic, keyboard and
wait steps against a fresh session and prints the logical events each step
produced. Use "-" to read the script from stdin.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := readScript(args[0])
		if err != nil {
			return err
		}

		var req commands.ReplayRequest
		if err := json.Unmarshal(data, &req); err != nil {
			return fmt.Errorf("invalid replay script: %w", err)
		}
		if replayWidth > 0 {
			req.Screen.Width = replayWidth
		}
		if replayHeight > 0 {
			req.Screen.Height = replayHeight
		}

		return printResponse(commands.ReplayCommand(cmd.Context(), req))
	},
}

func readScript(path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(os.Stdin)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read script: %w", err)
	}
	return data, nil
}

var keycodesCmd = &cobra.Command{
	Use:   "keycodes",
	Short: "List the named keys",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return printResponse(commands.KeyCodesCommand())
	},
}

func init() {
	rootCmd.AddCommand(replayCmd)
	rootCmd.AddCommand(keycodesCmd)

	replayCmd.Flags().IntVar(&replayWidth, "width", 0, "screen width, overrides the script")
	replayCmd.Flags().IntVar(&replayHeight, "height", 0, "screen height, overrides the script")
}
