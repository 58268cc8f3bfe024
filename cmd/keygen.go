package cmd

import (
	"fmt"

	"github.com/sealedenv/sealed/internal/ui"
	"github.com/sealedenv/sealed/internal/workflows"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var keygenOutFile string

func init() {
	keygenCmd.Flags().StringVarP(&keygenOutFile, "out-file", "o", "", "write base64 key to a file instead of stdout")
}

// resetKeygenCommandState resets the keygen command's flag state for testing.
func resetKeygenCommandState() {
	keygenOutFile = ""
}

var keygenCmd = &cobra.Command{
	Use:   "keygen",
	Short: "Generate a new random key (base64)",
	Long: `Generate a fresh 32-byte key from the system CSPRNG and emit it as standard
base64. With --out-file the key is written there with mode 0600; otherwise it
is printed to stdout.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting keygen command")

		result, err := workflows.Keygen(cmd.Context(), workflows.KeygenOptions{
			OutFile: keygenOutFile,
		})
		if err != nil {
			Logger.Errorf("keygen failed: %v", err)
			return err
		}

		if result.OutFile != "" {
			fmt.Println(color.GreenString("✓") + " Key written to " + ui.Path.Sprint(result.OutFile))
			return nil
		}

		fmt.Println(result.KeyB64)
		return nil
	},
}
