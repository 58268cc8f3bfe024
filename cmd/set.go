package cmd

import (
	"os"

	"github.com/sealedenv/sealed/internal/input"
	"github.com/sealedenv/sealed/internal/ui"
	"github.com/sealedenv/sealed/internal/workflows"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	setStdin     bool
	setValue     string
	setValueFile string
	setAllowArgv bool
	setKey       string
	setKeyFile   string
	setKeyStdin  bool
	setEnvFile   string
)

func init() {
	setCmd.Flags().BoolVarP(&setStdin, "stdin", "s", false, "read plaintext value from stdin")
	setCmd.Flags().StringVar(&setValue, "value", "", "read plaintext value from argv (requires --allow-argv)")
	setCmd.Flags().StringVarP(&setValueFile, "value-file", "f", "", "read plaintext value from a file")
	setCmd.Flags().BoolVarP(&setAllowArgv, "allow-argv", "a", false, "allow --value to read plaintext from argv")
	setCmd.Flags().StringVarP(&setKey, "key", "k", "", "read key from base64-encoded argument")
	setCmd.Flags().StringVarP(&setKeyFile, "key-file", "K", "", "read key from a file (base64)")
	setCmd.Flags().BoolVarP(&setKeyStdin, "key-stdin", "S", false, "read key from stdin (base64)")
	setCmd.Flags().StringVarP(&setEnvFile, "env-file", "e", ".env", "path to env file")
}

// resetSetCommandState resets the set command's flag state for testing.
func resetSetCommandState() {
	setStdin = false
	setValue = ""
	setValueFile = ""
	setAllowArgv = false
	setKey = ""
	setKeyFile = ""
	setKeyStdin = false
	setEnvFile = ".env"
}

var setCmd = &cobra.Command{
	Use:   "set <VAR_NAME>",
	Short: "Encrypt and store a variable in an env file",
	Long: `Encrypt a plaintext value and store it as ENCv1:<nonce>:<ciphertext> in the env file.
Value input: exactly one of --stdin, --value (with --allow-argv), or --value-file.
Key input: exactly one of --key, --key-file, --key-stdin, or SEALED_KEY (env var).`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting set command")
		spinner, cleanup := startSpinner("Sealing value...", verbose)
		defer cleanup()

		varName := args[0]
		Logger.Debugf("Sealing variable %s into %s", varName, setEnvFile)

		warnKeyFilePermissions(setKeyFile)

		result, err := workflows.Set(cmd.Context(), workflows.SetOptions{
			VarName: varName,
			EnvFile: setEnvFile,
			Value: input.ValueSource{
				Stdin:     setStdin,
				Value:     setValue,
				ValueSet:  cmd.Flags().Changed("value"),
				AllowArgv: setAllowArgv,
				ValueFile: setValueFile,
			},
			Key: input.KeySource{
				Key:      setKey,
				KeyFile:  setKeyFile,
				KeyStdin: setKeyStdin,
			},
			Stdin: os.Stdin,
		})
		if err != nil {
			Logger.Errorf("set failed: %v", err)
			return err
		}

		spinner.FinalMSG = color.GreenString("✓") + " Sealed " + ui.Highlight.Sprint(result.VarName) +
			" into " + ui.Path.Sprint(result.EnvFile)
		return nil
	},
}
