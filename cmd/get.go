package cmd

import (
	"fmt"
	"os"

	"github.com/sealedenv/sealed/internal/input"
	"github.com/sealedenv/sealed/internal/ui"
	"github.com/sealedenv/sealed/internal/workflows"

	"github.com/spf13/cobra"
)

var (
	getEnvFile  string
	getReveal   bool
	getKey      string
	getKeyFile  string
	getKeyStdin bool
)

func init() {
	getCmd.Flags().StringVarP(&getEnvFile, "env-file", "e", ".env", "path to env file")
	getCmd.Flags().BoolVarP(&getReveal, "reveal", "r", false, "print decrypted plaintext to stdout")
	getCmd.Flags().StringVarP(&getKey, "key", "k", "", "read key from base64-encoded argument")
	getCmd.Flags().StringVarP(&getKeyFile, "key-file", "K", "", "read key from a file (base64)")
	getCmd.Flags().BoolVarP(&getKeyStdin, "key-stdin", "S", false, "read key from stdin (base64)")
}

// resetGetCommandState resets the get command's flag state for testing.
func resetGetCommandState() {
	getEnvFile = ".env"
	getReveal = false
	getKey = ""
	getKeyFile = ""
	getKeyStdin = false
}

var getCmd = &cobra.Command{
	Use:   "get <VAR_NAME>",
	Short: "Read a variable from an env file",
	Long: `Read a variable from the env file. If the value is encrypted, a key is required
to decrypt it (from --key/--key-file/--key-stdin or SEALED_KEY).
Without --reveal, plaintext is not printed.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting get command")

		varName := args[0]
		Logger.Debugf("Reading variable %s from %s", varName, getEnvFile)

		warnKeyFilePermissions(getKeyFile)

		result, err := workflows.Get(cmd.Context(), workflows.GetOptions{
			VarName: varName,
			EnvFile: getEnvFile,
			Key: input.KeySource{
				Key:      getKey,
				KeyFile:  getKeyFile,
				KeyStdin: getKeyStdin,
			},
			Reveal: getReveal,
			Stdin:  os.Stdin,
		})
		if err != nil {
			Logger.Errorf("get failed: %v", err)
			return err
		}

		if !result.Sealed {
			fmt.Println(result.Value)
			return nil
		}

		if result.Plaintext != nil {
			defer result.Plaintext.Destroy()
			// Written directly so no extra unwipeable string copy is made.
			os.Stdout.Write(result.Plaintext.Bytes())
			os.Stdout.Write([]byte{'\n'})
			return nil
		}

		fmt.Fprintln(os.Stderr, "value is encrypted; use "+ui.Flag.Sprint("--reveal")+" to print plaintext")
		return nil
	},
}
