package cmd

import (
	"fmt"

	logger "github.com/sealedenv/sealed/internal/logging"

	"github.com/common-nighthawk/go-figure"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var (
	verbose bool
	debug   bool
	Logger  logger.Logger

	RootCmd = &cobra.Command{
		Use:   "sealed",
		Short: "Store encrypted environment variables in .env files",
		Long: `Sealed keeps individual secrets encrypted at rest inside ordinary dotenv files.

Each value is sealed with ChaCha20-Poly1305 under a shared 32-byte key and
bound to its variable name, then stored in place as ENCv1:<nonce>:<ciphertext>
next to your plaintext variables. Applications read sealed values back with
the sealedenv package using the SEALED_KEY environment variable.

Available Commands:
  set       Encrypt and store a variable in an env file
  get       Read a variable from an env file
  keygen    Generate a new random key (base64)
  list      Show which variables in an env file are sealed

Run 'sealed help <command>' for more details on a specific command.
`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			Logger = logger.Logger{
				Verbose: verbose,
				Debug:   debug,
			}
			Logger.Debugf("Initializing sealed command with verbose=%t, debug=%t", verbose, debug)
		},
		Run: func(cmd *cobra.Command, args []string) {
			banner := figure.NewColorFigure("sealed", "alligator2", "green", true)
			banner.Print()
			fmt.Println()
			fmt.Println("Run 'sealed --help' to see available commands.")
		},
	}
)

func init() {
	RootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	RootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "enable debug output")

	RootCmd.AddCommand(setCmd)
	RootCmd.AddCommand(getCmd)
	RootCmd.AddCommand(keygenCmd)
	RootCmd.AddCommand(listCmd)
}

// Helper functions for testing

// GetRootCmd returns the RootCmd for testing.
func GetRootCmd() *cobra.Command {
	return RootCmd
}

// ResetGlobalState resets all global variables to their default values for testing.
func ResetGlobalState() {
	verbose = false
	debug = false
	resetSetCommandState()
	resetGetCommandState()
	resetKeygenCommandState()
	resetListCommandState()

	// Clear pflag's Changed tracking so one test's flags don't leak into the next.
	for _, c := range RootCmd.Commands() {
		c.Flags().VisitAll(func(f *pflag.Flag) {
			f.Changed = false
		})
	}
	RootCmd.PersistentFlags().VisitAll(func(f *pflag.Flag) {
		f.Changed = false
	})
}

// SetVerbose sets the verbose flag for testing.
func SetVerbose(v bool) {
	verbose = v
}

// SetDebug sets the debug flag for testing.
func SetDebug(d bool) {
	debug = d
}

// SetLogger sets the logger for testing.
func SetLogger(l logger.Logger) {
	Logger = l
}
