package cmd

import (
	"fmt"

	"github.com/sealedenv/sealed/internal/ui"
	"github.com/sealedenv/sealed/internal/workflows"

	"github.com/spf13/cobra"
)

var listEnvFile string

func init() {
	listCmd.Flags().StringVarP(&listEnvFile, "env-file", "e", ".env", "path to env file")
}

// resetListCommandState resets the list command's flag state for testing.
func resetListCommandState() {
	listEnvFile = ".env"
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Show which variables in an env file are sealed",
	Long: `List every binding in the env file in order, marking each as sealed or
plaintext. Values are never printed.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting list command")
		Logger.Debugf("Listing bindings in %s", listEnvFile)

		result, err := workflows.List(cmd.Context(), workflows.ListOptions{
			EnvFile: listEnvFile,
		})
		if err != nil {
			Logger.Errorf("list failed: %v", err)
			return err
		}

		if len(result.Entries) == 0 {
			fmt.Println("No bindings found in " + ui.Path.Sprint(result.EnvFile))
			return nil
		}

		for _, entry := range result.Entries {
			marker := ui.Muted.Sprint("plaintext")
			if entry.Sealed {
				marker = ui.Success.Sprint("sealed")
			}
			fmt.Printf("%s  %s\n", entry.Key, marker)
		}
		return nil
	},
}
