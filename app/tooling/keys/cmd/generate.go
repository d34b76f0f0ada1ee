package cmd

import (
	"fmt"
	"os"

	"github.com/ardanlabs/hashledger/foundation/identity"
	"github.com/spf13/cobra"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate new key pair",
	RunE:  generateRun,
}

func init() {
	rootCmd.AddCommand(generateCmd)
}

func generateRun(cmd *cobra.Command, args []string) error {
	keys, privateKey, err := identity.Generate()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(accountPath, 0o755); err != nil {
		return fmt.Errorf("creating %q: %w", accountPath, err)
	}

	path := getPrivateKeyPath()
	if err := identity.Save(path, privateKey); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", path, keys.Account())
	return nil
}
