package cmd

import (
	"fmt"

	"github.com/ardanlabs/hashledger/foundation/identity"
	"github.com/spf13/cobra"
)

var showSecret bool

var accountCmd = &cobra.Command{
	Use:   "account",
	Short: "Print account for the specific key file",
	RunE:  accountRun,
}

func init() {
	rootCmd.AddCommand(accountCmd)
	accountCmd.Flags().BoolVarP(&showSecret, "secret", "s", false, "Also print the secret and public keys.")
}

func accountRun(cmd *cobra.Command, args []string) error {
	keys, _, err := identity.Load(getPrivateKeyPath())
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, keys.Account())
	if showSecret {
		fmt.Fprintf(out, "secret: %s, public: %s\n", keys.Secret, keys.Public)
	}

	return nil
}
