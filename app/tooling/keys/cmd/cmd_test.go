package cmd

import (
	"bytes"
	"strings"
	"testing"
)

func Test_GenerateAccount(t *testing.T) {
	dir := t.TempDir()

	t.Log("Given the need to generate and inspect a key file.")
	{
		var out bytes.Buffer
		rootCmd.SetOut(&out)

		rootCmd.SetArgs([]string{"generate", "--account", "miner", "--account-path", dir})
		if err := rootCmd.Execute(); err != nil {
			t.Fatalf("\tShould be able to generate a key: %v", err)
		}

		generated := strings.TrimSpace(out.String())
		_, account, found := strings.Cut(generated, ": ")
		if !found || !strings.HasPrefix(account, "0x") {
			t.Fatalf("\tShould print the new account, got %q.", generated)
		}

		out.Reset()
		rootCmd.SetArgs([]string{"account", "--account", "miner", "--account-path", dir})
		if err := rootCmd.Execute(); err != nil {
			t.Fatalf("\tShould be able to load the key: %v", err)
		}

		if got := strings.TrimSpace(out.String()); got != account {
			t.Logf("\tgot: %s", got)
			t.Logf("\texp: %s", account)
			t.Fatal("\tShould print the same account.")
		}
	}
}
