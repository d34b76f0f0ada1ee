package identity_test

import (
	"path/filepath"
	"testing"

	"github.com/ardanlabs/hashledger/foundation/identity"
	"github.com/ethereum/go-ethereum/crypto"
)

// Success and failure markers.
const (
	success = "\u2713"
	failed  = "\u2717"
)

const (
	pkHexKey = "fae85851bdf5c9f49923722ce38f3c1defcfd3619ef5453230a58ad805499959"
	account  = "0xdd6B972ffcc631a62CAE1BB9d80b7ff429c8ebA4"
)

// =============================================================================

func Test_KeyPair(t *testing.T) {
	t.Log("Given the need to encode a key pair.")
	{
		testID := 0
		t.Logf("\tTest %d:\tWhen handling a known private key.", testID)
		{
			pk, err := crypto.HexToECDSA(pkHexKey)
			if err != nil {
				t.Fatalf("\t%s\tTest %d:\tShould be able to decode a private key: %s", failed, testID, err)
			}
			t.Logf("\t%s\tTest %d:\tShould be able to decode a private key.", success, testID)

			kp := identity.FromPrivateKey(pk)
			if kp.Secret != "0x"+pkHexKey {
				t.Logf("\t%s\tTest %d:\tgot: %s", failed, testID, kp.Secret)
				t.Logf("\t%s\tTest %d:\texp: %s", failed, testID, "0x"+pkHexKey)
				t.Fatalf("\t%s\tTest %d:\tShould encode the secret key.", failed, testID)
			}
			t.Logf("\t%s\tTest %d:\tShould encode the secret key.", success, testID)

			// Uncompressed public keys are 65 bytes.
			if len(kp.Public) != 2+65*2 {
				t.Fatalf("\t%s\tTest %d:\tShould encode the public key, got %s.", failed, testID, kp.Public)
			}
			t.Logf("\t%s\tTest %d:\tShould encode the public key.", success, testID)

			if kp.Account() != account {
				t.Logf("\t%s\tTest %d:\tgot: %s", failed, testID, kp.Account())
				t.Logf("\t%s\tTest %d:\texp: %s", failed, testID, account)
				t.Fatalf("\t%s\tTest %d:\tShould derive the account.", failed, testID)
			}
			t.Logf("\t%s\tTest %d:\tShould derive the account.", success, testID)
		}

		testID++
		t.Logf("\tTest %d:\tWhen handling a generated key saved to disk.", testID)
		{
			kp, pk, err := identity.Generate()
			if err != nil {
				t.Fatalf("\t%s\tTest %d:\tShould be able to generate a key: %s", failed, testID, err)
			}
			t.Logf("\t%s\tTest %d:\tShould be able to generate a key.", success, testID)

			path := filepath.Join(t.TempDir(), "miner.ecdsa")
			if err := identity.Save(path, pk); err != nil {
				t.Fatalf("\t%s\tTest %d:\tShould be able to save the key: %s", failed, testID, err)
			}
			t.Logf("\t%s\tTest %d:\tShould be able to save the key.", success, testID)

			loaded, _, err := identity.Load(path)
			if err != nil {
				t.Fatalf("\t%s\tTest %d:\tShould be able to load the key: %s", failed, testID, err)
			}
			t.Logf("\t%s\tTest %d:\tShould be able to load the key.", success, testID)

			if loaded != kp {
				t.Fatalf("\t%s\tTest %d:\tShould get back the same key pair.", failed, testID)
			}
			t.Logf("\t%s\tTest %d:\tShould get back the same key pair.", success, testID)
		}
	}
}
