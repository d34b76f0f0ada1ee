// Package digest provides the hashing primitive shared by transactions
// and blocks.
package digest

import (
	"crypto/sha256"

	"github.com/ethereum/go-ethereum/common"
)

// Length is the number of printable characters in every digest.
const Length = sha256.Size * 2

// Hash returns the hex encoded sha256 digest of the data. The encoding
// carries no 0x prefix so the leading characters belong to the hash itself.
func Hash(data string) string {
	hash := sha256.Sum256([]byte(data))
	return common.Bytes2Hex(hash[:])
}

// HasZeroPrefix reports whether the first difficulty characters of the
// hash are all '0'. A difficulty larger than the hash can never match.
func HasZeroPrefix(hash string, difficulty uint) bool {
	if difficulty > uint(len(hash)) {
		return false
	}

	for i := uint(0); i < difficulty; i++ {
		if hash[i] != '0' {
			return false
		}
	}

	return true
}
