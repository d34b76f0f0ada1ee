// Package ledger implements the transactions and blocks of a hash linked
// ledger along with the proof of work search used to seal a block.
package ledger

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/ardanlabs/hashledger/foundation/ledger/digest"
)

// TimeFormat is the layout used to render timestamps into the digest input.
const TimeFormat = time.RFC3339Nano

// ErrHashMismatch is returned when a stored hash no longer matches the
// hash computed from the current field values.
var ErrHashMismatch = errors.New("hash does not match content")

// =============================================================================

// Transaction is the transfer of an amount between two parties. The fields
// are fixed at construction so the hash can never go stale.
type Transaction struct {
	from      string
	to        string
	amount    uint64
	timeStamp string
	hash      string
}

// NewTransaction constructs a transaction stamped with the specified time
// and computes its hash.
func NewTransaction(from string, to string, amount uint64, now time.Time) Transaction {
	tx := Transaction{
		from:      from,
		to:        to,
		amount:    amount,
		timeStamp: now.UTC().Format(TimeFormat),
	}
	tx.hash = tx.calcHash()

	return tx
}

// From returns the sender of the transaction.
func (tx Transaction) From() string {
	return tx.from
}

// To returns the recipient of the transaction.
func (tx Transaction) To() string {
	return tx.to
}

// Amount returns the value being transferred.
func (tx Transaction) Amount() uint64 {
	return tx.amount
}

// TimeStamp returns the creation time as recorded in the hash input.
func (tx Transaction) TimeStamp() string {
	return tx.timeStamp
}

// Hash returns the digest of the transaction.
func (tx Transaction) Hash() string {
	return tx.hash
}

// Verify recomputes the hash and compares it with the stored one.
func (tx Transaction) Verify() error {
	if exp := tx.calcHash(); tx.hash != exp {
		return fmt.Errorf("transaction %s: %w", tx.hash, ErrHashMismatch)
	}

	return nil
}

// String implements the fmt.Stringer interface. The block hash is computed
// over this form so the labels and field order must not change.
func (tx Transaction) String() string {
	return fmt.Sprintf("[From: %s, To: %s, Ammount: %d, Timestamp: %s, Hash: %s]", tx.from, tx.to, tx.amount, tx.timeStamp, tx.hash)
}

// calcHash hashes the fields in a fixed order with no separators.
func (tx Transaction) calcHash() string {
	return digest.Hash(tx.from + tx.to + strconv.FormatUint(tx.amount, 10) + tx.timeStamp)
}
