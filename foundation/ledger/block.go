package ledger

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/ardanlabs/hashledger/foundation/ledger/digest"
)

// ErrNotSolved is returned when a block hash does not satisfy the
// requested difficulty.
var ErrNotSolved = errors.New("block hash is not solved")

// =============================================================================

// Block represents a group of transactions batched together. The previous
// hash is empty for a standalone block.
type Block struct {
	timeStamp string
	amount    uint64
	nonce     uint64
	hash      string
	prevHash  string
	trans     []Transaction
}

// NewBlock constructs a block over the transactions, stamped with the
// specified time, and computes its hash. The block keeps its own copy of
// the transaction list in the order provided.
func NewBlock(trans []Transaction, amount uint64, now time.Time) Block {
	b := Block{
		timeStamp: now.UTC().Format(TimeFormat),
		amount:    amount,
		nonce:     0,
		prevHash:  "",
		trans:     append([]Transaction(nil), trans...),
	}
	b.recomputeHash()

	return b
}

// Hash returns the current digest of the block.
func (b Block) Hash() string {
	return b.hash
}

// PrevHash returns the hash of the previous block.
func (b Block) PrevHash() string {
	return b.prevHash
}

// Nonce returns the value used to solve the proof of work.
func (b Block) Nonce() uint64 {
	return b.nonce
}

// Amount returns the block level amount.
func (b Block) Amount() uint64 {
	return b.amount
}

// TimeStamp returns the creation time as recorded in the hash input.
func (b Block) TimeStamp() string {
	return b.timeStamp
}

// Transactions returns a copy of the transactions in block order.
func (b Block) Transactions() []Transaction {
	return append([]Transaction(nil), b.trans...)
}

// TransactionList renders the transactions as a bracketed, comma separated
// list. This text is part of the hash input.
func (b Block) TransactionList() string {
	var sb strings.Builder

	sb.WriteString("[")
	for i, tx := range b.trans {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(tx.String())
	}
	sb.WriteString("]")

	return sb.String()
}

// Verify checks the block is internally consistent and solved for the
// specified difficulty.
func (b Block) Verify(difficulty uint) error {
	for _, tx := range b.trans {
		if err := tx.Verify(); err != nil {
			return err
		}
	}

	if exp := b.calcHash(); b.hash != exp {
		return fmt.Errorf("block %s: %w", b.hash, ErrHashMismatch)
	}

	if !digest.HasZeroPrefix(b.hash, difficulty) {
		return fmt.Errorf("block %s difficulty %d: %w", b.hash, difficulty, ErrNotSolved)
	}

	return nil
}

// String implements the fmt.Stringer interface.
func (b Block) String() string {
	return fmt.Sprintf("[Transactions: %s, Timestamp: %s, Nonce: %d, Hash: %s, PreviousHash: %s]", b.TransactionList(), b.timeStamp, b.nonce, b.hash, b.prevHash)
}

// recomputeHash must be called after any change to the nonce.
func (b *Block) recomputeHash() {
	b.hash = b.calcHash()
}

func (b Block) calcHash() string {
	return digest.Hash(b.TransactionList() + b.timeStamp + strconv.FormatUint(b.nonce, 10) + strconv.FormatUint(b.amount, 10) + b.prevHash)
}
