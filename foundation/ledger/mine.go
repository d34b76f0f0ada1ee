package ledger

import (
	"context"
	"errors"

	"github.com/ardanlabs/hashledger/foundation/ledger/digest"
)

// ErrDifficultyTooHigh is returned when the difficulty asks for more zeros
// than a hash has characters, which no nonce could ever satisfy.
var ErrDifficultyTooHigh = errors.New("difficulty exceeds hash length")

// =============================================================================

// Mine increments the nonce until the hash starts with difficulty zeros.
// The search blocks until it is solved.
func (b *Block) Mine(difficulty uint) error {
	return b.MinePOW(context.Background(), difficulty, nil)
}

// MinePOW does the work of mining to find a valid hash for the block. The
// context is checked before each attempt and the event handler, when not
// nil, receives progress messages. Pointer semantics are being used since
// a nonce is being discovered.
func (b *Block) MinePOW(ctx context.Context, difficulty uint, ev func(v string, args ...any)) error {
	if difficulty > digest.Length {
		return ErrDifficultyTooHigh
	}

	if ev == nil {
		ev = func(string, ...any) {}
	}

	ev("ledger: MinePOW: MINING: started: difficulty[%d]", difficulty)
	defer ev("ledger: MinePOW: MINING: completed")

	for _, tx := range b.trans {
		ev("ledger: MinePOW: MINING: tx[%s]", tx.hash)
	}

	// The nonce only moves forward from wherever it currently is.
	var attempts uint64
	for !digest.HasZeroPrefix(b.hash, difficulty) {
		attempts++
		if attempts%1_000_000 == 0 {
			ev("ledger: MinePOW: MINING: attempts[%d]", attempts)
		}

		if ctx.Err() != nil {
			ev("ledger: MinePOW: MINING: CANCELLED: nonce[%d]", b.nonce)
			return ctx.Err()
		}

		b.nonce++
		b.recomputeHash()
	}

	ev("ledger: MinePOW: MINING: SOLVED: nonce[%d]: blk[%s]", b.nonce, b.hash)
	ev("ledger: MinePOW: MINING: attempts[%d]", attempts)

	return nil
}
