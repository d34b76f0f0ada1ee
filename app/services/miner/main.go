// This program builds a block holding a single transfer and mines it.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ardanlabs/conf/v3"
	"github.com/ardanlabs/hashledger/foundation/identity"
	"github.com/ardanlabs/hashledger/foundation/ledger"
	"github.com/ardanlabs/hashledger/foundation/logger"
	"github.com/ardanlabs/hashledger/foundation/validate"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// build is the git version of this program. It is set using build flags in the makefile.
var build = "develop"

func main() {

	// Construct the application logger.
	log, err := logger.New("MINER")
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	defer log.Sync()

	// Perform the startup and shutdown sequence.
	if err := run(log); err != nil {
		log.Errorw("startup", "ERROR", err)
		log.Sync()
		os.Exit(1)
	}
}

func run(log *zap.SugaredLogger) error {

	// =========================================================================
	// Configuration

	cfg := struct {
		conf.Version
		Miner struct {
			Difficulty uint          `conf:"default:4" name:"difficulty" validate:"lte=64"`
			Amount     uint64        `conf:"default:1337" name:"amount"`
			From       string        `conf:"default:Rickard 1" name:"from"`
			To         string        `conf:"default:Rickard 2" name:"to" validate:"required"`
			KeyPath    string        `name:"key_path"`
			Timeout    time.Duration `conf:"default:0s" name:"timeout"`
		}
	}{
		Version: conf.Version{
			Build: build,
			Desc:  "copyright information here",
		},
	}

	// Parse will set the defaults and then look for any overriding values
	// in environment variables and command line flags.
	const prefix = "MINER"
	help, err := conf.Parse(prefix, &cfg)
	if err != nil {
		if errors.Is(err, conf.ErrHelpWanted) {
			fmt.Println(help)
			return nil
		}
		return fmt.Errorf("parsing config: %w", err)
	}

	// A difficulty past the hash length would never be solved.
	if err := validate.Check(cfg.Miner); err != nil {
		return fmt.Errorf("validating config: %w", err)
	}

	// =========================================================================
	// App Starting

	log.Infow("starting service", "version", build)
	defer log.Infow("shutdown complete")

	out, err := conf.String(&cfg)
	if err != nil {
		return fmt.Errorf("generating config for output: %w", err)
	}
	log.Infow("startup", "config", out)

	// =========================================================================
	// Identity Support

	keys, err := loadKeys(cfg.Miner.KeyPath)
	if err != nil {
		return err
	}
	fmt.Printf("secret: %s, public: %s\n", keys.Secret, keys.Public)

	from := cfg.Miner.From
	if from == "" {
		from = keys.Account()
	}

	// =========================================================================
	// Block Construction

	tx := ledger.NewTransaction(from, cfg.Miner.To, cfg.Miner.Amount, time.Now())
	block := ledger.NewBlock([]ledger.Transaction{tx}, cfg.Miner.Amount, time.Now())

	fmt.Printf("I got this block:\n%s\n", block)
	fmt.Printf("and I will now mine this block with difficulty %d..\n", cfg.Miner.Difficulty)

	// =========================================================================
	// Mining

	// The ledger packages accept a function of this signature to allow the
	// application to log.
	traceID := uuid.NewString()
	ev := func(v string, args ...any) {
		log.Infow(fmt.Sprintf(v, args...), "traceid", traceID)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if cfg.Miner.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.Miner.Timeout)
		defer cancel()
	}

	if err := block.MinePOW(ctx, cfg.Miner.Difficulty, ev); err != nil {
		return fmt.Errorf("mining block: %w", err)
	}

	fmt.Printf("Block mined:\n%s\n", block)

	if err := block.Verify(cfg.Miner.Difficulty); err != nil {
		return fmt.Errorf("verifying block: %w", err)
	}

	return nil
}

// loadKeys reads the key pair from disk when a path is configured,
// otherwise a fresh key pair is generated.
func loadKeys(path string) (identity.KeyPair, error) {
	if path == "" {
		keys, _, err := identity.Generate()
		return keys, err
	}

	keys, _, err := identity.Load(path)
	return keys, err
}
