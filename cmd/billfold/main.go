package main

import (
	"context"
	"os"

	"github.com/billfold/billfold/internal/config"
	"github.com/billfold/billfold/internal/kv"
	"github.com/billfold/billfold/internal/logger"
	"github.com/billfold/billfold/internal/seed"
	"github.com/billfold/billfold/internal/store"
	"github.com/billfold/billfold/internal/types"
	"go.uber.org/fx"
)

func main() {
	app := fx.New(
		fx.NopLogger,
		fx.Provide(
			config.NewConfig,
			newLogger,
			newKVStore,
			newBillStore,
		),
		fx.Invoke(startShell),
	)

	app.Run()
}

func newLogger(cfg *config.Configuration) (*logger.Logger, error) {
	return logger.NewLogger(cfg.Logging.Level)
}

func newKVStore(cfg *config.Configuration) (kv.Store, error) {
	if cfg.Storage.Mode == types.StorageModeMemory {
		return kv.NewMemoryStore(), nil
	}
	return kv.NewFileStore(cfg.Storage.Dir)
}

func newBillStore(cfg *config.Configuration, log *logger.Logger, kvStore kv.Store) *store.BillStore {
	return store.NewBillStore(store.Params{
		Logger: log,
		Config: cfg,
		KV:     kvStore,
	})
}

func startShell(
	lc fx.Lifecycle,
	shutdowner fx.Shutdowner,
	cfg *config.Configuration,
	log *logger.Logger,
	kvStore kv.Store,
	bills *store.BillStore,
) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if cfg.Storage.SeedSampleData {
				if err := seed.Ensure(ctx, kvStore, cfg.Billing.BillNumberPrefix, log); err != nil {
					return err
				}
			}
			if err := bills.Load(ctx); err != nil {
				return err
			}

			go func() {
				sh := NewShell(bills, log, os.Stdin, os.Stdout)
				sh.Run(context.Background())
				_ = shutdowner.Shutdown()
			}()
			return nil
		},
	})
}
