package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/suparena/dddlib"
	"github.com/suparena/dddlib/bootstrap"
	"github.com/suparena/dddlib/config"
	"github.com/suparena/dddlib/datastore"
	"github.com/suparena/dddlib/injector"
)

var (
	versionFlag = flag.Bool("version", false, "Show version information")
	vFlag       = flag.Bool("v", false, "Show version information (short)")
	envFile     = flag.String("env", ".env", "Path to a .env file (ignored when missing)")
	configFile  = flag.String("config", "", "Path to the YAML wiring config")
	probeFlag   = flag.Bool("probe", false, "Write, read and delete a probe record in every configured store (stores are checked one at a time; only the last stays registered)")
	timeout     = flag.Duration("timeout", 10*time.Second, "Timeout for store probes")
)

// probe is the record written by -probe.
type probe struct {
	ID        string `dynamodbav:"ID" json:"id"`
	CheckedAt string `dynamodbav:"CheckedAt" json:"checkedAt"`
}

func main() {
	flag.Parse()

	if *versionFlag || *vFlag {
		info := dddlib.GetVersionInfo()
		fmt.Printf("dddlib wirecheck version %s\n", info.Version)
		fmt.Printf("Git commit: %s\n", info.GitCommit)
		fmt.Printf("Build date: %s\n", info.BuildDate)
		fmt.Printf("Go version: %s\n", info.GoVersion)
		os.Exit(0)
	}

	cfg, err := config.Load(*envFile, *configFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "wirecheck: %v\n", err)
		os.Exit(1)
	}

	r := injector.Instance()
	log, err := bootstrap.Wire(cfg, r)
	if err != nil {
		fmt.Fprintf(os.Stderr, "wirecheck: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	datastore.RegisterIndexMap[probe](r, map[string]string{
		"PK": "WIRECHECK#{ID}",
		"SK": "WIRECHECK",
	})

	wired, failed := wireStores(ctx, r, cfg.StoreNames(), *probeFlag, log)

	// Every store shares the DataStore[probe] slot, so only the last one is
	// listed among the registered types.
	log.Info("registered services",
		zap.Int("count", r.Len()),
		zap.Strings("types", r.Types()),
		zap.Strings("storesChecked", wired))

	if failed {
		log.Sync()
		os.Exit(1)
	}
}

// wireStores provides each named store for the probe entity in turn,
// optionally round-tripping a record through it. It returns the stores that
// wired (and probed) cleanly and whether any failed.
func wireStores(ctx context.Context, r *injector.Registry, names []string, runProbes bool, log *zap.Logger) ([]string, bool) {
	wired := make([]string, 0, len(names))
	failed := false
	for _, name := range names {
		ds, err := bootstrap.ProvideStore(ctx, r, name, func(p probe) string { return p.ID })
		if err != nil {
			log.Error("store wiring failed", zap.String("store", name), zap.Error(err))
			failed = true
			continue
		}
		if runProbes {
			if err := runProbe(ctx, ds, name); err != nil {
				log.Error("store probe failed", zap.String("store", name), zap.Error(err))
				failed = true
				continue
			}
			log.Info("store probe passed", zap.String("store", name))
		}
		wired = append(wired, name)
	}
	return wired, failed
}

func runProbe(ctx context.Context, ds datastore.DataStore[probe], name string) error {
	p := probe{
		ID:        fmt.Sprintf("%s-%d", name, time.Now().UnixNano()),
		CheckedAt: time.Now().UTC().Format(time.RFC3339),
	}
	if err := ds.Put(ctx, p); err != nil {
		return fmt.Errorf("put: %w", err)
	}
	got, err := ds.GetOne(ctx, p.ID)
	if err != nil {
		return fmt.Errorf("get: %w", err)
	}
	if got.CheckedAt != p.CheckedAt {
		return fmt.Errorf("read back %q, wrote %q", got.CheckedAt, p.CheckedAt)
	}
	return ds.Delete(ctx, p.ID)
}
