package main

import (
	"context"
	"fmt"
	"log"
	"os"

	econ "github.com/ameenbasith/economic-comparison-project"
	"github.com/ameenbasith/economic-comparison-project/fred"
	"github.com/ameenbasith/economic-comparison-project/store"
)

func runPipeline(configPath string, noStore bool) error {
	cfg, err := econ.LoadConfig(configPath)
	if err != nil {
		return err
	}

	if cfg.CacheDir != "" {
		if e := os.MkdirAll(cfg.CacheDir, econ.DefaultCacheDirPerm); e != nil {
			return fmt.Errorf("cache dir: %w", e)
		}
	}

	ctx := context.Background()

	pipe := econ.NewPipeline(cfg, fred.NewClient(cfg))

	res, err := pipe.Run(ctx)
	if err != nil {
		return err
	}

	printSummary(os.Stdout, res)

	if noStore || cfg.Store.Engine == "" {
		return nil
	}

	st, err := store.Open(cfg.Store)
	if err != nil {
		return err
	}
	defer func() { _ = st.Close() }()

	if e := st.SaveResult(ctx, res); e != nil {
		return e
	}

	for _, tbl := range []string{"economic_comparison", "affordability_comparison", "decade_summary", econ.HomePrice} {
		n, e := st.RowCount(ctx, tbl)
		if e != nil {
			return e
		}

		log.Printf("%s: %d rows", tbl, n)
	}

	return nil
}

func runQuery(configPath, qry string) error {
	cfg, err := econ.LoadConfig(configPath)
	if err != nil {
		return err
	}

	if cfg.Store.Engine == "" {
		return fmt.Errorf("no store configured in %s", configPath)
	}

	st, err := store.Open(cfg.Store)
	if err != nil {
		return err
	}
	defer func() { _ = st.Close() }()

	colNames, rows, err := st.Query(context.Background(), qry)
	if err != nil {
		return err
	}

	printRows(os.Stdout, colNames, rows)

	return nil
}
