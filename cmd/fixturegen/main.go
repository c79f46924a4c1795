// Package main provides the CLI entrypoint for fixturegen.
//
// fixturegen is a one-shot synthetic-data generator that:
//   - Fabricates customers, products, orders and order items with
//     randomized but plausible field values
//   - Serializes each collection to a pretty-printed JSON array file
//   - Logs a summary line with the four collection counts
package main

import (
	"os"

	"github.com/davecgh/go-spew/spew"
	"github.com/op/go-logging"

	"fixturegen/internal/catalog"
	"fixturegen/internal/config"
	"fixturegen/internal/gen"
)

var log = logging.MustGetLogger("fixturegen")

// InitLogger receives the log level to be set in go-logging as a string.
// This method parses the string and sets the level on the logger. If the
// level string is not valid an error is returned.
func InitLogger(logLevel string) error {
	baseBackend := logging.NewLogBackend(os.Stdout, "", 0)
	format := logging.MustStringFormatter(
		`%{time:2006-01-02 15:04:05} %{level:.5s}     %{message}`,
	)
	backendFormatter := logging.NewBackendFormatter(baseBackend, format)

	backendLeveled := logging.AddModuleLevel(backendFormatter)
	logLevelCode, err := logging.LogLevel(logLevel)
	if err != nil {
		return err
	}
	backendLeveled.SetLevel(logLevelCode, "")

	logging.SetBackend(backendLeveled)
	return nil
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %s", err)
	}

	if err := InitLogger(cfg.LogLevel); err != nil {
		log.Fatalf("%s", err)
	}

	log.Debugf("Config: %+v", cfg)

	entries, err := catalog.Load(cfg.CatalogFile)
	if err != nil {
		log.Fatalf("Failed to load product catalog: %s", err)
	}

	genCfg := gen.DefaultConfig()
	genCfg.Customers = cfg.Customers
	genCfg.Orders = cfg.Orders
	genCfg.Seed = cfg.Seed

	result := gen.New(genCfg).Run(entries)

	if log.IsEnabledFor(logging.DEBUG) {
		log.Debugf("first records:\n%s", spew.Sdump(
			result.Customers[0], result.Products[0], result.Orders[0], result.OrderItems[0]))
	}

	if err := gen.WriteCollections(cfg.OutputDir, result); err != nil {
		log.Fatalf("Failed to write collections: %s", err)
	}

	log.Infof("customers: %d, products: %d, orders: %d, order_items: %d",
		len(result.Customers), len(result.Products), len(result.Orders), len(result.OrderItems))
}
