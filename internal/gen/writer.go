package gen

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

const filePerm = 0o644

// jsonIndent is four spaces, matching the pretty form downstream tools expect.
const jsonIndent = "    "

// Output file names, one per collection.
const (
	CustomersFile  = "customers_collection.json"
	ProductsFile   = "products_collection.json"
	OrdersFile     = "orders_collection.json"
	OrderItemsFile = "order_items_collection.json"
)

// WriteCollections writes each collection of res to its own JSON file in
// outputDir. The directory must already exist; it is never created. A failed
// write aborts immediately and may leave earlier files behind — partial
// output is not cleaned up.
func WriteCollections(outputDir string, res Result) error {
	info, err := os.Stat(outputDir)
	if err != nil {
		return fmt.Errorf("output directory %s: %w", outputDir, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("output path %s is not a directory", outputDir)
	}

	files := []struct {
		name       string
		collection any
	}{
		{CustomersFile, res.Customers},
		{ProductsFile, res.Products},
		{OrdersFile, res.Orders},
		{OrderItemsFile, res.OrderItems},
	}

	for _, file := range files {
		err := writeJSON(filepath.Join(outputDir, file.name), file.collection)
		if err != nil {
			return err
		}
	}

	return nil
}

func writeJSON(path string, collection any) error {
	data, err := json.MarshalIndent(collection, "", jsonIndent)
	if err != nil {
		return fmt.Errorf("encoding %s: %w", filepath.Base(path), err)
	}

	err = os.WriteFile(path, data, filePerm)
	if err != nil {
		return fmt.Errorf("writing file %s: %w", filepath.Base(path), err)
	}

	return nil
}
