package gen

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fixturegen/internal/catalog"
	"fixturegen/internal/fixture"
)

func generate(t *testing.T) Result {
	t.Helper()

	entries, err := catalog.Load("")
	require.NoError(t, err)

	return New(seededConfig()).Run(entries)
}

func decodeObjects(t *testing.T, path string) []map[string]json.RawMessage {
	t.Helper()

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var objects []map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &objects))
	return objects
}

func TestWriteCollections(t *testing.T) {
	t.Parallel()

	res := generate(t)
	dir := t.TempDir()
	require.NoError(t, WriteCollections(dir, res))

	t.Run("round trip lengths and field sets", func(t *testing.T) {
		t.Parallel()

		customers := decodeObjects(t, filepath.Join(dir, CustomersFile))
		require.Len(t, customers, len(res.Customers))
		for _, c := range customers {
			assert.ElementsMatch(t,
				[]string{"customer_id", "name", "email", "address"},
				keys(c))
		}

		products := decodeObjects(t, filepath.Join(dir, ProductsFile))
		require.Len(t, products, len(res.Products))
		for _, p := range products {
			assert.ElementsMatch(t,
				[]string{"product_id", "product_name", "category", "price", "stock_quantity"},
				keys(p))
		}

		items := decodeObjects(t, filepath.Join(dir, OrderItemsFile))
		require.Len(t, items, len(res.OrderItems))
		for _, item := range items {
			assert.ElementsMatch(t,
				[]string{"order_item_id", "order_id", "product_id", "quantity", "price"},
				keys(item))
		}
	})

	t.Run("delivery_date key tracks order status", func(t *testing.T) {
		t.Parallel()

		orders := decodeObjects(t, filepath.Join(dir, OrdersFile))
		require.Len(t, orders, len(res.Orders))

		for i, o := range orders {
			switch res.Orders[i].Status {
			case fixture.StatusDelivered:
				assert.Contains(t, o, "delivery_date")
			case fixture.StatusPending:
				assert.NotContains(t, o, "delivery_date")
			}
		}
	})

	t.Run("timestamps serialize without a zone suffix", func(t *testing.T) {
		t.Parallel()

		orders := decodeObjects(t, filepath.Join(dir, OrdersFile))

		var orderDate string
		require.NoError(t, json.Unmarshal(orders[0]["order_date"], &orderDate))
		_, err := parseTimestamp(orderDate)
		assert.NoError(t, err)
		assert.NotContains(t, orderDate, "Z")
	})

	t.Run("arrays are pretty printed with four spaces", func(t *testing.T) {
		t.Parallel()

		data, err := os.ReadFile(filepath.Join(dir, CustomersFile))
		require.NoError(t, err)

		content := string(data)
		assert.True(t, strings.HasPrefix(content, "[\n    {"), "unexpected prefix: %q", content[:12])
		assert.Contains(t, content, "\n        \"customer_id\"")
	})
}

func TestWriteCollectionsMissingDirectory(t *testing.T) {
	t.Parallel()

	res := generate(t)

	err := WriteCollections(filepath.Join(t.TempDir(), "does-not-exist"), res)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "output directory")
}

func TestWriteCollectionsFileTarget(t *testing.T) {
	t.Parallel()

	res := generate(t)

	path := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))

	err := WriteCollections(path, res)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not a directory")
}

func keys(object map[string]json.RawMessage) []string {
	out := make([]string, 0, len(object))
	for k := range object {
		out = append(out, k)
	}
	return out
}

func parseTimestamp(value string) (fixture.Timestamp, error) {
	var ts fixture.Timestamp
	err := ts.UnmarshalJSON([]byte(`"` + value + `"`))
	return ts, err
}
