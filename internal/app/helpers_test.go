package app

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

var pinnedNow = time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)

func fixturePath(t *testing.T, name string) string {
	t.Helper()
	root, err := filepath.Abs(filepath.Join("..", ".."))
	require.NoError(t, err)
	return filepath.Join(root, "fixtures", name)
}

func newPinnedService() Service {
	service := NewService()
	service.Clock = func() time.Time { return pinnedNow }
	return service
}

func fixtureCatalog(t *testing.T) CatalogOptions {
	return CatalogOptions{CatalogPath: fixturePath(t, "catalog-product.yaml")}
}
