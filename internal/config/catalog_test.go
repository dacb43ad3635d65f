package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/atelier/internal/storefront"
	apperrors "github.com/alexisbeaulieu97/atelier/pkg/errors"
)

func TestParseCatalog(t *testing.T) {
	t.Parallel()

	validYAML := `items:
  - id: 1
    name: "Классическая рубашка"
    price: 2500
    category: shirt
    color: white
    image: /placeholder.svg
  - id: 2
    name: "Прямые джинсы"
    price: 3200
    category: " Pants "
`

	validTOML := `[[items]]
id = 10
name = "Бомбер"
price = 4200
category = "jacket"
color = "green"
`

	brokenYAML := `items:
  - id: [1, 2]
    name: "broken"
`

	brokenTOML := `[[items]]
id = 1
name = "unterminated
`

	unknownCategory := `items:
  - id: 1
    name: "Шляпа"
    price: 900
    category: hat
`

	negativePrice := `items:
  - id: 1
    name: "Рубашка"
    price: -5
    category: shirt
`

	cases := []struct {
		name     string
		file     string
		contents string
		assert   func(t *testing.T, items []storefront.ClothingItem, err error)
	}{
		{
			name:     "valid yaml catalog is parsed",
			file:     "catalog.yaml",
			contents: validYAML,
			assert: func(t *testing.T, items []storefront.ClothingItem, err error) {
				require.NoError(t, err)
				require.Len(t, items, 2)
				require.Equal(t, "Классическая рубашка", items[0].Name)
				require.Equal(t, storefront.CategoryShirt, items[0].Category)
				require.Equal(t, storefront.CategoryPants, items[1].Category)
				require.Equal(t, "/placeholder.svg", items[0].Image)
			},
		},
		{
			name:     "valid toml catalog is parsed",
			file:     "catalog.toml",
			contents: validTOML,
			assert: func(t *testing.T, items []storefront.ClothingItem, err error) {
				require.NoError(t, err)
				require.Len(t, items, 1)
				require.Equal(t, 10, items[0].ID)
				require.Equal(t, storefront.CategoryJacket, items[0].Category)
				require.Equal(t, 4200, items[0].Price)
			},
		},
		{
			name:     "invalid yaml returns parse error with line",
			file:     "catalog.yml",
			contents: brokenYAML,
			assert: func(t *testing.T, _ []storefront.ClothingItem, err error) {
				var parseErr *apperrors.ParseError
				require.ErrorAs(t, err, &parseErr)
				require.Equal(t, 2, parseErr.Line)
				require.Contains(t, parseErr.Message, "cannot unmarshal")
			},
		},
		{
			name:     "invalid toml returns parse error with line",
			file:     "catalog.toml",
			contents: brokenTOML,
			assert: func(t *testing.T, _ []storefront.ClothingItem, err error) {
				var parseErr *apperrors.ParseError
				require.ErrorAs(t, err, &parseErr)
				require.Positive(t, parseErr.Line)
			},
		},
		{
			name:     "unknown category is rejected",
			file:     "catalog.yaml",
			contents: unknownCategory,
			assert: func(t *testing.T, _ []storefront.ClothingItem, err error) {
				var validationErr *apperrors.ValidationError
				require.ErrorAs(t, err, &validationErr)
				require.Equal(t, "items[0].category", validationErr.Field)
			},
		},
		{
			name:     "negative price is rejected",
			file:     "catalog.yaml",
			contents: negativePrice,
			assert: func(t *testing.T, _ []storefront.ClothingItem, err error) {
				var validationErr *apperrors.ValidationError
				require.ErrorAs(t, err, &validationErr)
				require.Equal(t, "items[0].price", validationErr.Field)
			},
		},
		{
			name:     "empty catalog is rejected",
			file:     "catalog.yaml",
			contents: "items: []\n",
			assert: func(t *testing.T, _ []storefront.ClothingItem, err error) {
				var validationErr *apperrors.ValidationError
				require.ErrorAs(t, err, &validationErr)
				require.Equal(t, "items", validationErr.Field)
			},
		},
		{
			name:     "unsupported extension is rejected",
			file:     "catalog.json",
			contents: `{"items": []}`,
			assert: func(t *testing.T, _ []storefront.ClothingItem, err error) {
				var validationErr *apperrors.ValidationError
				require.ErrorAs(t, err, &validationErr)
				require.Contains(t, validationErr.Message, ".json")
			},
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			path := writeTempFile(t, tc.file, tc.contents)
			items, err := ParseCatalog(path)
			tc.assert(t, items, err)
		})
	}
}

func TestParseCatalogMissingFile(t *testing.T) {
	t.Parallel()

	_, err := ParseCatalog(filepath.Join(t.TempDir(), "missing.yaml"))
	var parseErr *apperrors.ParseError
	require.ErrorAs(t, err, &parseErr)
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadCatalogDefaultsToMockItems(t *testing.T) {
	t.Parallel()

	catalog, err := LoadCatalog("")
	require.NoError(t, err)
	require.Equal(t, len(storefront.MockItems()), catalog.Len())
}

func TestLoadCatalogRejectsDuplicateIDs(t *testing.T) {
	t.Parallel()

	path := writeTempFile(t, "catalog.yaml", `items:
  - {id: 1, name: "Рубашка", price: 1, category: shirt}
  - {id: 1, name: "Джинсы", price: 1, category: pants}
`)

	_, err := LoadCatalog(path)
	var validationErr *apperrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Equal(t, "items[1].id", validationErr.Field)
}

func writeTempFile(t *testing.T, name, contents string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))
	return path
}
