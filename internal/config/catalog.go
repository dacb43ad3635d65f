package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/alexisbeaulieu97/atelier/internal/storefront"
	apperrors "github.com/alexisbeaulieu97/atelier/pkg/errors"
)

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// catalogFile is the on-disk shape of a catalog, shared by YAML and TOML.
type catalogFile struct {
	Items []itemEntry `yaml:"items" toml:"items" validate:"required,min=1,dive"`
}

type itemEntry struct {
	ID       int    `yaml:"id" toml:"id" validate:"required,min=1"`
	Name     string `yaml:"name" toml:"name" validate:"required,min=1,max=100"`
	Price    int    `yaml:"price" toml:"price" validate:"min=0"`
	Category string `yaml:"category" toml:"category" validate:"required,category"`
	Color    string `yaml:"color,omitempty" toml:"color,omitempty" validate:"omitempty,max=32"`
	Image    string `yaml:"image,omitempty" toml:"image,omitempty"`
}

// LoadCatalog builds the store catalog. An empty path selects the built-in
// mock table.
func LoadCatalog(path string) (*storefront.Catalog, error) {
	if strings.TrimSpace(path) == "" {
		return storefront.NewCatalog(storefront.MockItems())
	}

	items, err := ParseCatalog(path)
	if err != nil {
		return nil, err
	}
	return storefront.NewCatalog(items)
}

// ParseCatalog reads a YAML or TOML catalog file, validates every entry and
// returns the items in file order.
func ParseCatalog(path string) ([]storefront.ClothingItem, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, apperrors.NewParseError(path, 0, err)
	}

	var file catalogFile
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &file); err != nil {
			return nil, apperrors.NewParseError(path, yamlLine(err), err)
		}
	case ".toml":
		if err := toml.Unmarshal(data, &file); err != nil {
			return nil, apperrors.NewParseError(path, tomlLine(err), err)
		}
	default:
		return nil, apperrors.NewValidationError("catalog", fmt.Sprintf("unsupported catalog file extension %q", ext), nil)
	}

	if err := validatorInstance().Struct(&file); err != nil {
		return nil, convertValidationError(err)
	}

	items := make([]storefront.ClothingItem, 0, len(file.Items))
	for _, entry := range file.Items {
		category, err := storefront.ParseCategory(entry.Category)
		if err != nil {
			return nil, err
		}
		items = append(items, storefront.ClothingItem{
			ID:       entry.ID,
			Name:     strings.TrimSpace(entry.Name),
			Price:    entry.Price,
			Category: category,
			Color:    entry.Color,
			Image:    entry.Image,
		})
	}

	return items, nil
}

func yamlLine(err error) int {
	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}

	var line int
	if _, scanErr := fmt.Sscanf(matches[1], "%d", &line); scanErr != nil {
		return 0
	}
	return line
}

func tomlLine(err error) int {
	var decodeErr *toml.DecodeError
	if errors.As(err, &decodeErr) {
		row, _ := decodeErr.Position()
		return row
	}
	return 0
}
