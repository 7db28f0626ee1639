package inventory

import (
	"slices"
	"strings"

	"github.com/jhoicas/inventario-ledger/internal/domain"
	"github.com/jhoicas/inventario-ledger/internal/domain/entity"
)

// DefaultCatalogs is the starter vocabulary used when nothing has been stored yet.
func DefaultCatalogs() entity.Catalogs {
	return entity.Catalogs{
		Categories: []string{"General", "Clothing", "Electronics", "Home"},
		Sizes:      []string{"XS", "S", "M", "L", "XL", "XXL"},
		Colors:     []string{"Black", "White", "Red", "Blue"},
		Others:     []string{"Standard", "Premium", "Pack"},
	}
}

// AddValue appends a trimmed value. An empty value is ignored; an exact duplicate returns the
// list unchanged with ErrDuplicateName.
func AddValue(list []string, value string) ([]string, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return list, nil
	}
	if slices.Contains(list, value) {
		return list, domain.ErrDuplicateName
	}
	out := make([]string, 0, len(list)+1)
	out = append(out, list...)
	return append(out, value), nil
}

// RemoveValue drops every occurrence of value. Items tagged with it are not touched.
func RemoveValue(list []string, value string) []string {
	out := make([]string, 0, len(list))
	for _, v := range list {
		if v != value {
			out = append(out, v)
		}
	}
	return out
}
