package inventory

import (
	"slices"
	"strings"

	"golang.org/x/text/cases"

	"github.com/jhoicas/inventario-ledger/internal/domain"
	"github.com/jhoicas/inventario-ledger/internal/domain/entity"
)

// SortField is a column the item list can be ordered by.
type SortField string

const (
	SortByName     SortField = "name"
	SortBySKU      SortField = "sku"
	SortByQuantity SortField = "quantity"
	SortByCost     SortField = "cost"
	SortByPrice    SortField = "price"
)

// ListQuery filters and orders the item list. Search matches name, SKU or category
// case-insensitively.
type ListQuery struct {
	Search string
	Sort   SortField
	Desc   bool
}

// ParseListQuery validates raw query values. Empty values mean name ascending.
func ParseListQuery(search, sort, order string) (ListQuery, error) {
	q := ListQuery{Search: strings.TrimSpace(search), Sort: SortByName}
	switch f := SortField(strings.ToLower(sort)); f {
	case "":
	case SortByName, SortBySKU, SortByQuantity, SortByCost, SortByPrice:
		q.Sort = f
	default:
		return ListQuery{}, domain.ErrInvalidInput
	}
	switch strings.ToLower(order) {
	case "", "asc":
	case "desc":
		q.Desc = true
	default:
		return ListQuery{}, domain.ErrInvalidInput
	}
	return q, nil
}

var caseless = cases.Fold()

// FilterItems returns a new slice with the matching items in the requested order. Ties keep
// their stored order.
func FilterItems(items []entity.Item, q ListQuery) []entity.Item {
	needle := caseless.String(q.Search)
	out := make([]entity.Item, 0, len(items))
	for _, it := range items {
		if needle == "" ||
			strings.Contains(caseless.String(it.Name), needle) ||
			strings.Contains(caseless.String(it.SKU), needle) ||
			strings.Contains(caseless.String(it.Category), needle) {
			out = append(out, it)
		}
	}

	sort := q.Sort
	if sort == "" {
		sort = SortByName
	}
	slices.SortStableFunc(out, func(a, b entity.Item) int {
		c := compareItems(a, b, sort)
		if q.Desc {
			return -c
		}
		return c
	})
	return out
}

func compareItems(a, b entity.Item, f SortField) int {
	switch f {
	case SortBySKU:
		return strings.Compare(caseless.String(a.SKU), caseless.String(b.SKU))
	case SortByQuantity:
		return a.Quantity - b.Quantity
	case SortByCost:
		return a.Cost.Cmp(b.Cost)
	case SortByPrice:
		return a.Price.Cmp(b.Price)
	default:
		return strings.Compare(caseless.String(a.Name), caseless.String(b.Name))
	}
}
