package inventory

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/jhoicas/inventario-ledger/internal/domain"
)

// MaxVariants is the hard cap on variants per item.
const MaxVariants = 200

var upper = cases.Upper(language.Und)

// GenerateRequest selects attribute values for the variant generator. Existing holds the
// names of the variants the item already has.
type GenerateRequest struct {
	BaseSKU   string
	BaseCost  *decimal.Decimal
	BasePrice *decimal.Decimal
	Sizes     []string
	Colors    []string
	Others    []string
	Existing  []string
}

// GenerateVariants builds the Cartesian product of the non-empty dimensions in
// size, color, other order. Names join the values with " / ", SKUs append an uppercased
// [A-Z0-9-] suffix to the base SKU. Combinations whose name already exists are skipped.
// If the result would push the item over MaxVariants nothing is returned.
func GenerateVariants(req GenerateRequest) ([]VariantDraft, error) {
	dims := make([][]string, 0, 3)
	for _, d := range [][]string{req.Sizes, req.Colors, req.Others} {
		if len(d) > 0 {
			dims = append(dims, d)
		}
	}
	if len(dims) == 0 {
		return nil, nil
	}

	seen := make(map[string]struct{}, len(req.Existing))
	for _, name := range req.Existing {
		seen[name] = struct{}{}
	}

	var out []VariantDraft
	for _, parts := range combinations(dims) {
		name := strings.Join(parts, " / ")
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}
		zero := 0
		out = append(out, VariantDraft{
			Name:     name,
			SKU:      variantSKU(req.BaseSKU, skuSuffix(parts)),
			Cost:     req.BaseCost,
			Price:    req.BasePrice,
			Quantity: &zero,
		})
	}
	if len(req.Existing)+len(out) > MaxVariants {
		return nil, domain.ErrVariantLimitExceeded
	}
	return out, nil
}

// AddManualVariant returns an unnamed variant template numbered after the existing ones.
func AddManualVariant(existing int, baseSKU string, cost, price *decimal.Decimal) (VariantDraft, error) {
	if existing >= MaxVariants {
		return VariantDraft{}, domain.ErrVariantLimitExceeded
	}
	zero := 0
	return VariantDraft{
		SKU:      variantSKU(baseSKU, strconv.Itoa(existing+1)),
		Cost:     cost,
		Price:    price,
		Quantity: &zero,
	}, nil
}

func combinations(dims [][]string) [][]string {
	out := [][]string{{}}
	for _, dim := range dims {
		next := make([][]string, 0, len(out)*len(dim))
		for _, prefix := range out {
			for _, v := range dim {
				combo := make([]string, len(prefix), len(prefix)+1)
				copy(combo, prefix)
				next = append(next, append(combo, v))
			}
		}
		out = next
	}
	return out
}

func skuSuffix(parts []string) string {
	joined := upper.String(strings.Join(parts, "-"))
	var b strings.Builder
	for _, r := range joined {
		if (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') || r == '-' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// variantSKU is empty when the item has no base SKU.
func variantSKU(base, suffix string) string {
	base = strings.TrimSpace(base)
	if base == "" {
		return ""
	}
	return base + "-" + suffix
}
