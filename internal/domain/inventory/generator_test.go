package inventory_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventario-ledger/internal/domain"
	"github.com/jhoicas/inventario-ledger/internal/domain/inventory"
)

func names(drafts []inventory.VariantDraft) []string {
	out := make([]string, len(drafts))
	for i, d := range drafts {
		out[i] = d.Name
	}
	return out
}

func skus(drafts []inventory.VariantDraft) []string {
	out := make([]string, len(drafts))
	for i, d := range drafts {
		out[i] = d.SKU
	}
	return out
}

func TestGenerateVariants_SizesAndColors(t *testing.T) {
	got, err := inventory.GenerateVariants(inventory.GenerateRequest{
		BaseSKU: "TS",
		Sizes:   []string{"S", "M"},
		Colors:  []string{"Red"},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"S / Red", "M / Red"}, names(got))
	assert.Equal(t, []string{"TS-S-RED", "TS-M-RED"}, skus(got))
	for _, d := range got {
		require.NotNil(t, d.Quantity)
		assert.Equal(t, 0, *d.Quantity)
		assert.Empty(t, d.ID)
	}
}

func TestGenerateVariants_OrderAndSanitizing(t *testing.T) {
	got, err := inventory.GenerateVariants(inventory.GenerateRequest{
		BaseSKU:  "CAP",
		Sizes:    []string{"XL"},
		Colors:   []string{"Navy blue", "Café"},
		Others:   []string{"2-pack"},
		BaseCost: ptrDec("3"),
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"XL / Navy blue / 2-pack", "XL / Café / 2-pack"}, names(got))
	assert.Equal(t, []string{"CAP-XL-NAVYBLUE-2-PACK", "CAP-XL-CAF-2-PACK"}, skus(got))
	assert.Equal(t, "3", got[0].Cost.String())
	assert.Nil(t, got[0].Price)
}

func TestGenerateVariants_SkipsDuplicates(t *testing.T) {
	got, err := inventory.GenerateVariants(inventory.GenerateRequest{
		Colors:   []string{"Red", "Blue", "Red"},
		Existing: []string{"Blue"},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"Red"}, names(got))
	assert.Equal(t, []string{""}, skus(got), "no base SKU means no variant SKU")
}

func TestGenerateVariants_NothingSelected(t *testing.T) {
	got, err := inventory.GenerateVariants(inventory.GenerateRequest{BaseSKU: "X"})
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestGenerateVariants_LimitRejectsWholeBatch(t *testing.T) {
	existing := make([]string, 195)
	for i := range existing {
		existing[i] = fmt.Sprintf("old-%d", i)
	}
	got, err := inventory.GenerateVariants(inventory.GenerateRequest{
		Sizes:    []string{"S", "M", "L"},
		Colors:   []string{"Red", "Blue"},
		Existing: existing,
	})
	assert.ErrorIs(t, err, domain.ErrVariantLimitExceeded)
	assert.Empty(t, got)

	got, err = inventory.GenerateVariants(inventory.GenerateRequest{
		Sizes:    []string{"S", "M", "L", "XL", "XXL"},
		Existing: existing,
	})
	require.NoError(t, err)
	assert.Len(t, got, 5)
}

func TestAddManualVariant(t *testing.T) {
	d, err := inventory.AddManualVariant(3, "TS", ptrDec("4"), nil)
	require.NoError(t, err)
	assert.Equal(t, "TS-4", d.SKU)
	assert.Empty(t, d.Name)
	assert.Equal(t, "4", d.Cost.String())
	assert.Nil(t, d.Price)

	d, err = inventory.AddManualVariant(0, "", nil, nil)
	require.NoError(t, err)
	assert.Empty(t, d.SKU)

	_, err = inventory.AddManualVariant(inventory.MaxVariants, "TS", nil, nil)
	assert.ErrorIs(t, err, domain.ErrVariantLimitExceeded)
}
