package inventory

import (
	"strings"

	"golang.org/x/text/cases"

	"github.com/jhoicas/inventario-ledger/internal/domain"
	"github.com/jhoicas/inventario-ledger/internal/domain/entity"
)

var fold = cases.Fold()

func sameName(a, b string) bool {
	return fold.String(a) == fold.String(b)
}

// EnsureDefault guarantees a registry with exactly one default warehouse. An empty list gets
// the synthesized main warehouse; a list with no default flag promotes the first entry and
// extra flags are cleared. changed tells the caller to persist the result.
func EnsureDefault(ws []entity.Warehouse) ([]entity.Warehouse, bool) {
	if len(ws) == 0 {
		return []entity.Warehouse{{
			ID:        entity.DefaultWarehouseID,
			Name:      entity.DefaultWarehouseName,
			IsDefault: true,
		}}, true
	}

	defaultIdx := -1
	flagged := 0
	for i, w := range ws {
		if w.IsDefault {
			flagged++
			if defaultIdx < 0 {
				defaultIdx = i
			}
		}
	}
	if flagged == 1 {
		return ws, false
	}
	if defaultIdx < 0 {
		defaultIdx = 0
	}
	out := make([]entity.Warehouse, len(ws))
	for i, w := range ws {
		w.IsDefault = i == defaultIdx
		out[i] = w
	}
	return out, true
}

// DefaultWarehouse returns the warehouse flagged as default.
func DefaultWarehouse(ws []entity.Warehouse) (entity.Warehouse, bool) {
	for _, w := range ws {
		if w.IsDefault {
			return w, true
		}
	}
	return entity.Warehouse{}, false
}

// FindWarehouse looks a warehouse up by ID.
func FindWarehouse(ws []entity.Warehouse, id string) (entity.Warehouse, bool) {
	for _, w := range ws {
		if w.ID == id {
			return w, true
		}
	}
	return entity.Warehouse{}, false
}

// AddWarehouse appends a new non-default warehouse. Names are trimmed and compared
// case-insensitively.
func AddWarehouse(ws []entity.Warehouse, name string) ([]entity.Warehouse, entity.Warehouse, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return ws, entity.Warehouse{}, domain.ErrInvalidInput
	}
	for _, w := range ws {
		if sameName(w.Name, name) {
			return ws, entity.Warehouse{}, domain.ErrDuplicateName
		}
	}
	created := entity.Warehouse{ID: newID(), Name: name}
	out := make([]entity.Warehouse, 0, len(ws)+1)
	out = append(out, ws...)
	out = append(out, created)
	return out, created, nil
}

// RenameWarehouse changes the display name of a warehouse. Its ID and default flag are kept.
func RenameWarehouse(ws []entity.Warehouse, id, name string) ([]entity.Warehouse, entity.Warehouse, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return ws, entity.Warehouse{}, domain.ErrInvalidInput
	}
	idx := -1
	for i, w := range ws {
		if w.ID == id {
			idx = i
			continue
		}
		if sameName(w.Name, name) {
			return ws, entity.Warehouse{}, domain.ErrDuplicateName
		}
	}
	if idx < 0 {
		return ws, entity.Warehouse{}, domain.ErrNotFound
	}
	out := make([]entity.Warehouse, len(ws))
	copy(out, ws)
	out[idx].Name = name
	return out, out[idx], nil
}

// RemoveWarehouse deletes a non-default warehouse. Stock held there is not migrated; callers
// check StockHeldIn first.
func RemoveWarehouse(ws []entity.Warehouse, id string) ([]entity.Warehouse, error) {
	idx := -1
	for i, w := range ws {
		if w.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return ws, domain.ErrNotFound
	}
	if ws[idx].IsDefault {
		return ws, domain.ErrCannotDeleteDefault
	}
	out := make([]entity.Warehouse, 0, len(ws)-1)
	out = append(out, ws[:idx]...)
	out = append(out, ws[idx+1:]...)
	return out, nil
}
