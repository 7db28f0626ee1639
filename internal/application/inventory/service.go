package inventory

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/inventario-ledger/internal/domain"
	"github.com/jhoicas/inventario-ledger/internal/domain/entity"
	domaininv "github.com/jhoicas/inventario-ledger/internal/domain/inventory"
	"github.com/jhoicas/inventario-ledger/pkg/logger"
)

// Service owns the inventory state. Every transition is computed on the current snapshot by
// the pure domain functions and only then swapped in, so a failed operation leaves no trace.
// Observers are notified after each commit.
type Service struct {
	mu        sync.Mutex
	state     State
	engine    domaininv.Engine
	observers []Observer
	log       *logger.Logger
	now       func() time.Time
}

// NewService loads the state, guarantees a default warehouse and repairs orphaned stock.
// Documents changed by those steps are written back before the service is returned.
func NewService(ctx context.Context, storage *Storage, engine domaininv.Engine, log *logger.Logger) (*Service, error) {
	st, err := storage.Load(ctx)
	if err != nil {
		return nil, err
	}

	var dirty []string
	ws, changed := domaininv.EnsureDefault(st.Warehouses)
	if changed {
		st.Warehouses = ws
		dirty = append(dirty, KeyWarehouses)
		log.Info().Int("warehouses", len(ws)).Msg("default warehouse ensured")
	}

	def, _ := domaininv.DefaultWarehouse(st.Warehouses)
	items, repaired := domaininv.Repair(st.Items, def.ID)
	if repaired {
		st.Items = items
		dirty = append(dirty, KeyItems)
		log.Info().Str("warehouse_id", def.ID).Msg("orphaned stock assigned to default warehouse")
	}

	if err := storage.Save(ctx, st, dirty...); err != nil {
		log.Error().Err(err).Strs("keys", dirty).Msg("persist repaired state")
	}

	log.Info().
		Int("items", len(st.Items)).
		Int("transactions", len(st.Transactions)).
		Str("stock_policy", engine.Policy.String()).
		Msg("inventory loaded")

	return &Service{state: st, engine: engine, log: log, now: time.Now}, nil
}

// Subscribe registers an observer for committed transitions.
func (s *Service) Subscribe(o Observer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.observers = append(s.observers, o)
}

// Snapshot returns the current state. The returned slices must be treated as read-only.
func (s *Service) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

func (s *Service) commit(next State, keys ...string) {
	s.state = next
	for _, o := range s.observers {
		o.StateChanged(next, keys)
	}
}

func (s *Service) defaultWarehouse() entity.Warehouse {
	def, _ := domaininv.DefaultWarehouse(s.state.Warehouses)
	return def
}

// ── Warehouses ──────────────────────────────────────────────────────────────

// Warehouses lists the registry.
func (s *Service) Warehouses() []entity.Warehouse {
	return s.Snapshot().Warehouses
}

// AddWarehouse registers a new warehouse.
func (s *Service) AddWarehouse(name string) (entity.Warehouse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	ws, created, err := domaininv.AddWarehouse(s.state.Warehouses, name)
	if err != nil {
		return entity.Warehouse{}, err
	}
	next := s.state
	next.Warehouses = ws
	s.commit(next, KeyWarehouses)
	return created, nil
}

// RenameWarehouse changes a warehouse name.
func (s *Service) RenameWarehouse(id, name string) (entity.Warehouse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	ws, renamed, err := domaininv.RenameWarehouse(s.state.Warehouses, id, name)
	if err != nil {
		return entity.Warehouse{}, err
	}
	next := s.state
	next.Warehouses = ws
	s.commit(next, KeyWarehouses)
	return renamed, nil
}

// RemoveWarehouse deletes a warehouse. It is refused while any item or variant holds stock
// there.
func (s *Service) RemoveWarehouse(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if w, ok := domaininv.FindWarehouse(s.state.Warehouses, id); ok && !w.IsDefault {
		if held := domaininv.StockHeldIn(s.state.Items, id); held > 0 {
			return domain.ErrWarehouseNotEmpty
		}
	}
	ws, err := domaininv.RemoveWarehouse(s.state.Warehouses, id)
	if err != nil {
		return err
	}
	next := s.state
	next.Warehouses = ws
	s.commit(next, KeyWarehouses)
	return nil
}

// ── Catalogs ────────────────────────────────────────────────────────────────

// Catalog returns the values of one vocabulary.
func (s *Service) Catalog(kind entity.CatalogKind) []string {
	return s.Snapshot().Catalogs.List(kind)
}

// AddCatalogValue appends a value to a vocabulary and returns the resulting list.
func (s *Service) AddCatalogValue(kind entity.CatalogKind, value string) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	current := s.state.Catalogs.List(kind)
	values, err := domaininv.AddValue(current, value)
	if err != nil {
		return current, err
	}
	if len(values) == len(current) {
		return current, nil
	}
	next := s.state
	next.Catalogs = next.Catalogs.With(kind, values)
	s.commit(next, catalogKeys[kind])
	return values, nil
}

// RemoveCatalogValue removes a value from a vocabulary and returns the resulting list.
func (s *Service) RemoveCatalogValue(kind entity.CatalogKind, value string) []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	current := s.state.Catalogs.List(kind)
	values := domaininv.RemoveValue(current, value)
	if len(values) == len(current) {
		return current
	}
	next := s.state
	next.Catalogs = next.Catalogs.With(kind, values)
	s.commit(next, catalogKeys[kind])
	return values
}

// ── Items ───────────────────────────────────────────────────────────────────

// Items lists the items matching the query.
func (s *Service) Items(q ListQuery) []entity.Item {
	return FilterItems(s.Snapshot().Items, q)
}

// Item returns one item by ID.
func (s *Service) Item(id string) (entity.Item, error) {
	st := s.Snapshot()
	idx := indexOfItem(st.Items, id)
	if idx < 0 {
		return entity.Item{}, domain.ErrNotFound
	}
	return st.Items[idx], nil
}

// CreateItem adds an item and records its initial stock in the ledger.
func (s *Service) CreateItem(d domaininv.ItemDraft) (entity.Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	item, txns, err := domaininv.CreateItem(d, s.defaultWarehouse(), s.now())
	if err != nil {
		return entity.Item{}, err
	}
	next := s.state
	next.Items = append(slices.Clip(next.Items), item)
	keys := []string{KeyItems}
	if len(txns) > 0 {
		next.Transactions = append(slices.Clip(next.Transactions), txns...)
		keys = append(keys, KeyTransactions)
	}
	s.commit(next, keys...)
	return item, nil
}

// EditItem updates an item. Stock changes are absorbed by the default warehouse.
func (s *Service) EditItem(id string, d domaininv.ItemDraft) (entity.Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	idx := indexOfItem(s.state.Items, id)
	if idx < 0 {
		return entity.Item{}, domain.ErrNotFound
	}
	item, err := domaininv.EditItem(s.state.Items[idx], d, s.defaultWarehouse().ID, s.now())
	if err != nil {
		return entity.Item{}, err
	}
	next := s.state
	next.Items = replaceItem(next.Items, idx, item)
	s.commit(next, KeyItems)
	return item, nil
}

// DeleteItem removes an item. Its ledger entries are kept.
func (s *Service) DeleteItem(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	idx := indexOfItem(s.state.Items, id)
	if idx < 0 {
		return domain.ErrNotFound
	}
	next := s.state
	next.Items = slices.Delete(slices.Clone(next.Items), idx, idx+1)
	s.commit(next, KeyItems)
	return nil
}

// GenerateVariants proposes variant drafts from attribute selections.
func (s *Service) GenerateVariants(req domaininv.GenerateRequest) ([]domaininv.VariantDraft, error) {
	return domaininv.GenerateVariants(req)
}

// ManualVariant proposes an empty variant numbered after the existing ones.
func (s *Service) ManualVariant(existing int, baseSKU string, cost, price *decimal.Decimal) (domaininv.VariantDraft, error) {
	return domaininv.AddManualVariant(existing, baseSKU, cost, price)
}

// ── Stock movements ─────────────────────────────────────────────────────────

// SaleInput sells units of an item (or one of its variants) from a warehouse.
type SaleInput struct {
	ItemID      string
	VariantID   string
	WarehouseID string
	Quantity    int
}

// RestockInput adds units bought at UnitCost to a warehouse.
type RestockInput struct {
	ItemID      string
	VariantID   string
	WarehouseID string
	Quantity    int
	UnitCost    decimal.Decimal
}

// TransferInput moves units between two warehouses.
type TransferInput struct {
	ItemID          string
	VariantID       string
	FromWarehouseID string
	ToWarehouseID   string
	Quantity        int
}

// Sell applies a sale. A nil transaction means the quantity was not positive and nothing
// changed.
func (s *Service) Sell(in SaleInput) (entity.Item, *entity.Transaction, error) {
	return s.move(in.ItemID, func(item entity.Item, ws []entity.Warehouse, now time.Time) (entity.Item, *entity.Transaction, error) {
		return s.engine.Sell(item, in.VariantID, ws, in.WarehouseID, in.Quantity, now)
	})
}

// Restock applies a restock.
func (s *Service) Restock(in RestockInput) (entity.Item, *entity.Transaction, error) {
	return s.move(in.ItemID, func(item entity.Item, ws []entity.Warehouse, now time.Time) (entity.Item, *entity.Transaction, error) {
		return s.engine.Restock(item, in.VariantID, ws, in.WarehouseID, in.Quantity, in.UnitCost, now)
	})
}

// Transfer applies a transfer between warehouses.
func (s *Service) Transfer(in TransferInput) (entity.Item, *entity.Transaction, error) {
	return s.move(in.ItemID, func(item entity.Item, ws []entity.Warehouse, now time.Time) (entity.Item, *entity.Transaction, error) {
		return s.engine.Transfer(item, in.VariantID, ws, in.FromWarehouseID, in.ToWarehouseID, in.Quantity, now)
	})
}

type movement func(item entity.Item, ws []entity.Warehouse, now time.Time) (entity.Item, *entity.Transaction, error)

// move runs one engine transition and commits the new item together with its ledger entry.
func (s *Service) move(itemID string, apply movement) (entity.Item, *entity.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	idx := indexOfItem(s.state.Items, itemID)
	if idx < 0 {
		return entity.Item{}, nil, domain.ErrNotFound
	}
	current := s.state.Items[idx]
	item, tx, err := apply(current, s.state.Warehouses, s.now())
	if err != nil {
		return current, nil, err
	}
	if tx == nil {
		return current, nil, nil
	}
	next := s.state
	next.Items = replaceItem(next.Items, idx, item)
	next.Transactions = append(slices.Clip(next.Transactions), *tx)
	s.commit(next, KeyItems, KeyTransactions)
	return item, tx, nil
}

// ── Ledger ──────────────────────────────────────────────────────────────────

// Ledger returns the filtered ledger with its totals.
func (s *Service) Ledger(f LedgerFilter) LedgerReport {
	return BuildLedgerReport(s.Snapshot().Transactions, f)
}

// DeleteTransaction removes one ledger entry. Stock is not affected.
func (s *Service) DeleteTransaction(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	idx := slices.IndexFunc(s.state.Transactions, func(t entity.Transaction) bool { return t.ID == id })
	if idx < 0 {
		return domain.ErrNotFound
	}
	next := s.state
	next.Transactions = slices.Delete(slices.Clone(next.Transactions), idx, idx+1)
	s.commit(next, KeyTransactions)
	return nil
}

// Dashboard summarizes stock and value.
func (s *Service) Dashboard() DashboardStats {
	return BuildDashboard(s.Snapshot())
}

func indexOfItem(items []entity.Item, id string) int {
	return slices.IndexFunc(items, func(it entity.Item) bool { return it.ID == id })
}

func replaceItem(items []entity.Item, idx int, item entity.Item) []entity.Item {
	out := slices.Clone(items)
	out[idx] = item
	return out
}
