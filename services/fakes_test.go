package services

import (
	"context"
	"sync"
	"testing"

	"go-restaurant-orders/models"
	"go-restaurant-orders/repository"
)

// In-memory doubles implementing the collaborator interfaces. The order fake
// mirrors the mongo repository's contract: updates only land when the
// caller's copy still has the stored version.

type fakeOrderRepo struct {
	mu     sync.Mutex
	orders map[string]*models.Order
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{orders: make(map[string]*models.Order)}
}

func cloneOrder(o *models.Order) *models.Order {
	c := *o
	c.Items = make([]models.OrderItem, len(o.Items))
	copy(c.Items, o.Items)
	c.Batches = make([]models.UpdateBatch, len(o.Batches))
	for i, b := range o.Batches {
		nb := b
		nb.Items = make([]models.OrderItem, len(b.Items))
		copy(nb.Items, b.Items)
		c.Batches[i] = nb
	}
	return &c
}

func (r *fakeOrderRepo) Insert(ctx context.Context, order *models.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	order.Version = 1
	r.orders[order.Order_id] = cloneOrder(order)
	return nil
}

func (r *fakeOrderRepo) Get(ctx context.Context, orderID string) (*models.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored, ok := r.orders[orderID]
	if !ok {
		return nil, repository.ErrOrderNotFound
	}
	return cloneOrder(stored), nil
}

func (r *fakeOrderRepo) GetOpenByTable(ctx context.Context, tableID string) (*models.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, stored := range r.orders {
		if stored.Table_id == tableID && stored.Cashier_status == models.CashierOpen {
			return cloneOrder(stored), nil
		}
	}
	return nil, nil
}

func (r *fakeOrderRepo) Update(ctx context.Context, order *models.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored, ok := r.orders[order.Order_id]
	if !ok {
		return repository.ErrOrderNotFound
	}
	if stored.Version != order.Version {
		return repository.ErrConflict
	}
	order.Version++
	r.orders[order.Order_id] = cloneOrder(order)
	return nil
}

func (r *fakeOrderRepo) List(ctx context.Context) ([]models.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Order
	for _, stored := range r.orders {
		out = append(out, *cloneOrder(stored))
	}
	return out, nil
}

type fakeTableRepo struct {
	mu         sync.Mutex
	tables     map[string]*models.Table
	availiable map[string]bool
}

func newFakeTableRepo(tableIDs ...string) *fakeTableRepo {
	r := &fakeTableRepo{
		tables:     make(map[string]*models.Table),
		availiable: make(map[string]bool),
	}
	for _, id := range tableIDs {
		num := len(r.tables) + 1
		r.tables[id] = &models.Table{Table_id: id, Table_number: &num, Availiable: true}
		r.availiable[id] = true
	}
	return r
}

func (r *fakeTableRepo) Get(ctx context.Context, tableID string) (*models.Table, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	table, ok := r.tables[tableID]
	if !ok {
		return nil, repository.ErrTableNotFound
	}
	return table, nil
}

func (r *fakeTableRepo) SetAvailiable(ctx context.Context, tableID string, availiable bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.tables[tableID]; !ok {
		return repository.ErrTableNotFound
	}
	r.availiable[tableID] = availiable
	return nil
}

type fakeStock struct {
	unavailable map[string]bool
}

func (s *fakeStock) IsOrderable(ctx context.Context, foodID string) bool {
	return !s.unavailable[foodID]
}

type fakeNotifier struct {
	mu     sync.Mutex
	events []string
}

func (n *fakeNotifier) Notify(event string, payload interface{}) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.events = append(n.events, event)
}

func (n *fakeNotifier) seen(event string) bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	for _, e := range n.events {
		if e == event {
			return true
		}
	}
	return false
}

// testEnv wires the whole order core over the fakes with one seeded table.
type testEnv struct {
	orders     *fakeOrderRepo
	tables     *fakeTableRepo
	stock      *fakeStock
	notifier   *fakeNotifier
	carts      *CartStore
	service    *OrderService
	status     *StatusService
	settlement *SettlementService
}

func newTestEnv(tableIDs ...string) *testEnv {
	if len(tableIDs) == 0 {
		tableIDs = []string{"t1"}
	}
	env := &testEnv{
		orders:   newFakeOrderRepo(),
		tables:   newFakeTableRepo(tableIDs...),
		stock:    &fakeStock{unavailable: make(map[string]bool)},
		notifier: &fakeNotifier{},
	}
	env.carts = NewCartStore(env.stock)
	env.service = NewOrderService(env.orders, env.tables, env.carts, env.notifier)
	env.status = NewStatusService(env.orders)
	env.settlement = NewSettlementService(env.orders, env.tables)
	return env
}

func foodLine(name string, price float64, quantity int) models.DraftLineItem {
	return models.DraftLineItem{
		Name:      name,
		Price:     price,
		Quantity:  quantity,
		Item_type: models.ItemTypeFood,
	}
}

func beverageLine(name string, price float64, quantity int, foodID string) models.DraftLineItem {
	line := models.DraftLineItem{
		Name:      name,
		Price:     price,
		Quantity:  quantity,
		Item_type: models.ItemTypeBeverage,
	}
	if foodID != "" {
		line.Food_id = &foodID
	}
	return line
}

// createOrder stages the lines on the table's cart and submits them.
func (env *testEnv) createOrder(t *testing.T, tableID string, lines ...models.DraftLineItem) *models.Order {
	t.Helper()
	ctx := context.Background()
	env.carts.SetActiveTable(tableID)
	for _, ln := range lines {
		if err := env.carts.AddItem(ctx, tableID, ln); err != nil {
			t.Fatalf("failed to stage line %s: %v", ln.Name, err)
		}
	}
	order, err := env.service.Create(ctx, tableID, nil)
	if err != nil {
		t.Fatalf("failed to create order: %v", err)
	}
	return order
}
