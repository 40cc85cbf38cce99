package flyweight

import (
	"errors"
	"sync"
)

// ErrOutOfStock is returned when a sale asks for more of a brand than
// the shared inventory holds, or for a brand not on the menu.
var ErrOutOfStock = errors.New("flyweight: out of stock")

// brand is the flyweight: one shared inventory record per cheese brand.
// Intrinsic state only; nothing here belongs to any single shop.
type brand struct {
	cost     float64
	quantity float64
}

// Menu is the flyweight factory. It creates brands, guarantees every
// shop sees the same record per name, and serialises access.
type Menu struct {
	mu    sync.Mutex
	items map[string]*brand
}

// NewMenu returns an empty shared menu.
func NewMenu() *Menu {
	return &Menu{items: make(map[string]*brand)}
}

// Add puts a brand on the menu or restates its price and quantity.
func (m *Menu) Add(name string, cost, quantity float64) {
	m.mu.Lock()
	defer m.mu.Unlock()

	b, ok := m.items[name]
	if !ok {
		b = &brand{}
		m.items[name] = b
	}
	b.cost = cost
	b.quantity = quantity
}

// Sell removes quantity units of name from the shared inventory and
// returns the unit cost. Returns ErrOutOfStock if the brand is missing
// or the inventory cannot cover the sale.
func (m *Menu) Sell(name string, quantity float64) (float64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	b, ok := m.items[name]
	if !ok || quantity > b.quantity {
		return 0, ErrOutOfStock
	}
	b.quantity -= quantity

	return b.cost, nil
}

// CheeseShop is a context sharing the menu. Units sold and revenue are
// extrinsic: they belong to this shop alone.
type CheeseShop struct {
	menu      *Menu
	unitsSold float64
	revenue   float64
}

// NewCheeseShop opens a shop selling from the shared menu.
func NewCheeseShop(menu *Menu) *CheeseShop {
	return &CheeseShop{menu: menu}
}

// Stock adds inventory visible to every shop on the same menu.
func (s *CheeseShop) Stock(name string, cost, quantity float64) {
	s.menu.Add(name, cost, quantity)
}

// Sell sells from the shared inventory and tallies this shop's take.
func (s *CheeseShop) Sell(name string, quantity float64) error {
	cost, err := s.menu.Sell(name, quantity)
	if err != nil {
		return err
	}
	s.unitsSold += quantity
	s.revenue += cost * quantity

	return nil
}

// TotalUnitsSold reports this shop's units sold.
func (s *CheeseShop) TotalUnitsSold() float64 { return s.unitsSold }

// TotalRevenue reports this shop's revenue.
func (s *CheeseShop) TotalRevenue() float64 { return s.revenue }
