// Package catalog exposes the studio's service offering as an immutable
// lookup table built once at process start.
package catalog

// Service is a bookable treatment from the studio's price list.
type Service struct {
	ID          string
	Name        string
	DurationMin int
	Price       float64
}

// Catalog is a read-only index of services keyed by id.
type Catalog struct {
	services []Service
	byID     map[string]Service
}

// New builds a catalog from a service list. Later entries with a
// duplicate id override earlier ones.
func New(services []Service) *Catalog {
	c := &Catalog{
		services: make([]Service, len(services)),
		byID:     make(map[string]Service, len(services)),
	}
	copy(c.services, services)
	for _, s := range c.services {
		c.byID[s.ID] = s
	}
	return c
}

// Default returns the studio's built-in price list.
func Default() *Catalog {
	return New([]Service{
		{ID: "brow-design", Name: "Design de Sobrancelhas", DurationMin: 45, Price: 70},
		{ID: "brow-lamination", Name: "Brow Lamination", DurationMin: 60, Price: 160},
		{ID: "lash-lifting", Name: "Lash Lifting", DurationMin: 60, Price: 150},
		{ID: "lash-classic", Name: "Extensão de Cílios (Clássico)", DurationMin: 120, Price: 230},
		{ID: "lash-volume", Name: "Extensão de Cílios (Volume)", DurationMin: 150, Price: 280},
	})
}

// Get looks up a service by id.
func (c *Catalog) Get(id string) (Service, bool) {
	s, ok := c.byID[id]
	return s, ok
}

// List returns all services in price-list order. The returned slice is a
// copy and safe to modify.
func (c *Catalog) List() []Service {
	out := make([]Service, len(c.services))
	copy(out, c.services)
	return out
}
