package strain

import (
	"fmt"
	"sort"

	"verdant-server/internal/domain"
)

// Catalog - реестр сортов по ID. Собирается один раз на старте,
// дальше только читается (безопасен для конкурентного чтения).
type Catalog struct {
	strains map[string]*domain.Strain
}

// NewCatalog создает каталог со встроенными сортами.
func NewCatalog() *Catalog {
	c := &Catalog{strains: make(map[string]*domain.Strain, len(builtins))}
	for i := range builtins {
		s := builtins[i]
		c.strains[s.ID] = &s
	}
	return c
}

// Add регистрирует сорт, замещая встроенный с тем же ID.
func (c *Catalog) Add(s domain.Strain) error {
	if s.ID == "" {
		return fmt.Errorf("strain without id")
	}
	if s.GrowthModifier <= 0 {
		return fmt.Errorf("strain %s: growthModifier must be positive", s.ID)
	}
	if s.Tolerances.Temperature.Min >= s.Tolerances.Temperature.Max {
		return fmt.Errorf("strain %s: inverted temperature band", s.ID)
	}
	c.strains[s.ID] = &s
	return nil
}

// Get возвращает сорт по ID (nil, если нет).
func (c *Catalog) Get(id string) *domain.Strain {
	return c.strains[id]
}

// IDs возвращает отсортированный список ID сортов.
func (c *Catalog) IDs() []string {
	out := make([]string, 0, len(c.strains))
	for id := range c.strains {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

func (c *Catalog) Len() int {
	return len(c.strains)
}
