package services

import (
	"github.com/ChristelOko/BarometreHED-sub001/config"
	"github.com/ChristelOko/BarometreHED-sub001/models"
)

// Catalog : catalogue de ressentis chargé au démarrage, immuable en session.
// L'ordre des ressentis est figé au chargement (les départages
// "premier maximum" en dépendent, voir DetermineAffectedCenter).
type Catalog struct {
	feelings   []models.Feeling
	byCategory map[string][]models.Feeling
	byName     map[string]models.Feeling
}

// NewCatalog construit un catalogue à partir d'une liste ordonnée
func NewCatalog(feelings []models.Feeling) *Catalog {
	c := &Catalog{
		feelings:   feelings,
		byCategory: make(map[string][]models.Feeling),
		byName:     make(map[string]models.Feeling),
	}
	for _, f := range feelings {
		c.byCategory[f.Category] = append(c.byCategory[f.Category], f)
		c.byName[f.Name] = f
	}
	return c
}

// LoadCatalog lit la table feelings et fige le catalogue en mémoire
func LoadCatalog() (*Catalog, error) {
	var feelings []models.Feeling
	if err := config.DB.Order("category, is_positive desc, name").Find(&feelings).Error; err != nil {
		return nil, err
	}
	return NewCatalog(feelings), nil
}

// All retourne tous les ressentis, dans l'ordre du catalogue
func (c *Catalog) All() []models.Feeling {
	return c.feelings
}

// Lookup retrouve un ressenti par son nom
func (c *Catalog) Lookup(name string) (models.Feeling, bool) {
	f, ok := c.byName[name]
	return f, ok
}

// Category retourne les pools positif et négatif d'une catégorie,
// filtrés pour le type HD de l'utilisatrice
func (c *Catalog) Category(category, hdType string) (positive, negative []models.Feeling) {
	for _, f := range c.byCategory[category] {
		if !f.AppliesTo(hdType) {
			continue
		}
		if f.IsPositive {
			positive = append(positive, f)
		} else {
			negative = append(negative, f)
		}
	}
	return positive, negative
}

// ForUser retourne les ressentis visibles par un type HD,
// optionnellement restreints à une catégorie
func (c *Catalog) ForUser(hdType, category string) []models.Feeling {
	source := c.feelings
	if category != "" {
		source = c.byCategory[category]
	}
	var out []models.Feeling
	for _, f := range source {
		if f.AppliesTo(hdType) {
			out = append(out, f)
		}
	}
	return out
}
