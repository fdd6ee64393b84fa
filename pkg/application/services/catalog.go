package services

import (
	"errors"

	"github.com/vsinha/filmplant/pkg/domain/entities"
	"github.com/vsinha/filmplant/pkg/domain/repositories"
)

// overlayCatalog resolves materials from the scenario first and falls back
// to the shared catalog the service was built with.
type overlayCatalog struct {
	primary  repositories.MaterialRepository
	fallback repositories.MaterialRepository
}

var _ repositories.MaterialRepository = (*overlayCatalog)(nil)

func (c *overlayCatalog) GetMaterial(name entities.MaterialName) (*entities.Material, error) {
	material, err := c.primary.GetMaterial(name)
	if err == nil || c.fallback == nil || !errors.Is(err, repositories.ErrMaterialNotFound) {
		return material, err
	}
	return c.fallback.GetMaterial(name)
}

func (c *overlayCatalog) GetAllMaterials() ([]*entities.Material, error) {
	materials, err := c.primary.GetAllMaterials()
	if err != nil || c.fallback == nil {
		return materials, err
	}

	shadowed := make(map[entities.MaterialName]bool, len(materials))
	for _, m := range materials {
		shadowed[m.Name] = true
	}

	base, err := c.fallback.GetAllMaterials()
	if err != nil {
		return nil, err
	}
	for _, m := range base {
		if !shadowed[m.Name] {
			materials = append(materials, m)
		}
	}
	return materials, nil
}

func (c *overlayCatalog) LoadMaterials(materials []*entities.Material) error {
	return c.primary.LoadMaterials(materials)
}
