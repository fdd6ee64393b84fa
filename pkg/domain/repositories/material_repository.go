package repositories

import (
	"errors"

	"github.com/vsinha/filmplant/pkg/domain/entities"
)

// ErrMaterialNotFound is returned when a catalog lookup misses
var ErrMaterialNotFound = errors.New("material not found")

// MaterialRepository provides access to the material catalog
type MaterialRepository interface {
	GetMaterial(name entities.MaterialName) (*entities.Material, error)
	GetAllMaterials() ([]*entities.Material, error)
	LoadMaterials(materials []*entities.Material) error
}
