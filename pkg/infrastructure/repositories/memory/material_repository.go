package memory

import (
	"fmt"

	"github.com/vsinha/filmplant/pkg/domain/entities"
	"github.com/vsinha/filmplant/pkg/domain/repositories"
)

// MaterialRepository provides in-memory material catalog storage
type MaterialRepository struct {
	materials    []entities.Material
	materialsMap map[entities.MaterialName]int
}

// NewMaterialRepository creates a new in-memory material repository
func NewMaterialRepository(expectedMaterials int) *MaterialRepository {
	return &MaterialRepository{
		materials:    make([]entities.Material, 0, expectedMaterials),
		materialsMap: make(map[entities.MaterialName]int, expectedMaterials),
	}
}

// NewMaterialRepositoryFrom builds a catalog from a slice of materials
func NewMaterialRepositoryFrom(materials []entities.Material) (*MaterialRepository, error) {
	repo := NewMaterialRepository(len(materials))
	for _, material := range materials {
		if err := repo.SaveMaterial(&material); err != nil {
			return nil, err
		}
	}
	return repo, nil
}

// Verify interface compliance
var _ repositories.MaterialRepository = (*MaterialRepository)(nil)

// LoadMaterials loads materials into the repository
func (r *MaterialRepository) LoadMaterials(materials []*entities.Material) error {
	for _, material := range materials {
		if err := r.SaveMaterial(material); err != nil {
			return err
		}
	}
	return nil
}

// SaveMaterial adds a material to the catalog; names must be unique
func (r *MaterialRepository) SaveMaterial(material *entities.Material) error {
	if _, exists := r.materialsMap[material.Name]; exists {
		return fmt.Errorf("material already exists: %s", material.Name)
	}
	r.materialsMap[material.Name] = len(r.materials)
	r.materials = append(r.materials, *material)
	return nil
}

// GetMaterial returns a copy of the named material
func (r *MaterialRepository) GetMaterial(name entities.MaterialName) (*entities.Material, error) {
	index, exists := r.materialsMap[name]
	if !exists {
		return nil, fmt.Errorf("%w: %s", repositories.ErrMaterialNotFound, name)
	}
	material := r.materials[index]
	return &material, nil
}

// GetAllMaterials returns all materials in insertion order
func (r *MaterialRepository) GetAllMaterials() ([]*entities.Material, error) {
	materials := make([]*entities.Material, 0, len(r.materials))
	for i := range r.materials {
		material := r.materials[i]
		materials = append(materials, &material)
	}
	return materials, nil
}

// Count returns the number of materials in the catalog
func (r *MaterialRepository) Count() int {
	return len(r.materials)
}
