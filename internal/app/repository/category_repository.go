package repository

import (
	"github.com/ikkim/commerce-backend/internal/app/model"
	"github.com/ikkim/commerce-backend/pkg/logger"
	"gorm.io/gorm"
)

type CategoryRepository interface {
	Create(category *model.Category) error
	FindByID(id uint) (*model.Category, error)
	FindByName(name string) (*model.Category, error)
	FindAll() ([]model.Category, error)
	FindRoots() ([]model.Category, error)
	Ancestors(id uint) ([]model.Category, error)
	Descendants(id uint) ([]model.Category, error)
	Update(category *model.Category) error
	Delete(id uint) error
}

type categoryRepository struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) CategoryRepository {
	return &categoryRepository{db: db}
}

func (r *categoryRepository) Create(category *model.Category) error {
	if err := r.db.Create(category).Error; err != nil {
		logger.Error("Failed to create category", err, map[string]interface{}{
			"name": category.Name,
		})
		return err
	}
	return nil
}

func (r *categoryRepository) FindByID(id uint) (*model.Category, error) {
	var category model.Category
	if err := r.db.Preload("Children").First(&category, id).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *categoryRepository) FindByName(name string) (*model.Category, error) {
	var category model.Category
	if err := r.db.Where("name = ?", name).First(&category).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *categoryRepository) FindAll() ([]model.Category, error) {
	var categories []model.Category
	if err := r.db.Order("id").Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *categoryRepository) FindRoots() ([]model.Category, error) {
	var categories []model.Category
	if err := r.db.Where("parent_id IS NULL").Order("id").Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

// Ancestors walks the parent links from the given category up to a root,
// nearest parent first.
func (r *categoryRepository) Ancestors(id uint) ([]model.Category, error) {
	var current model.Category
	if err := r.db.First(&current, id).Error; err != nil {
		return nil, err
	}

	var ancestors []model.Category
	for current.ParentID != nil {
		var parent model.Category
		if err := r.db.First(&parent, *current.ParentID).Error; err != nil {
			return nil, err
		}
		ancestors = append(ancestors, parent)
		current = parent
	}
	return ancestors, nil
}

// Descendants collects the whole subtree below the given category,
// breadth-first.
func (r *categoryRepository) Descendants(id uint) ([]model.Category, error) {
	var descendants []model.Category
	frontier := []uint{id}
	for len(frontier) > 0 {
		var children []model.Category
		if err := r.db.Where("parent_id IN ?", frontier).Order("id").Find(&children).Error; err != nil {
			return nil, err
		}
		frontier = frontier[:0]
		for _, child := range children {
			descendants = append(descendants, child)
			frontier = append(frontier, child.ID)
		}
	}
	return descendants, nil
}

func (r *categoryRepository) Update(category *model.Category) error {
	if err := r.db.Save(category).Error; err != nil {
		logger.Error("Failed to update category", err, map[string]interface{}{
			"category_id": category.ID,
		})
		return err
	}
	return nil
}

// Delete severs the parent link of any children (the subtree keeps its rows)
// and drops the product links, then removes the category.
func (r *categoryRepository) Delete(id uint) error {
	logger.Debug("Deleting category", map[string]interface{}{"category_id": id})

	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&model.Category{}).Where("parent_id = ?", id).
			Update("parent_id", nil).Error; err != nil {
			return err
		}
		if err := tx.Where("category_id = ?", id).Delete(&model.ProductCategory{}).Error; err != nil {
			return err
		}

		result := tx.Delete(&model.Category{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}
