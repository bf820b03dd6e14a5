package model

import (
	"time"
)

// Category is a self-referential tree: deleting a parent keeps the children
// and severs their parent link.
type Category struct {
	ID          uint      `gorm:"primarykey" json:"id"`
	Name        string    `gorm:"size:100;uniqueIndex;not null" json:"name"`
	Description string    `gorm:"type:text" json:"description"`
	ParentID    *uint     `gorm:"index" json:"parent_id,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	Parent   *Category  `gorm:"foreignKey:ParentID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL" json:"parent,omitempty"`
	Children []Category `gorm:"foreignKey:ParentID" json:"children,omitempty"`
}

func (Category) TableName() string {
	return "categories"
}

// ProductCategory links products and categories; rows die with either side.
type ProductCategory struct {
	ProductID  uint      `gorm:"primaryKey;autoIncrement:false" json:"product_id"`
	CategoryID uint      `gorm:"primaryKey;autoIncrement:false" json:"category_id"`
	CreatedAt  time.Time `json:"created_at"`

	Product  Product  `gorm:"foreignKey:ProductID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	Category Category `gorm:"foreignKey:CategoryID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
}

func (ProductCategory) TableName() string {
	return "product_categories"
}
