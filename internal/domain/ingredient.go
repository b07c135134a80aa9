package domain

import (
	"strings"

	"gorm.io/gorm"
)

// Ingredient is a named product with its measurement unit.
// The (name, measurement_unit) pair is unique.
type Ingredient struct {
	ID              int64  `json:"id" gorm:"primaryKey"`
	Name            string `json:"name" gorm:"size:200;not null;uniqueIndex:idx_ingredient_name_unit;index"`
	MeasurementUnit string `json:"measurement_unit" gorm:"size:200;not null;uniqueIndex:idx_ingredient_name_unit"`
	// NameLower backs prefix search; SQLite's LOWER() folds ASCII only.
	NameLower string `json:"-" gorm:"size:200;not null;default:'';index"`
}

func (Ingredient) TableName() string {
	return "ingredients"
}

// BeforeSave keeps NameLower in sync on Create and Save.
func (i *Ingredient) BeforeSave(*gorm.DB) error {
	i.NameLower = FoldName(i.Name)
	return nil
}

// FoldName is the case folding used for ingredient name search.
func FoldName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
