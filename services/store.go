package services

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// requireExists returns NotFound("<what> not found: <id>") unless a row of
// model with the given id is live in tx.
func requireExists(tx *gorm.DB, model any, id uint, what string) error {
	var count int64
	if err := tx.Model(model).Where("id = ?", id).Count(&count).Error; err != nil {
		return internal(err, "failed to look up "+what)
	}
	if count == 0 {
		return notFound("%s not found: %d", what, id)
	}
	return nil
}

// findByID loads the row with the given id into dest, mapping a miss to NotFound.
func findByID(tx *gorm.DB, dest any, id uint, what string) error {
	if err := tx.Where("id = ?", id).First(dest).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return notFound("%s not found: %d", what, id)
		}
		return internal(err, "failed to look up "+what)
	}
	return nil
}

// lockByID is findByID with a row lock held until the transaction ends.
// Drivers without row locks (sqlite) drop the clause.
func lockByID(tx *gorm.DB, dest any, id uint, what string) error {
	return findByID(tx.Clauses(clause.Locking{Strength: "UPDATE"}), dest, id, what)
}
