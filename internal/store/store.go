// Package store persists the ingredient/service catalog and the recipes.
// Identifiers are dense ascending integers assigned here, never by callers:
// next id = MAX(id)+1, or 1 for an empty table. The max+1 scan is only safe
// with a single writer, so each store serializes its writes behind a mutex.
package store

import (
	"errors"

	"github.com/jinzhu/gorm"
)

// ErrNotFound is returned when the requested entity id does not exist.
var ErrNotFound = errors.New("entity not found")

// nextID returns the next sequential id for a table. Caller must hold the
// store's write lock.
func nextID(db *gorm.DB, table string) (int, error) {
	var max int
	row := db.Table(table).Select("COALESCE(MAX(id), 0)").Row()
	if err := row.Scan(&max); err != nil {
		return 0, err
	}
	return max + 1, nil
}
