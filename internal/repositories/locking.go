package repositories

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// withRowLock adds FOR UPDATE on dialects that support it. SQLite
// serializes writers on its own and rejects the clause.
func withRowLock(db *gorm.DB) *gorm.DB {
	if db.Dialector.Name() == "sqlite" {
		return db
	}
	return db.Clauses(clause.Locking{Strength: "UPDATE"})
}
