package db

import (
	"gorm.io/gorm"
)

// Paginate applies offset/limit. A non-positive limit leaves the query unbounded.
//
//	db.Model(&Model{}).Scopes(db.Paginate(0, 100)).Find(&rows)
func Paginate(offset, limit int) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if offset > 0 {
			db = db.Offset(offset)
		}
		if limit > 0 {
			db = db.Limit(limit)
		}
		return db
	}
}
