package mysql

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// The explicit join models keep their own column names; the membership
// tags must point at them or SetupJoinTable refuses the schema.
func TestAutoMigrateBuildsExplicitJoinTables(t *testing.T) {
	db := newTestDB(t)

	for _, col := range []string{"book_id", "author_id"} {
		assert.True(t, db.Migrator().HasColumn(&BookAuthorModel{}, col), col)
	}
	for _, col := range []string{"book_id", "genre_id"} {
		assert.True(t, db.Migrator().HasColumn(&BookGenreModel{}, col), col)
	}
}
