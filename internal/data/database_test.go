//go:build integration

package data

import (
	"context"
	"path/filepath"
	"testing"
)

// Every pooled connection must enforce foreign keys, not only the first one.
func TestNewDB_ForeignKeysOnEveryConnection(t *testing.T) {
	for _, driver := range []string{DriverSQLite3, DriverSQLite} {
		t.Run(driver, func(t *testing.T) {
			db, err := NewDB(driver, filepath.Join(t.TempDir(), "waste.db"))
			if err != nil {
				t.Fatalf("Failed to open database: %v", err)
			}
			defer db.Close()
			if err := Migrate(db); err != nil {
				t.Fatalf("Failed to apply migrations: %v", err)
			}

			// Force a fresh connection for every statement.
			db.SetMaxIdleConns(0)

			tips := NewRecyclingTipRepository(db)
			for i := 0; i < 3; i++ {
				if _, err := tips.Save(context.Background(), &RecyclingTip{Text: "Orphan", CategoryID: 42}); err == nil {
					t.Fatalf("attempt %d: expected foreign key violation, got nil", i)
				}
			}
		})
	}
}
