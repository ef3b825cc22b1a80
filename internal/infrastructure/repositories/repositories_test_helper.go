package repositories

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared", t.Name(), time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err, "open sqlite")
	return db
}

func mustExec(t *testing.T, db *gorm.DB, q string, args ...interface{}) {
	t.Helper()
	require.NoError(t, db.Exec(q, args...).Error, "exec failed: query=%s", q)
}

func createUserTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE users (
		id TEXT PRIMARY KEY,
		email TEXT UNIQUE NOT NULL,
		name TEXT NOT NULL,
		password_hash TEXT NOT NULL,
		role TEXT NOT NULL,
		created_at DATETIME,
		updated_at DATETIME,
		deleted_at DATETIME
	);`)
}

func createVendorProfileTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE vendor_profiles (
		id TEXT PRIMARY KEY,
		user_id TEXT UNIQUE,
		business_name TEXT NOT NULL,
		email TEXT UNIQUE NOT NULL,
		business_description TEXT,
		phone_number TEXT,
		address TEXT,
		contact_person TEXT,
		verification_status TEXT NOT NULL DEFAULT 'PENDING',
		created_at DATETIME,
		updated_at DATETIME,
		deleted_at DATETIME
	);`)
}

func createVendorDocumentTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE vendor_documents (
		id TEXT PRIMARY KEY,
		vendor_id TEXT NOT NULL,
		file_name TEXT NOT NULL,
		file_size INTEGER NOT NULL,
		file_type TEXT NOT NULL,
		file_path TEXT NOT NULL,
		status TEXT NOT NULL DEFAULT 'pending',
		reviewer_notes TEXT,
		uploaded_at DATETIME NOT NULL,
		reviewed_at DATETIME
	);`)
}
