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

func createOrderTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE orders (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL,
		type TEXT NOT NULL,
		target_id TEXT NOT NULL,
		amount INTEGER NOT NULL,
		gateway TEXT NOT NULL,
		status TEXT NOT NULL,
		created_at DATETIME,
		updated_at DATETIME,
		deleted_at DATETIME
	);`)
}

func createPaymentTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE payments (
		id TEXT PRIMARY KEY,
		order_id TEXT NOT NULL,
		gateway TEXT NOT NULL,
		amount INTEGER NOT NULL,
		status TEXT NOT NULL,
		transaction_ref TEXT UNIQUE,
		correlation_token TEXT UNIQUE,
		response_code TEXT,
		bank_code TEXT,
		card_type TEXT,
		pay_date TEXT,
		secure_hash TEXT,
		gateway_txn_id TEXT,
		account_number TEXT,
		sub_account TEXT,
		transaction_content TEXT,
		created_at DATETIME,
		updated_at DATETIME,
		deleted_at DATETIME
	);`)
}

func createUserTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE users (
		id TEXT PRIMARY KEY,
		email TEXT NOT NULL UNIQUE,
		name TEXT NOT NULL,
		password_hash TEXT NOT NULL,
		role TEXT NOT NULL,
		level TEXT NOT NULL DEFAULT 'standard',
		x_token_balance INTEGER NOT NULL DEFAULT 0,
		email_confirmed INTEGER NOT NULL DEFAULT 0,
		created_at DATETIME,
		updated_at DATETIME,
		deleted_at DATETIME
	);`)
}

func createTokenTransactionTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE token_transactions (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL,
		type TEXT NOT NULL,
		amount_token INTEGER NOT NULL,
		created_at DATETIME,
		updated_at DATETIME
	);`)
}

func createJobTables(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE jobs (
		id TEXT PRIMARY KEY,
		owner_id TEXT NOT NULL,
		title TEXT NOT NULL,
		is_highlight INTEGER NOT NULL DEFAULT 0,
		is_hot INTEGER NOT NULL DEFAULT 0,
		is_urgent INTEGER NOT NULL DEFAULT 0,
		created_at DATETIME,
		updated_at DATETIME,
		deleted_at DATETIME
	);`)
	mustExec(t, db, `CREATE TABLE services (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		type TEXT NOT NULL,
		duration_in_days INTEGER NOT NULL DEFAULT 0,
		price INTEGER NOT NULL,
		created_at DATETIME,
		updated_at DATETIME
	);`)
	mustExec(t, db, `CREATE TABLE job_services (
		id TEXT PRIMARY KEY,
		job_id TEXT NOT NULL,
		service_id TEXT NOT NULL,
		is_active INTEGER NOT NULL DEFAULT 0,
		created_at DATETIME,
		updated_at DATETIME
	);`)
}

func createPackageTables(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE business_packages (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		tier TEXT NOT NULL,
		price INTEGER NOT NULL,
		duration_in_days INTEGER NOT NULL,
		monthly_x_token_rewards INTEGER NOT NULL DEFAULT 0,
		created_at DATETIME,
		updated_at DATETIME
	);`)
	mustExec(t, db, `CREATE TABLE purchased_packages (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL,
		package_id TEXT NOT NULL,
		is_active INTEGER NOT NULL DEFAULT 0,
		start_date DATETIME,
		next_reset_date DATETIME,
		end_date DATETIME,
		created_at DATETIME,
		updated_at DATETIME
	);`)
}
