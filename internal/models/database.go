package models

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"time"

	go_sqlite "github.com/glebarez/go-sqlite"
	"github.com/glebarez/sqlite"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// DB is the database used by the backend.
var DB *gorm.DB

type FTContext string

const (
	ContextURL    FTContext = "fintrack-url"
	ContextUserID FTContext = "fintrack-user-id"
)

// uniqueConstraints maps the tables with unique indices to the error
// returned when one of their unique constraints fails.
var uniqueConstraints = map[string]error{
	"categories": fieldError("name", ErrCategoryNameNotUnique),
	"budgets":    fieldError("month", ErrBudgetMonthNotUnique),
	"debts":      fieldError("title", ErrDebtTitleNotUnique),
	"goals":      fieldError("title", ErrGoalTitleNotUnique),
}

// Connect opens the SQLite database, migrates it and configures the
// connection pool.
func Connect(dsn string) error {
	config := &gorm.Config{
		// Set generated timestamps in UTC
		NowFunc: func() time.Time {
			return time.Now().In(time.UTC)
		},
		Logger: &logger{
			Logger: log.Logger,
		},
	}

	// Migration runs with foreign keys disabled since sqlite does not support
	// ALTER COLUMN. Tables are copied to a temporary table, then the table
	// is dropped and recreated.
	db, err := gorm.Open(sqlite.Open(dsn), config)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	err = migrate(db)
	if err != nil {
		return err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database object: %w", err)
	}
	sqlDB.Close()

	// Now, reconnect with foreign keys enabled
	db, err = gorm.Open(sqlite.Open(withPragma(dsn, "foreign_keys(1)")), config)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err = db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database object: %w", err)
	}

	// Get new connections after one hour
	sqlDB.SetConnMaxLifetime(time.Hour)

	// A single connection serializes all writes, which prevents SQLITE_BUSY
	// errors and makes each allocation transaction run in isolation.
	sqlDB.SetMaxIdleConns(1)
	sqlDB.SetMaxOpenConns(1)

	err = registerCallbacks(db)
	if err != nil {
		return err
	}

	DB = db
	return nil
}

// withPragma appends a pragma to the query string of a DSN.
func withPragma(dsn, pragma string) string {
	separator := "?"
	if strings.Contains(dsn, "?") {
		separator = "&"
	}

	return fmt.Sprintf("%s%s_pragma=%s", dsn, separator, pragma)
}

func registerCallbacks(db *gorm.DB) error {
	callbacks := []struct {
		processor interface {
			Register(string, func(*gorm.DB)) error
		}
		name string
		fn   func(*gorm.DB)
	}{
		{db.Callback().Query().After("*"), "fintrack:after_query", queryCallback},
		{db.Callback().Query().After("*"), "fintrack:after_query_general", generalCallback},
		{db.Callback().Create().After("*"), "fintrack:after_create", createUpdateCallback},
		{db.Callback().Create().After("*"), "fintrack:after_create_general", generalCallback},
		{db.Callback().Update().After("*"), "fintrack:after_update", createUpdateCallback},
		{db.Callback().Update().After("*"), "fintrack:after_update_general", generalCallback},
		{db.Callback().Delete().After("*"), "fintrack:after_delete_general", generalCallback},
	}

	for _, c := range callbacks {
		err := c.processor.Register(c.name, c.fn)
		if err != nil {
			return err
		}
	}

	return nil
}

// queryCallback replaces the generic "no record" error with a more user
// friendly one
func queryCallback(db *gorm.DB) {
	if errors.Is(db.Error, gorm.ErrRecordNotFound) {
		// Use the table name as information about the type of resource
		// and replace "_" with "[space]"
		name := strings.ReplaceAll(db.Statement.Table, "_", " ")

		// Replace pluralized "ies" with "y"
		match := regexp.MustCompile("ies$")
		name = match.ReplaceAllString(name, "y")

		// Remove plural "s"
		name = strings.TrimRight(name, "s")

		db.Error = fmt.Errorf("%w %s matching your query", ErrResourceNotFound, name)
	}
}

// createUpdateCallback inspects errors returned by the database for create
// and update calls and replaces them with user friendly ones
func createUpdateCallback(db *gorm.DB) {
	if db.Error == nil {
		return
	}

	for table, err := range uniqueConstraints {
		if strings.Contains(db.Error.Error(), fmt.Sprintf("UNIQUE constraint failed: %s.", table)) {
			db.Error = err
			return
		}
	}
}

// generalCallback handles unspecified errors.
//
// For these errors, we cannot provide the user with a helpful message.
// Instead, the error is logged and we return a general message to users.
func generalCallback(db *gorm.DB) {
	if db.Error == nil {
		return
	}

	// "sql: database is closed" is hard-coded in the sql module, see
	// https://cs.opensource.google/go/go/+/master:src/database/sql/sql.go;l=1298;drc=0d018b49e33b1383dc0ae5cc968e800dffeeaf7d
	if db.Error.Error() == "sql: database is closed" || reflect.TypeOf(db.Error) == reflect.TypeOf(&go_sqlite.Error{}) {
		log.Error().Msgf("%T: %v", db.Error, db.Error.Error())
		db.Error = ErrGeneral
	}
}

// migrate migrates all models to the schema defined in the code.
func migrate(db *gorm.DB) error {
	err := db.AutoMigrate(Profile{}, Category{}, Transaction{}, Budget{}, Debt{}, Goal{}, CategoryRule{}, Report{})
	if err != nil {
		return fmt.Errorf("error during DB migration: %w", err)
	}

	return nil
}
