// Package testdb opens throwaway SQLite databases with the production schema for tests.
package testdb

import (
	"testing"
	"time"

	"advisor/internal/infra/persistence/model"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// New returns an in-memory database with every table migrated.
// The pool is pinned to one connection: each SQLite ":memory:" connection is a separate database,
// and a single connection also serialises concurrent transactions the way row locks do on PostgreSQL.
func New(t testing.TB) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetConnMaxLifetime(0)

	require.NoError(t, db.AutoMigrate(model.All()...))

	t.Cleanup(func() {
		_ = sqlDB.Close()
	})

	return db
}

// SeedCatalog inserts the reference catalog: "Risk" (questions 10 and 11) and "Goals" (question 20).
func SeedCatalog(t testing.TB, db *gorm.DB) {
	t.Helper()

	seedCatalog(t, db,
		[]model.SectionModel{
			{ID: 1, Name: "Risk"},
			{ID: 2, Name: "Goals"},
		},
		[]model.QuestionModel{
			{ID: 10, SectionID: 1, Prompt: "Comfort with loss?"},
			{ID: 11, SectionID: 1, Prompt: "Horizon?"},
			{ID: 20, SectionID: 2, Prompt: "Target?"},
		},
		[]model.OptionModel{
			{ID: 200, QuestionID: 20, Text: "Retire"},
		},
	)
}

// SeedGappedCatalog inserts "Risk" (questions 10 and 11), an empty section 2 and "Goals" as section 3.
// The only Goals question has ID 5, lower than every Risk question, so section order has to win over
// question IDs when crossing the gap.
func SeedGappedCatalog(t testing.TB, db *gorm.DB) {
	t.Helper()

	seedCatalog(t, db,
		[]model.SectionModel{
			{ID: 1, Name: "Risk"},
			{ID: 2, Name: "Extra"},
			{ID: 3, Name: "Goals"},
		},
		[]model.QuestionModel{
			{ID: 10, SectionID: 1, Prompt: "Comfort with loss?"},
			{ID: 11, SectionID: 1, Prompt: "Horizon?"},
			{ID: 5, SectionID: 3, Prompt: "Target?"},
		},
		[]model.OptionModel{
			{ID: 50, QuestionID: 5, Text: "Retire"},
			{ID: 51, QuestionID: 5, Text: "Education"},
		},
	)
}

// seedCatalog inserts the given rows plus the options of the shared Risk questions 10 and 11.
func seedCatalog(t testing.TB, db *gorm.DB, sections []model.SectionModel, questions []model.QuestionModel, extra []model.OptionModel) {
	t.Helper()

	options := append([]model.OptionModel{
		{ID: 100, QuestionID: 10, Text: "Low"},
		{ID: 101, QuestionID: 10, Text: "High"},
		{ID: 110, QuestionID: 11, Text: "<3y"},
		{ID: 111, QuestionID: 11, Text: ">3y"},
	}, extra...)

	require.NoError(t, db.Create(&sections).Error)
	require.NoError(t, db.Create(&questions).Error)
	require.NoError(t, db.Create(&options).Error)
}

// SeedFunds inserts two categories, one of them without funds.
func SeedFunds(t testing.TB, db *gorm.DB) {
	t.Helper()

	categories := []model.FundCategoryModel{
		{ID: 1, Name: "Equity", RiskLevel: "high"},
		{ID: 2, Name: "Hybrid", RiskLevel: "moderate"},
	}
	funds := []model.FundModel{
		{ID: 1001, CategoryID: 1, SchemeCode: "120503", SchemeName: "Large Cap Growth Fund", NAV: 84.21},
		{ID: 1002, CategoryID: 1, SchemeCode: "125354", SchemeName: "Flexi Cap Fund", NAV: 61.07},
	}

	require.NoError(t, db.Create(&categories).Error)
	require.NoError(t, db.Create(&funds).Error)
}

// CreateUser inserts a user and returns its ID.
func CreateUser(t testing.TB, db *gorm.DB, email string) uuid.UUID {
	t.Helper()

	id, err := uuid.NewV7()
	require.NoError(t, err)

	require.NoError(t, db.Create(&model.UserModel{
		ID:           id,
		Email:        email,
		Name:         "Test User",
		PasswordHash: "hash",
		CreatedAt:    time.Now(),
	}).Error)

	return id
}
