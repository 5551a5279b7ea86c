package db

import (
	"funfans-backend/models"
	"funfans-backend/utils"

	"github.com/shopspring/decimal"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var DB *gorm.DB

// InitDB opens the postgres connection, migrates the schema and seeds the
// launch catalog. It panics when the database cannot be reached.
func InitDB(dsn string) *gorm.DB {
	if dsn == "" {
		utils.LogError(nil, "DB_URL is not set")
		panic("database URL not configured")
	}

	var err error
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger:         utils.GetGormLogger(),
		TranslateError: true,
	})
	if err != nil {
		utils.LogError(err, "Error connecting to the database")
		panic("Could not connect to the database")
	}

	if err = Migrate(DB); err != nil {
		utils.LogError(err, "Error migrating database")
		panic("Could not migrate database")
	}

	if err = Seed(DB); err != nil {
		utils.LogError(err, "Error seeding database")
		panic("Could not seed database")
	}

	utils.LogSuccess("Database connection successful")
	return DB
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Follow{},
		&models.RevokedToken{},
		&models.Tag{},
		&models.ContentItem{},
		&models.ContentMedia{},
		&models.Like{},
		&models.Share{},
		&models.Reaction{},
		&models.Comment{},
		&models.Report{},
		&models.Transaction{},
		&models.CreatorTransaction{},
		&models.CreatorEarnings{},
		&models.Unlock{},
		&models.PlatformSettings{},
		&models.SubscriptionPlan{},
		&models.UserSubscription{},
		&models.CreditPackage{},
		&models.CheckoutSession{},
		&models.UserTimeout{},
		&models.ShowcaseEntry{},
	)
}

// Seed inserts the default settings row and catalog. Existing rows are left
// untouched so admin edits survive restarts.
func Seed(db *gorm.DB) error {
	settings := models.DefaultSettings()
	if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&settings).Error; err != nil {
		return err
	}
	plans := DefaultPlans()
	if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&plans).Error; err != nil {
		return err
	}
	packages := DefaultPackages()
	return db.Clauses(clause.OnConflict{DoNothing: true}).Create(&packages).Error
}

func usd(v string) decimal.Decimal {
	return decimal.RequireFromString(v)
}

func DefaultPlans() []models.SubscriptionPlan {
	return []models.SubscriptionPlan{
		{ID: "plan_free", Name: "Free", Price: usd("0"), Currency: "USD", Credits: 0,
			Features:        []string{"Access to public content", "Follow creators"},
			StripeProductID: "prod_SyYChoQJbIb1ye"},
		{ID: "plan_basic", Name: "Basic", Price: usd("9.00"), Currency: "USD", Credits: 1000,
			Features:        []string{"Access to exclusive content", "Monthly credit top-up", "Basic creator support"},
			StripeProductID: "prod_SyYK31lYwaraZW"},
		{ID: "plan_pro", Name: "Pro", Price: usd("15.00"), Currency: "USD", Credits: 2000,
			Features:        []string{"All Basic features", "Early access to new content", "Priority creator support"},
			StripeProductID: "prod_SyYMs3lMIhORSP"},
		{ID: "plan_vip", Name: "VIP", Price: usd("25.00"), Currency: "USD", Credits: 4000,
			Features: []string{"All Pro features", "Direct message with creators", "Exclusive VIP badge"}},
	}
}

func DefaultPackages() []models.CreditPackage {
	return []models.CreditPackage{
		{ID: "pkg1", Credits: 200, Price: usd("2.00"), StripeProductID: "prod_SyYasByos1peGR"},
		{ID: "pkg2", Credits: 500, Price: usd("5.00"), StripeProductID: "prod_SyYeStqRDuWGFF"},
		{ID: "pkg3", Credits: 1000, Price: usd("10.00"), StripeProductID: "prod_SyYfzJ1fjz9zb9"},
		{ID: "pkg4", Credits: 2500, Price: usd("25.00"), BestValue: true, StripeProductID: "prod_SyYmVrUetdiIBY"},
		{ID: "pkg5", Credits: 5000, Price: usd("50.00"), StripeProductID: "prod_SyYg54VfiOr7LQ"},
		{ID: "pkg6", Credits: 10000, Price: usd("100.00"), StripeProductID: "prod_SyYhva8A2beAw6"},
	}
}
