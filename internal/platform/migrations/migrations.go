package migrations

import (
	"time"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

// Run applies the catalog schema. Adapters never automigrate on their own.
func Run(db *gorm.DB) error {
	if db == nil {
		return nil
	}
	return db.AutoMigrate(
		&restaurantRecord{},
		&menuItemRecord{},
	)
}

// Restaurant schema mirrors the catalog Postgres adapter.
type restaurantRecord struct {
	ID              int64          `gorm:"primaryKey;column:id"`
	Position        int            `gorm:"column:position;index"`
	Name            string         `gorm:"column:name"`
	ImageURL        string         `gorm:"column:image_url"`
	Cuisines        pq.StringArray `gorm:"column:cuisines;type:text[]"`
	Rating          float64        `gorm:"column:rating"`
	DeliveryMinutes int            `gorm:"column:delivery_minutes"`
	Description     string         `gorm:"column:description"`
	Address         string         `gorm:"column:address"`
	Hours           string         `gorm:"column:hours"`
	Tags            pq.StringArray `gorm:"column:tags;type:text[]"`
	CreatedAt       time.Time      `gorm:"column:created_at"`
	UpdatedAt       time.Time      `gorm:"column:updated_at"`
}

func (restaurantRecord) TableName() string { return "restaurants" }

// Menu item schema mirrors the catalog Postgres adapter.
type menuItemRecord struct {
	ID               string `gorm:"primaryKey;column:id;size:64"`
	RestaurantID     int64  `gorm:"column:restaurant_id;index:idx_menu_items_restaurant"`
	Category         string `gorm:"column:category"`
	CategoryPosition int    `gorm:"column:category_position;index:idx_menu_items_restaurant"`
	Position         int    `gorm:"column:position"`
	Name             string `gorm:"column:name"`
	Description      string `gorm:"column:description"`
	PriceCents       int64  `gorm:"column:price_cents"`
	ImageURL         string `gorm:"column:image_url"`
}

func (menuItemRecord) TableName() string { return "menu_items" }
