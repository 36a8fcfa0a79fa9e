package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/lib/pq"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Apurer/delish-express/internal/domains/catalog/domain"
	"github.com/Apurer/delish-express/internal/domains/catalog/ports"
	"github.com/Apurer/delish-express/internal/shared/money"
)

var _ ports.Repository = (*Repository)(nil)

// Repository reads the catalog from PostgreSQL using GORM. Schema is owned by
// the migrations package; Seed is the only write path.
type Repository struct {
	db *gorm.DB
}

// NewRepository wires a PostgreSQL-backed catalog. Caller manages DB lifecycle.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

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

// ListRestaurants returns restaurants in catalog order.
func (r *Repository) ListRestaurants(ctx context.Context) ([]domain.Restaurant, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	var records []restaurantRecord
	if err := r.db.WithContext(ctx).Order("position ASC, id ASC").Find(&records).Error; err != nil {
		return nil, err
	}
	list := make([]domain.Restaurant, 0, len(records))
	for i := range records {
		list = append(list, records[i].toRestaurant())
	}
	return list, nil
}

func (r *Repository) GetProfile(ctx context.Context, restaurantID int64) (*domain.Profile, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	var record restaurantRecord
	if err := r.db.WithContext(ctx).First(&record, "id = ?", restaurantID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ports.ErrNotFound
		}
		return nil, err
	}
	profile := record.toProfile()
	return &profile, nil
}

func (r *Repository) GetMenu(ctx context.Context, restaurantID int64) (*domain.Menu, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	var count int64
	if err := r.db.WithContext(ctx).Model(&restaurantRecord{}).Where("id = ?", restaurantID).Count(&count).Error; err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, ports.ErrNotFound
	}
	var records []menuItemRecord
	if err := r.db.WithContext(ctx).
		Where("restaurant_id = ?", restaurantID).
		Order("category_position ASC, position ASC").
		Find(&records).Error; err != nil {
		return nil, err
	}
	menu := &domain.Menu{RestaurantID: restaurantID}
	for i := range records {
		rec := records[i]
		n := len(menu.Categories)
		if n == 0 || menu.Categories[n-1].Title != rec.Category {
			menu.Categories = append(menu.Categories, domain.MenuCategory{Title: rec.Category})
			n++
		}
		menu.Categories[n-1].Items = append(menu.Categories[n-1].Items, rec.toDomain())
	}
	return menu, nil
}

func (r *Repository) GetMenuItem(ctx context.Context, itemID string) (*domain.MenuItem, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	var record menuItemRecord
	if err := r.db.WithContext(ctx).First(&record, "id = ?", itemID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ports.ErrNotFound
		}
		return nil, err
	}
	item := record.toDomain()
	return &item, nil
}

// Seed upserts the listings in one transaction. List order becomes catalog order.
func (r *Repository) Seed(ctx context.Context, listings []domain.Listing) error {
	if err := r.ensureDB(); err != nil {
		return err
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for position, listing := range listings {
			if err := listing.Profile.Validate(); err != nil {
				return err
			}
			if err := listing.Menu.Validate(); err != nil {
				return err
			}
			record := toRestaurantRecord(position, listing.Profile)
			if err := tx.Clauses(clause.OnConflict{
				Columns: []clause.Column{{Name: "id"}},
				DoUpdates: clause.Assignments(map[string]any{
					"position":         record.Position,
					"name":             record.Name,
					"image_url":        record.ImageURL,
					"cuisines":         record.Cuisines,
					"rating":           record.Rating,
					"delivery_minutes": record.DeliveryMinutes,
					"description":      record.Description,
					"address":          record.Address,
					"hours":            record.Hours,
					"tags":             record.Tags,
					"updated_at":       gorm.Expr("NOW()"),
				}),
			}).Create(&record).Error; err != nil {
				return err
			}
			if err := tx.Where("restaurant_id = ?", record.ID).Delete(&menuItemRecord{}).Error; err != nil {
				return err
			}
			items := toMenuItemRecords(listing.Menu)
			if len(items) == 0 {
				continue
			}
			if err := tx.Create(&items).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *Repository) ensureDB() error {
	if r == nil || r.db == nil {
		return errors.New("postgres catalog repository not configured")
	}
	return nil
}

func toRestaurantRecord(position int, p domain.Profile) restaurantRecord {
	return restaurantRecord{
		ID:              p.ID,
		Position:        position,
		Name:            p.Name,
		ImageURL:        p.ImageURL,
		Cuisines:        pq.StringArray(p.Cuisines),
		Rating:          p.Rating,
		DeliveryMinutes: p.DeliveryMinutes,
		Description:     p.Description,
		Address:         p.Address,
		Hours:           p.Hours,
		Tags:            pq.StringArray(p.Tags),
	}
}

func toMenuItemRecords(menu domain.Menu) []menuItemRecord {
	var records []menuItemRecord
	for ci, category := range menu.Categories {
		for ii, item := range category.Items {
			records = append(records, menuItemRecord{
				ID:               item.ID,
				RestaurantID:     menu.RestaurantID,
				Category:         category.Title,
				CategoryPosition: ci,
				Position:         ii,
				Name:             item.Name,
				Description:      item.Description,
				PriceCents:       item.UnitPrice.Cents(),
				ImageURL:         item.ImageURL,
			})
		}
	}
	return records
}

func (r restaurantRecord) toRestaurant() domain.Restaurant {
	return domain.Restaurant{
		ID:              r.ID,
		Name:            r.Name,
		ImageURL:        r.ImageURL,
		Cuisines:        []string(r.Cuisines),
		Rating:          r.Rating,
		DeliveryMinutes: r.DeliveryMinutes,
	}
}

func (r restaurantRecord) toProfile() domain.Profile {
	return domain.Profile{
		Restaurant:  r.toRestaurant(),
		Description: r.Description,
		Address:     r.Address,
		Hours:       r.Hours,
		Tags:        []string(r.Tags),
	}
}

func (r menuItemRecord) toDomain() domain.MenuItem {
	return domain.MenuItem{
		ID:           r.ID,
		RestaurantID: r.RestaurantID,
		Name:         r.Name,
		Description:  r.Description,
		UnitPrice:    money.Amount(r.PriceCents),
		ImageURL:     r.ImageURL,
	}
}
