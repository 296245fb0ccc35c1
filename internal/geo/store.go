package geo

import (
	"context"
	"errors"
	"fmt"
	"log"

	"gorm.io/gorm"

	"github.com/nguyenqkhai/Estimate-Price-House-v3/internal/models"
)

// Store persists the reference table in a relational database.
type Store struct {
	db *gorm.DB
}

func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

// Seed replaces the stored table with t in a single transaction.
func (s *Store) Seed(ctx context.Context, t *Table) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&models.Ward{}).Error; err != nil {
			return fmt.Errorf("failed to clear wards: %w", err)
		}
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&models.District{}).Error; err != nil {
			return fmt.Errorf("failed to clear districts: %w", err)
		}

		for i, d := range t.districts {
			row := models.District{Name: d.Name, Position: i}
			for j, w := range d.Wards {
				row.Wards = append(row.Wards, models.Ward{Name: w, Position: j})
			}
			if err := tx.Create(&row).Error; err != nil {
				return fmt.Errorf("failed to insert district %q: %w", d.Name, err)
			}
		}
		log.Printf("Seeded %d districts into the reference database", len(t.districts))
		return nil
	})
}

// LoadTable reads the stored table, districts and wards ordered by position.
func (s *Store) LoadTable(ctx context.Context) (*Table, error) {
	var rows []models.District
	err := s.db.WithContext(ctx).
		Preload("Wards", func(db *gorm.DB) *gorm.DB { return db.Order("position ASC") }).
		Order("position ASC").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load districts: %w", err)
	}
	if len(rows) == 0 {
		return nil, errors.New("reference database has no districts; run the seed command first")
	}

	districts := make([]District, len(rows))
	for i, row := range rows {
		d := District{Name: row.Name, Wards: make([]string, len(row.Wards))}
		for j, w := range row.Wards {
			d.Wards[j] = w.Name
		}
		districts[i] = d
	}
	return NewTable(districts)
}
