// Package fixtures loads catalog content from YAML documents.
package fixtures

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"tourmap/internal/infra"
	"tourmap/internal/models/db_models"
	"tourmap/internal/repositories"
)

type Fixture struct {
	Categories []Category `yaml:"categories"`
	Spots      []Spot     `yaml:"spots"`
	Routes     []Route    `yaml:"routes"`
}

type Category struct {
	Name string `yaml:"name"`
	// Icon is a path relative to the media root.
	Icon string `yaml:"icon"`
}

type Spot struct {
	Name        string  `yaml:"name"`
	Lat         float64 `yaml:"lat"`
	Lng         float64 `yaml:"lng"`
	Description string  `yaml:"description"`
	Category    string  `yaml:"category"`
}

type Route struct {
	Name        string `yaml:"name"`
	Coordinates any    `yaml:"coordinates"`
}

// Counts reports how many records a Load touched.
type Counts struct {
	Categories int
	Spots      int
	Routes     int
}

// Parse decodes a fixture document and checks it for missing fields.
func Parse(r io.Reader) (*Fixture, error) {
	var f Fixture
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to decode fixture: %w", err)
	}

	if err := f.validate(); err != nil {
		return nil, err
	}
	return &f, nil
}

func (f *Fixture) validate() error {
	var errs []error

	seen := map[string]bool{}
	for i, c := range f.Categories {
		name := strings.TrimSpace(c.Name)
		switch {
		case name == "":
			errs = append(errs, fmt.Errorf("categories[%d]: name is required", i))
		case seen[name]:
			errs = append(errs, fmt.Errorf("categories[%d]: duplicate name %q", i, name))
		}
		seen[name] = true
	}

	for i, s := range f.Spots {
		if strings.TrimSpace(s.Name) == "" {
			errs = append(errs, fmt.Errorf("spots[%d]: name is required", i))
		}
		if strings.TrimSpace(s.Description) == "" {
			errs = append(errs, fmt.Errorf("spots[%d]: description is required", i))
		}
	}

	for i, r := range f.Routes {
		if strings.TrimSpace(r.Name) == "" {
			errs = append(errs, fmt.Errorf("routes[%d]: name is required", i))
		}
		if r.Coordinates == nil {
			errs = append(errs, fmt.Errorf("routes[%d]: coordinates is required", i))
		}
	}

	return errors.Join(errs...)
}

// Load writes the fixture in a single transaction. Categories are matched by
// name and updated in place; spots and routes are always added. With reset
// every existing record is removed first.
func Load(ctx context.Context, db *gorm.DB, f *Fixture, reset bool) (Counts, error) {
	var counts Counts

	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		ctx := infra.WithTx(ctx, tx)

		if reset {
			if err := truncate(tx); err != nil {
				return err
			}
		}

		categoryRepo := repositories.NewCategoryRepository(db)
		spotRepo := repositories.NewSpotRepository(db)
		routeRepo := repositories.NewRouteRepository(db)

		byName := map[string]*db_models.Category{}
		for _, c := range f.Categories {
			category, err := upsertCategory(ctx, categoryRepo, c)
			if err != nil {
				return err
			}
			byName[category.Name] = category
			counts.Categories++
		}

		for _, s := range f.Spots {
			spot := &db_models.Spot{
				Name:        strings.TrimSpace(s.Name),
				Lat:         s.Lat,
				Lng:         s.Lng,
				Description: strings.TrimSpace(s.Description),
			}

			if name := strings.TrimSpace(s.Category); name != "" {
				category, ok := byName[name]
				if !ok {
					found, err := categoryRepo.FindByName(ctx, name)
					if err != nil {
						return err
					}
					if found == nil {
						return fmt.Errorf("spot %q: unknown category %q", spot.Name, name)
					}
					category = found
					byName[name] = found
				}
				spot.CategoryID = &category.ID
			}

			if err := spotRepo.Create(ctx, spot); err != nil {
				return err
			}
			counts.Spots++
		}

		for _, r := range f.Routes {
			coordinates, err := json.Marshal(r.Coordinates)
			if err != nil {
				return fmt.Errorf("route %q: coordinates: %w", r.Name, err)
			}

			route := &db_models.Route{
				Name:        strings.TrimSpace(r.Name),
				Coordinates: datatypes.JSON(coordinates),
			}
			if err := routeRepo.Create(ctx, route); err != nil {
				return err
			}
			counts.Routes++
		}

		return nil
	})

	return counts, err
}

func upsertCategory(ctx context.Context, repo repositories.CategoryRepository, c Category) (*db_models.Category, error) {
	name := strings.TrimSpace(c.Name)

	category, err := repo.FindByName(ctx, name)
	if err != nil {
		return nil, err
	}

	if category == nil {
		category = &db_models.Category{Name: name, Icon: c.Icon}
		return category, repo.Create(ctx, category)
	}

	if c.Icon != "" && c.Icon != category.Icon {
		category.Icon = c.Icon
		return category, repo.Update(ctx, category)
	}
	return category, nil
}

func truncate(tx *gorm.DB) error {
	all := tx.Session(&gorm.Session{AllowGlobalUpdate: true})

	for _, model := range []any{
		&db_models.SpotImage{},
		&db_models.Spot{},
		&db_models.Route{},
		&db_models.Category{},
	} {
		if err := all.Delete(model).Error; err != nil {
			return fmt.Errorf("failed to reset %T: %w", model, err)
		}
	}
	return nil
}
