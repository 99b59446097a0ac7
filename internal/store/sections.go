package store

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/3-lines-studio/linkdeck/internal/core"
)

// Sections returns all sections in display order, each with its links in
// display order.
func (s *Store) Sections(ctx context.Context) ([]core.Section, error) {
	var sectionRows []sectionModel
	if err := s.db.WithContext(ctx).
		Order("sort_order, id").
		Find(&sectionRows).Error; err != nil {
		return nil, fmt.Errorf("list sections: %w", err)
	}

	var linkRows []linkModel
	if err := s.db.WithContext(ctx).
		Order("sort_order, id").
		Find(&linkRows).Error; err != nil {
		return nil, fmt.Errorf("list links: %w", err)
	}

	linksBySection := make(map[int64][]core.Link)
	for _, row := range linkRows {
		linksBySection[row.SectionID] = append(linksBySection[row.SectionID], row.toCore())
	}

	sections := make([]core.Section, 0, len(sectionRows))
	for _, row := range sectionRows {
		section := row.toCore()
		section.Links = linksBySection[row.ID]
		sections = append(sections, section)
	}
	return sections, nil
}

// CreateSection creates a section with the default color, appended at the end
// of the display order.
func (s *Store) CreateSection(ctx context.Context, name string) (core.Section, error) {
	if err := core.ValidateSectionName(name); err != nil {
		return core.Section{}, err
	}
	name = core.NormalizeName(name)

	var created sectionModel
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing sectionModel
		err := tx.Where("name = ?", name).First(&existing).Error
		if err == nil {
			return fmt.Errorf("%w: %q", ErrDuplicateSection, name)
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		order, err := nextSortOrder(tx, &sectionModel{}, "")
		if err != nil {
			return err
		}

		created = sectionModel{
			Name:      name,
			Color:     core.DefaultColor,
			SortOrder: order,
		}
		return tx.Create(&created).Error
	})
	if err != nil {
		return core.Section{}, err
	}
	return created.toCore(), nil
}

// UpdateSection renames and/or recolors a section. Nil update fields are left
// unchanged.
func (s *Store) UpdateSection(ctx context.Context, id int64, upd core.SectionUpdate) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var section sectionModel
		if err := tx.First(&section, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrSectionNotFound
			}
			return err
		}

		if upd.Name != nil {
			if err := core.ValidateSectionName(*upd.Name); err != nil {
				return err
			}
			name := core.NormalizeName(*upd.Name)

			var existing sectionModel
			err := tx.Where("name = ? AND id <> ?", name, id).First(&existing).Error
			if err == nil {
				return fmt.Errorf("%w: %q", ErrDuplicateSection, name)
			}
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return err
			}
			section.Name = name
		}

		if upd.Color != nil {
			if err := core.ValidateColor(*upd.Color); err != nil {
				return err
			}
			section.Color = core.NormalizeColor(*upd.Color)
		}

		return tx.Save(&section).Error
	})
}

// DeleteSection removes a section and all of its links.
func (s *Store) DeleteSection(ctx context.Context, id int64) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var section sectionModel
		if err := tx.First(&section, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrSectionNotFound
			}
			return err
		}

		if err := tx.Where("section_id = ?", id).Delete(&linkModel{}).Error; err != nil {
			return err
		}
		return tx.Delete(&section).Error
	})
}

// ReorderSections rewrites section sort order to match orderedIDs. Unknown
// ids are ignored; sections absent from orderedIDs keep their order value.
func (s *Store) ReorderSections(ctx context.Context, orderedIDs []int64) error {
	indexes := core.SortIndexes(orderedIDs)
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for id, idx := range indexes {
			if err := tx.Model(&sectionModel{}).
				Where("id = ?", id).
				Update("sort_order", idx).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// nextSortOrder returns one past the current maximum sort order, optionally
// scoped by a section id for links. An empty table yields 0.
func nextSortOrder(tx *gorm.DB, model any, sectionScope string, scopeArgs ...any) (int, error) {
	var row struct{ Max *int }
	q := tx.Model(model).Select("MAX(sort_order) AS max")
	if sectionScope != "" {
		q = q.Where(sectionScope, scopeArgs...)
	}
	if err := q.Scan(&row).Error; err != nil {
		return 0, fmt.Errorf("next sort order: %w", err)
	}
	if row.Max == nil {
		return 0, nil
	}
	return *row.Max + 1, nil
}
