package store

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/3-lines-studio/linkdeck/internal/core"
)

// AddLink appends a link to a section.
func (s *Store) AddLink(ctx context.Context, sectionID int64, title, url string) (core.Link, error) {
	if err := core.ValidateLinkTitle(title); err != nil {
		return core.Link{}, err
	}
	if err := core.ValidateLinkURL(url); err != nil {
		return core.Link{}, err
	}

	var created linkModel
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var section sectionModel
		if err := tx.First(&section, sectionID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrSectionNotFound
			}
			return err
		}

		order, err := nextSortOrder(tx, &linkModel{}, "section_id = ?", sectionID)
		if err != nil {
			return err
		}

		created = linkModel{
			SectionID: sectionID,
			Title:     strings.TrimSpace(title),
			URL:       strings.TrimSpace(url),
			SortOrder: order,
		}
		return tx.Create(&created).Error
	})
	if err != nil {
		return core.Link{}, err
	}
	return created.toCore(), nil
}

// UpdateLink changes a link's title and/or url. Nil update fields are left
// unchanged.
func (s *Store) UpdateLink(ctx context.Context, id int64, upd core.LinkUpdate) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var link linkModel
		if err := tx.First(&link, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrLinkNotFound
			}
			return err
		}

		if upd.Title != nil {
			if err := core.ValidateLinkTitle(*upd.Title); err != nil {
				return err
			}
			link.Title = strings.TrimSpace(*upd.Title)
		}

		if upd.URL != nil {
			if err := core.ValidateLinkURL(*upd.URL); err != nil {
				return err
			}
			link.URL = strings.TrimSpace(*upd.URL)
		}

		return tx.Save(&link).Error
	})
}

// DeleteLink removes a single link.
func (s *Store) DeleteLink(ctx context.Context, id int64) error {
	result := s.db.WithContext(ctx).Delete(&linkModel{}, id)
	if result.Error != nil {
		return fmt.Errorf("delete link %d: %w", id, result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrLinkNotFound
	}
	return nil
}

// ReorderLinks rewrites link sort order within one section to match
// orderedIDs. Links belonging to other sections are never touched.
func (s *Store) ReorderLinks(ctx context.Context, sectionID int64, orderedIDs []int64) error {
	indexes := core.SortIndexes(orderedIDs)
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for id, idx := range indexes {
			if err := tx.Model(&linkModel{}).
				Where("id = ? AND section_id = ?", id, sectionID).
				Update("sort_order", idx).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
