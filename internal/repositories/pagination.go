package repositories

import (
	"context"
	"math"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// PageRequest is a 1-based pagination window.
type PageRequest struct {
	Page    int
	PerPage int
}

// NewPageRequest normalizes raw query values: page below 1 becomes 1 and a
// non-positive per page falls back to defaultPerPage.
func NewPageRequest(page, perPage, defaultPerPage int) PageRequest {
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = defaultPerPage
	}
	return PageRequest{Page: page, PerPage: perPage}
}

// offset clamps to math.MaxInt when the window lies beyond any addressable row.
func (p PageRequest) offset() int {
	if p.Page <= 1 || p.PerPage <= 0 {
		return 0
	}
	if p.Page-1 > math.MaxInt/p.PerPage {
		return math.MaxInt
	}
	return (p.Page - 1) * p.PerPage
}

// Page is one window of a filtered listing.
type Page[T any] struct {
	Items   []T
	Total   int64
	Page    int
	PerPage int
}

// Pages returns the number of pages needed to hold Total items.
func (p *Page[T]) Pages() int {
	if p.PerPage <= 0 || p.Total == 0 {
		return 0
	}
	return int(math.Ceil(float64(p.Total) / float64(p.PerPage)))
}

// HasNext reports whether a page exists after this one.
func (p *Page[T]) HasNext() bool {
	return p.Page < p.Pages()
}

// HasPrev reports whether a page exists before this one.
func (p *Page[T]) HasPrev() bool {
	return p.Page > 1
}

// Paginate is a GORM scope applying the window's offset and limit.
func Paginate(req PageRequest) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Offset(req.offset()).Limit(req.PerPage)
	}
}

// findPage counts the rows matched by query and loads the requested window in
// the given order. A window past the end yields an empty, non-nil Items slice.
func findPage[T any](ctx context.Context, query *gorm.DB, req PageRequest, order string) (*Page[T], error) {
	query = query.WithContext(ctx).Session(&gorm.Session{})

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, errors.Wrap(err, "failed to count rows")
	}

	page := &Page[T]{Items: make([]T, 0), Total: total, Page: req.Page, PerPage: req.PerPage}
	if req.Page > 1 && req.Page > page.Pages() {
		return page, nil
	}

	if err := query.Order(order).Scopes(Paginate(req)).Find(&page.Items).Error; err != nil {
		return nil, errors.Wrap(err, "failed to load page")
	}

	return page, nil
}
