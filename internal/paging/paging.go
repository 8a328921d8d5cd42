// Package paging contains the pure pagination arithmetic used across the
// application: page window computation and page reconciliation across
// page-size changes. Nothing in here performs I/O.
package paging

import "errors"

// Size is a requested page size. Positive values are item counts;
// Unlimited means a single page containing the whole collection.
type Size int

// Unlimited requests all items on one page.
const Unlimited Size = -1

// IsUnlimited reports whether the size is the unlimited sentinel.
func (s Size) IsUnlimited() bool { return s == Unlimited }

// Valid reports whether the size is either positive or Unlimited.
func (s Size) Valid() bool { return s > 0 || s == Unlimited }

// Input validation errors. These indicate caller bugs, not user input;
// out-of-range page requests are clamped, never rejected.
var (
	ErrInvalidPageSize = errors.New("page size must be positive or unlimited")
	ErrInvalidPage     = errors.New("page must be at least 1")
	ErrNegativeTotal   = errors.New("total items must not be negative")
)

// Window describes one slice of an ordered collection.
type Window struct {
	CurrentPage int  `json:"currentPage"`
	TotalPages  int  `json:"totalPages"`
	TotalItems  int  `json:"totalItems"`
	PageSize    Size `json:"pageSize"`
	HasNext     bool `json:"hasNext"`
	HasPrevious bool `json:"hasPrevious"`
}

// ComputeWindow turns (totalItems, requestedPage, size) into a Window.
// The requested page is clamped into [1, totalPages]; pressing "next" on the
// last page is a normal action, not an error. Only out-of-domain inputs
// (negative totals, non-positive sizes) are rejected.
func ComputeWindow(totalItems, requestedPage int, size Size) (Window, error) {
	if totalItems < 0 {
		return Window{}, ErrNegativeTotal
	}
	if !size.Valid() {
		return Window{}, ErrInvalidPageSize
	}

	if totalItems == 0 {
		return Window{
			CurrentPage: 1,
			TotalPages:  0,
			TotalItems:  0,
			PageSize:    size,
		}, nil
	}

	effective := int(size)
	if size.IsUnlimited() {
		effective = totalItems
	}

	totalPages := (totalItems + effective - 1) / effective

	page := requestedPage
	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}

	return Window{
		CurrentPage: page,
		TotalPages:  totalPages,
		TotalItems:  totalItems,
		PageSize:    size,
		HasNext:     page < totalPages,
		HasPrevious: page > 1,
	}, nil
}

// SingleItemWindow describes a one-item, one-page view, used to present a
// located episode prominently regardless of where it lives in the full
// listing. The caller's requested size is echoed back.
func SingleItemWindow(size Size) Window {
	return Window{
		CurrentPage: 1,
		TotalPages:  1,
		TotalItems:  1,
		PageSize:    size,
	}
}

// Bounds returns the 0-based half-open range [start, end) of the items
// visible through the window.
func (w Window) Bounds() (start, end int) {
	if w.TotalItems == 0 {
		return 0, 0
	}
	if w.PageSize.IsUnlimited() {
		return 0, w.TotalItems
	}
	start = (w.CurrentPage - 1) * int(w.PageSize)
	end = start + int(w.PageSize)
	if end > w.TotalItems {
		end = w.TotalItems
	}
	return start, end
}

// ReconcilePage recomputes the current page after a page-size change so the
// user keeps seeing the first item they were already viewing (the anchor).
// It never consults the collection's size; callers clamp the result through
// ComputeWindow when the total page count may have changed.
func ReconcilePage(oldPage, oldSize, newSize int) (int, error) {
	if oldPage < 1 {
		return 0, ErrInvalidPage
	}
	if oldSize < 1 || newSize < 1 {
		return 0, ErrInvalidPageSize
	}
	anchor := (oldPage - 1) * oldSize
	return anchor/newSize + 1, nil
}
