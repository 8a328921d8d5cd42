package paging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeWindow(t *testing.T) {
	tests := []struct {
		name       string
		totalItems int
		page       int
		size       Size
		want       Window
	}{
		{
			name:       "middle page",
			totalItems: 100, page: 3, size: 20,
			want: Window{CurrentPage: 3, TotalPages: 5, TotalItems: 100, PageSize: 20, HasNext: true, HasPrevious: true},
		},
		{
			name:       "empty collection",
			totalItems: 0, page: 1, size: 10,
			want: Window{CurrentPage: 1, TotalPages: 0, TotalItems: 0, PageSize: 10},
		},
		{
			name:       "partial last page",
			totalItems: 45, page: 5, size: 10,
			want: Window{CurrentPage: 5, TotalPages: 5, TotalItems: 45, PageSize: 10, HasPrevious: true},
		},
		{
			name:       "page above range clamps to last",
			totalItems: 30, page: 99, size: 10,
			want: Window{CurrentPage: 3, TotalPages: 3, TotalItems: 30, PageSize: 10, HasPrevious: true},
		},
		{
			name:       "page below range clamps to first",
			totalItems: 30, page: -4, size: 10,
			want: Window{CurrentPage: 1, TotalPages: 3, TotalItems: 30, PageSize: 10, HasNext: true},
		},
		{
			name:       "unlimited is a single page",
			totalItems: 73, page: 4, size: Unlimited,
			want: Window{CurrentPage: 1, TotalPages: 1, TotalItems: 73, PageSize: Unlimited},
		},
		{
			name:       "unlimited and empty",
			totalItems: 0, page: 1, size: Unlimited,
			want: Window{CurrentPage: 1, TotalPages: 0, TotalItems: 0, PageSize: Unlimited},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ComputeWindow(tt.totalItems, tt.page, tt.size)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestComputeWindowRejectsOutOfDomainInput(t *testing.T) {
	_, err := ComputeWindow(-1, 1, 10)
	assert.ErrorIs(t, err, ErrNegativeTotal)

	_, err = ComputeWindow(10, 1, 0)
	assert.ErrorIs(t, err, ErrInvalidPageSize)

	_, err = ComputeWindow(10, 1, -7)
	assert.ErrorIs(t, err, ErrInvalidPageSize)
}

// Window invariants hold for a sweep of valid inputs: the current page stays
// in range and HasNext tracks it exactly.
func TestComputeWindowInvariants(t *testing.T) {
	for totalItems := 0; totalItems <= 120; totalItems += 7 {
		for page := -2; page <= 15; page++ {
			for _, size := range []Size{1, 3, 10, 50, Unlimited} {
				w, err := ComputeWindow(totalItems, page, size)
				require.NoError(t, err)

				maxPage := w.TotalPages
				if maxPage < 1 {
					maxPage = 1
				}
				assert.GreaterOrEqual(t, w.CurrentPage, 1)
				assert.LessOrEqual(t, w.CurrentPage, maxPage)
				assert.Equal(t, w.CurrentPage < w.TotalPages, w.HasNext)
				assert.Equal(t, w.CurrentPage > 1, w.HasPrevious)
			}
		}
	}
}

func TestWindowBounds(t *testing.T) {
	w, err := ComputeWindow(45, 5, 10)
	require.NoError(t, err)
	start, end := w.Bounds()
	assert.Equal(t, 40, start)
	assert.Equal(t, 45, end)

	w, err = ComputeWindow(45, 1, Unlimited)
	require.NoError(t, err)
	start, end = w.Bounds()
	assert.Equal(t, 0, start)
	assert.Equal(t, 45, end)

	w, err = ComputeWindow(0, 1, 10)
	require.NoError(t, err)
	start, end = w.Bounds()
	assert.Equal(t, 0, start)
	assert.Equal(t, 0, end)
}

func TestReconcilePage(t *testing.T) {
	tests := []struct {
		name                       string
		oldPage, oldSize, newSize int
		want                       int
	}{
		{"growing the page absorbs earlier pages", 2, 10, 20, 1},
		{"first page stays first", 1, 20, 10, 1},
		{"shrinking the page pushes deeper", 2, 20, 10, 3},
		{"anchor lands mid-page", 5, 25, 40, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ReconcilePage(tt.oldPage, tt.oldSize, tt.newSize)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// Reconciling to the same size is a no-op for any valid page and size.
func TestReconcilePageIdempotent(t *testing.T) {
	for page := 1; page <= 30; page++ {
		for _, size := range []int{1, 2, 5, 10, 25, 100} {
			got, err := ReconcilePage(page, size, size)
			require.NoError(t, err)
			assert.Equal(t, page, got)
		}
	}
}

func TestReconcilePageRejectsOutOfDomainInput(t *testing.T) {
	_, err := ReconcilePage(0, 10, 20)
	assert.ErrorIs(t, err, ErrInvalidPage)

	_, err = ReconcilePage(1, 0, 20)
	assert.ErrorIs(t, err, ErrInvalidPageSize)

	_, err = ReconcilePage(1, 10, 0)
	assert.ErrorIs(t, err, ErrInvalidPageSize)
}

func TestSingleItemWindow(t *testing.T) {
	w := SingleItemWindow(25)
	assert.Equal(t, Window{CurrentPage: 1, TotalPages: 1, TotalItems: 1, PageSize: 25}, w)
	assert.False(t, w.HasNext)
	assert.False(t, w.HasPrevious)
}
