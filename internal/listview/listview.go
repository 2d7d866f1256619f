package listview

import (
	"sort"
	"strings"

	"github.com/sbilibin2017/employee-directory/internal/models"
)

// PageSize is the fixed number of rows shown per page.
const PageSize = 10

// Sortable column keys.
const (
	SortByName    = "name"
	SortByEmail   = "email"
	SortByID      = "id"
	SortByCreated = "created"
)

// View holds a fetched employee result set together with its derived
// filtered, sorted and paginated presentation. All operations work on
// the in-memory copy; nothing re-fetches from the server.
type View struct {
	all      []models.EmployeeDB
	filtered []models.EmployeeDB
	query    string
	sortKey  string
	sortAsc  bool
	page     int
}

// New builds a view over the given result set, unfiltered and on page 1.
func New(employees []models.EmployeeDB) *View {
	v := &View{all: employees, page: 1}
	v.refilter()
	return v
}

// Search filters rows by a case-insensitive substring match against
// name, email or id, and resets navigation to page 1. The current sort
// order is not re-applied: filtering recomputes from the full set in
// its original order.
func (v *View) Search(query string) {
	v.query = query
	v.page = 1
	v.refilter()
}

func (v *View) refilter() {
	q := strings.ToLower(strings.TrimSpace(v.query))
	if q == "" {
		v.filtered = append([]models.EmployeeDB(nil), v.all...)
		return
	}

	v.filtered = v.filtered[:0]
	for _, e := range v.all {
		if strings.Contains(strings.ToLower(e.Name), q) ||
			strings.Contains(strings.ToLower(e.Email), q) ||
			strings.Contains(strings.ToLower(e.EmployeeID), q) {
			v.filtered = append(v.filtered, e)
		}
	}
}

// SortBy sorts the filtered rows by the given column key. Sorting by
// the same key again reverses the direction; a new key starts
// ascending. Rows with equal keys keep their relative order. Unknown
// keys are ignored.
func (v *View) SortBy(key string) {
	switch key {
	case SortByName, SortByEmail, SortByID, SortByCreated:
	default:
		return
	}

	if v.sortKey == key {
		v.sortAsc = !v.sortAsc
	} else {
		v.sortKey = key
		v.sortAsc = true
	}

	sort.SliceStable(v.filtered, func(i, j int) bool {
		less := v.less(v.filtered[i], v.filtered[j])
		if v.sortAsc {
			return less
		}
		return v.less(v.filtered[j], v.filtered[i])
	})
}

func (v *View) less(a, b models.EmployeeDB) bool {
	switch v.sortKey {
	case SortByName:
		return strings.ToLower(a.Name) < strings.ToLower(b.Name)
	case SortByEmail:
		return strings.ToLower(a.Email) < strings.ToLower(b.Email)
	case SortByID:
		return a.EmployeeID < b.EmployeeID
	case SortByCreated:
		return a.CreatedAt.Before(b.CreatedAt)
	}
	return false
}

// Len returns the number of rows matching the current filter.
func (v *View) Len() int {
	return len(v.filtered)
}

// TotalPages returns the page count for the current filter, at least 1.
func (v *View) TotalPages() int {
	if len(v.filtered) == 0 {
		return 1
	}
	return (len(v.filtered) + PageSize - 1) / PageSize
}

// PageNumber returns the current page, in [1, TotalPages()].
func (v *View) PageNumber() int {
	return v.page
}

// SetPage navigates to page n, clamped to [1, TotalPages()].
func (v *View) SetPage(n int) {
	if n < 1 {
		n = 1
	}
	if total := v.TotalPages(); n > total {
		n = total
	}
	v.page = n
}

// Page returns the rows of the current page.
func (v *View) Page() []models.EmployeeDB {
	start := (v.page - 1) * PageSize
	if start >= len(v.filtered) {
		return nil
	}
	end := start + PageSize
	if end > len(v.filtered) {
		end = len(v.filtered)
	}
	return v.filtered[start:end]
}
