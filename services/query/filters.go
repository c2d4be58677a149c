package query

import (
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/Sohilkhan0021/anceller-admin-sub002/models"
)

// AllFilter is the UI's "no filter" sentinel. It is translated to an absent
// parameter and must never appear in an outgoing query.
const AllFilter = "all"

const (
	DefaultPageSize = 10
	dateFormat      = "2006-01-02"
)

// Filters is the ephemeral per-screen filter state for the list endpoints.
// Mutate it through the Set* methods: any filter change resets pagination to
// page 1 so a narrowed result set is never requested at a stale offset.
type Filters struct {
	Search        string
	Status        string // UI vocabulary; normalized on the way out
	PaymentStatus string // UI vocabulary; normalized on the way out
	CategoryID    string
	DateFrom      time.Time
	DateTo        time.Time
	Page          int
	PageSize      int
}

func NewFilters() Filters {
	return Filters{Page: 1, PageSize: DefaultPageSize}
}

func (f *Filters) SetSearch(search string) {
	f.Search = strings.TrimSpace(search)
	f.Page = 1
}

func (f *Filters) SetStatus(status string) {
	f.Status = status
	f.Page = 1
}

func (f *Filters) SetPaymentStatus(status string) {
	f.PaymentStatus = status
	f.Page = 1
}

func (f *Filters) SetCategory(categoryID string) {
	f.CategoryID = categoryID
	f.Page = 1
}

func (f *Filters) SetDateRange(from, to time.Time) {
	f.DateFrom = from
	f.DateTo = to
	f.Page = 1
}

func (f *Filters) SetPage(page int) {
	if page < 1 {
		page = 1
	}
	f.Page = page
}

// Query translates the filter state into the backend's query parameters.
// Status filters pass through the status normalizer, the "all" sentinel is
// dropped, and date bounds are sent only when both are present.
func (f Filters) Query() url.Values {
	params := url.Values{}

	if s := strings.TrimSpace(f.Search); s != "" {
		params.Set("search", s)
	}
	if v := filterValue(f.Status); v != "" {
		params.Set("status", models.BookingStatusToBackend(v))
	}
	if v := filterValue(f.PaymentStatus); v != "" {
		params.Set("payment_status", models.PaymentStatusToBackend(v))
	}
	if v := filterValue(f.CategoryID); v != "" {
		params.Set("category_id", v)
	}
	if !f.DateFrom.IsZero() && !f.DateTo.IsZero() {
		params.Set("start_date", f.DateFrom.Format(dateFormat))
		params.Set("end_date", f.DateTo.Format(dateFormat))
	}

	page := f.Page
	if page < 1 {
		page = 1
	}
	size := f.PageSize
	if size < 1 {
		size = DefaultPageSize
	}
	params.Set("page", strconv.Itoa(page))
	params.Set("limit", strconv.Itoa(size))

	return params
}

func filterValue(v string) string {
	v = strings.TrimSpace(v)
	if v == "" || strings.EqualFold(v, AllFilter) {
		return ""
	}
	return v
}

// Parse builds a Filters from raw request query parameters (the shape the
// console UI sends). Unknown parameters are ignored.
func Parse(values url.Values) Filters {
	f := NewFilters()
	f.Search = strings.TrimSpace(values.Get("search"))
	f.Status = values.Get("status")
	f.PaymentStatus = values.Get("paymentStatus")
	f.CategoryID = values.Get("categoryId")

	if from, err := time.Parse(dateFormat, values.Get("startDate")); err == nil {
		f.DateFrom = from
	}
	if to, err := time.Parse(dateFormat, values.Get("endDate")); err == nil {
		f.DateTo = to
	}
	if page, err := strconv.Atoi(values.Get("page")); err == nil && page > 0 {
		f.Page = page
	}
	if size, err := strconv.Atoi(values.Get("pageSize")); err == nil && size > 0 {
		f.PageSize = size
	}
	return f
}
