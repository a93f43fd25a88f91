// Package entities contains core business entities.
package entities

// Sort orders supported by the lead list.
const (
	SortNewest = "newest"
	SortOldest = "oldest"
	SortName   = "name"
)

const (
	defaultPage  = 1
	defaultLimit = 20
)

// LeadFilter is the request-side specification for listing leads. Zero
// values mean "no constraint"; Status "all" is equivalent to empty.
type LeadFilter struct {
	Status Status
	Source Source
	Search string
	Sort   string
	Page   int
	Limit  int
}

// Normalized returns a copy with defaults applied: page and limit floored to
// their minimums, unknown sort collapsed to newest, status "all" cleared.
func (f LeadFilter) Normalized() LeadFilter {
	if f.Status == "all" {
		f.Status = ""
	}
	switch f.Sort {
	case SortNewest, SortOldest, SortName:
	default:
		f.Sort = SortNewest
	}
	if f.Page < 1 {
		f.Page = defaultPage
	}
	if f.Limit < 1 {
		f.Limit = defaultLimit
	}
	return f
}

// Pagination describes the window a lead page was cut from. Pages is
// ceil(Total/Limit).
type Pagination struct {
	Page  int
	Limit int
	Total int64
	Pages int64
}

// LeadStats are global status counts over the unfiltered collection.
type LeadStats struct {
	Total     int64
	New       int64
	Contacted int64
	Converted int64
}

// LeadPage bundles one page of leads with pagination metadata and the
// global stats snapshot the dashboard shows alongside any filter.
type LeadPage struct {
	Leads      []Lead
	Pagination Pagination
	Stats      LeadStats
}
