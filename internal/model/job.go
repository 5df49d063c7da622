package model

import "time"

// JobPost mirrors a backend job posting. Read-only from this app's point of
// view except for HR-authored creation and edits.
type JobPost struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	TechStack   []string  `json:"techStack"`
	Experience  int       `json:"requiredExperience"`
	Location    string    `json:"location"`
	Salary      int64     `json:"salary"`
	CompanyName string    `json:"companyName"`
	PostedBy    string    `json:"postedBy"`
	PostedAt    time.Time `json:"postDate"`
}

// JobFilters is the Jobs page filter state, in the names the page uses.
// The api package remaps these to the backend's search parameter names.
type JobFilters struct {
	Query         string
	Location      string
	MinExperience int
	MinSalary     int64
	SortBy        string
	SortDir       string
	Page          int
	Size          int
}

// IsZero reports whether no filter beyond paging is set.
func (f JobFilters) IsZero() bool {
	return f.Query == "" && f.Location == "" && f.MinExperience == 0 &&
		f.MinSalary == 0 && f.SortBy == ""
}

// JobSearchRequest is the backend search payload. Field names follow the
// backend contract, not the page's filter names.
type JobSearchRequest struct {
	Keyword        string `json:"keyword,omitempty"`
	Location       string `json:"location,omitempty"`
	MinExp         int    `json:"minExp,omitempty"`
	MinSalary      int64  `json:"minSalary,omitempty"`
	SortField      string `json:"sortField,omitempty"`
	SortOrder      string `json:"sortOrder,omitempty"`
	FullTextSearch bool   `json:"fullTextSearch"`
	Page           int    `json:"page"`
	Size           int    `json:"size"`
}

// JobPage is one page of search results with the backend's paging metadata.
type JobPage struct {
	Content       []JobPost `json:"content"`
	Page          int       `json:"number"`
	TotalPages    int       `json:"totalPages"`
	TotalElements int64     `json:"totalElements"`
}

// EditableJobPost carries the fields an HR user may set when creating or
// updating a posting.
type EditableJobPost struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	TechStack   []string `json:"techStack"`
	Experience  int      `json:"requiredExperience"`
	Location    string   `json:"location"`
	Salary      int64    `json:"salary"`
	CompanyName string   `json:"companyName"`
}
