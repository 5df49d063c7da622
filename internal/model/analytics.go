package model

// AdminOverview carries the aggregate counts shown on the admin overview
// tab. All values are precomputed by the backend.
type AdminOverview struct {
	TotalUsers          int64 `json:"totalUsers"`
	ActiveUsers         int64 `json:"activeUsers"`
	TotalJobs           int64 `json:"totalJobs"`
	TotalApplications   int64 `json:"totalApplications"`
	PendingInvites      int64 `json:"pendingInvites"`
	PendingRequests     int64 `json:"pendingAccessRequests"`
}

// TechCount is one entry of the top-technologies breakdown.
type TechCount struct {
	Technology string `json:"technology"`
	Count      int64  `json:"count"`
}

// BucketCount is one entry of a labeled breakdown (experience level,
// company).
type BucketCount struct {
	Label string `json:"label"`
	Count int64  `json:"count"`
}

// JobAnalytics mirrors the backend's precomputed job analytics. Rendered
// as-is on the admin analytics tab.
type JobAnalytics struct {
	TopTechnologies []TechCount   `json:"topTechnologies"`
	ByExperience    []BucketCount `json:"experienceBreakdown"`
	ByCompany       []BucketCount `json:"companyBreakdown"`
}

// AIStatus reports whether the backend's resume-analysis service is up.
type AIStatus struct {
	Available bool   `json:"available"`
	Model     string `json:"model,omitempty"`
}

// ParsedResume is the AI enrichment the backend computes per application.
// Absence (404) means "not yet analyzed", not an error.
type ParsedResume struct {
	ApplicationID   int64    `json:"applicationId"`
	Skills          []string `json:"skills"`
	YearsExperience float64  `json:"yearsExperience"`
	Education       string   `json:"education"`
	Summary         string   `json:"summary"`
	MatchScore      float64  `json:"matchScore"`
}

// CandidateQuery is the HR candidate-search form.
type CandidateQuery struct {
	Skills        []string `json:"skills,omitempty"`
	MinExperience float64  `json:"minExperience,omitempty"`
}

// CandidateHit is one row of a candidate search result.
type CandidateHit struct {
	ApplicationID   int64    `json:"applicationId"`
	ApplicantName   string   `json:"applicantName"`
	JobTitle        string   `json:"jobTitle"`
	Skills          []string `json:"skills"`
	YearsExperience float64  `json:"yearsExperience"`
	MatchScore      float64  `json:"matchScore"`
}
