package model

import "time"

const (
	// StatusApplied is the initial status set by the backend on creation
	StatusApplied = "APPLIED"
	// StatusInterview indicates the candidate moved to interviewing
	StatusInterview = "INTERVIEW"
	// StatusRejected indicates the application was rejected
	StatusRejected = "REJECTED"
	// StatusHired indicates the candidate was hired
	StatusHired = "HIRED"
)

// ApplicationStatuses lists every status an HR user may select. The backend
// is authoritative for transition validity; this app submits whatever was
// chosen.
var ApplicationStatuses = []string{StatusApplied, StatusInterview, StatusRejected, StatusHired}

// Application links a job post and a user. Status transitions are requested
// by this app but decided server-side.
type Application struct {
	ID            int64     `json:"id"`
	JobID         int64     `json:"jobId"`
	JobTitle      string    `json:"jobTitle"`
	CompanyName   string    `json:"companyName"`
	UserID        int64     `json:"userId"`
	Username      string    `json:"username"`
	ApplicantName string    `json:"applicantName"`
	Status        string    `json:"status"`
	ResumeFileID  *int64    `json:"resumeFileId,omitempty"`
	AppliedAt     time.Time `json:"appliedAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// CanWithdraw reports whether the USER role may still withdraw. Withdrawal
// is only offered while the backend has not started processing.
func (a Application) CanWithdraw() bool {
	return a.Status == StatusApplied
}

// ApplyRequest is the payload for applying to a job.
type ApplyRequest struct {
	JobID        int64  `json:"jobId"`
	ResumeFileID *int64 `json:"resumeFileId,omitempty"`
	CoverLetter  string `json:"coverLetter,omitempty"`
}
