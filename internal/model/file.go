package model

import "time"

const (
	// ScanPending means the file has not entered the scanner queue yet
	ScanPending = "PENDING"
	// ScanScanning means the malware scan is in progress
	ScanScanning = "SCANNING"
	// ScanClean means the scan finished without findings
	ScanClean = "CLEAN"
	// ScanInfected means the scan flagged the file
	ScanInfected = "INFECTED"
	// ScanError means the scan failed
	ScanError = "ERROR"
)

// FileUpload mirrors the backend metadata for an uploaded resume. Scan
// status and the verified flag are computed server-side and displayed
// read-only; the download URL is an opaque presigned link.
type FileUpload struct {
	ID          int64     `json:"id"`
	FileName    string    `json:"fileName"`
	FileSize    int64     `json:"fileSize"`
	ContentType string    `json:"contentType"`
	ScanStatus  string    `json:"scanStatus"`
	Verified    bool      `json:"verified"`
	DownloadURL string    `json:"downloadUrl"`
	UploadedAt  time.Time `json:"uploadedAt"`
}
