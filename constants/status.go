package constants

// JobStatus is the canonical status for rows in document_jobs.
type JobStatus string

// Stable values (store these exact strings in DB).
const (
	JobStatusPending    JobStatus = "pending"    // eligible for claim
	JobStatusProcessing JobStatus = "processing" // claimed by a worker
	JobStatusCompleted  JobStatus = "completed"  // terminal success
	JobStatusFailed     JobStatus = "failed"     // terminal failure (retries exhausted)
)

// IsTerminal reports whether a job status admits no further transitions.
func (s JobStatus) IsTerminal() bool {
	return s == JobStatusCompleted || s == JobStatusFailed
}

// JobType is the kind of extraction work a job row represents.
type JobType string

const (
	JobTypeExtraction JobType = "extraction" // direct text-layer extraction
	JobTypeOCR        JobType = "ocr"        // OCR fallback for scanned documents
)

// JobTypes holds the allowed values for document_jobs.job_type.
var JobTypes = []string{string(JobTypeExtraction), string(JobTypeOCR)}

// DocumentStatus is the lifecycle status for rows in documents.
type DocumentStatus string

const (
	DocumentStatusUploading  DocumentStatus = "uploading"   // upload initiated, blob not yet confirmed
	DocumentStatusUploaded   DocumentStatus = "uploaded"    // blob confirmed, extraction not started
	DocumentStatusPendingOCR DocumentStatus = "pending_ocr" // direct extraction insufficient, OCR required
	DocumentStatusProcessing DocumentStatus = "processing"  // a worker is extracting
	DocumentStatusReady      DocumentStatus = "ready"       // extraction accepted
	DocumentStatusOCRFailed  DocumentStatus = "ocr_failed"  // OCR tier failed terminally
	DocumentStatusError      DocumentStatus = "error"       // extraction failed terminally
)

// DocumentStatuses holds the allowed values for documents.status.
var DocumentStatuses = []string{
	string(DocumentStatusUploading),
	string(DocumentStatusUploaded),
	string(DocumentStatusPendingOCR),
	string(DocumentStatusProcessing),
	string(DocumentStatusReady),
	string(DocumentStatusOCRFailed),
	string(DocumentStatusError),
}
