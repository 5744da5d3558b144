// internal/domain/models/certificate.go
package models

import "time"

// CertificateSource tells where a certificate record was read from.
type CertificateSource string

const (
	// CertInternal certificates are quiz attempts flagged hasCertificate.
	CertInternal CertificateSource = "internal"
	// CertExternal certificates were issued outside the quiz system.
	CertExternal CertificateSource = "external"
)

// CertificateRecord keeps the raw document because display fields are
// looked up across several historical key spellings.
type CertificateRecord struct {
	ID         string            `json:"id"`
	Source     CertificateSource `json:"source"`
	StudentID  string            `json:"studentId,omitempty"`
	ExamID     string            `json:"examId,omitempty"`
	CertConfig map[string]any    `json:"certConfig,omitempty"`
	Fields     map[string]any    `json:"fields,omitempty"`
}

// ResolvedCertificate holds the display fields of a certificate after
// alias resolution and fallbacks.
type ResolvedCertificate struct {
	ID             string            `json:"id"`
	Source         CertificateSource `json:"source"`
	StudentName    string            `json:"studentName"`
	SchoolName     string            `json:"schoolName"`
	SignerName     string            `json:"signerName"`
	SignerPosition string            `json:"signerPosition"`
	LogoURL        string            `json:"logoUrl,omitempty"`
	SignatureURL   string            `json:"signatureUrl,omitempty"`
	Title          string            `json:"title"`
	ExtraText      string            `json:"extraText,omitempty"`
	CourseTitle    string            `json:"courseTitle"`
	IssuedAt       time.Time         `json:"issuedAt,omitempty"`
}
