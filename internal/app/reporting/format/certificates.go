// internal/app/reporting/format/certificates.go
package format

import (
	"sort"
	"strings"
	"time"

	"github.com/dalemusser/schoolreports/internal/domain/models"
)

// AllSchools is the school filter value that keeps every certificate.
const AllSchools = "ทั้งหมด"

// CertificateRow is one line of the certificate history list.
type CertificateRow struct {
	ID          string                   `json:"id"`
	Source      models.CertificateSource `json:"source"`
	StudentName string                   `json:"studentName"`
	SchoolName  string                   `json:"schoolName"`
	CourseTitle string                   `json:"courseTitle"`
	IssuedDate  string                   `json:"issuedDate"`
	IssuedAt    time.Time                `json:"issuedAt,omitempty"`
}

// BuildCertificateRows filters certificates by school ("" or AllSchools
// keeps all) and orders them newest first. Undated certificates go last.
func BuildCertificateRows(certs []models.ResolvedCertificate, l Locale, school string) []CertificateRow {
	school = strings.TrimSpace(school)
	rows := make([]CertificateRow, 0, len(certs))
	for _, c := range certs {
		if school != "" && school != AllSchools && c.SchoolName != school {
			continue
		}
		rows = append(rows, CertificateRow{
			ID:          c.ID,
			Source:      c.Source,
			StudentName: c.StudentName,
			SchoolName:  c.SchoolName,
			CourseTitle: c.CourseTitle,
			IssuedDate:  FormatShortDate(c.IssuedAt, l),
			IssuedAt:    c.IssuedAt,
		})
	}
	sort.SliceStable(rows, func(i, j int) bool {
		a, b := rows[i].IssuedAt, rows[j].IssuedAt
		if a.IsZero() != b.IsZero() {
			return b.IsZero()
		}
		return a.After(b)
	})
	return rows
}

// Schools lists the distinct school names, sorted, for the filter control.
func Schools(certs []models.ResolvedCertificate) []string {
	seen := map[string]bool{}
	var out []string
	for _, c := range certs {
		if c.SchoolName == "" || seen[c.SchoolName] {
			continue
		}
		seen[c.SchoolName] = true
		out = append(out, c.SchoolName)
	}
	sort.Strings(out)
	return out
}
