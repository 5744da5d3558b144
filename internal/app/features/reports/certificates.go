// internal/app/features/reports/certificates.go
package reports

import (
	"context"
	"net/http"
	"strings"

	uierrors "github.com/dalemusser/schoolreports/internal/app/features/errors"
	"github.com/dalemusser/schoolreports/internal/app/reporting/format"
	"github.com/dalemusser/schoolreports/internal/app/reporting/xref"
	"github.com/dalemusser/schoolreports/internal/app/system/inputval"
	"github.com/dalemusser/schoolreports/internal/app/system/paging"
	"github.com/dalemusser/schoolreports/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/query"
	"github.com/go-chi/chi/v5"
	"golang.org/x/sync/errgroup"
)

type certificateListData struct {
	Rows    []format.CertificateRow `json:"rows"`
	Page    paging.Range            `json:"page"`
	Schools []string                `json:"schools"`
}

func studentIndex(students []models.StudentProfile) map[string]models.StudentProfile {
	out := make(map[string]models.StudentProfile, len(students))
	for _, s := range students {
		out[s.ID] = s
	}
	return out
}

// ServeCertificates handles GET /reports/certificates?source=&school=&start=&limit=.
// Without a source both internal and external certificates are listed.
func (h *Handler) ServeCertificates(w http.ResponseWriter, r *http.Request) {
	p := inputval.CertificateListParams{Source: query.Get(r, "source"), School: query.Get(r, "school")}
	if err := inputval.Struct(p); err != nil {
		h.ErrLog.LogBadRequest(w, r, "bad certificate params", err, err.Error())
		return
	}
	sources := []models.CertificateSource{models.CertInternal, models.CertExternal}
	if p.Source != "" {
		sources = []models.CertificateSource{models.CertificateSource(strings.ToLower(strings.TrimSpace(p.Source)))}
	}

	var (
		recs     = make([][]models.CertificateRecord, len(sources))
		exams    map[string]map[string]any
		students []models.StudentProfile
	)
	ok := h.build(w, r, "certificates", func(ctx context.Context) error {
		g, gctx := errgroup.WithContext(ctx)
		for i, src := range sources {
			i, src := i, src
			g.Go(func() (err error) { recs[i], err = h.Queries.Certificates(gctx, src); return })
		}
		g.Go(func() (err error) { exams, err = h.Queries.Exams(gctx); return })
		g.Go(func() (err error) { students, err = h.Queries.Students(gctx); return })
		return g.Wait()
	})
	if !ok {
		return
	}

	byID := studentIndex(students)
	var resolved []models.ResolvedCertificate
	for _, list := range recs {
		for _, rec := range list {
			resolved = append(resolved, xref.ResolveCertificate(rec, exams[rec.ExamID], byID))
		}
	}

	rows, page := paging.Page(format.BuildCertificateRows(resolved, h.Locale, p.School), paging.ParseStart(r), paging.ParseLimit(r))
	d := certificateListData{
		Rows:    rows,
		Page:    page,
		Schools: format.Schools(resolved),
	}
	if d.Schools == nil {
		d.Schools = []string{}
	}
	uierrors.OK(w, d, len(d.Rows) == 0)
}

type certificateData struct {
	models.ResolvedCertificate
	IssuedDate string `json:"issuedDate"`
}

// ServeCertificate handles GET /reports/certificates/{source}/{id}: one
// certificate with every display field resolved.
func (h *Handler) ServeCertificate(w http.ResponseWriter, r *http.Request) {
	p := inputval.CertificateParams{Source: chi.URLParam(r, "source"), ID: chi.URLParam(r, "id")}
	if err := inputval.Struct(p); err != nil {
		h.ErrLog.LogBadRequest(w, r, "bad certificate params", err, err.Error())
		return
	}
	source := models.CertificateSource(strings.ToLower(strings.TrimSpace(p.Source)))

	var (
		rec     *models.CertificateRecord
		exam    map[string]any
		student *models.StudentProfile
	)
	ok := h.build(w, r, "certificate", func(ctx context.Context) error {
		var err error
		rec, err = h.Queries.Certificate(ctx, source, p.ID)
		if err != nil || rec == nil {
			return err
		}
		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() (err error) { exam, err = h.Queries.Exam(gctx, rec.ExamID); return })
		if source == models.CertInternal && rec.StudentID != "" {
			g.Go(func() (err error) { student, err = h.Queries.Student(gctx, rec.StudentID); return })
		}
		return g.Wait()
	})
	if !ok {
		return
	}
	if rec == nil {
		h.ErrLog.NotFound(w, "Certificate not found.")
		return
	}

	students := map[string]models.StudentProfile{}
	if student != nil {
		students[student.ID] = *student
	}
	c := xref.ResolveCertificate(*rec, exam, students)
	uierrors.OK(w, certificateData{
		ResolvedCertificate: c,
		IssuedDate:          format.FormatDate(c.IssuedAt, h.Locale),
	}, false)
}
