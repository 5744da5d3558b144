package reportqueries

import (
	"context"
	"fmt"

	"github.com/dalemusser/schoolreports/internal/app/reporting/xref"
	"github.com/dalemusser/schoolreports/internal/app/store/recordstore"
	"github.com/dalemusser/schoolreports/internal/domain/models"
)

// certificateQuery returns where certificates of source live and how the
// listing query is shaped. Both listings need a composite index in Mongo.
func certificateQuery(source models.CertificateSource) (string, []recordstore.Filter, []recordstore.Order, error) {
	switch source {
	case models.CertInternal:
		return models.CollQuizHistory,
			[]recordstore.Filter{recordstore.Where("hasCertificate", true)},
			[]recordstore.Order{{Field: "completedAt", Desc: true}}, nil
	case models.CertExternal:
		return models.CollHistoryCertificates, nil,
			[]recordstore.Order{{Field: "issuedDate", Desc: true}}, nil
	default:
		return "", nil, nil, fmt.Errorf("unknown certificate source %q", source)
	}
}

// Certificates returns the raw certificate records of source, newest first.
func (q *Queries) Certificates(ctx context.Context, source models.CertificateSource) ([]models.CertificateRecord, error) {
	coll, filters, order, err := certificateQuery(source)
	if err != nil {
		return nil, err
	}
	docs, err := q.rs.Query(ctx, coll, filters, order)
	if err != nil {
		return nil, err
	}
	out := make([]models.CertificateRecord, 0, len(docs))
	for _, d := range docs {
		out = append(out, recordFromDocument(source, d))
	}
	return out, nil
}

// Certificate returns one certificate record, or nil when it does not exist.
// An internal id that names an attempt without a certificate is nil too.
func (q *Queries) Certificate(ctx context.Context, source models.CertificateSource, id string) (*models.CertificateRecord, error) {
	coll, _, _, err := certificateQuery(source)
	if err != nil {
		return nil, err
	}
	d, err := q.rs.Get(ctx, coll, id)
	if err != nil || d == nil {
		return nil, err
	}
	if source == models.CertInternal {
		if ok, _ := d["hasCertificate"].(bool); !ok {
			return nil, nil
		}
	}
	rec := recordFromDocument(source, d)
	return &rec, nil
}

// Exam returns one exam document, or nil.
func (q *Queries) Exam(ctx context.Context, id string) (map[string]any, error) {
	if id == "" {
		return nil, nil
	}
	d, err := q.rs.Get(ctx, models.CollExams, id)
	if err != nil || d == nil {
		return nil, err
	}
	return d, nil
}

func recordFromDocument(source models.CertificateSource, d recordstore.Document) models.CertificateRecord {
	return xref.CertificateFromDocument(source, d.ID(), d)
}
