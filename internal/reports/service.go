package reports

import (
	"context"
	"database/sql"
	"time"

	"hifz-backend/internal/platform/apperr"
	"hifz-backend/internal/platform/db"
)

type Service struct{ conn *sql.DB }

func NewService(conn *sql.DB) *Service { return &Service{conn: conn} }

// Preview returns the selected classes without rendering the document.
func (s *Service) Preview(ctx context.Context) (Response, error) {
	classes, slotCount, err := s.build(ctx)
	if err != nil {
		return Response{}, err
	}
	if classes == nil {
		classes = []ClassReport{}
	}
	return Response{Classes: classes, SlotCount: slotCount}, nil
}

// GeneratePDF renders the report document. Fails when no class has
// complete attendance, mirroring the preview being empty.
func (s *Service) GeneratePDF(ctx context.Context, now time.Time) ([]byte, string, error) {
	classes, _, err := s.build(ctx)
	if err != nil {
		return nil, "", err
	}
	if len(classes) == 0 {
		return nil, "", apperr.Invalid("no classes with complete attendance found")
	}
	out, err := RenderPDF(classes, now)
	if err != nil {
		return nil, "", apperr.Internal("failed to generate report")
	}
	filename := "Class_Report_" + now.Format("2006-01-02") + ".pdf"
	return out, filename, nil
}

// build loads all four source sets inside one read-only transaction so the
// exported numbers come from a single snapshot.
func (s *Service) build(ctx context.Context) ([]ClassReport, int, error) {
	var (
		classes  []ClassDetail
		records  []RecordRef
		teachers []Teacher
		slots    int
	)
	err := db.ReadOnly(ctx, s.conn, func(ctx context.Context, tx db.DBTX) error {
		st := NewStore(tx)
		var err error
		if classes, err = st.Classes(ctx); err != nil {
			return err
		}
		if records, err = st.Records(ctx); err != nil {
			return err
		}
		if teachers, err = st.Teachers(ctx); err != nil {
			return err
		}
		slots, err = st.SlotCount(ctx)
		return err
	})
	if err != nil {
		return nil, 0, err
	}
	return BuildClassReports(classes, records, teachers, slots), slots, nil
}
