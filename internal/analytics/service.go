package analytics

import (
	"context"
	"database/sql"
)

type Service struct{ store *Store }

func NewService(db *sql.DB) *Service { return &Service{store: NewStore(db)} }

// Overview loads the four source sets and derives both analytics views.
// All-or-nothing: any fetch failure aborts the whole response so nothing
// partial is ever shown.
func (s *Service) Overview(ctx context.Context) (Response, error) {
	classes, err := s.store.Classes(ctx)
	if err != nil {
		return Response{}, err
	}
	slots, err := s.store.Slots(ctx)
	if err != nil {
		return Response{}, err
	}
	admins, err := s.store.SlotAdmins(ctx)
	if err != nil {
		return Response{}, err
	}
	records, err := s.store.Records(ctx)
	if err != nil {
		return Response{}, err
	}

	res := Response{
		ClassTotals:    AggregateClassTotals(classes, records),
		MissingByAdmin: DetectMissing(admins, slots, classes, records),
		Records:        records,
		SlotCount:      len(slots),
	}
	if res.MissingByAdmin == nil {
		res.MissingByAdmin = []MissingGroup{}
	}
	if res.Records == nil {
		res.Records = []RecordInfo{}
	}
	return res, nil
}
