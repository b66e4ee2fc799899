package appointment

import (
	"context"

	domain "github.com/prem7151/Kashtex-Agency/internal/domain/appointment"
)

type Availability struct {
	Date           string   `json:"date"`
	AvailableSlots []string `json:"availableSlots"`
	BookedTimes    []string `json:"bookedTimes"`
}

type GetAvailability struct {
	repo    domain.Repository
	catalog domain.Catalog
}

func NewGetAvailability(repo domain.Repository, catalog domain.Catalog) *GetAvailability {
	if len(catalog) == 0 {
		catalog = domain.DefaultCatalog
	}
	return &GetAvailability{repo: repo, catalog: catalog}
}

// Execute is a pure read. A date that never matches anything (wrong format
// included) simply yields the full catalog or a datastore error; no date
// parsing happens here.
func (uc *GetAvailability) Execute(
	ctx context.Context,
	date string,
) (*Availability, error) {

	booked, err := uc.repo.ListBookedTimes(ctx, date)
	if err != nil {
		return nil, err
	}

	return &Availability{
		Date:           date,
		AvailableSlots: uc.catalog.Available(booked),
		BookedTimes:    booked,
	}, nil
}
