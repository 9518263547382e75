package usecase

import (
	"context"
	"io"
)

// Row outcome statuses.
const (
	ImportStatusCreated = "created"
	ImportStatusUpdated = "updated"
	ImportStatusFailed  = "failed"
)

// ImportRowResult is the outcome of one CSV data row. RowNumber counts the header as row 1.
type ImportRowResult struct {
	RowNumber int    `json:"row_number"`
	StoreID   string `json:"store_id"`
	Status    string `json:"status"`
	Error     string `json:"error,omitempty"`
}

// ImportReport aggregates every row outcome of an import.
type ImportReport struct {
	TotalRows int               `json:"total_rows"`
	Created   int               `json:"created"`
	Updated   int               `json:"updated"`
	Failed    int               `json:"failed"`
	Results   []ImportRowResult `json:"results"`
}

// ImportUsecase bulk upserts stores from CSV.
type ImportUsecase interface {
	// Import processes every row of the CSV in r. Header-level problems abort the
	// import with an error; row-level problems are reported per row.
	Import(ctx context.Context, r io.Reader) (*ImportReport, error)
}

// Add records a row outcome and updates the totals.
func (r *ImportReport) Add(result ImportRowResult) {
	r.TotalRows++
	switch result.Status {
	case ImportStatusCreated:
		r.Created++
	case ImportStatusUpdated:
		r.Updated++
	default:
		r.Failed++
	}
	r.Results = append(r.Results, result)
}
