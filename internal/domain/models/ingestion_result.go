package models

import (
	"fmt"
	"strings"
)

// IngestionResult is the accounting for one ingestion run across a set of
// tickers. The run always completes: per-ticker failures land in Errors as
// strings instead of aborting the remaining tickers.
//
// Success is true iff Errors is empty. TickersProcessed counts tickers that
// completed without error.
type IngestionResult struct {
	Success          bool     `json:"success"`
	Message          string   `json:"message"`
	RecordsCreated   int      `json:"records_created"`
	RecordsUpdated   int      `json:"records_updated"`
	TickersProcessed int      `json:"tickers_processed"`
	Errors           []string `json:"errors"`
}

// Finalize derives Success and Message from the accumulated Errors.
// Errors are enumerated in ticker-processing order, semicolon-joined.
func (r *IngestionResult) Finalize() {
	r.Success = len(r.Errors) == 0
	if r.Success {
		r.Message = "Data fetched successfully"
		return
	}
	r.Message = fmt.Sprintf("Completed with %d error(s): %s", len(r.Errors), strings.Join(r.Errors, "; "))
}
