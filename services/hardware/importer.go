package hardwareservice

import (
	"context"
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"inventory/models"
)

// RowIssue points at a spreadsheet row: the header is row 1, so the first
// data row is row 2.
type RowIssue struct {
	Row    int    `json:"row"`
	Serial string `json:"serial,omitempty"`
	Error  string `json:"error,omitempty"`
}

type ImportReport struct {
	InsertedCount         int        `json:"insertedCount"`
	SkippedDuplicateCount int        `json:"skippedDuplicateCount"`
	SkippedInvalidCount   int        `json:"skippedInvalidCount"`
	Duplicates            []RowIssue `json:"duplicates"`
	Invalid               []RowIssue `json:"invalid"`
	PerRowErrors          []RowIssue `json:"perRowErrors"`
	Warnings              []RowIssue `json:"warnings,omitempty"`
}

func newImportReport() ImportReport {
	return ImportReport{
		Duplicates:   []RowIssue{},
		Invalid:      []RowIssue{},
		PerRowErrors: []RowIssue{},
	}
}

type stagedRow struct {
	row    int
	record models.HardwareRecord
}

// ImportRows turns every non-blank row into a single-item record, skips the
// invalid ones and any serial already stored or seen earlier in the batch,
// then inserts the rest independently of each other.
func (s *hardwareService) ImportRows(ctx context.Context, rows []map[string]string, creator models.Identity) (ImportReport, error) {
	logger := s.logger.GetLogger()
	report := newImportReport()

	candidates := make([]stagedRow, 0, len(rows))
	for i, raw := range rows {
		rowNum := i + 2
		req, ok := RowToRequest(raw)
		if !ok {
			continue
		}
		rec := UnflattenCreate(req, creator.UserID)
		if rec.LocationName == "" && !creator.IsAdmin() {
			rec.LocationName = strings.TrimSpace(creator.Location)
		}
		err := Validate(rec, s.policy)
		if err == nil {
			err = checkLocationScope(creator, rec.LocationName)
		}
		if err != nil {
			report.SkippedInvalidCount++
			report.Invalid = append(report.Invalid, RowIssue{Row: rowNum, Serial: req.Items[0].SerialNumber, Error: err.Error()})
			importRows.WithLabelValues("invalid").Inc()
			continue
		}
		candidates = append(candidates, stagedRow{row: rowNum, record: rec})
	}

	serials := make([]string, 0, len(candidates))
	for _, c := range candidates {
		serials = append(serials, c.record.Items[0].SerialNumber)
	}
	owners, err := s.repo.FindSerialOwners(ctx, serials)
	if err != nil {
		logger.Error("import aborted: serial lookup failed", zap.Error(err))
		return report, persistenceErr("look up serial numbers", err)
	}
	stored := make(map[string]struct{}, len(owners))
	for _, owner := range owners {
		stored[owner.Serial] = struct{}{}
	}

	staged := make([]stagedRow, 0, len(candidates))
	inFlight := make(map[string]struct{}, len(candidates))
	for _, c := range candidates {
		serial := c.record.Items[0].SerialNumber
		_, inStore := stored[serial]
		_, inBatch := inFlight[serial]
		if inStore || inBatch {
			report.SkippedDuplicateCount++
			report.Duplicates = append(report.Duplicates, RowIssue{Row: c.row, Serial: serial})
			importRows.WithLabelValues("duplicate").Inc()
			continue
		}
		inFlight[serial] = struct{}{}

		var warnings []string
		c.record.AllocatedEmployee, warnings = s.resolveAllocation(ctx, c.record.AllocatedEmployee)
		for _, w := range warnings {
			report.Warnings = append(report.Warnings, RowIssue{Row: c.row, Serial: serial, Error: w})
		}
		staged = append(staged, c)
	}

	if len(staged) == 0 {
		logger.Info("hardware import finished with nothing to insert",
			zap.Int("duplicates", report.SkippedDuplicateCount),
			zap.Int("invalid", report.SkippedInvalidCount))
		return report, nil
	}

	recs := make([]models.HardwareRecord, 0, len(staged))
	for _, c := range staged {
		recs = append(recs, c.record)
	}
	errs := s.repo.BulkInsert(ctx, recs)

	locations := make([]string, 0, len(staged))
	for i, c := range staged {
		serial := c.record.Items[0].SerialNumber
		var insertErr error
		if i < len(errs) {
			insertErr = errs[i]
		}

		var dup *DuplicateSerialError
		switch {
		case insertErr == nil:
			report.InsertedCount++
			locations = append(locations, c.record.LocationName)
			importRows.WithLabelValues("inserted").Inc()
		case errors.As(insertErr, &dup):
			report.SkippedDuplicateCount++
			report.Duplicates = append(report.Duplicates, RowIssue{Row: c.row, Serial: serial})
			importRows.WithLabelValues("duplicate").Inc()
		default:
			report.PerRowErrors = append(report.PerRowErrors, RowIssue{Row: c.row, Serial: serial, Error: insertErr.Error()})
			importRows.WithLabelValues("error").Inc()
			logger.Error("failed to insert imported row", zap.Int("row", c.row), zap.String("serial", serial), zap.Error(insertErr))
		}
	}
	s.invalidate(ctx, locations...)

	logger.Info("hardware import finished",
		zap.Int("inserted", report.InsertedCount),
		zap.Int("duplicates", report.SkippedDuplicateCount),
		zap.Int("invalid", report.SkippedInvalidCount),
		zap.Int("errors", len(report.PerRowErrors)))
	return report, nil
}
