package service

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/pkordes/pool-logbook/backend/internal/domain"
	"github.com/pkordes/pool-logbook/backend/internal/repo"
)

// CSVHeaders are the column names written as the first row of a CSV export.
var CSVHeaders = []string{
	"pool_id", "owner_name", "pool_type", "length", "width", "depth",
	"water_volume", "next_maintenance",
	"log_id", "log_date", "pH_level", "chlorine_level", "log_notes",
}

// Archiver stores an export snapshot under key and returns where it landed.
type Archiver interface {
	Upload(ctx context.Context, key string, body []byte, contentType string) (string, error)
}

// ArchiveResult describes one uploaded export snapshot.
type ArchiveResult struct {
	Key      string `json:"key"`
	Location string `json:"location"`
	Rows     int    `json:"rows"`
}

// ExportService assembles a full flat export of all pools and their logbooks.
type ExportService struct {
	pools    repo.PoolRepo
	archiver Archiver
	now      func() time.Time
}

// NewExportService constructs an ExportService. archiver may be nil, in which
// case Archive reports domain.ErrNotFound.
func NewExportService(pools repo.PoolRepo, archiver Archiver) *ExportService {
	return &ExportService{pools: pools, archiver: archiver, now: time.Now}
}

// Export returns one ExportRow per logbook entry across all pools.
// Pools with an empty logbook contribute one row with empty log fields.
func (s *ExportService) Export(ctx context.Context) ([]domain.ExportRow, error) {
	pools, err := s.pools.ReadAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.ExportService.Export: %w", err)
	}

	rows := make([]domain.ExportRow, 0, len(pools))
	for _, p := range pools {
		base := domain.ExportRow{
			PoolID:          p.ID,
			OwnerName:       p.OwnerName,
			PoolType:        p.Type,
			Length:          p.Length,
			Width:           p.Width,
			Depth:           p.Depth,
			WaterVolume:     p.WaterVolume,
			NextMaintenance: p.NextMaintenance,
		}
		if len(p.Logbook) == 0 {
			rows = append(rows, base)
			continue
		}
		for _, l := range p.Logbook {
			row := base
			ph, cl := l.PHLevel, l.ChlorineLevel
			row.LogID = l.ID
			row.LogDate = l.Date
			row.PHLevel = &ph
			row.ChlorineLevel = &cl
			row.LogNotes = l.Notes
			rows = append(rows, row)
		}
	}
	return rows, nil
}

// Archive renders the export as CSV and uploads it through the Archiver.
func (s *ExportService) Archive(ctx context.Context) (ArchiveResult, error) {
	if s.archiver == nil {
		return ArchiveResult{}, fmt.Errorf("service.ExportService.Archive: archiving is not configured: %w", domain.ErrNotFound)
	}
	rows, err := s.Export(ctx)
	if err != nil {
		return ArchiveResult{}, fmt.Errorf("service.ExportService.Archive: %w", err)
	}

	var buf bytes.Buffer
	if err := WriteCSV(&buf, rows); err != nil {
		return ArchiveResult{}, fmt.Errorf("service.ExportService.Archive: %w", err)
	}

	key := "pools-" + s.now().UTC().Format("20060102T150405Z") + ".csv"
	location, err := s.archiver.Upload(ctx, key, buf.Bytes(), "text/csv")
	if err != nil {
		return ArchiveResult{}, fmt.Errorf("service.ExportService.Archive: %w", err)
	}
	return ArchiveResult{Key: key, Location: location, Rows: len(rows)}, nil
}

// WriteCSV writes the header row followed by one record per export row.
func WriteCSV(w io.Writer, rows []domain.ExportRow) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(CSVHeaders); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, r := range rows {
		if err := cw.Write(csvRecord(r)); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// csvRecord encodes a row as strings. Nil readings become empty cells.
func csvRecord(r domain.ExportRow) []string {
	return []string{
		r.PoolID,
		r.OwnerName,
		r.PoolType,
		formatFloat(r.Length),
		formatFloat(r.Width),
		formatFloat(r.Depth),
		formatFloat(r.WaterVolume),
		r.NextMaintenance,
		r.LogID,
		r.LogDate,
		formatOptionalFloat(r.PHLevel),
		formatOptionalFloat(r.ChlorineLevel),
		r.LogNotes,
	}
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func formatOptionalFloat(f *float64) string {
	if f == nil {
		return ""
	}
	return formatFloat(*f)
}
