package sheet

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/xuri/excelize/v2"

	"github.com/faizmokh/hari/internal/config"
	"github.com/faizmokh/hari/internal/intervals"
)

// Reader loads workbooks and splits their rows per entry id.
type Reader struct {
	cfg    config.SheetConfig
	parser *Parser
	logger *log.Logger
}

// NewReader wires a reader for the configured sheet layout.
func NewReader(cfg config.SheetConfig, logger *log.Logger) (*Reader, error) {
	parser, err := NewParser(cfg)
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	return &Reader{cfg: cfg, parser: parser, logger: logger}, nil
}

// Read opens path (.xlsx or .csv) and returns its entities sorted by id.
func (r *Reader) Read(ctx context.Context, path string) (Workbook, error) {
	if r == nil || r.parser == nil {
		return Workbook{}, errors.New("reader not initialized")
	}

	var (
		rows [][]string
		err  error
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm":
		rows, err = r.readXLSX(path)
	case ".csv":
		rows, err = r.readCSV(path)
	default:
		return Workbook{}, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}
	if err != nil {
		return Workbook{}, err
	}

	wb, err := r.collect(ctx, rows)
	if err != nil {
		return Workbook{}, err
	}
	wb.Path = path

	r.logger.Info("read workbook", "path", path, "rows", wb.Rows, "entries", len(wb.Entities), "skipped", wb.Skipped)
	return wb, nil
}

func (r *Reader) readXLSX(path string) ([][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	name := r.cfg.Name
	if name == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, ErrNoRows
		}
		name = sheets[0]
	} else if idx, err := f.GetSheetIndex(name); err != nil || idx < 0 {
		return nil, fmt.Errorf("%w: %q", ErrSheetNotFound, name)
	}

	// Raw values keep date and time cells as serials and day fractions
	// instead of their locale display format.
	rows, err := f.GetRows(name, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", name, err)
	}
	r.logger.Debug("loaded sheet", "sheet", name, "rows", len(rows))
	return rows, nil
}

func (r *Reader) readCSV(path string) ([][]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	cr := csv.NewReader(file)
	cr.Comma = []rune(r.cfg.CSVComma)[0]
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	rows, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}
	return rows, nil
}

func (r *Reader) collect(ctx context.Context, rows [][]string) (Workbook, error) {
	if len(rows) <= r.cfg.HeaderRows {
		return Workbook{}, ErrNoRows
	}

	var (
		wb    Workbook
		byID  = make(map[string]*Entity)
		order []string
	)
	for i := r.cfg.HeaderRows; i < len(rows); i++ {
		if err := ctx.Err(); err != nil {
			return Workbook{}, err
		}
		if blankRow(rows[i]) {
			continue
		}
		wb.Rows++

		line := i + 1
		entryID, event, ok, err := r.parser.ParseRow(line, rows[i])
		if !ok {
			wb.Skipped++
			r.logger.Debug("row without entry id", "row", line)
			continue
		}

		entity, exists := byID[entryID]
		if !exists {
			entity = &Entity{ID: entryID}
			byID[entryID] = entity
			order = append(order, entryID)
		}
		if err != nil {
			if entity.Err == nil {
				entity.Err = err
			}
			r.logger.Warn("malformed row", "row", line, "entry", entryID, "err", err)
			continue
		}
		entity.Events = append(entity.Events, event)
	}

	slices.SortFunc(order, intervals.CompareIDs)
	wb.Entities = make([]Entity, 0, len(order))
	for _, id := range order {
		wb.Entities = append(wb.Entities, *byID[id])
	}
	return wb, nil
}

func blankRow(cells []string) bool {
	for _, c := range cells {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
