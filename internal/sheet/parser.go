package sheet

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/faizmokh/hari/internal/config"
	"github.com/faizmokh/hari/internal/intervals"
)

var timeLayouts = []string{"15:04:05", "15:04", "3:04:05 PM", "3:04 PM"}

// Parser turns raw spreadsheet rows into events keyed by entry id.
type Parser struct {
	cfg     config.SheetConfig
	entryRe *regexp.Regexp
}

// NewParser compiles the entry pattern from cfg.
func NewParser(cfg config.SheetConfig) (*Parser, error) {
	re, err := regexp.Compile(cfg.EntryPattern)
	if err != nil {
		return nil, fmt.Errorf("compile entry pattern: %w", err)
	}
	if re.NumSubexp() != 1 {
		return nil, fmt.Errorf("entry pattern %q needs exactly one capture group", cfg.EntryPattern)
	}
	return &Parser{cfg: cfg, entryRe: re}, nil
}

// EntryID extracts the entry id from free text.
func (p *Parser) EntryID(text string) (string, bool) {
	matches := p.entryRe.FindStringSubmatch(text)
	if matches == nil {
		return "", false
	}
	return matches[1], true
}

// ParseRow reads one data row. line is the 1-based row number in the sheet,
// used as the record id when the id column is blank. ok is false for rows
// without an entry id; err reports a malformed date or time on a row that
// does belong to an entry.
func (p *Parser) ParseRow(line int, cells []string) (entryID string, event intervals.RawEvent, ok bool, err error) {
	cols := p.cfg.Columns
	text := cell(cells, cols.Text)
	entryID, ok = p.EntryID(text)
	if !ok {
		return "", intervals.RawEvent{}, false, nil
	}

	id := cell(cells, cols.ID)
	if id == "" {
		id = strconv.Itoa(line)
	}

	date, err := p.parseDate(cell(cells, cols.Date))
	if err != nil {
		return entryID, intervals.RawEvent{}, true, fmt.Errorf("row %d: %w", line, err)
	}
	clock, err := parseClock(cell(cells, cols.Time))
	if err != nil {
		return entryID, intervals.RawEvent{}, true, fmt.Errorf("row %d: %w", line, err)
	}

	return entryID, intervals.RawEvent{
		ID:   id,
		Date: date,
		Time: clock,
		Text: text,
	}, true, nil
}

// maxExcelSerial is 9999-12-31, the last day Excel can represent.
const maxExcelSerial = 2958465

func (p *Parser) parseDate(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, fmt.Errorf("%w: empty date", intervals.ErrMalformedDate)
	}
	for _, layout := range p.cfg.DateLayouts {
		if parsed, err := time.Parse(layout, value); err == nil {
			return intervals.Day(parsed), nil
		}
	}
	// xlsx date cells are read raw, as serials. Anything outside the serial
	// range (such as 20240410) is a mistyped date, not a serial.
	if serial, err := strconv.ParseFloat(value, 64); err == nil && serial > 0 && serial <= maxExcelSerial {
		parsed, err := excelize.ExcelDateToTime(serial, false)
		if err == nil {
			return intervals.Day(parsed), nil
		}
	}
	return time.Time{}, fmt.Errorf("%w %q (expected one of %s)", intervals.ErrMalformedDate,
		value, strings.Join(p.cfg.DateLayouts, ", "))
}

// parseClock returns the offset from midnight. A blank cell sorts as midnight.
func parseClock(value string) (time.Duration, error) {
	if value == "" {
		return 0, nil
	}
	for _, layout := range timeLayouts {
		if parsed, err := time.Parse(layout, value); err == nil {
			return time.Duration(parsed.Hour())*time.Hour +
				time.Duration(parsed.Minute())*time.Minute +
				time.Duration(parsed.Second())*time.Second, nil
		}
	}
	// Excel stores times as a fraction of a day.
	if fraction, err := strconv.ParseFloat(value, 64); err == nil && fraction >= 0 && fraction < 1 {
		seconds := math.Round(fraction * 24 * 60 * 60)
		return time.Duration(seconds) * time.Second, nil
	}
	return 0, fmt.Errorf("%w: time %q (expected HH:MM[:SS])", intervals.ErrMalformedDate, value)
}

func cell(cells []string, idx int) string {
	if idx < 0 || idx >= len(cells) {
		return ""
	}
	return strings.TrimSpace(cells[idx])
}
