package sheet

import "github.com/faizmokh/hari/internal/intervals"

// Entity holds every record attributed to one entry id.
type Entity struct {
	ID     string
	Events []intervals.RawEvent
	// Err is set when one of the entity's rows could not be parsed; the
	// entity's report must not be computed.
	Err error
}

// Workbook is the parsed content of one input file.
type Workbook struct {
	Path     string
	Entities []Entity
	// Rows counts data rows read; Skipped counts rows without an entry id.
	Rows    int
	Skipped int
}

// Entity returns the entity with the given id.
func (w Workbook) Entity(id string) (Entity, bool) {
	for _, e := range w.Entities {
		if e.ID == id {
			return e, true
		}
	}
	return Entity{}, false
}
