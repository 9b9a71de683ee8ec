package model

// CurrentVersion is the schema version written with every saved document.
// Documents saved before versioning existed decode with Version 0.
const CurrentVersion = 1

// AppData is the whole persisted document. Values are treated as immutable
// snapshots: the With*/Without* methods return a new document and leave the
// receiver untouched.
type AppData struct {
	Version int                    `json:"version"`
	Daily   map[string]DailyEntry  `json:"daily"`
	Weekly  map[string]WeeklyEntry `json:"weekly"`
}

// NewAppData returns an empty document at the current version
func NewAppData() AppData {
	return AppData{
		Version: CurrentVersion,
		Daily:   make(map[string]DailyEntry),
		Weekly:  make(map[string]WeeklyEntry),
	}
}

// Normalize upgrades older documents and replaces nil maps with empty ones
func (d AppData) Normalize() AppData {
	if d.Version < CurrentVersion {
		d.Version = CurrentVersion
	}
	if d.Daily == nil {
		d.Daily = make(map[string]DailyEntry)
	}
	if d.Weekly == nil {
		d.Weekly = make(map[string]WeeklyEntry)
	}
	return d
}

// HasDaily reports whether an entry exists for date
func (d AppData) HasDaily(date string) bool {
	_, ok := d.Daily[date]
	return ok
}

// WithDaily returns a copy of the document with the entry for date replaced
func (d AppData) WithDaily(date string, entry DailyEntry) AppData {
	out := d.copyMaps()
	out.Daily[date] = entry.Clone()
	return out
}

// WithoutDaily returns a copy of the document without the entry for date
func (d AppData) WithoutDaily(date string) AppData {
	out := d.copyMaps()
	delete(out.Daily, date)
	return out
}

// WithWeekly returns a copy of the document with the entry for weekStart replaced
func (d AppData) WithWeekly(weekStart string, entry WeeklyEntry) AppData {
	out := d.copyMaps()
	out.Weekly[weekStart] = entry.Clone()
	return out
}

// WithoutWeekly returns a copy of the document without the entry for weekStart
func (d AppData) WithoutWeekly(weekStart string) AppData {
	out := d.copyMaps()
	delete(out.Weekly, weekStart)
	return out
}

func (d AppData) copyMaps() AppData {
	out := AppData{
		Version: d.Version,
		Daily:   make(map[string]DailyEntry, len(d.Daily)+1),
		Weekly:  make(map[string]WeeklyEntry, len(d.Weekly)+1),
	}
	if out.Version == 0 {
		out.Version = CurrentVersion
	}
	for k, v := range d.Daily {
		out.Daily[k] = v
	}
	for k, v := range d.Weekly {
		out.Weekly[k] = v
	}
	return out
}
