package entities

// Source names, in query order
const (
	SourceWikipedia   = "Wikipedia"
	SourceMedlinePlus = "MedlinePlus"
	SourceFDA         = "FDA"
	SourceDuckDuckGo  = "DuckDuckGo"
)

// Entry pairs a source name with its record
type Entry struct {
	Source string
	Record *Record
}

// DisplaySource returns the record origin when present, the source name otherwise
func (e Entry) DisplaySource() string {
	if e.Record != nil {
		if origin := e.Record.Origin(); origin != "" {
			return origin
		}
	}
	return e.Source
}

// ResultSet maps source names to records while keeping insertion order
type ResultSet struct {
	entries []Entry
}

// NewResultSet creates an empty result set
func NewResultSet() *ResultSet {
	return &ResultSet{}
}

// Add stores a record under a source name. Nil records are ignored and an
// existing source is replaced in place.
func (rs *ResultSet) Add(source string, record *Record) {
	if record == nil {
		return
	}
	for i := range rs.entries {
		if rs.entries[i].Source == source {
			rs.entries[i].Record = record
			return
		}
	}
	rs.entries = append(rs.entries, Entry{Source: source, Record: record})
}

// Get returns the record for a source
func (rs *ResultSet) Get(source string) (*Record, bool) {
	if rs == nil {
		return nil, false
	}
	for _, e := range rs.entries {
		if e.Source == source {
			return e.Record, true
		}
	}
	return nil, false
}

// Len returns the number of sources that answered
func (rs *ResultSet) Len() int {
	if rs == nil {
		return 0
	}
	return len(rs.entries)
}

// IsEmpty reports whether no source answered
func (rs *ResultSet) IsEmpty() bool {
	return rs.Len() == 0
}

// Entries returns the entries in insertion order
func (rs *ResultSet) Entries() []Entry {
	if rs == nil {
		return nil
	}
	out := make([]Entry, len(rs.entries))
	copy(out, rs.entries)
	return out
}

// Sources returns the source names in insertion order
func (rs *ResultSet) Sources() []string {
	if rs == nil {
		return nil
	}
	names := make([]string, 0, len(rs.entries))
	for _, e := range rs.entries {
		names = append(names, e.Source)
	}
	return names
}

// AnyTranslated reports whether at least one record was machine translated
func (rs *ResultSet) AnyTranslated() bool {
	if rs == nil {
		return false
	}
	for _, e := range rs.entries {
		if e.Record.Translated {
			return true
		}
	}
	return false
}
