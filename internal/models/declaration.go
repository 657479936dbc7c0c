package models

// Declaration represents one organization-month extracted from a multi-organization
// declaration file: the original header block, the record separator, and one record
// block, kept as decoded text until archive time.
type Declaration struct {
	// OrganizationKey is the establishment identifier concatenated with the
	// activity code. Opaque: not validated for length or charset.
	OrganizationKey string `json:"organizationKey"`
	// PeriodKey is the pay period reformatted as yyyy-mm-dd.
	PeriodKey string `json:"periodKey"`
	// Content is header + separator + record, ready to re-encode and persist.
	Content string `json:"-"`
	// SourceFile is the name of the input file this record came from.
	SourceFile string `json:"sourceFile,omitempty"`
}

// EntryName returns the archive entry name for this declaration.
func (d Declaration) EntryName() string {
	return d.OrganizationKey + "_" + d.PeriodKey + ".dsn"
}

// ParsedFile represents the result of parsing one input file.
type ParsedFile struct {
	Declarations  []Declaration
	Organizations map[string]struct{}
	Periods       map[string]struct{}
}

// NewParsedFile creates a new empty ParsedFile.
func NewParsedFile() *ParsedFile {
	return &ParsedFile{
		Declarations:  make([]Declaration, 0),
		Organizations: make(map[string]struct{}),
		Periods:       make(map[string]struct{}),
	}
}

// Add appends a declaration and tracks its organization and period.
func (p *ParsedFile) Add(d Declaration) {
	p.Declarations = append(p.Declarations, d)
	p.Organizations[d.OrganizationKey] = struct{}{}
	p.Periods[d.PeriodKey] = struct{}{}
}
