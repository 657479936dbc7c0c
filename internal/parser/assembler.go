package parser

import "github.com/dsn-tools/dsnsplit/internal/models"

// Assemble reconstructs a self-contained monthly declaration from the shared
// header block and one record block.
//
// Content is header + separator + record, unchanged decoded text; re-encoding
// happens only at archive time. The organization key is the establishment
// identifier directly concatenated with the activity code, treated as opaque.
// Empty extracted fields propagate into the key unreported.
func Assemble(header, separator, record string, f Fields) models.Declaration {
	return models.Declaration{
		OrganizationKey: f.Establishment + f.Activity,
		PeriodKey:       FormatPeriod(f.PayPeriod),
		Content:         header + separator + record,
	}
}
