package parser

import "github.com/dsn-tools/dsnsplit/internal/models"

// Group partitions declarations by organization key, preserving the relative
// order in which they were produced. The returned key slice lists the
// organizations in first-appearance order so archives are written
// deterministically.
//
// No deduplication is performed: two declarations with the same organization
// and period (overlapping input files) are both kept and become same-named
// entries in the archive, where the later one wins on extraction.
func Group(decls []models.Declaration) (map[string][]models.Declaration, []string) {
	groups := make(map[string][]models.Declaration, len(decls))
	order := make([]string, 0, len(decls))

	for _, d := range decls {
		if _, ok := groups[d.OrganizationKey]; !ok {
			order = append(order, d.OrganizationKey)
		}
		groups[d.OrganizationKey] = append(groups[d.OrganizationKey], d)
	}

	return groups, order
}
