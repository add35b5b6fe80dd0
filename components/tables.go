package components

import (
	_ "embed"
	"strings"
)

// --------------------------------------------------------------------------------
// Reference tables
// --------------------------------------------------------------------------------

const (
	// EntityPrefix is the IRI prefix of entity subjects; the entity
	// identifier is the suffix after it.
	EntityPrefix = "http://www.wikidata.org/entity/"

	// DirectPropertyPrefix marks truthy statement predicates, the ones that
	// count toward an entity's statement total.
	DirectPropertyPrefix = "http://www.wikidata.org/prop/direct/"

	directNormalizedPropertyPrefix = "http://www.wikidata.org/prop/direct-normalized/"

	ignoredSubjectPrefix = "https://www.wikidata.org/wiki/Special:EntityData"

	wktLiteralType = "http://www.opengis.net/ont/geosparql#wktLiteral"
)

//go:embed data/properties
var propertiesData string

//go:embed data/identifier-properties
var identifierPropertiesData string

//go:embed data/languages
var languagesData string

//go:embed data/labels
var labelsData string

// ReferenceTables holds the four immutable sets consulted per statement.
// Built once at startup; read-only afterwards, so it is safe to share across
// workers without synchronization.
type ReferenceTables struct {
	ExcludedPredicates   map[string]bool
	IdentifierPredicates map[string]bool
	Languages            map[string]bool
	LabelPredicates      map[string]bool
}

// NewReferenceTables builds the reference tables from the bundled data
// files. Each identifier property number expands into its direct and
// direct-normalized predicate IRIs.
func NewReferenceTables() *ReferenceTables {
	tables := &ReferenceTables{
		ExcludedPredicates:   lineSet(propertiesData),
		IdentifierPredicates: make(map[string]bool),
		Languages:            lineSet(languagesData),
		LabelPredicates:      lineSet(labelsData),
	}
	for id := range lineSet(identifierPropertiesData) {
		tables.IdentifierPredicates[DirectPropertyPrefix+"P"+id] = true
		tables.IdentifierPredicates[directNormalizedPropertyPrefix+"P"+id] = true
	}
	return tables
}

// lineSet reads one entry per line, skipping blank lines and # comments.
func lineSet(data string) map[string]bool {
	set := make(map[string]bool)
	for _, line := range strings.Split(data, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		set[line] = true
	}
	return set
}
