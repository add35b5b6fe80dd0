package components

import (
	str "strings"
)

// --------------------------------------------------------------------------------
// Classifier / extractor
// --------------------------------------------------------------------------------

// Acceptable reports whether a statement belongs in the filtered output.
func (t *ReferenceTables) Acceptable(statement Statement) bool {
	if t.ExcludedPredicates[statement.Predicate] || t.IdentifierPredicates[statement.Predicate] {
		return false
	}

	switch statement.Subject.Kind {
	case SubjectBlank:
		return false
	case SubjectIRI:
		if str.HasPrefix(statement.Subject.Value, ignoredSubjectPrefix) {
			return false
		}
	}

	switch statement.Object.Kind {
	case ObjectBlank:
		return false
	case ObjectLiteral:
		switch statement.Object.Extra.Kind {
		case ExtraLang:
			if !t.Languages[statement.Object.Extra.Value] {
				return false
			}
		case ExtraType:
			// non-Earth geo coordinates are not supported by some triple stores
			if statement.Object.Extra.Value == wktLiteralType && str.HasPrefix(statement.Object.Value, "<") {
				return false
			}
		}
	}

	return true
}

// EntityID derives the entity identifier from an IRI subject with the entity
// prefix. Blank subjects and foreign IRIs have no entity identifier.
func EntityID(statement Statement) (string, bool) {
	if statement.Subject.Kind != SubjectIRI {
		return "", false
	}
	if !str.HasPrefix(statement.Subject.Value, EntityPrefix) {
		return "", false
	}
	id := statement.Subject.Value[len(EntityPrefix):]
	if id == "" {
		return "", false
	}
	return id, true
}

// Label extracts an (entity identifier, label) pair from a statement whose
// predicate is label-bearing, whose object is a literal in an accepted
// language, and whose subject is an entity. The label is returned as it
// appears on the line; callers unescape it before emission.
func (t *ReferenceTables) Label(statement Statement) (string, string, bool) {
	if !t.LabelPredicates[statement.Predicate] {
		return "", "", false
	}
	if statement.Object.Kind != ObjectLiteral || statement.Object.Extra.Kind != ExtraLang {
		return "", "", false
	}
	if !t.Languages[statement.Object.Extra.Value] {
		return "", "", false
	}
	id, ok := EntityID(statement)
	if !ok {
		return "", "", false
	}
	return id, statement.Object.Value, true
}

// CountsTowardStatements reports the entity whose statement total the
// statement increments: direct-property predicate, entity subject.
func CountsTowardStatements(statement Statement) (string, bool) {
	if !str.HasPrefix(statement.Predicate, DirectPropertyPrefix) {
		return "", false
	}
	return EntityID(statement)
}
