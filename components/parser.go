package components

import (
	"regexp"

	"github.com/cockroachdb/errors"
)

// --------------------------------------------------------------------------------
// Statement parser
// --------------------------------------------------------------------------------

// statementPattern matches one subject-predicate-object statement at the
// start of a line. Capture groups: 1 subject IRI, 2 subject blank label,
// 3 predicate IRI, 4 object IRI, 5 object blank label, 6 literal value,
// 7 language tag, 8 datatype IRI. Anything after the object (such as the
// terminating period) is ignored.
var statementPattern = regexp.MustCompile(
	`^\s*` +
		`(?:<([^>]*)>|_:(\S+))` + // subject
		`\s*` +
		`<([^>]*)>` + // predicate
		`\s*` +
		`(?:<([^>]*)>|_:(\S+)|"([^"]*)"(?:@([a-zA-Z]+(?:-[a-zA-Z0-9]+)*)|\^\^<([^>]*)>)?)`, // object
)

// ParseStatement parses one raw dump line into a Statement. The line number
// is 1-based and used for diagnostics only. A line that does not match the
// statement grammar is a data-integrity violation in the dump, so the error
// is meant to abort the run, not to be skipped over.
func ParseStatement(number uint64, line string) (Statement, error) {
	match := statementPattern.FindStringSubmatchIndex(line)
	if match == nil {
		return Statement{}, errors.Newf("invalid line %d: %q", number, line)
	}

	// group returns the capture as a substring of line, distinguishing an
	// empty capture (<>) from one that did not participate in the match.
	group := func(i int) (string, bool) {
		if match[2*i] < 0 {
			return "", false
		}
		return line[match[2*i]:match[2*i+1]], true
	}

	var subject Subject
	if iri, ok := group(1); ok {
		subject = NewIRISubject(iri)
	} else if label, ok := group(2); ok {
		subject = NewBlankSubject(label)
	}

	predicate, _ := group(3)

	var object Object
	if iri, ok := group(4); ok {
		object = NewIRIObject(iri)
	} else if label, ok := group(5); ok {
		object = NewBlankObject(label)
	} else {
		value, _ := group(6)
		extra := NoExtra()
		if lang, ok := group(7); ok {
			extra = LangExtra(lang)
		} else if dataType, ok := group(8); ok {
			extra = TypeExtra(dataType)
		}
		object = NewLiteralObject(value, extra)
	}

	return Statement{Subject: subject, Predicate: predicate, Object: object}, nil
}
