package components

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLiteralWithType(t *testing.T) {
	line := `<http://www.wikidata.org/entity/Q1644> <http://www.wikidata.org/prop/direct/P2043> "+1094.26"^^<http://www.w3.org/2001/XMLSchema#decimal> .`
	statement, err := ParseStatement(1, line)
	require.NoError(t, err)
	assert.Equal(t, Statement{
		Subject:   NewIRISubject("http://www.wikidata.org/entity/Q1644"),
		Predicate: "http://www.wikidata.org/prop/direct/P2043",
		Object:    NewLiteralObject("+1094.26", TypeExtra("http://www.w3.org/2001/XMLSchema#decimal")),
	}, statement)
}

func TestParseLiteralWithLang(t *testing.T) {
	line := `<http://www.wikidata.org/entity/Q177> <http://schema.org/name> "pizza"@en .`
	statement, err := ParseStatement(1, line)
	require.NoError(t, err)
	assert.Equal(t, Statement{
		Subject:   NewIRISubject("http://www.wikidata.org/entity/Q177"),
		Predicate: "http://schema.org/name",
		Object:    NewLiteralObject("pizza", LangExtra("en")),
	}, statement)
}

func TestParseLiteralWithSubtaggedLang(t *testing.T) {
	line := `<http://www.wikidata.org/entity/Q177> <http://schema.org/name> "colour"@en-gb .`
	statement, err := ParseStatement(1, line)
	require.NoError(t, err)
	assert.Equal(t, NewLiteralObject("colour", LangExtra("en-gb")), statement.Object)
}

func TestParsePlainLiteral(t *testing.T) {
	line := `<http://www.wikidata.org/entity/Q177> <http://www.wikidata.org/prop/direct/P373> "Pizzas" .`
	statement, err := ParseStatement(1, line)
	require.NoError(t, err)
	assert.Equal(t, NewLiteralObject("Pizzas", NoExtra()), statement.Object)
}

func TestParseBlankSubject(t *testing.T) {
	statement, err := ParseStatement(1, `_:foo <bar> <baz>`)
	require.NoError(t, err)
	assert.Equal(t, Statement{
		Subject:   NewBlankSubject("foo"),
		Predicate: "bar",
		Object:    NewIRIObject("baz"),
	}, statement)
}

func TestParseBlankObject(t *testing.T) {
	statement, err := ParseStatement(1, `<foo> <bar> _:baz`)
	require.NoError(t, err)
	assert.Equal(t, Statement{
		Subject:   NewIRISubject("foo"),
		Predicate: "bar",
		Object:    NewBlankObject("baz"),
	}, statement)
}

func TestParseWhitespaceTolerance(t *testing.T) {
	statement, err := ParseStatement(1, "  <foo>\t<bar>   \"x\"@en .  ")
	require.NoError(t, err)
	assert.Equal(t, NewIRISubject("foo"), statement.Subject)
	assert.Equal(t, NewLiteralObject("x", LangExtra("en")), statement.Object)
}

// The grammar takes the first match and ignores whatever follows, including
// the terminating period and any trailing junk.
func TestParseIgnoresTrailingContent(t *testing.T) {
	statement, err := ParseStatement(1, `<foo> <bar> "v" extra garbage`)
	require.NoError(t, err)
	assert.Equal(t, NewLiteralObject("v", NoExtra()), statement.Object)

	// An @ that does not form a valid language tag is trailing content too.
	statement, err = ParseStatement(1, `<foo> <bar> "v"@1 .`)
	require.NoError(t, err)
	assert.Equal(t, NewLiteralObject("v", NoExtra()), statement.Object)
}

// An empty IRI <> participates in the match with an empty value; the parser
// must not confuse it with a capture group that did not match at all.
func TestParseEmptyIRI(t *testing.T) {
	statement, err := ParseStatement(1, `<> <> <>`)
	require.NoError(t, err)
	assert.Equal(t, NewIRISubject(""), statement.Subject)
	assert.Equal(t, "", statement.Predicate)
	assert.Equal(t, NewIRIObject(""), statement.Object)
}

func TestParseIsDeterministic(t *testing.T) {
	line := `<http://www.wikidata.org/entity/Q177> <http://schema.org/name> "pizza"@en .`
	first, err := ParseStatement(1, line)
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		again, err := ParseStatement(1, line)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestParseInvalidLines(t *testing.T) {
	for _, line := range []string{
		"",
		"not a statement",
		"<subject only>",
		"<s> <p>",
		`<s> <p> "unterminated`,
		`_: <p> <o>`,
		`<s> _:blankpredicate <o>`,
	} {
		_, err := ParseStatement(42, line)
		require.Error(t, err, "line %q", line)
		assert.Contains(t, err.Error(), "invalid line 42")
	}
}

func TestParseErrorCarriesOffendingText(t *testing.T) {
	_, err := ParseStatement(7, "bogus line")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid line 7")
	assert.Contains(t, err.Error(), `"bogus line"`)
}
