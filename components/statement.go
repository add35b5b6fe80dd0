package components

// --------------------------------------------------------------------------------
// Statement and its tagged variant parts
// --------------------------------------------------------------------------------

// SubjectKind tags the variant held by a Subject.
type SubjectKind int

const (
	SubjectIRI SubjectKind = iota
	SubjectBlank
)

// Subject is either an IRI or a blank node label.
type Subject struct {
	Kind  SubjectKind
	Value string
}

// ObjectKind tags the variant held by an Object.
type ObjectKind int

const (
	ObjectIRI ObjectKind = iota
	ObjectBlank
	ObjectLiteral
)

// ExtraKind tags the optional annotation of a literal object.
type ExtraKind int

const (
	ExtraNone ExtraKind = iota
	ExtraLang
	ExtraType
)

// Extra is the optional language tag or datatype IRI of a literal. Value is
// only meaningful when Kind is not ExtraNone.
type Extra struct {
	Kind  ExtraKind
	Value string
}

// Object is an IRI, a blank node label, or a literal with an optional Extra.
type Object struct {
	Kind  ObjectKind
	Value string
	Extra Extra
}

// Statement is one parsed subject-predicate-object line. All string fields
// are substrings of the line the statement was parsed from, so a Statement
// must not outlive that line.
type Statement struct {
	Subject   Subject
	Predicate string
	Object    Object
}

func NewIRISubject(iri string) Subject {
	return Subject{Kind: SubjectIRI, Value: iri}
}

func NewBlankSubject(label string) Subject {
	return Subject{Kind: SubjectBlank, Value: label}
}

func NewIRIObject(iri string) Object {
	return Object{Kind: ObjectIRI, Value: iri}
}

func NewBlankObject(label string) Object {
	return Object{Kind: ObjectBlank, Value: label}
}

func NewLiteralObject(value string, extra Extra) Object {
	return Object{Kind: ObjectLiteral, Value: value, Extra: extra}
}

func NoExtra() Extra {
	return Extra{Kind: ExtraNone}
}

func LangExtra(tag string) Extra {
	return Extra{Kind: ExtraLang, Value: tag}
}

func TypeExtra(iri string) Extra {
	return Extra{Kind: ExtraType, Value: iri}
}
