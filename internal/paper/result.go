package paper

// ResultKind identifies which shape an external content-shaping result took.
type ResultKind int

const (
	// KindMissing means the external call produced nothing usable.
	KindMissing ResultKind = iota
	// KindFreeText means the call returned an unstructured layout blob.
	KindFreeText
	// KindStructured means the call echoed a title and sections.
	KindStructured
)

func (k ResultKind) String() string {
	switch k {
	case KindFreeText:
		return "free-text"
	case KindStructured:
		return "structured"
	default:
		return "missing"
	}
}

// Result is the outcome of the content-shaping call. Exactly one of the
// three shapes is represented; use Kind to switch on it.
type Result struct {
	kind     ResultKind
	text     string
	title    string
	sections []Section
}

// Missing returns a Result carrying nothing.
func Missing() Result {
	return Result{kind: KindMissing}
}

// FreeText returns a Result carrying an unstructured layout string.
func FreeText(text string) Result {
	return Result{kind: KindFreeText, text: text}
}

// Structured returns a Result carrying a title and sections. Either may be
// empty; the normalizer decides what to do about that.
func Structured(title string, sections []Section) Result {
	return Result{kind: KindStructured, title: title, sections: CloneSections(sections)}
}

func (r Result) Kind() ResultKind { return r.kind }

// Text returns the free-text payload. Empty unless Kind is KindFreeText.
func (r Result) Text() string { return r.text }

// Title returns the structured title. Empty unless Kind is KindStructured.
func (r Result) Title() string { return r.title }

// Sections returns a copy of the structured sections.
func (r Result) Sections() []Section { return CloneSections(r.sections) }
