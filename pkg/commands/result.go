package commands

// ResultType tags a command result.
type ResultType string

const (
	TypeText  ResultType = "text"
	TypeHTML  ResultType = "html"
	TypeRaw   ResultType = "raw"
	TypeError ResultType = "error"
)

// Meta refines a raw result.
type Meta struct {
	RequiresPaging bool
	// ContentType is "markdown" or "text"; empty defers to the command policy.
	ContentType string
	Title       string
}

type Result struct {
	Type    ResultType
	Content string
	Meta    *Meta
}

func Text(content string) *Result {
	return &Result{Type: TypeText, Content: content}
}

func HTML(content string) *Result {
	return &Result{Type: TypeHTML, Content: content}
}

func Raw(content string, meta Meta) *Result {
	return &Result{Type: TypeRaw, Content: content, Meta: &meta}
}

// Error is an invalid-input result. It renders as one line in the error style.
func Error(content string) *Result {
	return &Result{Type: TypeError, Content: content}
}

// NotFound is the result for a name missing from the registry.
func NotFound(name string) *Result {
	return Text(name + ": command not found")
}
