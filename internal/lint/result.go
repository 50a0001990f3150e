package lint

// Result is the outcome of checking one line against one dialect.
// A nil Err means the line passed.
type Result struct {
	// Dialect is the name of the dialect the line was checked against
	Dialect string

	// Text is the checked line
	Text string

	// Err is the first failure reported for the line, if any
	Err error
}

// Check runs validate on text and wraps the outcome into a Result
func Check(dialect, text string, validate func(string) error) Result {
	return Result{
		Dialect: dialect,
		Text:    text,
		Err:     validate(text),
	}
}

// Passed reports whether the line conformed to the dialect
func (r Result) Passed() bool {
	return r.Err == nil
}
