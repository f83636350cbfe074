package filter

// Record is a search result item flattened to its JSON field names
type Record map[string]any

// Filter decides whether a record is kept
type Filter interface {
	Evaluate(rec Record) (bool, error)
}

// CompiledFilter is a filter together with the source it was built from
type CompiledFilter interface {
	Filter

	Expression() string
}

// Compiler turns a --where expression into a CompiledFilter
type Compiler interface {
	Compile(expression string) (CompiledFilter, error)
}

// CachingCompiler is a Compiler that remembers recent compilations
type CachingCompiler interface {
	Compiler

	// Clear drops every cached program
	Clear()
	Size() int
}
