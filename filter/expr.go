package filter

import (
	"fmt"
	"maps"
	"slices"
	"strings"
	"time"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/yanivps/green-invoice/greeninvoice"
)

// dateLayout is the calendar date format used by document dates
const dateLayout = "2006-01-02"

// exprFilter implements CompiledFilter using the expr language
type exprFilter struct {
	expression string
	program    *vm.Program
	helpers    map[string]any
}

// ExprCompilerOption configures an expr compiler
type ExprCompilerOption func(*exprCompiler)

// WithCache enables filter caching with the specified size
func WithCache(size int) ExprCompilerOption {
	return func(c *exprCompiler) {
		if size > 0 {
			c.cache = newLRUCache[CompiledFilter](size)
		}
	}
}

// WithCustomFunctions adds custom helper functions
func WithCustomFunctions(funcs map[string]any) ExprCompilerOption {
	return func(c *exprCompiler) {
		maps.Copy(c.customFuncs, funcs)
	}
}

// WithClock overrides the time source of date helpers
func WithClock(now func() time.Time) ExprCompilerOption {
	return func(c *exprCompiler) {
		c.now = now
	}
}

// NewExprCompiler creates a new expr-based filter compiler
func NewExprCompiler(opts ...ExprCompilerOption) CachingCompiler {
	c := &exprCompiler{
		helperFuncs: make(map[string]any, 16),
		customFuncs: make(map[string]any),
		now:         time.Now,
	}

	for _, opt := range opts {
		opt(c)
	}

	addHelperFunctions(c.helperFuncs, c.now)
	maps.Copy(c.helperFuncs, c.customFuncs)
	return c
}

// exprCompiler implements Compiler for expr-based filters
type exprCompiler struct {
	helperFuncs map[string]any
	customFuncs map[string]any
	cache       *lruCache[CompiledFilter]
	now         func() time.Time
}

// Compile compiles an expression into an executable filter
func (c *exprCompiler) Compile(expression string) (CompiledFilter, error) {
	expression = strings.TrimSpace(expression)
	if expression == "" {
		return nil, &CompilationError{
			Expression: expression,
			Reason:     "empty expression",
		}
	}

	// Check cache if enabled
	if c.cache != nil {
		if cached, ok := c.cache.Get(expression); ok {
			return cached, nil
		}
	}

	// Record helpers are declared with placeholder bodies so calls type-check
	env := make(map[string]any, len(c.helperFuncs)+8)
	maps.Copy(env, c.helperFuncs)
	addRecordHelpers(env, Record{})

	program, err := expr.Compile(expression,
		expr.Env(env),
		expr.AllowUndefinedVariables(), // record fields are only known at runtime
		expr.AsBool(),
	)
	if err != nil {
		return nil, &CompilationError{
			Expression: expression,
			Reason:     "failed to compile expression",
			Err:        err,
		}
	}

	f := &exprFilter{
		expression: expression,
		program:    program,
		helpers:    c.helperFuncs,
	}

	if c.cache != nil {
		c.cache.Put(expression, f)
	}

	return f, nil
}

// Clear removes all cached filters
func (c *exprCompiler) Clear() {
	if c.cache != nil {
		c.cache.Clear()
	}
}

// Size returns the number of cached filters
func (c *exprCompiler) Size() int {
	if c.cache != nil {
		return c.cache.Size()
	}
	return 0
}

// Evaluate runs the filter against one record
func (f *exprFilter) Evaluate(rec Record) (bool, error) {
	result, err := expr.Run(f.program, createRuntimeEnvironment(rec, f.helpers))
	if err != nil {
		return false, &EvaluationError{
			Expression: f.expression,
			RecordID:   rec.ID(),
			Err:        err,
		}
	}

	// AsBool guarantees the result type
	return result.(bool), nil
}

// Expression returns the original expression
func (f *exprFilter) Expression() string {
	return f.expression
}

// addHelperFunctions adds the record-independent helpers
func addHelperFunctions(env map[string]any, now func() time.Time) {
	// Date helpers
	env["daysSince"] = func(v any) int {
		t, ok := toTime(v)
		if !ok {
			return -1
		}
		return int(now().Sub(t).Hours() / 24)
	}
	env["daysAgo"] = func(days int) string {
		return now().AddDate(0, 0, -days).Format(dateLayout)
	}
	env["monthsAgo"] = func(months int) string {
		return now().AddDate(0, -months, 0).Format(dateLayout)
	}
	env["today"] = func() string {
		return now().Format(dateLayout)
	}
	// String helpers
	env["like"] = func(str, substr any) bool {
		return strings.Contains(strings.ToLower(toString(str)), strings.ToLower(toString(substr)))
	}
}

// addRecordHelpers adds helpers bound to a single record
func addRecordHelpers(env map[string]any, rec Record) {
	labels := lowerStrings(rec["labels"])
	emails := lowerStrings(rec["emails"])

	env["hasLabel"] = func(label string) bool {
		return slices.Contains(labels, strings.ToLower(label))
	}
	env["hasEmail"] = func(substr string) bool {
		substr = strings.ToLower(substr)
		return slices.ContainsFunc(emails, func(e string) bool {
			return strings.Contains(e, substr)
		})
	}
	env["statusIs"] = func(name string) bool {
		code, ok := toInt(rec["status"])
		return ok && strings.EqualFold(greeninvoice.DocumentStatus(code).String(), name)
	}
	env["typeIs"] = func(name string) bool {
		code, ok := toInt(rec["type"])
		if !ok {
			return false
		}
		want, err := greeninvoice.ParseDocumentType(strings.ToUpper(name))
		return err == nil && want == greeninvoice.DocumentType(code)
	}
}

// createRuntimeEnvironment creates the runtime environment for filter evaluation
func createRuntimeEnvironment(rec Record, helpers map[string]any) map[string]any {
	env := make(map[string]any, len(rec)+len(helpers)+8)

	// Record fields by JSON name, e.g. name, amount, documentDate
	maps.Copy(env, rec)
	env["Item"] = map[string]any(rec)

	maps.Copy(env, helpers)
	addRecordHelpers(env, rec)

	return env
}

func toTime(v any) (time.Time, bool) {
	switch t := v.(type) {
	case string:
		if parsed, err := time.Parse(dateLayout, t); err == nil {
			return parsed, true
		}
		if parsed, err := time.Parse(time.RFC3339, t); err == nil {
			return parsed, true
		}
	case float64:
		// creationDate and lastUpdateDate are unix seconds
		return time.Unix(int64(t), 0), true
	case int:
		return time.Unix(int64(t), 0), true
	}
	return time.Time{}, false
}

func toInt(v any) (int, bool) {
	switch n := v.(type) {
	case float64:
		return int(n), true
	case int:
		return n, true
	}
	return 0, false
}

func toString(v any) string {
	switch s := v.(type) {
	case nil:
		return ""
	case string:
		return s
	default:
		return fmt.Sprint(s)
	}
}

func lowerStrings(v any) []string {
	items, _ := v.([]any)
	out := make([]string, 0, len(items))
	for _, item := range items {
		if s, ok := item.(string); ok {
			out = append(out, strings.ToLower(s))
		}
	}
	return out
}
