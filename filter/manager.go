package filter

import (
	"fmt"
	"maps"
	"slices"
	"strings"
	"sync"
)

// Manager holds named filter presets from configuration
type Manager struct {
	compiler Compiler
	filters  map[string]CompiledFilter
	mu       sync.RWMutex
}

// ManagerOption configures a filter manager
type ManagerOption func(*Manager)

// WithCompiler sets a custom compiler
func WithCompiler(compiler Compiler) ManagerOption {
	return func(m *Manager) {
		m.compiler = compiler
	}
}

// NewManager creates a new filter manager
func NewManager(opts ...ManagerOption) *Manager {
	m := &Manager{
		compiler: NewExprCompiler(WithCache(100)),
		filters:  make(map[string]CompiledFilter),
	}

	for _, opt := range opts {
		opt(m)
	}

	return m
}

// RegisterFilters compiles and registers presets. Nothing is registered if any fails.
func (m *Manager) RegisterFilters(filters map[string]string) error {
	compiled := make(map[string]CompiledFilter, len(filters))

	for name, expr := range filters {
		f, err := m.compiler.Compile(expr)
		if err != nil {
			return fmt.Errorf("failed to compile filter '%s': %w", name, err)
		}
		compiled[name] = f
	}

	m.mu.Lock()
	maps.Copy(m.filters, compiled)
	m.mu.Unlock()

	return nil
}

// GetFilter returns a compiled preset by name
func (m *Manager) GetFilter(name string) (CompiledFilter, bool) {
	m.mu.RLock()
	f, exists := m.filters[name]
	m.mu.RUnlock()
	return f, exists
}

// ListFilters returns all registered preset names, sorted
func (m *Manager) ListFilters() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var names []string
	for name := range m.filters {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Resolve builds the filter for a --preset and --where pair. Both may be
// empty, in which case Resolve returns nil. When both are set the result
// requires both to match.
func (m *Manager) Resolve(preset, where string) (CompiledFilter, error) {
	var parts []string

	if preset != "" {
		f, ok := m.GetFilter(preset)
		if !ok {
			return nil, fmt.Errorf("filter preset '%s' not found (available: %s)", preset, strings.Join(m.ListFilters(), ", "))
		}
		if where == "" {
			return f, nil
		}
		parts = append(parts, "("+f.Expression()+")")
	}

	if where = strings.TrimSpace(where); where != "" {
		parts = append(parts, "("+where+")")
	}

	if len(parts) == 0 {
		return nil, nil
	}
	return m.compiler.Compile(strings.Join(parts, " and "))
}
