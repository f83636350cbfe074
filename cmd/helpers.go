package cmd

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	"github.com/yanivps/green-invoice/output"
)

// idResult is the outcome of one call in a multi-id command
type idResult[T any] struct {
	ID    string
	Value T
	Err   error
}

// forEachID runs fn for every id with bounded concurrency. Results keep the
// order of ids and individual failures do not stop the others.
func forEachID[T any](ctx context.Context, ids []string, limit int, fn func(ctx context.Context, id string) (T, error)) []idResult[T] {
	results := make([]idResult[T], len(ids))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(limit, 1))

	for i, id := range ids {
		i, id := i, id
		g.Go(func() error {
			value, err := fn(ctx, id)
			results[i] = idResult[T]{ID: id, Value: value, Err: err}
			return nil // Don't stop on individual errors
		})
	}

	_ = g.Wait()
	return results
}

// failedCount logs each failure and returns how many there were
func failedCount[T any](results []idResult[T], action string) int {
	failed := 0
	for _, r := range results {
		if r.Err != nil {
			failed++
			logger.Error().Err(r.Err).Str("id", r.ID).Msgf("Failed to %s", action)
		}
	}
	return failed
}

// loadDraft reads a YAML or JSON file into T using T's json field names.
// A path of "-" reads from in. Unknown fields are rejected.
func loadDraft[T any](path string, in io.Reader) (T, error) {
	var draft T

	var raw []byte
	var err error
	if path == "-" {
		raw, err = io.ReadAll(in)
	} else {
		raw, err = os.ReadFile(path)
	}
	if err != nil {
		return draft, fmt.Errorf("read draft: %w", err)
	}

	// YAML is a superset of JSON, so one decoder handles both
	var generic any
	if err := yaml.Unmarshal(raw, &generic); err != nil {
		return draft, fmt.Errorf("parse draft %s: %w", path, err)
	}
	if generic == nil {
		return draft, fmt.Errorf("draft %s is empty", path)
	}

	asJSON, err := json.Marshal(generic)
	if err != nil {
		return draft, fmt.Errorf("convert draft %s: %w", path, err)
	}

	dec := json.NewDecoder(bytes.NewReader(asJSON))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&draft); err != nil {
		return draft, fmt.Errorf("invalid draft %s: %w", path, err)
	}
	return draft, nil
}

// confirm asks a yes/no question and defaults to no
func confirm(in io.Reader, out io.Writer, prompt string) bool {
	fmt.Fprintf(out, "%s [y/N]: ", prompt)

	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && line == "" {
		return false
	}

	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true
	default:
		return false
	}
}

// printMany prints a single value as itself and several as a list
func printMany[T any](results []idResult[*T], render func(f *output.ConsoleFormatter, v *T) string) error {
	var values []*T
	for _, r := range results {
		if r.Err == nil && r.Value != nil {
			values = append(values, r.Value)
		}
	}

	if len(values) == 1 {
		return printer.Print(values[0], func(f *output.ConsoleFormatter) string { return render(f, values[0]) })
	}
	return printer.Print(values, func(f *output.ConsoleFormatter) string {
		parts := make([]string, len(values))
		for i, v := range values {
			parts[i] = render(f, v)
		}
		return strings.Join(parts, "\n")
	})
}
