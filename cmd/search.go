package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yanivps/green-invoice/filter"
	"github.com/yanivps/green-invoice/greeninvoice"
)

// Search flags shared by clients and documents search
var (
	whereExpr  string
	presetName string
	allPages   bool
	page       int
	pageSize   int
)

func addSearchFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&whereExpr, "where", "w", "", "client-side filter expression over result items")
	cmd.Flags().StringVarP(&presetName, "preset", "p", "", "use a filter preset from config")
	cmd.Flags().BoolVar(&allPages, "all", false, "fetch every page instead of a single one")
	cmd.Flags().IntVar(&page, "page", 1, "result page to fetch")
	cmd.Flags().IntVar(&pageSize, "page-size", 25, "results per page")
}

// fetchPages fetches the requested page, or every page from it onward with --all
func fetchPages[T any](ctx context.Context, fetch func(page int) (*greeninvoice.SearchResult[T], error)) (*greeninvoice.SearchResult[T], error) {
	result, err := fetch(page)
	if err != nil {
		return nil, err
	}
	if result == nil {
		return &greeninvoice.SearchResult[T]{Items: []T{}}, nil
	}

	if !allPages {
		return result, nil
	}

	// Page count is fixed by the first response.
	last := result.Pages
	for p := page + 1; p <= last; p++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		logger.Debug().Int("page", p).Int("pages", last).Msg("Fetching next page")
		next, err := fetch(p)
		if err != nil {
			return nil, fmt.Errorf("page %d: %w", p, err)
		}
		if next == nil || len(next.Items) == 0 {
			break
		}

		result.Items = append(result.Items, next.Items...)
		result.Page = p
	}

	return result, nil
}

// applyFilter narrows result items with --preset and --where
func applyFilter[T any](ctx context.Context, result *greeninvoice.SearchResult[T]) error {
	f, err := filters.Resolve(presetName, whereExpr)
	if err != nil {
		return fmt.Errorf("invalid filter: %w", err)
	}
	if f == nil {
		return nil
	}

	before := len(result.Items)
	items, err := filter.Select(ctx, evaluator, f, result.Items)
	if err != nil {
		return err
	}
	result.Items = items

	logger.Info().
		Str("filter", f.Expression()).
		Int("matched", len(items)).
		Int("fetched", before).
		Msg("Applied filter")

	return nil
}
