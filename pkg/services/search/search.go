// Package search implements the free-text company lookup over the
// historical QBR corpus: a case-insensitive name-substring tier, a
// snippet-body containment tier, and a completion-service fallback for
// queries neither tier can answer.
package search

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/de-tools/qbr-atlas/pkg/models/domain"
	"github.com/de-tools/qbr-atlas/pkg/services/completion"
)

// SnippetSource is the warehouse surface the searcher needs.
type SnippetSource interface {
	SearchByName(ctx context.Context, query string, k int) ([]domain.HistoricalSnippet, error)
	SearchByContent(ctx context.Context, query string, k int) ([]domain.HistoricalSnippet, error)
	CountSnippets(ctx context.Context) (int, error)
}

// Result is one ranked hit with its cleaned snippet.
type Result struct {
	CompanyName string
	Snippet     string
}

// Response holds either ranked results or, when both warehouse tiers came
// back empty against a non-empty corpus, the completion service's
// free-text answer.
type Response struct {
	Results []Result
	Answer  string
}

type Searcher struct {
	source   SnippetSource
	provider completion.Provider
}

func NewSearcher(source SnippetSource, provider completion.Provider) *Searcher {
	return &Searcher{source: source, provider: provider}
}

// Search runs the three tiers in order. An empty corpus short-circuits to
// an empty response without touching the completion service.
func (s *Searcher) Search(ctx context.Context, query string, k int, model string) (Response, error) {
	logger := zerolog.Ctx(ctx)

	snippets, err := s.source.SearchByName(ctx, query, k)
	if err != nil {
		return Response{}, err
	}
	if len(snippets) > 0 {
		return Response{Results: toResults(snippets)}, nil
	}

	snippets, err = s.source.SearchByContent(ctx, query, k)
	if err != nil {
		return Response{}, err
	}
	if len(snippets) > 0 {
		return Response{Results: toResults(snippets)}, nil
	}

	count, err := s.source.CountSnippets(ctx)
	if err != nil {
		return Response{}, err
	}
	if count == 0 {
		return Response{}, nil
	}

	logger.Debug().Str("query", query).Msg("falling back to completion service")
	answer, err := s.provider.Complete(ctx, model,
		"Answer this question about our customer accounts based on general knowledge: "+query)
	if err != nil {
		return Response{}, err
	}
	return Response{Answer: answer}, nil
}

func toResults(snippets []domain.HistoricalSnippet) []Result {
	results := make([]Result, 0, len(snippets))
	for _, s := range snippets {
		results = append(results, Result{
			CompanyName: s.CompanyName,
			Snippet:     CleanText(s.Content),
		})
	}
	return results
}
