package matcher

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"

	"uniportal/domain"
	"uniportal/domain/search"
	"uniportal/errors"

	"github.com/google/uuid"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// snippetContext is the number of runes kept on each side of a match.
const snippetContext = 40

const ellipsis = "…"

// Ranker scores messages against a query. Messages without a score rank last.
type Ranker interface {
	Score(ctx context.Context, query string, messages []domain.Message) (map[uuid.UUID]float64, error)
}

// Matcher scans a corpus snapshot. It keeps no state between calls and never
// modifies the corpus it is given.
type Matcher struct {
	locale language.Tag
	ranker Ranker
	log    *slog.Logger
}

func NewMatcher(locale language.Tag, ranker Ranker, log *slog.Logger) *Matcher {
	return &Matcher{locale: locale, ranker: ranker, log: log}
}

type candidate struct {
	message domain.Message
	result  search.Result
}

// Search returns the messages satisfying every filter and, when query is
// not blank, containing it in subject, content, sender or an attachment name.
func (m *Matcher) Search(ctx context.Context, corpus []domain.Message, query string, filters search.Filters, sort search.Sort) ([]search.Result, error) {
	sort, err := search.ParseSort(string(sort))
	if err != nil {
		return nil, err
	}
	filters = filters.Normalize()
	if filters.DateRange != nil && filters.DateRange.Inverted() {
		m.log.Debug("Inverted date range, nothing can match")
		return []search.Result{}, nil
	}

	needle := strings.TrimSpace(query)
	lowered := lower(needle)

	var candidates []candidate
	for _, message := range corpus {
		if !matchesFilters(message, filters) {
			continue
		}
		result := search.Result{
			MessageID:  message.ID,
			Source:     message.Source,
			Snippet:    message.Subject,
			SenderName: message.SenderName,
			Priority:   message.Priority,
			Category:   message.Category,
			Date:       message.At,
			Course:     message.Course,
		}
		if needle != "" {
			matchType, snippet, ok := findMatch(message, lowered)
			if !ok {
				continue
			}
			result.MatchType = matchType
			result.Snippet = snippet
		}
		candidates = append(candidates, candidate{message: message, result: result})
	}

	if err := m.sort(ctx, candidates, needle, sort); err != nil {
		return nil, err
	}

	results := make([]search.Result, 0, len(candidates))
	for _, c := range candidates {
		results = append(results, c.result)
	}
	m.log.Debug("Search done", "query", needle, "sort", sort, "corpus", len(corpus), "results", len(results))
	return results, nil
}

func matchesFilters(message domain.Message, filters search.Filters) bool {
	if filters.Sender != nil && !strings.EqualFold(strings.TrimSpace(message.SenderName), *filters.Sender) {
		return false
	}
	if filters.Course != nil && !strings.EqualFold(strings.TrimSpace(message.Course), *filters.Course) {
		return false
	}
	if filters.Category != nil && message.Category != *filters.Category {
		return false
	}
	if filters.Priority != nil && message.Priority != *filters.Priority {
		return false
	}
	if filters.DateRange != nil && !filters.DateRange.Contains(message.At) {
		return false
	}
	if filters.AttachmentsOnly && !message.HasAttachments() {
		return false
	}
	if filters.UnreadOnly && message.Read {
		return false
	}
	return true
}

// findMatch checks the fields in display order and stops at the first hit.
func findMatch(message domain.Message, needle string) (search.MatchType, string, bool) {
	fields := []struct {
		matchType search.MatchType
		value     string
	}{
		{search.MatchSubject, message.Subject},
		{search.MatchContent, message.Content},
		{search.MatchSender, message.SenderName},
	}
	for _, name := range message.Attachments {
		fields = append(fields, struct {
			matchType search.MatchType
			value     string
		}{search.MatchAttachment, name})
	}
	for _, field := range fields {
		if snippet, ok := snippetAround(field.value, needle); ok {
			return field.matchType, snippet, true
		}
	}
	return "", "", false
}

// snippetAround cuts the text around the first occurrence of needle, which
// must already be lowered.
func snippetAround(text, needle string) (string, bool) {
	lowered := lower(text)
	at := strings.Index(lowered, needle)
	if at < 0 {
		return "", false
	}
	// lower maps rune to rune, so rune offsets are shared by both strings
	start := utf8.RuneCountInString(lowered[:at])
	end := start + utf8.RuneCountInString(needle)
	runes := []rune(text)

	from := max(0, start-snippetContext)
	to := min(len(runes), end+snippetContext)
	snippet := strings.Join(strings.Fields(string(runes[from:to])), " ")
	if from > 0 {
		snippet = ellipsis + snippet
	}
	if to < len(runes) {
		snippet += ellipsis
	}
	return snippet, true
}

func lower(s string) string {
	return strings.Map(unicode.ToLower, s)
}

func (m *Matcher) sort(ctx context.Context, candidates []candidate, query string, sort search.Sort) error {
	switch sort {
	case search.SortRelevance:
		// corpus order is kept
	case search.SortDateNewest:
		slices.SortStableFunc(candidates, func(a, b candidate) int {
			return b.result.Date.Compare(a.result.Date)
		})
	case search.SortDateOldest:
		slices.SortStableFunc(candidates, func(a, b candidate) int {
			return a.result.Date.Compare(b.result.Date)
		})
	case search.SortSenderAZ:
		// A collator holds buffers and cannot be shared between goroutines.
		collator := collate.New(m.locale, collate.IgnoreCase)
		slices.SortStableFunc(candidates, func(a, b candidate) int {
			return collator.CompareString(a.result.SenderName, b.result.SenderName)
		})
	case search.SortScored:
		return m.score(ctx, candidates, query)
	default:
		return fmt.Errorf("%w: unknown sort %q", errors.ErrValidation, sort)
	}
	return nil
}

func (m *Matcher) score(ctx context.Context, candidates []candidate, query string) error {
	if m.ranker == nil || query == "" || len(candidates) == 0 {
		return nil
	}
	messages := make([]domain.Message, 0, len(candidates))
	for _, c := range candidates {
		messages = append(messages, c.message)
	}
	scores, err := m.ranker.Score(ctx, query, messages)
	if err != nil {
		return err
	}
	for i := range candidates {
		candidates[i].result.Score = scores[candidates[i].message.ID]
	}
	slices.SortStableFunc(candidates, func(a, b candidate) int {
		switch {
		case a.result.Score > b.result.Score:
			return -1
		case a.result.Score < b.result.Score:
			return 1
		default:
			return 0
		}
	})
	return nil
}
