package search

import (
	"fmt"
	"strings"
	"time"
	"unicode"

	"uniportal/domain"
	"uniportal/errors"

	"github.com/google/uuid"
	"github.com/samber/lo"
)

const dateLayout = "2006-01-02"

type Sort string

const (
	SortRelevance  Sort = "relevance"
	SortDateNewest Sort = "date-newest"
	SortDateOldest Sort = "date-oldest"
	SortSenderAZ   Sort = "sender-az"
	// SortScored ranks matches with a term-frequency score instead of keeping
	// the corpus order.
	SortScored Sort = "scored"
)

// ParseSort accepts an empty value as relevance.
func ParseSort(value string) (Sort, error) {
	switch s := Sort(strings.ToLower(strings.TrimSpace(value))); s {
	case "":
		return SortRelevance, nil
	case SortRelevance, SortDateNewest, SortDateOldest, SortSenderAZ, SortScored:
		return s, nil
	default:
		return "", fmt.Errorf("%w: unknown sort %q", errors.ErrValidation, value)
	}
}

// MatchType is the first field where the query was found.
type MatchType string

const (
	MatchSubject    MatchType = "subject"
	MatchContent    MatchType = "content"
	MatchSender     MatchType = "sender"
	MatchAttachment MatchType = "attachment"
)

// DateRange bounds are inclusive. A nil bound is open.
type DateRange struct {
	Start *time.Time `json:"start,omitempty"`
	End   *time.Time `json:"end,omitempty"`
}

func (r DateRange) Contains(at time.Time) bool {
	if r.Start != nil && at.Before(*r.Start) {
		return false
	}
	if r.End != nil && at.After(*r.End) {
		return false
	}
	return true
}

// Inverted reports a range that can never match anything.
func (r DateRange) Inverted() bool {
	return r.Start != nil && r.End != nil && r.Start.After(*r.End)
}

// Filters is the closed set of constraints a search accepts.
// Every nil or false field means no constraint.
type Filters struct {
	Sender          *string          `json:"sender,omitempty"`
	Course          *string          `json:"course,omitempty"`
	Category        *domain.Category `json:"messageType,omitempty"`
	Priority        *domain.Priority `json:"priority,omitempty"`
	DateRange       *DateRange       `json:"dateRange,omitempty"`
	AttachmentsOnly bool             `json:"attachmentsOnly,omitempty"`
	UnreadOnly      bool             `json:"unreadOnly,omitempty"`
}

// Normalize drops blank text constraints so that they read as absent.
func (f Filters) Normalize() Filters {
	f.Sender = blankToNil(f.Sender)
	f.Course = blankToNil(f.Course)
	if f.Category != nil && *f.Category == "" {
		f.Category = nil
	}
	if f.Priority != nil && *f.Priority == "" {
		f.Priority = nil
	}
	if f.DateRange != nil && f.DateRange.Start == nil && f.DateRange.End == nil {
		f.DateRange = nil
	}
	return f
}

func (f Filters) IsEmpty() bool {
	n := f.Normalize()
	return n.Sender == nil && n.Course == nil && n.Category == nil && n.Priority == nil &&
		n.DateRange == nil && !n.AttachmentsOnly && !n.UnreadOnly
}

func blankToNil(value *string) *string {
	if value == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*value)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

// Result is recomputed on every search and never stored.
type Result struct {
	MessageID  uuid.UUID       `json:"messageId"`
	Source     domain.Source   `json:"source"`
	Snippet    string          `json:"snippet"`
	MatchType  MatchType       `json:"matchType,omitempty"`
	SenderName string          `json:"senderName"`
	Priority   domain.Priority `json:"priority"`
	Category   domain.Category `json:"category"`
	Date       time.Time       `json:"date"`
	Course     string          `json:"course,omitempty"`
	Score      float64         `json:"score,omitempty"`
}

// SavedSearch stores criteria, not results. ResultCount is the count seen
// on the last run and may be stale.
type SavedSearch struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Query       string    `json:"query"`
	Filters     Filters   `json:"filters"`
	CreatedAt   time.Time `json:"createdAt"`
	LastUsed    time.Time `json:"lastUsed"`
	ResultCount int       `json:"resultCount"`
}

// Query represents the structured parameters parsed from a command line
// style search input.
type Query struct {
	RawInput string
	Terms    string
	Filters  Filters
	Sort     Sort
}

// NewSearchQuery parses a raw string to extract command-line style arguments.
// Example: /find "final exam" --course CS101 --priority high --from 2024-01-01 --unread
func NewSearchQuery(input string) (*Query, error) {
	parts, err := tokenize(input)
	if err != nil {
		return nil, err
	}
	query, err := NewSearchQueryFromArgs(parts)
	if err != nil {
		return nil, err
	}
	query.RawInput = input
	return query, nil
}

// NewSearchQueryFromArgs parses arguments a shell has already split, so
// quotes inside an argument are kept as typed.
func NewSearchQueryFromArgs(parts []string) (*Query, error) {
	query := &Query{RawInput: strings.Join(parts, " "), Sort: SortRelevance}
	var textTerms []string

	for i := 0; i < len(parts); i++ {
		part := parts[i]

		if i == 0 && strings.HasPrefix(part, "/") {
			continue
		}
		if !strings.HasPrefix(part, "--") {
			textTerms = append(textTerms, part)
			continue
		}

		key := strings.TrimPrefix(part, "--")
		switch key {
		case "attachments":
			query.Filters.AttachmentsOnly = true
			continue
		case "unread":
			query.Filters.UnreadOnly = true
			continue
		}

		if i+1 >= len(parts) {
			return nil, fmt.Errorf("%w: flag --%s needs a value", errors.ErrValidation, key)
		}
		val := parts[i+1]
		i++

		switch key {
		case "sender":
			query.Filters.Sender = lo.ToPtr(val)
		case "course":
			query.Filters.Course = lo.ToPtr(val)
		case "type", "category":
			category, err := parseCategory(val)
			if err != nil {
				return nil, err
			}
			query.Filters.Category = &category
		case "priority":
			priority, err := parsePriority(val)
			if err != nil {
				return nil, err
			}
			query.Filters.Priority = &priority
		case "from":
			start, err := time.ParseInLocation(dateLayout, val, time.UTC)
			if err != nil {
				return nil, fmt.Errorf("%w: --from %q: %w", errors.ErrValidation, val, err)
			}
			query.dateRange().Start = &start
		case "to":
			day, err := time.ParseInLocation(dateLayout, val, time.UTC)
			if err != nil {
				return nil, fmt.Errorf("%w: --to %q: %w", errors.ErrValidation, val, err)
			}
			// --to names a whole day
			end := day.Add(24*time.Hour - time.Nanosecond)
			query.dateRange().End = &end
		case "sort":
			sort, err := ParseSort(val)
			if err != nil {
				return nil, err
			}
			query.Sort = sort
		default:
			return nil, fmt.Errorf("%w: unknown flag --%s", errors.ErrValidation, key)
		}
	}

	query.Terms = strings.Join(textTerms, " ")
	query.Filters = query.Filters.Normalize()
	return query, nil
}

func (q *Query) dateRange() *DateRange {
	if q.Filters.DateRange == nil {
		q.Filters.DateRange = &DateRange{}
	}
	return q.Filters.DateRange
}

// tokenize splits on whitespace while keeping double-quoted runs together.
func tokenize(input string) ([]string, error) {
	var (
		tokens  []string
		current strings.Builder
		quoted  bool
		pending bool
	)
	for _, r := range input {
		switch {
		case r == '"':
			quoted = !quoted
			pending = true
		case unicode.IsSpace(r) && !quoted:
			if pending {
				tokens = append(tokens, current.String())
				current.Reset()
				pending = false
			}
		default:
			current.WriteRune(r)
			pending = true
		}
	}
	if quoted {
		return nil, fmt.Errorf("%w: unterminated quote", errors.ErrValidation)
	}
	if pending {
		tokens = append(tokens, current.String())
	}
	return tokens, nil
}

func parseCategory(value string) (domain.Category, error) {
	switch c := domain.Category(strings.ToLower(value)); c {
	case domain.CategoryAcademic, domain.CategoryAdministrative, domain.CategoryGeneral:
		return c, nil
	default:
		return "", fmt.Errorf("%w: unknown message type %q", errors.ErrValidation, value)
	}
}

func parsePriority(value string) (domain.Priority, error) {
	switch p := domain.Priority(strings.ToLower(value)); p {
	case domain.PriorityLow, domain.PriorityMedium, domain.PriorityHigh:
		return p, nil
	default:
		return "", fmt.Errorf("%w: unknown priority %q", errors.ErrValidation, value)
	}
}
