package matcher

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"uniportal/domain"

	"github.com/blugelabs/bluge"
	"github.com/google/uuid"
)

var scoredFields = []string{"subject", "content", "sender", "attachment"}

// BlugeRanker scores messages with BM25 through an in-memory index built
// for one call and dropped right after, so no copy of the corpus survives.
type BlugeRanker struct {
	log *slog.Logger
}

func NewBlugeRanker(log *slog.Logger) *BlugeRanker {
	return &BlugeRanker{log: log}
}

func (b *BlugeRanker) Score(ctx context.Context, query string, messages []domain.Message) (map[uuid.UUID]float64, error) {
	scores := make(map[uuid.UUID]float64, len(messages))
	if len(messages) == 0 || strings.TrimSpace(query) == "" {
		return scores, nil
	}

	writer, err := bluge.OpenWriter(bluge.InMemoryOnlyConfig())
	if err != nil {
		return nil, fmt.Errorf("open ranking index: %w", err)
	}
	defer func() {
		_ = writer.Close()
	}()

	batch := bluge.NewBatch()
	for _, message := range messages {
		doc := bluge.NewDocument(message.ID.String()).
			AddField(bluge.NewTextField("subject", message.Subject)).
			AddField(bluge.NewTextField("content", message.Content)).
			AddField(bluge.NewTextField("sender", message.SenderName)).
			AddField(bluge.NewTextField("attachment", strings.Join(message.Attachments, " ")))
		batch.Update(doc.ID(), doc)
	}
	if err := writer.Batch(batch); err != nil {
		return nil, fmt.Errorf("index messages: %w", err)
	}

	reader, err := writer.Reader()
	if err != nil {
		return nil, fmt.Errorf("open ranking reader: %w", err)
	}
	defer func() {
		_ = reader.Close()
	}()

	q := bluge.NewBooleanQuery()
	for _, field := range scoredFields {
		q.AddShould(bluge.NewMatchQuery(query).SetField(field))
	}
	it, err := reader.Search(ctx, bluge.NewTopNSearch(len(messages), q))
	if err != nil {
		return nil, fmt.Errorf("rank messages: %w", err)
	}

	match, err := it.Next()
	for err == nil && match != nil {
		var id string
		if err = match.VisitStoredFields(func(field string, value []byte) bool {
			if field == "_id" {
				id = string(value)
				return false
			}
			return true
		}); err != nil {
			break
		}
		if parsed, parseErr := uuid.Parse(id); parseErr == nil {
			scores[parsed] = match.Score
		}
		match, err = it.Next()
	}
	if err != nil {
		return nil, fmt.Errorf("read ranking: %w", err)
	}
	b.log.Debug("Messages ranked", "query", query, "messages", len(messages), "scored", len(scores))
	return scores, nil
}
