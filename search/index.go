// Package search maintains an in-memory full-text index over the
// donation snapshot. It backs the viewer's free-text search command;
// the browse view's substring filter in the store stays authoritative
// and is not affected by analyzer behavior here.
package search

import (
	"context"
	"fmt"
	"sync"

	"github.com/blugelabs/bluge"

	"mealbridge/domain"
)

// Index is rebuilt wholesale from each new snapshot; donations are few
// enough client-side that incremental updates are not worth the
// bookkeeping.
type Index struct {
	mu     sync.RWMutex
	writer *bluge.Writer
}

func NewIndex() (*Index, error) {
	writer, err := bluge.OpenWriter(bluge.InMemoryOnlyConfig())
	if err != nil {
		return nil, fmt.Errorf("opening in-memory index: %w", err)
	}
	return &Index{writer: writer}, nil
}

// Rebuild replaces the index content with the given snapshot. A fresh
// in-memory segment is opened and swapped in so donations that left
// the collection do not linger as stale hits.
func (idx *Index) Rebuild(donations []domain.Donation) error {
	writer, err := bluge.OpenWriter(bluge.InMemoryOnlyConfig())
	if err != nil {
		return fmt.Errorf("opening in-memory index: %w", err)
	}

	batch := bluge.NewBatch()
	for _, d := range donations {
		doc := bluge.NewDocument(d.ID).
			AddField(bluge.NewTextField("foodName", d.FoodName)).
			AddField(bluge.NewTextField("description", d.Description)).
			AddField(bluge.NewTextField("donorName", d.DonorName)).
			AddField(bluge.NewKeywordField("status", string(d.Status)))
		batch.Update(doc.ID(), doc)
	}
	if err := writer.Batch(batch); err != nil {
		_ = writer.Close()
		return fmt.Errorf("indexing donations: %w", err)
	}

	idx.mu.Lock()
	old := idx.writer
	idx.writer = writer
	idx.mu.Unlock()
	if old != nil {
		_ = old.Close()
	}
	return nil
}

// Query returns the ids of donations matching the free-text query over
// food name, description and donor name, best first, capped at limit.
func (idx *Index) Query(ctx context.Context, query string, limit int) ([]string, error) {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	reader, err := idx.writer.Reader()
	if err != nil {
		return nil, err
	}
	defer func() { _ = reader.Close() }()

	boolean := bluge.NewBooleanQuery().
		AddShould(bluge.NewMatchQuery(query).SetField("foodName")).
		AddShould(bluge.NewMatchQuery(query).SetField("description")).
		AddShould(bluge.NewMatchQuery(query).SetField("donorName"))

	iterator, err := reader.Search(ctx, bluge.NewTopNSearch(limit, boolean))
	if err != nil {
		return nil, err
	}

	var ids []string
	for {
		match, err := iterator.Next()
		if err != nil {
			return nil, err
		}
		if match == nil {
			break
		}
		err = match.VisitStoredFields(func(field string, value []byte) bool {
			if field == "_id" {
				ids = append(ids, string(value))
			}
			return true
		})
		if err != nil {
			return nil, err
		}
	}
	return ids, nil
}

func (idx *Index) Close() error {
	idx.mu.Lock()
	defer idx.mu.Unlock()
	return idx.writer.Close()
}
