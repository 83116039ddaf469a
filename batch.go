package fakejson

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// Repeat generates count documents from schema with this session, so
// references and unique values span all of them.
func (s *Session) Repeat(ctx context.Context, schema *Node, count int) ([]*Node, error) {
	if count < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeCount, count)
	}
	docs := make([]*Node, 0, count)
	for i := 0; i < count; i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		doc, err := s.Document(schema)
		if err != nil {
			return nil, fmt.Errorf("document %d: %w", i, err)
		}
		docs = append(docs, doc)
	}
	s.logger.Infof("generated %d documents", count)
	return docs, nil
}

// SessionFactory builds the independent session used for document index.
type SessionFactory func(index int) (*Session, error)

// GenerateParallel generates count documents concurrently, each with its own
// session from newSession, so no uniqueness or reference state is shared
// between documents. Output order follows the document index. workers <= 0
// means one goroutine per document.
func GenerateParallel(ctx context.Context, schema *Node, count, workers int, newSession SessionFactory) ([]*Node, error) {
	if count < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeCount, count)
	}
	docs := make([]*Node, count)

	g, ctx := errgroup.WithContext(ctx)
	if workers > 0 {
		g.SetLimit(workers)
	}

	for i := 0; i < count; i++ {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			s, err := newSession(i)
			if err != nil {
				return fmt.Errorf("document %d: %w", i, err)
			}
			doc, err := s.Document(schema)
			if err != nil {
				return fmt.Errorf("document %d: %w", i, err)
			}
			docs[i] = doc
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return docs, nil
}
