package coach

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/nourlabs/coach/internal/quizgen"
	"github.com/nourlabs/coach/internal/sheets"
	"github.com/nourlabs/coach/internal/srs"
	"github.com/nourlabs/coach/internal/store"
)

// ErrNoStore is returned by the persistence operations when the service
// was built without a store.
var ErrNoStore = errors.New("no store configured")

// SaveQuiz persists a quiz under the given key. Items are stored in
// their wire form so exported payloads and stored payloads match.
func (s *Service) SaveQuiz(ctx context.Context, key, sessionID string, items []quizgen.Item) error {
	if s.st == nil {
		return ErrNoStore
	}
	batch := quizgen.Batch{Status: quizgen.StatusOK}
	for _, it := range items {
		batch.Items = append(batch.Items, quizgen.ToWire(it))
	}
	return s.st.SaveBlob(ctx, key, sessionID, store.KindQuiz, batch)
}

// LoadQuiz loads a stored quiz. The batch is re-validated on the way
// out: a blob edited or corrupted behind the store's back must not reach
// the learner.
func (s *Service) LoadQuiz(ctx context.Context, key string) ([]quizgen.Item, error) {
	if s.st == nil {
		return nil, ErrNoStore
	}
	var batch quizgen.Batch
	if err := s.st.LoadBlob(ctx, key, &batch); err != nil {
		return nil, err
	}
	if v := quizgen.ValidateBatch(batch); !v.OK {
		return nil, fmt.Errorf("stored quiz %s is invalid: %s", key, strings.Join(v.Errors, "; "))
	}
	items := make([]quizgen.Item, 0, len(batch.Items))
	for _, wire := range batch.Items {
		item, err := quizgen.FromWire(wire)
		if err != nil {
			return nil, fmt.Errorf("stored quiz %s: %w", key, err)
		}
		items = append(items, item)
	}
	return items, nil
}

// SaveSheets persists a sheet batch under the given key.
func (s *Service) SaveSheets(ctx context.Context, key, sessionID string, batch sheets.Batch) error {
	if s.st == nil {
		return ErrNoStore
	}
	return s.st.SaveBlob(ctx, key, sessionID, store.KindSheet, batch)
}

// LoadSheets loads a stored sheet batch, re-validated on the way out.
func (s *Service) LoadSheets(ctx context.Context, key string) (sheets.Batch, error) {
	if s.st == nil {
		return sheets.Batch{}, ErrNoStore
	}
	var batch sheets.Batch
	if err := s.st.LoadBlob(ctx, key, &batch); err != nil {
		return sheets.Batch{}, err
	}
	if v := sheets.ValidateBatch(batch); !v.OK {
		return sheets.Batch{}, fmt.Errorf("stored sheets %s are invalid: %s", key, strings.Join(v.Errors, "; "))
	}
	return batch, nil
}

// srsKey is the blob key of the single review queue.
const srsKey = "srs"

// LoadReviewQueue loads the spaced-repetition queue. A missing blob is
// an empty queue, not an error.
func (s *Service) LoadReviewQueue(ctx context.Context) (*srs.Queue, error) {
	if s.st == nil {
		return nil, ErrNoStore
	}
	q := &srs.Queue{}
	err := s.st.LoadBlob(ctx, srsKey, q)
	if errors.Is(err, store.ErrNotFound) {
		return q, nil
	}
	if err != nil {
		return nil, err
	}
	return q, nil
}

// SaveReviewQueue persists the spaced-repetition queue.
func (s *Service) SaveReviewQueue(ctx context.Context, q *srs.Queue) error {
	if s.st == nil {
		return ErrNoStore
	}
	return s.st.SaveBlob(ctx, srsKey, "", store.KindSRS, q)
}
