package service

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anvh/quickspend/internal/domain/parse"
)

// stubNormalizer is a canned remote normalizer for exercising the fallback
// boundary without any network.
type stubNormalizer struct {
	tx    *parse.ParsedTransaction
	err   error
	calls int
}

func (s *stubNormalizer) Normalize(_ context.Context, rawInput string, _ parse.Options) (*parse.ParsedTransaction, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	if s.tx != nil {
		s.tx.RawInput = rawInput
		s.tx.Note = rawInput
	}
	return s.tx, s.err
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestParseService_LocalSuccessSkipsNormalizer(t *testing.T) {
	normalizer := &stubNormalizer{}
	svc := NewParseService(parse.NewParser(), normalizer, testLogger())

	tx, err := svc.Parse(context.Background(), "cafe 45k", parse.Options{
		Language:         parse.LangVietnamese,
		FallbackCurrency: parse.CurrencyVND,
	})
	require.NoError(t, err)
	assert.Equal(t, float64(45000), tx.Amount)
	assert.Equal(t, parse.CurrencyVND, tx.Currency)
	assert.Zero(t, normalizer.calls, "normalizer must not run when local parsing succeeds")
}

func TestParseService_NoNormalizerPropagatesFailure(t *testing.T) {
	svc := NewParseService(parse.NewParser(), nil, testLogger())

	_, err := svc.Parse(context.Background(), "ăn trưa với bạn", parse.Options{
		Language: parse.LangVietnamese,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, parse.ErrNoAmountFound)
}

func TestParseService_FallbackOnNoAmount(t *testing.T) {
	normalizer := &stubNormalizer{
		tx: &parse.ParsedTransaction{
			Type:     parse.TypeExpense,
			Amount:   60000,
			Currency: parse.CurrencyVND,
			Category: "Ăn uống",
			Merchant: "Quán Bún Chả",
			Date:     "2025-03-10",
		},
	}
	svc := NewParseService(parse.NewParser(), normalizer, testLogger())

	tx, err := svc.Parse(context.Background(), "bún chả chỗ cũ", parse.Options{
		Language:         parse.LangVietnamese,
		FallbackCurrency: parse.CurrencyVND,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, normalizer.calls)
	assert.Equal(t, float64(60000), tx.Amount)
	assert.Equal(t, "Quán Bún Chả", tx.Merchant)
}

func TestParseService_FallbackFailureKeepsTypedError(t *testing.T) {
	normalizer := &stubNormalizer{err: errors.New("upstream unavailable")}
	svc := NewParseService(parse.NewParser(), normalizer, testLogger())

	_, err := svc.Parse(context.Background(), "no digits here", parse.Options{
		Language: parse.LangEnglish,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, parse.ErrNoAmountFound, "fallback errors must not mask the typed failure")
	assert.Equal(t, 1, normalizer.calls)
}

func TestParseService_FallbackInvalidAmountRejected(t *testing.T) {
	normalizer := &stubNormalizer{tx: &parse.ParsedTransaction{Amount: 0}}
	svc := NewParseService(parse.NewParser(), normalizer, testLogger())

	_, err := svc.Parse(context.Background(), "no digits here", parse.Options{})
	require.Error(t, err)
	assert.ErrorIs(t, err, parse.ErrNoAmountFound)
}

func TestParseService_ParseBatch(t *testing.T) {
	svc := NewParseService(parse.NewParser(), nil, testLogger())

	lines := []string{
		"cafe 45k",
		"không có số",
		"lương 20tr",
		"lunch 8 usd",
	}
	results, err := svc.ParseBatch(context.Background(), lines, parse.Options{
		Language:         parse.LangVietnamese,
		FallbackCurrency: parse.CurrencyVND,
	})
	require.NoError(t, err)
	require.Len(t, results, len(lines))

	// Input order is preserved regardless of worker scheduling.
	for i, res := range results {
		assert.Equal(t, i, res.Index)
		assert.Equal(t, lines[i], res.Line)
	}

	require.NoError(t, results[0].Err)
	assert.Equal(t, float64(45000), results[0].Tx.Amount)

	require.Error(t, results[1].Err)
	assert.ErrorIs(t, results[1].Err, parse.ErrNoAmountFound)

	require.NoError(t, results[2].Err)
	assert.Equal(t, parse.TypeIncome, results[2].Tx.Type)
	assert.Equal(t, float64(20000000), results[2].Tx.Amount)

	require.NoError(t, results[3].Err)
	assert.Equal(t, parse.CurrencyUSD, results[3].Tx.Currency)
}

func TestParseService_ParseBatchCanceled(t *testing.T) {
	svc := NewParseService(parse.NewParser(), nil, testLogger())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.ParseBatch(ctx, []string{"cafe 45k"}, parse.Options{})
	// A pre-canceled context either blocks enqueueing or is caught after
	// the workers drain; both must surface the cancellation.
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}
