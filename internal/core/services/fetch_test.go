package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smarthomej/release-tools/internal/adapters/driven/source/memory"
	"github.com/smarthomej/release-tools/internal/core/domain"
)

func numberedRecords(n int) []domain.PullRequestRecord {
	out := make([]domain.PullRequestRecord, n)
	for i := range out {
		out[i] = mergedPR(i+1, "[knx] Change", "3.2.3")
	}
	return out
}

func TestFetchAll_StopsAtShortPage(t *testing.T) {
	src := memory.NewSource("test", numberedRecords(250), PageSize)

	records, pages, err := FetchAll(context.Background(), src)

	require.NoError(t, err)
	assert.Len(t, records, 250)
	assert.Equal(t, 3, pages)
	assert.Equal(t, []int{1, 2, 3}, src.Requests())
	assert.Equal(t, 1, records[0].Number)
	assert.Equal(t, 250, records[249].Number)
}

func TestFetchAll_ExactMultipleRequestsEmptyPage(t *testing.T) {
	src := memory.NewSource("test", numberedRecords(200), PageSize)

	records, pages, err := FetchAll(context.Background(), src)

	require.NoError(t, err)
	assert.Len(t, records, 200)
	assert.Equal(t, 3, pages)
	assert.Equal(t, []int{1, 2, 3}, src.Requests())
}

func TestFetchAll_Empty(t *testing.T) {
	src := memory.NewSource("test", nil, PageSize)

	records, pages, err := FetchAll(context.Background(), src)

	require.NoError(t, err)
	assert.Empty(t, records)
	assert.Equal(t, 1, pages)
}

func TestFetchAll_KeepsPagesBeforeFailure(t *testing.T) {
	src := memory.NewSource("test", numberedRecords(250), PageSize)
	boom := errors.New("502 bad gateway")
	src.FailAt(2, boom)

	records, pages, err := FetchAll(context.Background(), src)

	require.Error(t, err)
	assert.ErrorIs(t, err, boom)

	var fetchErr *FetchError
	require.ErrorAs(t, err, &fetchErr)
	assert.Equal(t, 2, fetchErr.Page)

	assert.Len(t, records, 100)
	assert.Equal(t, 2, pages)
	assert.Equal(t, []int{1, 2}, src.Requests())
}

func TestFetchAll_NilSource(t *testing.T) {
	_, _, err := FetchAll(context.Background(), nil)
	assert.ErrorIs(t, err, domain.ErrSourceUnavailable)
}

func TestFetchAll_Cancelled(t *testing.T) {
	src := memory.NewSource("test", numberedRecords(10), PageSize)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, err := FetchAll(ctx, src)

	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, src.Requests())
}

func TestPages_StopsWhenConsumerStops(t *testing.T) {
	src := memory.NewSource("test", numberedRecords(300), PageSize)

	for records, err := range Pages(context.Background(), src) {
		require.NoError(t, err)
		assert.Len(t, records, PageSize)
		break
	}

	assert.Equal(t, []int{1}, src.Requests())
}
