package services_test

import (
	"context"
	"sync"
	"testing"

	"github.com/kofiasare/playtill/internal/application/services"
	"github.com/kofiasare/playtill/internal/domain"
	"github.com/kofiasare/playtill/internal/infrastructure/persistence/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Two simultaneous uses that each observe a stale balance must not drive a
// card negative: the check and decrement happen under one lock.
func TestGiftCardService_ConcurrentUse(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewGiftCardRepository()
	service := services.NewGiftCardService(repo, testLogger())

	require.NoError(t, service.Issue(ctx, "GC100", 1000))

	const numRequests = 10
	const amount = 300 // only 3 of 10 can succeed

	var wg sync.WaitGroup
	results := make(chan error, numRequests)

	for i := 0; i < numRequests; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := service.Use(ctx, "GC100", amount)
			results <- err
		}()
	}

	wg.Wait()
	close(results)

	successCount := 0
	for err := range results {
		if err == nil {
			successCount++
		} else {
			assert.True(t, domain.IsErrorCode(err, domain.ErrCodeInsufficientBalance),
				"unexpected error: %v", err)
		}
	}

	assert.Equal(t, 3, successCount)

	card, err := service.Get(ctx, "GC100")
	require.NoError(t, err)
	assert.Equal(t, int64(100), card.BalanceCents)
	assert.GreaterOrEqual(t, card.BalanceCents, int64(0))
}

func TestGiftCardService_ConcurrentIssue(t *testing.T) {
	ctx := context.Background()
	service := services.NewGiftCardService(memory.NewGiftCardRepository(), testLogger())

	const numRequests = 10

	var wg sync.WaitGroup
	results := make(chan error, numRequests)

	for i := 0; i < numRequests; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results <- service.Issue(ctx, "GC100", 2000)
		}()
	}

	wg.Wait()
	close(results)

	successCount := 0
	for err := range results {
		if err == nil {
			successCount++
		} else {
			assert.True(t, domain.IsErrorCode(err, domain.ErrCodeAlreadyExists))
		}
	}

	assert.Equal(t, 1, successCount)

	card, err := service.Get(ctx, "GC100")
	require.NoError(t, err)
	assert.Equal(t, int64(2000), card.BalanceCents)
}

func TestCustomCardService_ConcurrentRegister(t *testing.T) {
	ctx := context.Background()
	service := services.NewCustomCardService(memory.NewCustomCardRepository(), testLogger())

	const numRequests = 10

	var wg sync.WaitGroup
	results := make(chan error, numRequests)

	for i := 0; i < numRequests; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results <- service.Register(ctx, "Red Card", "tok-abc")
		}()
	}

	wg.Wait()
	close(results)

	successCount := 0
	for err := range results {
		if err == nil {
			successCount++
		}
	}
	assert.Equal(t, 1, successCount)

	identifier, err := service.Validate(ctx, "tok-abc")
	require.NoError(t, err)
	assert.Equal(t, "Red Card", identifier)
}
