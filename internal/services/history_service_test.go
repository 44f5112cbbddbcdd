package services

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Husam-Abdulraheem/freelance-pricing-ai/internal/models/db_models"
	"github.com/Husam-Abdulraheem/freelance-pricing-ai/pkg/utils"
)

func sampleResult(price float64) db_models.PricingResult {
	return db_models.PricingResult{
		Range:    db_models.PriceRange{Min: price, Max: price * 2},
		Level:    "standard",
		Currency: "USD",
		Packages: db_models.PricingPackages{
			Standard: db_models.PricingPackage{Name: "Growth", Price: price},
		},
	}
}

func TestRecordKeepsMostRecentFifty(t *testing.T) {
	store := newMemStore()
	svc := NewHistoryService(store)
	ctx := context.Background()
	state := db_models.DefaultWizardState()

	for i := 0; i <= MaxHistoryItems; i++ {
		svc.Record(ctx, fmt.Sprintf("client-%d", i), "", state, sampleResult(100))
	}

	history := svc.List(ctx)
	require.Len(t, history, MaxHistoryItems)
	assert.Equal(t, fmt.Sprintf("client-%d", MaxHistoryItems), history[0].ClientName)
	// The oldest entry fell off the end.
	assert.Equal(t, "client-1", history[len(history)-1].ClientName)
}

func TestRecordPopulatesIdentityFields(t *testing.T) {
	svc := NewHistoryService(newMemStore())
	ctx := context.Background()

	svc.Record(ctx, "Acme", "Website", db_models.DefaultWizardState(), sampleResult(500))

	history := svc.List(ctx)
	require.Len(t, history, 1)
	assert.NotEmpty(t, history[0].ID)
	assert.NotZero(t, history[0].Timestamp)
	assert.Equal(t, "Acme", history[0].ClientName)
	assert.Equal(t, "Website", history[0].ProjectName)
	assert.Equal(t, 500.0, history[0].Result.Packages.Standard.Price)
}

func TestRecordEvictsOnWriteFailure(t *testing.T) {
	store := newMemStore()
	svc := NewHistoryService(store)
	ctx := context.Background()
	state := db_models.DefaultWizardState()

	for i := 0; i < MaxHistoryItems; i++ {
		svc.Record(ctx, fmt.Sprintf("client-%d", i), "", state, sampleResult(100))
	}
	require.Len(t, svc.List(ctx), MaxHistoryItems)

	// First write fails, the halved retry succeeds.
	store.failWrites = 1
	svc.Record(ctx, "newest", "", state, sampleResult(100))

	history := svc.List(ctx)
	require.Len(t, history, MaxHistoryItems/2)
	assert.Equal(t, "newest", history[0].ClientName)
}

func TestRecordDropsSaveWhenRetryAlsoFails(t *testing.T) {
	store := newMemStore()
	svc := NewHistoryService(store)
	ctx := context.Background()
	state := db_models.DefaultWizardState()

	svc.Record(ctx, "kept", "", state, sampleResult(100))

	store.failWrites = 2
	svc.Record(ctx, "dropped", "", state, sampleResult(100))

	history := svc.List(ctx)
	require.Len(t, history, 1)
	assert.Equal(t, "kept", history[0].ClientName)
}

func TestRemoveMissingEntry(t *testing.T) {
	svc := NewHistoryService(newMemStore())
	err := svc.Remove(context.Background(), "no-such-id")
	assert.ErrorIs(t, err, utils.ErrHistoryNotFound)
}

func TestRemoveDeletesOnlyTarget(t *testing.T) {
	svc := NewHistoryService(newMemStore())
	ctx := context.Background()
	state := db_models.DefaultWizardState()

	svc.Record(ctx, "first", "", state, sampleResult(100))
	svc.Record(ctx, "second", "", state, sampleResult(200))

	history := svc.List(ctx)
	require.Len(t, history, 2)

	require.NoError(t, svc.Remove(ctx, history[1].ID))

	remaining := svc.List(ctx)
	require.Len(t, remaining, 1)
	assert.Equal(t, "second", remaining[0].ClientName)
}

func TestClearEmptiesHistory(t *testing.T) {
	svc := NewHistoryService(newMemStore())
	ctx := context.Background()

	svc.Record(ctx, "one", "", db_models.DefaultWizardState(), sampleResult(100))
	require.NoError(t, svc.Clear(ctx))
	assert.Empty(t, svc.List(ctx))
}

func TestExportImportRoundTrip(t *testing.T) {
	source := NewHistoryService(newMemStore())
	ctx := context.Background()
	state := db_models.DefaultWizardState()

	source.Record(ctx, "first", "Website", state, sampleResult(100))
	source.Record(ctx, "second", "App", state, sampleResult(200))

	exported, err := source.Export(ctx)
	require.NoError(t, err)

	target := NewHistoryService(newMemStore())
	require.NoError(t, target.Import(ctx, exported))

	assert.Equal(t, source.List(ctx), target.List(ctx))
}

func TestImportRejectsNonArray(t *testing.T) {
	svc := NewHistoryService(newMemStore())
	ctx := context.Background()

	svc.Record(ctx, "kept", "", db_models.DefaultWizardState(), sampleResult(100))

	assert.ErrorIs(t, svc.Import(ctx, `{"id": "x"}`), utils.ErrImportNotArray)
	assert.ErrorIs(t, svc.Import(ctx, `not json`), utils.ErrImportNotArray)

	// A rejected import leaves the stored list untouched.
	history := svc.List(ctx)
	require.Len(t, history, 1)
	assert.Equal(t, "kept", history[0].ClientName)
}

func TestImportRejectsMalformedItems(t *testing.T) {
	svc := NewHistoryService(newMemStore())
	ctx := context.Background()

	missingClient := `[{"id": "a", "timestamp": 1700000000000, "result": {}}]`
	assert.ErrorIs(t, svc.Import(ctx, missingClient), utils.ErrImportInvalidItem)

	zeroTimestamp := `[{"id": "a", "clientName": "Acme", "timestamp": 0, "result": {}}]`
	assert.ErrorIs(t, svc.Import(ctx, zeroTimestamp), utils.ErrImportInvalidItem)

	missingResult := `[{"id": "a", "clientName": "Acme", "timestamp": 1700000000000}]`
	assert.ErrorIs(t, svc.Import(ctx, missingResult), utils.ErrImportInvalidItem)
}

func TestImportReplacesExistingHistory(t *testing.T) {
	svc := NewHistoryService(newMemStore())
	ctx := context.Background()

	svc.Record(ctx, "old", "", db_models.DefaultWizardState(), sampleResult(100))

	payload := `[{"id": "imported-1", "clientName": "Imported", "timestamp": 1700000000000, "result": {"currency": "EUR"}}]`
	require.NoError(t, svc.Import(ctx, payload))

	history := svc.List(ctx)
	require.Len(t, history, 1)
	assert.Equal(t, "Imported", history[0].ClientName)
	assert.Equal(t, "EUR", history[0].Result.Currency)
}
