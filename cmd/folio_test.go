package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestItemContext(svc *serviceContext) *itemContext {
	cl := clientContext{reqID: "testtest", start: time.Now()}

	i := itemContext{}
	i.init(svc, &cl)
	i.folio.token = "test-token"

	return &i
}

func TestGetFundCodeAllowSet(t *testing.T) {
	f := defaultTestFolio()
	f.orderLine = `{"fundDistribution":[{"code":"p2053"},{"code":"x999"}]}`

	svc := newTestService(t, f.server(t).URL)
	i := newTestItemContext(svc)

	fund, err := i.getFundCode(testHoldingsID)
	require.NoError(t, err)
	assert.Equal(t, "p2053", fund)
}

func TestGetFundCodeNoMatch(t *testing.T) {
	f := defaultTestFolio()
	f.orderLine = `{"fundDistribution":[{"code":"x999"}]}`

	svc := newTestService(t, f.server(t).URL)
	i := newTestItemContext(svc)

	fund, err := i.getFundCode(testHoldingsID)
	require.NoError(t, err)
	assert.Equal(t, "", fund)
}

func TestGetFundCodeNoSummaries(t *testing.T) {
	f := defaultTestFolio()
	f.holdingSummaries = `{"holdingSummaries":[]}`

	svc := newTestService(t, f.server(t).URL)
	i := newTestItemContext(svc)

	fund, err := i.getFundCode(testHoldingsID)
	require.NoError(t, err)
	assert.Equal(t, "", fund)
}

func TestGetNoteTypeIDUndefined(t *testing.T) {
	f := defaultTestFolio()
	f.noteTypes = `{"instanceNoteTypes":[]}`

	svc := newTestService(t, f.server(t).URL)
	i := newTestItemContext(svc)

	id, err := i.getNoteTypeID(collectionNoteTypeName)
	require.NoError(t, err)
	assert.Equal(t, "", id)
}

func TestGetLocationMissingID(t *testing.T) {
	f := defaultTestFolio()

	svc := newTestService(t, f.server(t).URL)
	i := newTestItemContext(svc)

	holdings := folioHoldingsRecord{ID: testHoldingsID}

	_, err := i.getLocation(&holdings)
	assert.Error(t, err)
}

func TestRequireUUID(t *testing.T) {
	assert.NoError(t, requireUUID(testHoldingsID, "holdings record id"))
	assert.Error(t, requireUUID("not-a-uuid", "holdings record id"))
	assert.Error(t, requireUUID("", "holdings record id"))
}
