package export

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atozflooring/po-extract/internal/config"
	"github.com/atozflooring/po-extract/internal/extract"
	"github.com/atozflooring/po-extract/internal/payload"
)

type fakeAPI struct {
	calls     []string
	nextID    int
	orders    []*payload.Order
	linked    [][]string
	failOn    string
	failError error
}

func (f *fakeAPI) CreateOrder(_ context.Context, order *payload.Order) (string, json.RawMessage, error) {
	f.calls = append(f.calls, "create:"+order.PONumber)
	if f.failOn == order.PONumber {
		return "", nil, f.failError
	}
	f.nextID++
	f.orders = append(f.orders, order)
	return fmt.Sprintf("RF%d", f.nextID), nil, nil
}

func (f *fakeAPI) CreateCustomer(context.Context, *payload.Customer) (string, error) {
	f.calls = append(f.calls, "customer")
	return "C1", nil
}

func (f *fakeAPI) LinkOrders(_ context.Context, ids []string) error {
	f.calls = append(f.calls, "link")
	if f.failOn == "link" {
		return f.failError
	}
	f.linked = append(f.linked, ids)
	return nil
}

func exportRecord() *extract.Record {
	rec := extract.NewRecord()
	rec.PONumber = "20250342-01"
	rec.CustomerName = "Jane Citizen"
	rec.SupervisorName = "Sam Foreman"
	rec.SupervisorPhone = "0400 111 222"
	rec.DollarValue = decimal.RequireFromString("4500.00")
	return rec
}

func newExportService(api OrderAPI) *Service {
	return NewService(payload.NewBuilder(config.DefaultConfig()), api, nil)
}

func TestExportSingleOrder(t *testing.T) {
	api := &fakeAPI{}
	svc := newExportService(api)

	result, err := svc.Export(context.Background(), Request{
		Record: exportRecord(),
		SoldTo: payload.Party{ID: "12345"},
	})
	require.NoError(t, err)

	assert.Equal(t, "RF1", result.PrimaryID)
	assert.Empty(t, result.SecondID)
	assert.False(t, result.Linked)
	assert.Equal(t, []string{"create:20250342-01"}, api.calls)
}

func TestExportBillingGroup(t *testing.T) {
	api := &fakeAPI{}
	svc := newExportService(api)

	result, err := svc.Export(context.Background(), Request{
		Record: exportRecord(),
		SoldTo: payload.Party{ID: "12345"},
		Billing: &BillingGroup{
			POSuffix:     "02",
			ScopeOfWorks: "Floor preparation",
			SecondValue:  "500",
		},
	})
	require.NoError(t, err)

	assert.Equal(t, "RF1", result.PrimaryID)
	assert.Equal(t, "RF2", result.SecondID)
	assert.True(t, result.Linked)
	assert.Equal(t, []string{"create:20250342-01", "create:20250342-02", "link"}, api.calls)
	require.Len(t, api.linked, 1)
	assert.Equal(t, []string{"RF1", "RF2"}, api.linked[0])

	require.Len(t, api.orders, 2)
	assert.Equal(t, "Floor preparation", api.orders[1].PublicNotes)
	assert.Equal(t, "500", api.orders[1].Products[0].Quantity)
}

func TestExportAppliesManualCorrections(t *testing.T) {
	api := &fakeAPI{}
	svc := newExportService(api)

	_, err := svc.Export(context.Background(), Request{
		Record: exportRecord(),
		SoldTo: payload.Party{ID: "12345"},
		Manual: &extract.Record{City: "Sydney", SupervisorPhone: "0411 000 000"},
		Billing: &BillingGroup{
			POSuffix:    "02",
			SecondValue: "500",
		},
	})
	require.NoError(t, err)

	require.Len(t, api.orders, 2)
	assert.Equal(t, "Sydney", api.orders[0].ShipTo.City)
	assert.Equal(t, "Sam Foreman & 0411 000 000", api.orders[0].JobNumber)
	// The second order is derived from the corrected record too.
	assert.Equal(t, "Sam Foreman 0411 000 000", api.orders[1].JobNumber)
}

func TestExportPrimaryFailureStopsEverything(t *testing.T) {
	boom := errors.New("rfms down")
	api := &fakeAPI{failOn: "20250342-01", failError: boom}
	svc := newExportService(api)

	_, err := svc.Export(context.Background(), Request{
		Record:  exportRecord(),
		SoldTo:  payload.Party{ID: "12345"},
		Billing: &BillingGroup{POSuffix: "02"},
	})
	require.ErrorIs(t, err, boom)

	// The second order was never attempted.
	assert.Equal(t, []string{"create:20250342-01"}, api.calls)
}

func TestExportSecondFailureKeepsPrimary(t *testing.T) {
	boom := errors.New("rfms down")
	api := &fakeAPI{failOn: "20250342-02", failError: boom}
	svc := newExportService(api)

	result, err := svc.Export(context.Background(), Request{
		Record:  exportRecord(),
		SoldTo:  payload.Party{ID: "12345"},
		Billing: &BillingGroup{POSuffix: "02"},
	})
	require.ErrorIs(t, err, boom)

	assert.Equal(t, "RF1", result.PrimaryID)
	assert.Empty(t, result.SecondID)
	assert.Equal(t, []string{"create:20250342-01", "create:20250342-02"}, api.calls)
}

func TestExportLinkFailureReportsBothOrders(t *testing.T) {
	boom := errors.New("link rejected")
	api := &fakeAPI{failOn: "link", failError: boom}
	svc := newExportService(api)

	result, err := svc.Export(context.Background(), Request{
		Record:  exportRecord(),
		SoldTo:  payload.Party{ID: "12345"},
		Billing: &BillingGroup{POSuffix: "02"},
	})
	require.ErrorIs(t, err, boom)

	assert.Equal(t, "RF1", result.PrimaryID)
	assert.Equal(t, "RF2", result.SecondID)
	assert.False(t, result.Linked)
}

func TestExportMissingCustomerID(t *testing.T) {
	api := &fakeAPI{}
	svc := newExportService(api)

	_, err := svc.Export(context.Background(), Request{Record: exportRecord()})
	require.ErrorIs(t, err, payload.ErrMissingCustomerID)
	assert.Empty(t, api.calls)
}
