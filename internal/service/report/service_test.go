package report

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/subkh4n/SIPILPRO-sub001/internal/domain/project"
	"github.com/subkh4n/SIPILPRO-sub001/internal/domain/purchase"
	"github.com/subkh4n/SIPILPRO-sub001/internal/domain/vendor"
	"github.com/subkh4n/SIPILPRO-sub001/internal/remote"
	"github.com/subkh4n/SIPILPRO-sub001/internal/store"
)

type stubRemote struct {
	snapshot remote.Snapshot
}

func (s *stubRemote) FetchAll(ctx context.Context) (remote.Snapshot, error) { return s.snapshot, nil }
func (s *stubRemote) Create(ctx context.Context, kind remote.Kind, record any) (string, error) {
	return "", nil
}
func (s *stubRemote) Update(ctx context.Context, kind remote.Kind, id string, record any) error {
	return nil
}
func (s *stubRemote) Delete(ctx context.Context, kind remote.Kind, id string) error { return nil }

var reportToday = time.Date(2026, 9, 1, 8, 0, 0, 0, time.UTC)

func newReportService(t *testing.T) *Service {
	t.Helper()

	snap := remote.Snapshot{
		Projects: []project.Project{
			{ID: "A", Name: "Ruko Blok C", Status: project.StatusActive, TargetBudget: decimal.NewFromInt(1000000)},
			{ID: "B", Name: "Gudang Timur", Status: project.StatusCompleted, TargetBudget: decimal.NewFromInt(500000)},
		},
		Vendors: []vendor.Vendor{
			{ID: "v1", Name: "TB Makmur"},
		},
		Purchases: []purchase.Record{
			{
				ID: "p1", VendorID: "v1", InvoiceNo: "INV-1",
				Total: decimal.NewFromInt(250000), Status: purchase.StatusUnpaid, DueDate: "2026-08-30",
				Items: []purchase.LineItem{{Name: "Semen", Total: decimal.NewFromInt(250000), ProjectID: "A"}},
			},
			{
				ID: "p2", VendorID: "v1", InvoiceNo: "INV-2",
				Total: decimal.NewFromInt(100000), Status: purchase.StatusUnpaid, DueDate: "2026-09-03",
				Items: []purchase.LineItem{{Name: "Pasir", Total: decimal.NewFromInt(100000), ProjectID: "A"}},
			},
			{
				ID: "p3", VendorID: "v1", InvoiceNo: "INV-3",
				Total: decimal.NewFromInt(50000), Status: purchase.StatusPaid, PaidDate: "2026-08-20",
				Items: []purchase.LineItem{{Name: "Besi", Total: decimal.NewFromInt(50000), ProjectID: "B"}},
			},
		},
	}

	st := store.New(&stubRemote{snapshot: snap}, nil, decimal.NewFromInt(500000))
	require.NoError(t, st.Load(context.Background()))
	return NewService(st)
}

func TestProjectCostsRealization(t *testing.T) {
	svc := newReportService(t)

	got, err := svc.ProjectCosts("A")
	require.NoError(t, err)

	// Both unpaid invoices land on A's material cost.
	assert.True(t, got.MaterialCost.Equal(decimal.NewFromInt(350000)), "got %s", got.MaterialCost)
	assert.True(t, got.TargetBudget.Equal(decimal.NewFromInt(1000000)))
	// 350000 of 1000000.
	assert.True(t, got.UsagePercent.Equal(decimal.NewFromInt(35)), "got %s", got.UsagePercent)
}

func TestProjectCostsUnknownProject(t *testing.T) {
	svc := newReportService(t)

	_, err := svc.ProjectCosts("missing")
	assert.ErrorIs(t, err, project.ErrProjectNotFound)
}

func TestDashboardSummary(t *testing.T) {
	svc := newReportService(t)

	summary := svc.Dashboard(reportToday)

	// 500000 initial minus the one paid purchase.
	assert.True(t, summary.CashBalance.Equal(decimal.NewFromInt(450000)), "got %s", summary.CashBalance)
	assert.True(t, summary.TotalUnpaidDebt.Equal(decimal.NewFromInt(350000)), "got %s", summary.TotalUnpaidDebt)
	assert.Equal(t, 1, summary.OverdueDebts)

	// Only the active project appears.
	require.Len(t, summary.ActiveProjects, 1)
	assert.Equal(t, "Ruko Blok C", summary.ActiveProjects[0].ProjectName)
}

func TestDebtAgingGroupsByTier(t *testing.T) {
	svc := newReportService(t)

	aging := svc.DebtAging(reportToday)

	assert.True(t, aging.Total.Equal(decimal.NewFromInt(350000)), "got %s", aging.Total)

	require.Len(t, aging.Tiers[purchase.TierOverdue], 1)
	assert.Equal(t, "p1", aging.Tiers[purchase.TierOverdue][0].PurchaseID)
	assert.Equal(t, "TB Makmur", aging.Tiers[purchase.TierOverdue][0].VendorName)

	// Due in 2 days.
	require.Len(t, aging.Tiers[purchase.TierUrgent], 1)
	assert.Equal(t, "p2", aging.Tiers[purchase.TierUrgent][0].PurchaseID)

	// Paid purchases never show up.
	for _, rows := range aging.Tiers {
		for _, row := range rows {
			assert.NotEqual(t, "p3", row.PurchaseID)
		}
	}
}
