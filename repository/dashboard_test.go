package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/KevCav575/crm-simple/models"
)

func seedDeal(t *testing.T, db *gorm.DB, userID, customerID uint, title, stage string, value float64, closeDate *time.Time, createdAt time.Time) {
	t.Helper()
	deal := models.Deal{
		Title:      title,
		Value:      value,
		Stage:      stage,
		CloseDate:  closeDate,
		CustomerID: customerID,
		UserID:     userID,
		CreatedAt:  createdAt,
	}
	require.NoError(t, db.Create(&deal).Error)
}

func datePtr(t time.Time) *time.Time { return &t }

func TestDashboardCountsAndRevenue(t *testing.T) {
	db := openTestDB(t)
	userID := createUser(t, db, "alice@example.com")
	other := createUser(t, db, "bob@example.com")
	customer := createCustomer(t, db, userID, "Acme")
	otherCustomer := createCustomer(t, db, other, "Initech")

	now := time.Date(2026, time.September, 15, 12, 0, 0, 0, time.UTC)
	thisMonth := time.Date(2026, time.September, 3, 0, 0, 0, 0, time.UTC)
	lastMonth := time.Date(2026, time.August, 20, 0, 0, 0, 0, time.UTC)

	seedDeal(t, db, userID, customer.ID, "Open A", "prospect", 100, nil, now)
	seedDeal(t, db, userID, customer.ID, "Open B", "negotiation", 200, nil, now)
	seedDeal(t, db, userID, customer.ID, "Lost", "lost", 999, nil, now)
	seedDeal(t, db, userID, customer.ID, "Won now", "won", 100, datePtr(thisMonth), now)
	seedDeal(t, db, userID, customer.ID, "Won before", "won", 50, datePtr(lastMonth), now)
	seedDeal(t, db, other, otherCustomer.ID, "Other won", "won", 1000, datePtr(thisMonth), now)

	tasks := &TaskRepository{DB: db}
	_, err := tasks.Create(userID, models.TaskRequest{Title: "Pending", DueDate: "2026-09-20"})
	require.NoError(t, err)
	_, err = tasks.Create(userID, models.TaskRequest{Title: "Running", DueDate: "2026-09-20", Status: "in_progress"})
	require.NoError(t, err)
	_, err = tasks.Create(userID, models.TaskRequest{Title: "Done", DueDate: "2026-09-20", Status: "completed"})
	require.NoError(t, err)

	repo := &DashboardRepository{DB: db}
	summary, err := repo.Summarize(userID, now)
	require.NoError(t, err)

	assert.Equal(t, int64(1), summary.CustomerCount)
	assert.Equal(t, int64(2), summary.OpenDeals)
	assert.Equal(t, float64(100), summary.MonthRevenue)
	assert.Equal(t, int64(2), summary.PendingTasks)
}

func TestDashboardMonthRevenueZeroWithoutWins(t *testing.T) {
	db := openTestDB(t)
	userID := createUser(t, db, "alice@example.com")

	repo := &DashboardRepository{DB: db}
	summary, err := repo.Summarize(userID, time.Now())
	require.NoError(t, err)
	assert.Zero(t, summary.MonthRevenue)
	assert.Empty(t, summary.RecentActivities)
}

func TestDashboardRecentActivities(t *testing.T) {
	db := openTestDB(t)
	userID := createUser(t, db, "alice@example.com")

	base := time.Date(2026, time.September, 1, 10, 0, 0, 0, time.UTC)
	for i, name := range []string{"C1", "C2", "C3", "C4"} {
		customer := models.Customer{
			Name:      name,
			Company:   name + " Inc",
			Email:     name + "@example.com",
			Status:    "new",
			UserID:    userID,
			CreatedAt: base.Add(time.Duration(i) * time.Hour),
		}
		require.NoError(t, db.Create(&customer).Error)
	}
	holder := models.Customer{Name: "Holder", Company: "H", Email: "h@example.com", UserID: userID, CreatedAt: base}
	require.NoError(t, db.Create(&holder).Error)

	for i, title := range []string{"D1", "D2", "D3"} {
		seedDeal(t, db, userID, holder.ID, title, "prospect", float64(100*(i+1)), nil,
			base.Add(time.Duration(i)*time.Hour+30*time.Minute))
	}

	repo := &DashboardRepository{DB: db}
	summary, err := repo.Summarize(userID, base.AddDate(0, 0, 1))
	require.NoError(t, err)

	require.Len(t, summary.RecentActivities, 5)
	for i := 1; i < len(summary.RecentActivities); i++ {
		assert.False(t, summary.RecentActivities[i].Time.After(summary.RecentActivities[i-1].Time),
			"activities must be sorted newest first")
	}
	assert.Equal(t, "customer", summary.RecentActivities[0].Type)
	assert.Equal(t, "Added customer C4", summary.RecentActivities[0].Message)
	assert.Equal(t, "Created deal D3 worth $300", summary.RecentActivities[1].Message)
}
