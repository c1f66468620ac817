package repository

import (
	"fmt"
	"sort"
	"strconv"
	"time"

	"gorm.io/gorm"

	"github.com/KevCav575/crm-simple/models"
)

var openStages = []string{"prospect", "negotiation", "proposal"}
var pendingStatuses = []string{"pending", "in_progress"}

type DashboardRepository struct {
	DB *gorm.DB
}

// Summarize computes the dashboard numbers for one user. The current time is
// a parameter so the month window is deterministic in tests.
func (r *DashboardRepository) Summarize(userID uint, now time.Time) (*models.DashboardSummary, error) {
	summary := models.DashboardSummary{RecentActivities: []models.Activity{}}

	if err := r.DB.Model(&models.Customer{}).
		Where("user_id = ?", userID).
		Count(&summary.CustomerCount).Error; err != nil {
		return nil, err
	}

	if err := r.DB.Model(&models.Deal{}).
		Where("user_id = ? AND stage IN ?", userID, openStages).
		Count(&summary.OpenDeals).Error; err != nil {
		return nil, err
	}

	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	nextMonth := monthStart.AddDate(0, 1, 0)
	if err := r.DB.Model(&models.Deal{}).
		Where("user_id = ? AND stage = ? AND close_date >= ? AND close_date < ?",
			userID, "won", monthStart, nextMonth).
		Select("COALESCE(SUM(value), 0)").
		Scan(&summary.MonthRevenue).Error; err != nil {
		return nil, err
	}

	if err := r.DB.Model(&models.Task{}).
		Where("user_id = ? AND status IN ?", userID, pendingStatuses).
		Count(&summary.PendingTasks).Error; err != nil {
		return nil, err
	}

	var customers []models.Customer
	if err := r.DB.Where("user_id = ?", userID).
		Order("created_at desc").Limit(3).
		Find(&customers).Error; err != nil {
		return nil, err
	}
	for _, customer := range customers {
		summary.RecentActivities = append(summary.RecentActivities, models.Activity{
			Type:    "customer",
			Message: fmt.Sprintf("Added customer %s", customer.Name),
			Time:    customer.CreatedAt,
		})
	}

	var deals []models.Deal
	if err := r.DB.Where("user_id = ?", userID).
		Order("created_at desc").Limit(3).
		Find(&deals).Error; err != nil {
		return nil, err
	}
	for _, deal := range deals {
		value := strconv.FormatFloat(deal.Value, 'f', -1, 64)
		summary.RecentActivities = append(summary.RecentActivities, models.Activity{
			Type:    "deal",
			Message: fmt.Sprintf("Created deal %s worth $%s", deal.Title, value),
			Time:    deal.CreatedAt,
		})
	}

	sort.Slice(summary.RecentActivities, func(i, j int) bool {
		return summary.RecentActivities[i].Time.After(summary.RecentActivities[j].Time)
	})
	if len(summary.RecentActivities) > 5 {
		summary.RecentActivities = summary.RecentActivities[:5]
	}

	return &summary, nil
}
