package models

import "time"

// Activity is one entry of the dashboard's recent-activity feed.
type Activity struct {
	Type    string    `json:"type"` // customer or deal
	Message string    `json:"message"`
	Time    time.Time `json:"time"`
}

type DashboardSummary struct {
	CustomerCount    int64      `json:"customer_count"`
	OpenDeals        int64      `json:"open_deals"`
	MonthRevenue     float64    `json:"month_revenue"`
	PendingTasks     int64      `json:"pending_tasks"`
	RecentActivities []Activity `json:"recent_activities"`
}
