package services

import (
	"fmt"

	"github.com/workflowhq/workflow-api/internal/models"
	"github.com/workflowhq/workflow-api/internal/storage"
)

// TaskStats counts completed versus total tasks.
type TaskStats struct {
	Completed int `json:"completed"`
	Total     int `json:"total"`
}

// BudgetStats sums budget figures across all tasks.
type BudgetStats struct {
	Total float64 `json:"total"`
	Paid  float64 `json:"paid"`
}

// HourStats is a placeholder pair; there is no time-tracking data yet.
// TODO: derive from real time entries once the time-tracking tables land.
type HourStats struct {
	Tracked float64 `json:"tracked"`
	Total   float64 `json:"total"`
}

// DashboardStats is the aggregate served by the dashboard endpoint.
type DashboardStats struct {
	Tasks  TaskStats   `json:"tasks"`
	Budget BudgetStats `json:"budget"`
	Hours  HourStats   `json:"hours"`
}

// DashboardService derives dashboard statistics from current store state.
// Stats are recomputed on every call; nothing is cached.
type DashboardService struct {
	store storage.Store
}

// NewDashboardService creates a new DashboardService.
func NewDashboardService(store storage.Store) *DashboardService {
	return &DashboardService{store: store}
}

// Stats computes the dashboard aggregate over all tasks.
func (s *DashboardService) Stats() (*DashboardStats, error) {
	tasks, err := s.store.GetTasks()
	if err != nil {
		return nil, fmt.Errorf("failed to load tasks: %w", err)
	}

	stats := DashboardStats{
		Tasks: TaskStats{Total: len(tasks)},
		Hours: HourStats{Tracked: 32.5, Total: 40},
	}
	for _, task := range tasks {
		if task.Status == models.TaskStatusCompleted {
			stats.Tasks.Completed++
		}
		stats.Budget.Total += task.TotalBudget
		stats.Budget.Paid += task.PaidAmount
	}
	return &stats, nil
}
