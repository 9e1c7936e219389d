// Package calculator holds the derived computations over fetched snapshots:
// progress percentages, savings totals, and the upcoming/past event split.
// Every function is pure and recomputed on each read; nothing here performs
// I/O or caches results.
package calculator

import (
	"math"

	"github.com/tara-app/tara/internal/models"
)

// ChecklistProgress returns the completion percentage of a checklist,
// rounded to the nearest integer. An empty checklist is 0%.
func ChecklistProgress(c models.Checklist) int {
	total := len(c.Items)
	if total == 0 {
		return 0
	}
	completed := 0
	for _, item := range c.Items {
		if item.IsCompleted {
			completed++
		}
	}
	return int(math.Round(float64(completed) / float64(total) * 100))
}

// SavingsSaved returns the sum of all contribution amounts on a goal.
func SavingsSaved(g models.SavingsGoal) float64 {
	var saved float64
	for _, c := range g.Contributions {
		saved += float64(c.Amount)
	}
	return saved
}

// SavingsProgress returns the goal's completion percentage, capped at 100.
// A goal with a non-positive target is 0%.
func SavingsProgress(g models.SavingsGoal) int {
	target := float64(g.TargetAmount)
	if target <= 0 {
		return 0
	}
	progress := int(math.Round(SavingsSaved(g) / target * 100))
	if progress > 100 {
		return 100
	}
	return progress
}

// SavingsRemaining returns the amount still needed to reach the target,
// floored at zero once the goal is overshot.
func SavingsRemaining(g models.SavingsGoal) float64 {
	remaining := float64(g.TargetAmount) - SavingsSaved(g)
	if remaining < 0 {
		return 0
	}
	return remaining
}

// Achieved reports whether the goal has been fully funded.
func Achieved(g models.SavingsGoal) bool {
	return SavingsProgress(g) >= 100
}

// SavingsSummary aggregates a set of goals for the dashboard.
type SavingsSummary struct {
	TotalTarget   float64
	TotalSaved    float64
	AchievedCount int
}

// AggregateSavings totals targets and saved amounts across all goals and
// counts how many are achieved.
func AggregateSavings(goals []models.SavingsGoal) SavingsSummary {
	var summary SavingsSummary
	for _, g := range goals {
		summary.TotalTarget += float64(g.TargetAmount)
		summary.TotalSaved += SavingsSaved(g)
		if Achieved(g) {
			summary.AchievedCount++
		}
	}
	return summary
}
