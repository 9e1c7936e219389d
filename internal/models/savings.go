package models

import (
	"fmt"
	"strconv"
	"strings"
)

// Amount is a positive decimal money value.
//
// The backend serializes decimals as JSON strings ("2500.00") in some
// responses and as numbers in others; Amount decodes both.
type Amount float64

// UnmarshalJSON accepts a JSON number or a numeric string.
func (a *Amount) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "" || s == "null" {
		*a = 0
		return nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("invalid amount %q: %w", s, err)
	}
	*a = Amount(f)
	return nil
}

// MarshalJSON always encodes a plain JSON number.
func (a Amount) MarshalJSON() ([]byte, error) {
	return []byte(strconv.FormatFloat(float64(a), 'f', -1, 64)), nil
}

// Contribution is a single payment toward a savings goal.
type Contribution struct {
	ID          int64        `json:"id"`
	Amount      Amount       `json:"amount"`
	Notes       string       `json:"notes,omitempty"`
	Contributor *UserProfile `json:"user,omitempty"`
}

// SavingsGoal is a shared saving target with its contribution history.
type SavingsGoal struct {
	ID            int64          `json:"id"`
	Title         string         `json:"title"`
	Emoji         string         `json:"emoji"`
	TargetAmount  Amount         `json:"target_amount"`
	TargetDate    Date           `json:"target_date,omitempty"`
	Notes         string         `json:"notes,omitempty"`
	Creator       *UserProfile   `json:"creator,omitempty"`
	Contributions []Contribution `json:"contributions"`
}

// SavingsGoalInput is the request body for creating a savings goal.
type SavingsGoalInput struct {
	Title        string  `json:"title"`
	Emoji        string  `json:"emoji"`
	TargetAmount float64 `json:"target_amount"`
	TargetDate   string  `json:"target_date,omitempty"`
	Notes        string  `json:"notes,omitempty"`
}

// ContributionInput is the request body for adding a contribution.
type ContributionInput struct {
	Amount float64 `json:"amount"`
	Notes  string  `json:"notes,omitempty"`
}
