package models

import (
	"encoding/json"
	"testing"
)

func TestDate_DecodesBothWireForms(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "bare date", in: `"2026-07-04"`, want: "2026-07-04"},
		{name: "full timestamp truncates to day", in: `"2026-07-04T18:30:00.000000Z"`, want: "2026-07-04"},
		{name: "null is zero", in: `null`, want: ""},
		{name: "empty string is zero", in: `""`, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Date
			if err := json.Unmarshal([]byte(tt.in), &d); err != nil {
				t.Fatalf("Unmarshal(%s) failed: %v", tt.in, err)
			}
			if d.String() != tt.want {
				t.Errorf("got %q, want %q", d.String(), tt.want)
			}
		})
	}

	var d Date
	if err := json.Unmarshal([]byte(`"not a date"`), &d); err == nil {
		t.Error("expected error for garbage input")
	}
}

func TestDate_EncodesBareForm(t *testing.T) {
	out, err := json.Marshal(NewDate(2026, 7, 4))
	if err != nil {
		t.Fatal(err)
	}
	if string(out) != `"2026-07-04"` {
		t.Errorf("got %s", out)
	}

	out, err = json.Marshal(Date{})
	if err != nil {
		t.Fatal(err)
	}
	if string(out) != "null" {
		t.Errorf("zero date encoded as %s, want null", out)
	}
}

func TestAmount_DecodesStringAndNumber(t *testing.T) {
	var g SavingsGoal
	payload := `{"id":1,"title":"Trip","target_amount":"5000.00","contributions":[{"id":2,"amount":1234.5}]}`
	if err := json.Unmarshal([]byte(payload), &g); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if g.TargetAmount != 5000 {
		t.Errorf("TargetAmount = %v", g.TargetAmount)
	}
	if g.Contributions[0].Amount != 1234.5 {
		t.Errorf("Amount = %v", g.Contributions[0].Amount)
	}

	var a Amount
	if err := json.Unmarshal([]byte(`"12,5"`), &a); err == nil {
		t.Error("expected error for non-numeric string")
	}
}
