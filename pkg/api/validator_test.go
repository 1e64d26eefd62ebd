package api

import "testing"

func TestWaterPayloadBounds(t *testing.T) {
	cases := []struct {
		amount float64
		ok     bool
	}{
		{0.5, true},
		{1.0, true},
		{0, false},
		{-0.2, false},
		{1.5, false},
	}
	for _, c := range cases {
		err := WaterPayload{Amount: c.amount}.Validate()
		if (err == nil) != c.ok {
			t.Errorf("amount %v: err = %v, want ok=%v", c.amount, err, c.ok)
		}
	}
}

func TestFeedPayloadBounds(t *testing.T) {
	if err := (FeedPayload{Amount: 0.8}).Validate(); err != nil {
		t.Errorf("valid feed rejected: %v", err)
	}
	if err := (FeedPayload{Amount: 2}).Validate(); err == nil {
		t.Error("overdose must be rejected")
	}
}

func TestTransplantPayloadRequiresContainer(t *testing.T) {
	if err := (TransplantPayload{}).Validate(); err == nil {
		t.Error("empty container must be rejected")
	}
	if err := (TransplantPayload{Container: "7gal"}).Validate(); err != nil {
		t.Errorf("valid transplant rejected: %v", err)
	}
}

func TestConsolePayloadRequiresLine(t *testing.T) {
	if err := (ConsolePayload{}).Validate(); err == nil {
		t.Error("empty console line must be rejected")
	}
}
