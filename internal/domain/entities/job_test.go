package entities

import (
	"testing"
	"time"
)

func TestJobPaymentSummary(t *testing.T) {
	t.Run("partial", func(t *testing.T) {
		job := Job{Value: 1000, Payments: []Payment{{Amount: 300}, {Amount: 200}}}
		s := job.PaymentSummary()
		if s.TotalPaid != 500 || s.Remaining != 500 || s.IsFullyPaid {
			t.Fatalf("unexpected summary %#v", s)
		}
	})

	t.Run("overpayment clamps remaining", func(t *testing.T) {
		job := Job{Value: 100, Payments: []Payment{{Amount: 150}}}
		s := job.PaymentSummary()
		if s.TotalPaid != 150 || s.Remaining != 0 || !s.IsFullyPaid {
			t.Fatalf("unexpected summary %#v", s)
		}
	})

	t.Run("zero-value job is never fully paid", func(t *testing.T) {
		job := Job{Value: 0}
		if s := job.PaymentSummary(); s.IsFullyPaid {
			t.Fatalf("unexpected summary %#v", s)
		}
	})
}

func TestJobBaseName(t *testing.T) {
	cases := []struct {
		name string
		want string
	}{
		{"Social media (Mês Seguinte)", "Social media"},
		{"Social media (MÊS SEGUINTE)", "Social media"},
		{"Social media", "Social media"},
		{"(Mês Seguinte) prefixo fica", "(Mês Seguinte) prefixo fica"},
	}
	for _, c := range cases {
		if got := (Job{Name: c.name}).BaseName(); got != c.want {
			t.Fatalf("BaseName(%q) = %q, want %q", c.name, got, c.want)
		}
	}
}

func TestISOTimeRoundTrip(t *testing.T) {
	now := time.Date(2026, 8, 31, 10, 30, 0, 0, time.UTC)
	s := FormatISOTime(now)
	if s != "2026-08-31T10:30:00.000Z" {
		t.Fatalf("unexpected format %q", s)
	}
	parsed, err := ParseISOTime(s)
	if err != nil {
		t.Fatalf("ParseISOTime: %v", err)
	}
	if !parsed.Equal(now) {
		t.Fatalf("round trip mismatch: %v != %v", parsed, now)
	}

	if _, err := ParseISOTime("31/08/2026"); err == nil {
		t.Fatalf("expected error for malformed timestamp")
	}
}
