package validator

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestIsEmpty(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"", true},
		{"   ", true},
		{"abc", false},
		{" abc ", false},
	}
	for _, c := range cases {
		got := IsEmpty(c.input)
		if got != c.want {
			t.Errorf("IsEmpty(%q) = %v, want %v", c.input, got, c.want)
		}
	}
}

func TestIsValidEmail(t *testing.T) {
	valid := []string{"test@example.com", "user.name+1@domain.co", "a@b.cd"}
	invalid := []string{"test@", "@example.com", "test@com", " ", ""}
	for _, email := range valid {
		if !IsValidEmail(email) {
			t.Errorf("IsValidEmail(%q) = false, want true", email)
		}
	}
	for _, email := range invalid {
		if IsValidEmail(email) {
			t.Errorf("IsValidEmail(%q) = true, want false", email)
		}
	}
}

func TestIsValidUUID(t *testing.T) {
	valid := []string{
		"0188d0f2-7b8c-7b4a-8a2b-6b8b8b8b8b8b", // valid UUIDv7
		"0188D0F2-7B8C-7B4A-8A2B-6B8B8B8B8B8B", // valid UUIDv7 (uppercase)
	}
	invalid := []string{
		"123e4567-e89b-12d3-a456-426614174000", // not v7
		"0188d0f27b8c7b4a8a2b6b8b8b8b8b8b",     // missing dashes
		"g188d0f2-7b8c-7b4a-8a2b-6b8b8b8b8b8b", // invalid hex
		"",
	}
	for _, id := range valid {
		if !IsValidUUID(id) {
			t.Errorf("IsValidUUID(%q) = false, want true", id)
		}
	}
	for _, id := range invalid {
		if IsValidUUID(id) {
			t.Errorf("IsValidUUID(%q) = true, want false", id)
		}
	}
}

func TestIsValidDate(t *testing.T) {
	if _, ok := IsValidDate("2025-03-15"); !ok {
		t.Error("IsValidDate(2025-03-15) = false, want true")
	}
	for _, bad := range []string{"15-03-2025", "2025/03/15", "2025-13-01", ""} {
		if _, ok := IsValidDate(bad); ok {
			t.Errorf("IsValidDate(%q) = true, want false", bad)
		}
	}
}

func TestIsValidCurrency(t *testing.T) {
	valid := []string{"ZAR", "USD", "EUR"}
	invalid := []string{"zar", "ZA", "ZARR", "12A", ""}
	for _, code := range valid {
		if !IsValidCurrency(code) {
			t.Errorf("IsValidCurrency(%q) = false, want true", code)
		}
	}
	for _, code := range invalid {
		if IsValidCurrency(code) {
			t.Errorf("IsValidCurrency(%q) = true, want false", code)
		}
	}
}

func TestIsValidContractNumber(t *testing.T) {
	valid := []string{"SC-2025/001", "abc-123", "CTR001"}
	invalid := []string{"AB", "with space", ""}
	for _, number := range valid {
		if !IsValidContractNumber(number) {
			t.Errorf("IsValidContractNumber(%q) = false, want true", number)
		}
	}
	for _, number := range invalid {
		if IsValidContractNumber(number) {
			t.Errorf("IsValidContractNumber(%q) = true, want false", number)
		}
	}
}

func TestIsValidProjectCode(t *testing.T) {
	valid := []string{"PRJ-01", "ab_12", "XX"}
	invalid := []string{"X", "code with space", ""}
	for _, code := range valid {
		if !IsValidProjectCode(code) {
			t.Errorf("IsValidProjectCode(%q) = false, want true", code)
		}
	}
	for _, code := range invalid {
		if IsValidProjectCode(code) {
			t.Errorf("IsValidProjectCode(%q) = true, want false", code)
		}
	}
}

func TestIsPositiveDecimal(t *testing.T) {
	if !IsPositiveDecimal(decimal.NewFromInt(1)) {
		t.Error("IsPositiveDecimal(1) = false, want true")
	}
	if IsPositiveDecimal(decimal.Zero) {
		t.Error("IsPositiveDecimal(0) = true, want false")
	}
	if IsPositiveDecimal(decimal.NewFromInt(-1)) {
		t.Error("IsPositiveDecimal(-1) = true, want false")
	}
}
