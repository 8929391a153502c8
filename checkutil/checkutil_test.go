package checkutil

import (
	"errors"
	"testing"

	"github.com/ericlevine/barcodegen"
)

func TestMod10(t *testing.T) {
	tests := []struct {
		payload string
		want    int
	}{
		{"1234567", 0},
		{"03600029145", 2},
		{"400638133393", 1},
		{"1540014128876", 3},
		{"2109876543", 5},
	}
	for _, tt := range tests {
		t.Run(tt.payload, func(t *testing.T) {
			got, err := Mod10(tt.payload)
			if err != nil {
				t.Fatalf("Mod10 error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Mod10(%q) = %d, want %d", tt.payload, got, tt.want)
			}
		})
	}
}

func TestMod10RejectsNonDigits(t *testing.T) {
	if _, err := Mod10("12a4"); !errors.Is(err, barcodegen.ErrInvalidMessage) {
		t.Fatalf("expected ErrInvalidMessage, got %v", err)
	}
}

func TestVerifyMod10(t *testing.T) {
	ok, err := VerifyMod10("036000291452")
	if err != nil || !ok {
		t.Fatalf("VerifyMod10 = %v, %v; want true", ok, err)
	}
	ok, err = VerifyMod10("036000291453")
	if err != nil || ok {
		t.Fatalf("VerifyMod10 = %v, %v; want false", ok, err)
	}
}

func TestSupplementals(t *testing.T) {
	// 3*(5+1+9) + 9*(2+9) = 45 + 99 = 144
	got, err := Supplemental5Checksum("52199")
	if err != nil || got != 4 {
		t.Errorf("Supplemental5Checksum(52199) = %d, %v; want 4", got, err)
	}
	p, err := Supplemental2Parity("34")
	if err != nil || p != 2 {
		t.Errorf("Supplemental2Parity(34) = %d, %v; want 2", p, err)
	}
	if _, err := Supplemental2Parity("345"); !errors.Is(err, barcodegen.ErrInvalidMessage) {
		t.Errorf("expected ErrInvalidMessage, got %v", err)
	}
}

func TestMod103(t *testing.T) {
	// StartA "AA\rBB\tCC"
	cws := []int{103, 33, 33, 77, 34, 34, 73, 35, 35}
	if got := Mod103(cws); got != 54 {
		t.Errorf("Mod103 = %d, want 54", got)
	}
}

func TestDigitRun(t *testing.T) {
	s := []rune("ab1234c5")
	if got := DigitRun(s, 2); got != 4 {
		t.Errorf("DigitRun = %d, want 4", got)
	}
	if got := DigitRun(s, 0); got != 0 {
		t.Errorf("DigitRun = %d, want 0", got)
	}
}
