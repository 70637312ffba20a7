package model

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewCompanyProfileValidation(t *testing.T) {
	tests := []struct {
		name    string
		fcf     float64
		debt    float64
		shares  float64
		years   int
		wantErr bool
	}{
		{"valid", 150e6, 20e6, 25e6, 5, false},
		{"zero fcf allowed", 0, 20e6, 25e6, 5, false},
		{"negative fcf", -1, 20e6, 25e6, 5, true},
		{"negative debt", 150e6, -1, 25e6, 5, true},
		{"zero shares", 150e6, 20e6, 0, 5, true},
		{"negative shares", 150e6, 20e6, -5, 5, true},
		{"years too low", 150e6, 20e6, 25e6, 2, true},
		{"years too high", 150e6, 20e6, 25e6, 11, true},
		{"min years", 150e6, 20e6, 25e6, 3, false},
		{"max years", 150e6, 20e6, 25e6, 10, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewCompanyProfile("x", tt.fcf, tt.debt, tt.shares, tt.years)
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestTwoStageSchedule(t *testing.T) {
	s, err := TwoStageSchedule(0.20, 0.08, 5)
	require.NoError(t, err)
	require.Equal(t, GrowthSchedule{0.20, 0.20, 0.08, 0.08, 0.08}, s)
	require.Equal(t, 5, s.Years())

	// Minimum horizon still has a single stage-2 year.
	s, err = TwoStageSchedule(0.15, 0.05, 3)
	require.NoError(t, err)
	require.Equal(t, GrowthSchedule{0.15, 0.15, 0.05}, s)

	_, err = TwoStageSchedule(0.15, 0.05, 2)
	require.Error(t, err)
	_, err = TwoStageSchedule(0.15, 0.05, 11)
	require.Error(t, err)
}

func TestRateDrawUsable(t *testing.T) {
	require.True(t, RateDraw{DiscountRate: 0.10, TerminalGrowth: 0.025}.Usable())
	require.False(t, RateDraw{DiscountRate: 0.025, TerminalGrowth: 0.025}.Usable())
	require.False(t, RateDraw{DiscountRate: 0.02, TerminalGrowth: 0.025}.Usable())
}
