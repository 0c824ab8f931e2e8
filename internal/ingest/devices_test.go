package ingest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeDevice(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Connected TV", DeviceCTV},
		{"CTV Device", DeviceCTV},
		{"Smart TV", DeviceCTV},
		{"Tablet", DeviceTablet},
		{"Android Tablet", DeviceTablet},
		{"Smart Phone", DeviceSmartPhone},
		{"smartphone", DeviceSmartPhone},
		{"iPhone", DeviceSmartPhone},
		{"Mobile Web", DeviceMobile},
		{"Desktop", DeviceDesktop},
		{"PC", DeviceDesktop},
		{"Personal Computer", DeviceDesktop},
		{"Other", DeviceOther},
		{"Unknown", DeviceOther},
		{"Fridge Display", "Fridge Display"}, // pass-through
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, NormalizeDevice(tt.in), tt.in)
	}
}

func TestDeviceAccumulator_TabletAndPhoneMergeIntoMobile(t *testing.T) {
	acc := NewDeviceAccumulator()
	acc.Add("P1", "Tablet", 30)
	acc.Add("P1", "Smart Phone", 30)
	acc.Add("P1", "Mobile", 40)

	shares := acc.Shares(0)
	require.Contains(t, shares, "P1")
	assert.Equal(t, map[string]float64{DeviceMobile: 100.0}, shares["P1"])
}

func TestDeviceAccumulator_RollUpBelowThreshold(t *testing.T) {
	acc := NewDeviceAccumulator()
	acc.Add("P1", "Desktop", 80)
	acc.Add("P1", "Mobile", 15)
	acc.Add("P1", "CTV", 4)
	acc.Add("P1", "Other", 1)

	shares := acc.Shares(5)["P1"]
	assert.Equal(t, map[string]float64{
		DeviceDesktop: 85.0,
		DeviceMobile:  15.0,
	}, shares)
}

func TestDeviceAccumulator_AtThresholdKept(t *testing.T) {
	acc := NewDeviceAccumulator()
	acc.Add("P1", "Desktop", 90)
	acc.Add("P1", "CTV", 5)
	acc.Add("P1", "Other", 5)

	// Both small buckets sit exactly at the threshold, so they stay.
	shares := acc.Shares(5)["P1"]
	assert.Equal(t, map[string]float64{
		DeviceDesktop: 90.0,
		DeviceCTV:     5.0,
		DeviceOther:   5.0,
	}, shares)
}

func TestDeviceAccumulator_TieBreakFirstSeenWins(t *testing.T) {
	acc := NewDeviceAccumulator()
	acc.Add("P1", "CTV", 48)
	acc.Add("P1", "Desktop", 48)
	acc.Add("P1", "Other", 4)

	// CTV was seen first, so it is the dominant bucket of the 48/48 tie
	// and absorbs Other.
	shares := acc.Shares(5)["P1"]
	assert.Equal(t, map[string]float64{
		DeviceCTV:     52.0,
		DeviceDesktop: 48.0,
	}, shares)
}

func TestDeviceAccumulator_GlobalNotPerDate(t *testing.T) {
	// Percentages are over the whole file regardless of dates; the
	// accumulator never sees dates at all.
	acc := NewDeviceAccumulator()
	acc.Add("P1", "Desktop", 50) // day 1
	acc.Add("P1", "Desktop", 25) // day 2
	acc.Add("P1", "Mobile", 25)  // day 2

	shares := acc.Shares(0)["P1"]
	assert.Equal(t, 75.0, shares[DeviceDesktop])
	assert.Equal(t, 25.0, shares[DeviceMobile])
}

func TestDeviceAccumulator_RoundedToFourDecimals(t *testing.T) {
	acc := NewDeviceAccumulator()
	acc.Add("P1", "Desktop", 1)
	acc.Add("P1", "Mobile", 2)

	shares := acc.Shares(0)["P1"]
	assert.Equal(t, 33.3333, shares[DeviceDesktop])
	assert.Equal(t, 66.6667, shares[DeviceMobile])
}

func TestDeviceAccumulator_ZeroTotal(t *testing.T) {
	acc := NewDeviceAccumulator()
	acc.Add("P1", "Desktop", 0)

	assert.Empty(t, acc.Shares(5)["P1"])
}

func TestRound4(t *testing.T) {
	assert.Equal(t, 33.3333, Round4(100.0/3))
	assert.Equal(t, 12.3457, Round4(12.345678))
	assert.Equal(t, 0.0, Round4(0))
}
