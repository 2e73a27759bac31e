package ingest

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeVendor(t *testing.T) {
	t.Run("known vendor with card prefix and trailing number", func(t *testing.T) {
		info := NormalizeVendor("EFTPOS STAPLES 001234567")
		assert.Equal(t, "Staples", info.Name)
		assert.Equal(t, "Supplies", info.Category)
		assert.InDelta(t, 0.95, info.Confidence, 1e-9)
	})

	t.Run("advertising platform", func(t *testing.T) {
		info := NormalizeVendor("GOOGLE ADS AU")
		assert.Equal(t, "Google Ads", info.Name)
		assert.Equal(t, "Marketing", info.Category)
	})

	t.Run("keyword fallback", func(t *testing.T) {
		info := NormalizeVendor("Warehouse lease March")
		assert.Equal(t, "Rent", info.Category)
		assert.InDelta(t, 0.6, info.Confidence, 1e-9)
		assert.Equal(t, "Warehouse Lease March", info.Name)
	})

	t.Run("unknown vendor", func(t *testing.T) {
		info := NormalizeVendor("Acme Trading Pty Ltd")
		assert.Equal(t, "Other", info.Category)
		assert.Equal(t, "Acme Trading Pty", info.Name)
		assert.InDelta(t, 0.3, info.Confidence, 1e-9)
	})
}

func TestNormalizeVendorDeterministicResolution(t *testing.T) {
	// Descriptions matching more than one keyword must always resolve to the
	// earliest mapping entry, independent of map iteration order.
	for i := 0; i < 20; i++ {
		info := NormalizeVendor("SHELL BP TRUCKSTOP")
		assert.Equal(t, "Shell", info.Name)
		assert.Equal(t, "Transportation", info.Category)
	}

	t.Run("more specific keyword listed first", func(t *testing.T) {
		info := NormalizeVendor("AMAZON WEB SERVICES")
		assert.Equal(t, "Amazon Web Services", info.Name)
		assert.Equal(t, "Software", info.Category)
	})

	t.Run("category fallback is ordered too", func(t *testing.T) {
		info := NormalizeVendor("Internet hosting fee")
		assert.Equal(t, "Utilities", info.Category)
	})
}

func TestFormatVendorName(t *testing.T) {
	assert.Equal(t, "Blue Mountain Cafe", FormatVendorName("BLUE MOUNTAIN CAFE ***1234567"))
	assert.Equal(t, "BP Truganina", FormatVendorName("bp truganina"))
	assert.Equal(t, "", FormatVendorName("  "))
}
