package feature

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"spy-data/internal/model"
)

func barAt(ts time.Time) model.Bar {
	return model.Bar{Timestamp: ts.UnixMilli(), Ticker: "SPY"}
}

func TestTimeFeaturesDuringSession(t *testing.T) {
	// Tuesday 14:30
	f := Time(barAt(time.Date(2023, 11, 14, 14, 30, 0, 0, time.UTC)))
	assert.Equal(t, 14, f.Hour)
	assert.Equal(t, time.Tuesday, f.DayOfWeek)
	assert.True(t, f.MarketOpen)
}

func TestTimeFeaturesOutsideSession(t *testing.T) {
	f := Time(barAt(time.Date(2023, 11, 14, 22, 14, 20, 0, time.UTC)))
	assert.Equal(t, 22, f.Hour)
	assert.False(t, f.MarketOpen)

	f = Time(barAt(time.Date(2023, 11, 14, 16, 0, 0, 0, time.UTC)))
	assert.False(t, f.MarketOpen, "close hour is exclusive")

	f = Time(barAt(time.Date(2023, 11, 14, 9, 0, 0, 0, time.UTC)))
	assert.True(t, f.MarketOpen, "open hour is inclusive")
}

func TestEnrichAligns(t *testing.T) {
	bars := []model.Bar{
		barAt(time.Date(2023, 11, 13, 10, 0, 0, 0, time.UTC)),
		barAt(time.Date(2023, 11, 17, 20, 0, 0, 0, time.UTC)),
	}
	feats := Enrich(bars)
	require.Len(t, feats, 2)
	assert.Equal(t, time.Monday, feats[0].DayOfWeek)
	assert.True(t, feats[0].MarketOpen)
	assert.Equal(t, time.Friday, feats[1].DayOfWeek)
	assert.False(t, feats[1].MarketOpen)
}
