package display

import (
	"math/rand"
	"time"

	"github.com/Tatang94/cryptomarketcap/models"
	"github.com/Tatang94/cryptomarketcap/types"
)

// FallbackPoints is the length of the synthetic series: one point per day
// over a week.
const FallbackPoints = 7

const chartTimeLayout = "02/01"

// TrueSeries maps historical candles 1:1 onto chart points, closed candle
// to display point. Used whenever the upstream series is non-empty.
func TrueSeries(candles []models.OHLCV) []types.ChartPoint {
	points := make([]types.ChartPoint, 0, len(candles))

	for _, candle := range candles {
		label := candle.TimeClose
		if ts, err := time.Parse(time.RFC3339, candle.TimeClose); err == nil {
			label = ts.Format(chartTimeLayout)
		}

		points = append(points, types.ChartPoint{
			Time:      label,
			Price:     candle.Close,
			Volume:    candle.Volume,
			MarketCap: candle.MarketCap,
			High:      candle.High,
			Low:       candle.Low,
		})
	}

	return points
}

// SyntheticSeries builds an approximate series from the current snapshot
// when no historical candles exist. The 24h change is spread evenly across
// the points with a bounded random perturbation for visual continuity; it
// is simulated data and callers must label it as such.
func SyntheticSeries(t models.Ticker, points int, rng *rand.Rand, now time.Time) []types.ChartPoint {
	quote := t.Quotes.USD
	series := make([]types.ChartPoint, 0, points)

	for i := 0; i < points; i++ {
		date := now.AddDate(0, 0, -(points - 1 - i))

		noise := (rng.Float64() - 0.5) * 0.1 // ±5%
		drift := quote.PercentChange24h / 100 / float64(points) * float64(i+1)
		multiplier := 1 + drift + noise

		price := quote.Price * multiplier

		series = append(series, types.ChartPoint{
			Time:      date.Format(chartTimeLayout),
			Price:     price,
			Volume:    quote.Volume24h * (0.8 + rng.Float64()*0.4),
			MarketCap: quote.MarketCap * multiplier,
			High:      price * 1.05,
			Low:       price * 0.95,
		})
	}

	return series
}
