package cron

import (
	"encoding/json"
	"io/ioutil"
	"net/http"
	"time"

	"github.com/jasonlvhit/gocron"
	"github.com/shopspring/decimal"

	"github.com/Tatang94/cryptomarketcap/config"
	"github.com/Tatang94/cryptomarketcap/display"
	"github.com/Tatang94/cryptomarketcap/services/rates"
)

// DisplayRateJob refreshes the USD to display-currency snapshot from the
// configured FX feed and publishes it for the API tier. The statically
// configured rate stays in place as the fallback when the feed is down.
type DisplayRateJob struct {
}

func (j *DisplayRateJob) Process() {
	s := gocron.NewScheduler()
	s.Every(10).Minutes().Do(refreshDisplayRate)
	refreshDisplayRate()
	<-s.Start()
}

func refreshDisplayRate() {
	resp, err := http.Get(config.App.RateFeedURL)
	if err != nil {
		config.Logger.Errorf("Failed to fetch display rate: %v", err)
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		config.Logger.Errorf("Display rate feed returned status %d", resp.StatusCode)
		return
	}

	body, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		config.Logger.Errorf("Failed to read display rate response: %v", err)
		return
	}

	// The feed answers {"<CODE>": <rate>} for the configured currency.
	var quotes map[string]float64
	if err := json.Unmarshal(body, &quotes); err != nil {
		config.Logger.Errorf("Failed to decode display rate response: %v", err)
		return
	}

	code := config.App.DisplayCurrency.Code
	value, found := quotes[code]
	if !found || value <= 0 {
		config.Logger.Errorf("Display rate feed has no positive %s quote", code)
		return
	}

	snapshot := display.RateSnapshot{
		Code:   code,
		Prefix: config.App.DisplayCurrency.Prefix,
		Rate:   decimal.NewFromFloat(value),
		AsOf:   time.Now().UTC(),
	}

	if err := config.Redis.SetKey(rates.CacheKey, snapshot, 0); err != nil {
		config.Logger.Errorf("Failed to store display rate snapshot: %v", err)
		return
	}

	config.Logger.Infof("Display rate refreshed: 1 USD = %s %s", snapshot.Rate.String(), code)
}
