package main

import (
	"fmt"

	"github.com/joho/godotenv"

	"github.com/Tatang94/cryptomarketcap/config"
	"github.com/Tatang94/cryptomarketcap/controllers"
	"github.com/Tatang94/cryptomarketcap/routes"
	"github.com/Tatang94/cryptomarketcap/services/coinpaprika"
	"github.com/Tatang94/cryptomarketcap/services/health"
	"github.com/Tatang94/cryptomarketcap/services/rates"
)

func main() {
	godotenv.Load()

	if err := config.InitializeConfig(); err != nil {
		fmt.Println(err.Error())
		return
	}

	paprika := coinpaprika.New(config.App.UpstreamURL, config.App.UpstreamAPIKey)

	var checker health.Checker = health.Always{}
	if config.Redis != nil {
		checker = health.Cache{Cache: config.Redis}
	}

	ratesvc := rates.New(config.Redis, rates.FromConfig(config.App.DisplayCurrency))

	ctrl := controllers.New(paprika, checker, ratesvc)

	r := routes.SetupRouter(ctrl)
	r.Listen(":" + config.App.Port)
}
