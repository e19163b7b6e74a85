package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/Tatang94/cryptomarketcap/config"
	"github.com/Tatang94/cryptomarketcap/workers/daemons"
)

func CreateWorker(id string) daemons.Worker {
	switch id {
	case "cron_job":
		return daemons.NewCronJob()
	default:
		return nil
	}
}

func main() {
	godotenv.Load()

	if err := config.InitializeConfig(); err != nil {
		fmt.Println(err.Error())
		return
	}

	if config.Redis == nil {
		fmt.Println("markets-daemon requires REDIS_HOST to publish rate snapshots")
		return
	}

	args := os.Args[1:]
	if len(args) == 0 {
		args = []string{"cron_job"}
	}

	for _, id := range args {
		worker := CreateWorker(id)
		if worker == nil {
			fmt.Println("Unknown worker: " + id)
			continue
		}

		fmt.Println("Start markets-daemon: " + id)
		worker.Start()
	}
}
