package daemons

import (
	"time"

	"github.com/Tatang94/cryptomarketcap/jobs"
	"github.com/Tatang94/cryptomarketcap/jobs/cron"
)

type CronJob struct {
	Running bool
	Jobs    []jobs.Job
}

func NewCronJob() *CronJob {
	return &CronJob{
		Running: true,
		Jobs:    []jobs.Job{&cron.DisplayRateJob{}},
	}
}

func (c *CronJob) Stop() {
	c.Running = false
}

func (c *CronJob) Start() {
	for _, job := range c.Jobs {
		go c.Process(job)
	}

	for c.Running {
		time.Sleep(1 * time.Second)
	}
}

func (c *CronJob) Process(job jobs.Job) {
	job.Process()
}
