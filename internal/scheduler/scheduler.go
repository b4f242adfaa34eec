// Package scheduler optionally triggers pipeline runs from an in-process
// cron schedule, for deployments without an external invoker.
package scheduler

import (
	"context"
	"log"

	"github.com/robfig/cron/v3"

	"github.com/0x0BSoD/hnPush/internal/pipeline"
)

type Runner interface {
	Run(ctx context.Context) (pipeline.Result, error)
}

type Scheduler struct {
	cron   *cron.Cron
	runner Runner
}

func New(spec string, runner Runner) (*Scheduler, error) {
	c := cron.New()

	s := &Scheduler{
		cron:   c,
		runner: runner,
	}

	if _, err := c.AddFunc(spec, s.runOnce); err != nil {
		return nil, err
	}

	return s, nil
}

func (s *Scheduler) Start() {
	s.cron.Start()
}

func (s *Scheduler) Stop() {
	s.cron.Stop()
}

func (s *Scheduler) runOnce() {
	log.Printf("[INFO] scheduled run started")

	res, err := s.runner.Run(context.Background())
	if err != nil {
		log.Printf("[ERROR] scheduled run failed: %v", err)
		return
	}

	switch res.Mode {
	case pipeline.ModeDigest:
		log.Printf("[INFO] scheduled run done, digest with %d stories", res.Count)
	default:
		log.Printf("[INFO] scheduled run done, sent=%d", res.Sent)
	}
}
