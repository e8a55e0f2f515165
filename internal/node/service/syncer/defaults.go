package syncer

import "time"

const (
	medianWindowSize = 11

	sleepDuration     = 5 * time.Second
	longSleepDuration = 1 * time.Minute

	throughputWindow = 1 * time.Minute

	headerBatcherCapacity      = 2000
	headerBatcherFlushInterval = 1 * time.Second
	headerBatcherRPS           = 20
)
