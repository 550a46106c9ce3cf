package clients

import "time"

const (
	MAX_RETRIES     = 3
	INITIAL_BACKOFF = 1 * time.Second
	USER_AGENT      = "maumlog-client/1.0 (+https://github.com/sojin-dev/maumlog)"
)
