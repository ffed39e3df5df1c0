package commentary

import (
	"context"
	"time"
)

// DefaultTimeout bounds a single remote request.
const DefaultTimeout = 8 * time.Second

// Service bounds commentary requests by a timeout.
type Service struct {
	c       *Commentator
	timeout time.Duration
}

// NewService wraps a commentator. A non-positive timeout uses DefaultTimeout.
func NewService(c *Commentator, timeout time.Duration) *Service {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Service{c: c, timeout: timeout}
}

// Comment blocks until a remark is ready, at most the service timeout.
func (s *Service) Comment(ctx context.Context, score int, reason string) string {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	return s.c.Comment(ctx, score, reason)
}
