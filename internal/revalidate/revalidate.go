package revalidate

import (
	"context"
	"time"

	"github.com/raihanmz/portfolio-backend/internal/cache"
	"github.com/sirupsen/logrus"
)

// Page keys for cached rendered output. Mutating an entity drops the home
// page, the entity's own page and the admin page, so the next request
// re-renders with fresh data.
const (
	PageHome     = "page:home"
	PageProjects = "page:projects"
	PageResume   = "page:resume"
	PageAdmin    = "page:admin"
)

type Revalidator struct {
	cache cache.Cache
	log   *logrus.Logger
}

func New(c cache.Cache, log *logrus.Logger) *Revalidator {
	return &Revalidator{cache: c, log: log}
}

// Invalidate drops the given page keys. Cache trouble must never fail the
// mutation that triggered it, so errors are logged and swallowed.
func (r *Revalidator) Invalidate(ctx context.Context, pages ...string) {
	if r == nil || r.cache == nil || len(pages) == 0 {
		return
	}

	cctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 2*time.Second)
	defer cancel()

	if err := r.cache.Del(cctx, pages...); err != nil {
		r.log.WithError(err).WithField("pages", pages).Warn("revalidate failed")
	}
}
