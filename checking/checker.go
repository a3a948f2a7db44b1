package checking

import (
	"context"

	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/sync/errgroup"

	"reltest/violation"
)

// tracer traces with key 'reltest.checking'
func tracer() tracing.Trace {
	return tracing.Select("reltest.checking")
}

// A named check. Run returns nil if no violation was found, and the first violation otherwise.
type Check struct {
	Name string
	Run  func() error
}

// The Checker runs a battery of checks against the samples captured by its checks.
type Checker struct {
	checks []Check
}

// Create a new Checker running the provided checks in order
func NewChecker(checks ...Check) *Checker {
	return &Checker{
		checks: checks,
	}
}

// Add checks to the end of the battery
func (c *Checker) Add(checks ...Check) {
	c.checks = append(c.checks, checks...)
}

// Run the checks in order. Stops at the first check that fails.
func (c *Checker) Check() *Response {
	for index, check := range c.checks {
		if err := check.Run(); err != nil {
			return c.failed(index, err)
		}
	}
	return &Response{
		Result: true,
		Test:   -1,
	}
}

// Run the checks concurrently, at most limit at a time. A limit below 1 runs all checks at once.
//
// Every check is run unless ctx is done before it starts. The response names the failing check with the lowest index,
// so it is the same response Check would give.
func (c *Checker) CheckParallel(ctx context.Context, limit int) *Response {
	g := new(errgroup.Group)
	if limit > 0 {
		g.SetLimit(limit)
	}
	errs := make([]error, len(c.checks))
	for index, check := range c.checks {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				errs[index] = err
				return err
			}
			errs[index] = check.Run()
			return errs[index]
		})
	}
	if err := g.Wait(); err != nil {
		tracer().Debugf("parallel checks failed: %v", err)
	}
	for index, err := range errs {
		if err != nil {
			return c.failed(index, err)
		}
	}
	return &Response{
		Result: true,
		Test:   -1,
	}
}

func (c *Checker) failed(index int, err error) *Response {
	name := c.checks[index].Name
	tracer().Infof("check %q failed: %v", name, err)
	if _, ok := violation.As(err); !ok {
		tracer().Errorf("check %q returned an error that is not a violation: %v", name, err)
	}
	return &Response{
		Result: false,
		Test:   index,
		Name:   name,
		Err:    err,
	}
}
