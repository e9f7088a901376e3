// Package probe checks how fast the registries respond.
package probe

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/macrat/nrs/internal/meta"
	"github.com/macrat/nrs/internal/registry"
	"golang.org/x/sync/errgroup"
)

const (
	// DefaultTimeout is the time limit of each probe.
	DefaultTimeout = 5 * time.Second

	// DefaultPackage is the package name to request.
	// It has to exist in every registry.
	DefaultPackage = "npm"

	// redirectMax is the number of redirects to follow before giving up.
	redirectMax = 10
)

var (
	ErrRedirectLoopDetected = errors.New("redirect loop detected")

	defaultClient = &http.Client{
		Transport: &http.Transport{
			Proxy:             http.ProxyFromEnvironment,
			DisableKeepAlives: true,
		},
		CheckRedirect: checkHTTPRedirect,
	}
)

func checkHTTPRedirect(req *http.Request, via []*http.Request) error {
	if len(via) > redirectMax {
		return ErrRedirectLoopDetected
	}
	return nil
}

// Result is the result of probing a registry.
type Result struct {
	Name string
	URL  string

	// Success is true if the registry responded 2xx status within the timeout.
	Success bool

	// Latency is the time from sending request until receiving response, or until the request aborted.
	Latency time.Duration

	// TimedOut is true if the probe aborted because the timeout exceeded.
	// Success is always false if TimedOut is true.
	TimedOut bool

	// StatusCode is the HTTP status code, or 0 if there was no response.
	StatusCode int

	Message string
}

// Elapsed returns Latency in milliseconds.
func (r Result) Elapsed() int64 {
	return r.Latency.Milliseconds()
}

// Options is the options for Probe.
type Options struct {
	// Timeout is the time limit of each probe. DefaultTimeout is used if zero.
	Timeout time.Duration

	// Package is appended to the registry URL to build the request URL. DefaultPackage is used if empty.
	Package string

	// Concurrency limits how many probes run at the same time. Zero or negative means no limit.
	Concurrency int

	// Client is the HTTP client to send requests.
	Client *http.Client
}

func (o Options) withDefaults() Options {
	if o.Timeout <= 0 {
		o.Timeout = DefaultTimeout
	}
	if o.Package == "" {
		o.Package = DefaultPackage
	}
	if o.Client == nil {
		o.Client = defaultClient
	}
	return o
}

// RequestURL returns the URL that will be requested to probe the registry.
func RequestURL(r registry.Registry, pkg string) string {
	if pkg == "" {
		pkg = DefaultPackage
	}
	return r.URL + pkg
}

// Probe checks all targets concurrently, and waits until every probe finished.
//
// The results are in the same order as targets.
// Failures of the probes are reported as Result, so this function never fails.
func Probe(ctx context.Context, targets []registry.Registry, opts Options) []Result {
	opts = opts.withDefaults()

	results := make([]Result, len(targets))

	var g errgroup.Group
	if opts.Concurrency > 0 {
		g.SetLimit(opts.Concurrency)
	}

	for i, t := range targets {
		g.Go(func() error {
			results[i] = probeOne(ctx, t, opts)
			return nil
		})
	}
	g.Wait()

	return results
}

func probeOne(ctx context.Context, target registry.Registry, opts Options) Result {
	ctx, cancel := context.WithTimeout(ctx, opts.Timeout)
	defer cancel()

	r := Result{
		Name: target.Name,
		URL:  target.URL,
	}

	st := time.Now()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, RequestURL(target, opts.Package), nil)
	if err != nil {
		r.Latency = time.Since(st)
		r.Message = err.Error()
		return r
	}
	req.Header.Set("User-Agent", meta.UserAgent())

	resp, err := opts.Client.Do(req)
	r.Latency = time.Since(st)

	if err != nil {
		return errorToResult(ctx, r, err)
	}
	resp.Body.Close()

	r.StatusCode = resp.StatusCode
	r.Message = resp.Status
	r.Success = 200 <= resp.StatusCode && resp.StatusCode <= 299

	return r
}

func errorToResult(ctx context.Context, r Result, err error) Result {
	var netErr net.Error
	var dnsErr *net.DNSError
	var opErr *net.OpError

	switch {
	case ctx.Err() == context.DeadlineExceeded, errors.As(err, &netErr) && netErr.Timeout():
		r.TimedOut = true
		r.Message = "probe timed out"
	case ctx.Err() == context.Canceled:
		r.Message = "probe aborted"
	case errors.As(err, &dnsErr):
		r.Message = fmt.Sprintf("failed to resolve: %s", dnsErr.Name)
	case errors.As(err, &opErr) && opErr.Op == "dial" && opErr.Addr != nil:
		r.Message = fmt.Sprintf("%s: %s", opErr.Addr, opErr.Err)
	default:
		r.Message = err.Error()
	}

	return r
}

// Fastest returns the index of the successful Result that has the smallest elapsed milliseconds.
// If two or more results have the same elapsed milliseconds, the first one wins.
// ok is false if there is no successful result.
func Fastest(results []Result) (index int, ok bool) {
	index = -1
	for i, r := range results {
		if !r.Success {
			continue
		}
		if index < 0 || r.Elapsed() < results[index].Elapsed() {
			index = i
		}
	}
	return index, index >= 0
}
