// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package update checks a remote version feed for a newer formgen release.
//
// The feed is any text body containing a version of the form X.Y.Z; the first
// such string is taken as the latest release. Failures never propagate past
// the caller's report: a failed check means "no update".
package update

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/pdiddy/formgen/internal/httputil"
	"github.com/pdiddy/formgen/internal/logger"
	"github.com/pdiddy/formgen/internal/state"
	"github.com/pdiddy/formgen/pkg/types"
)

// Defaults for UpdateConfig fields left empty.
const (
	DefaultURL       = "https://raw.githubusercontent.com/1hysq/forum_disain/main/version.txt"
	DefaultPageURL   = "https://github.com/1hysq/forum_disain"
	DefaultTimeout   = 5 * time.Second
	DefaultInterval  = 24 * time.Hour
	DefaultUserAgent = "Mozilla/5.0"
)

// ErrNoVersion is returned when the feed body holds no X.Y.Z version.
var ErrNoVersion = errors.New("no version found in update feed")

var versionPattern = regexp.MustCompile(`\d+\.\d+\.\d+`)

// Result describes one completed check.
type Result struct {
	Current   string
	Latest    string
	Available bool
}

// Checker queries the update feed.
type Checker struct {
	cfg     types.UpdateConfig
	current string
	client  *http.Client
	state   *state.CheckFile
	now     func() time.Time
}

// NewChecker returns a Checker for the running version. checkFile may be nil,
// in which case startup checks are never throttled.
func NewChecker(cfg types.UpdateConfig, current string, checkFile *state.CheckFile) *Checker {
	if cfg.URL == "" {
		cfg.URL = DefaultURL
	}
	if cfg.PageURL == "" {
		cfg.PageURL = DefaultPageURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.Interval <= 0 {
		cfg.Interval = DefaultInterval
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = DefaultUserAgent
	}
	return &Checker{
		cfg:     cfg,
		current: current,
		client:  &http.Client{Timeout: cfg.Timeout},
		state:   checkFile,
		now:     time.Now,
	}
}

// PageURL is the download page for new releases.
func (c *Checker) PageURL() string {
	return c.cfg.PageURL
}

// Check fetches the feed and compares it with the running version.
func (c *Checker) Check(ctx context.Context) (Result, error) {
	ctx, cancel := context.WithTimeout(ctx, c.cfg.Timeout)
	defer cancel()

	res := Result{Current: c.current}
	body, err := httputil.GetText(ctx, c.client, c.cfg.URL, c.cfg.UserAgent)
	if err != nil {
		return res, fmt.Errorf("checking for updates: %w", err)
	}

	latest, err := FindVersion(body)
	if err != nil {
		return res, err
	}
	res.Latest = latest
	res.Available = Compare(c.current, latest) < 0
	logger.Debug("update check complete", logger.Fields{
		"current": c.current, "latest": latest, "available": res.Available,
	})
	return res, nil
}

// CheckOnStart runs a silent check when the startup check is enabled and the
// last one is older than the configured interval. It reports ok=false when
// the check was skipped or failed; errors are only logged. The attempt is
// recorded either way.
func (c *Checker) CheckOnStart(ctx context.Context) (res Result, ok bool) {
	if !c.cfg.OnStart {
		return Result{}, false
	}
	now := c.now()
	if c.state != nil && !c.state.Due(now, c.cfg.Interval) {
		return Result{}, false
	}

	res, err := c.Check(ctx)
	if c.state != nil {
		if rerr := c.state.Record(now); rerr != nil {
			logger.Warn("could not record update check", logger.Fields{"error": rerr.Error()})
		}
	}
	if err != nil {
		logger.Info("startup update check failed", logger.Fields{"error": err.Error()})
		return res, false
	}
	return res, true
}

// FindVersion returns the first X.Y.Z version in body.
func FindVersion(body string) (string, error) {
	v := versionPattern.FindString(body)
	if v == "" {
		return "", ErrNoVersion
	}
	return v, nil
}

// Compare compares two versions component-wise (major, minor, patch) and
// returns -1, 0, or 1. Missing components count as 0 and a component's
// leading digits are used ("2rc1" is 2).
func Compare(a, b string) int {
	va, vb := parseVersion(a), parseVersion(b)
	for i := range va {
		switch {
		case va[i] < vb[i]:
			return -1
		case va[i] > vb[i]:
			return 1
		}
	}
	return 0
}

var leadingDigits = regexp.MustCompile(`\d+`)

func parseVersion(v string) [3]int {
	var parts [3]int
	for i, p := range strings.SplitN(strings.TrimSpace(v), ".", 3) {
		if n, err := strconv.Atoi(leadingDigits.FindString(p)); err == nil {
			parts[i] = n
		}
	}
	return parts
}
