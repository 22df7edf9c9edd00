package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/tikinang/app-update/appupdate"
)

// AppStoreSource cross-checks the iTunes lookup API against the product page,
// which usually updates first.
type AppStoreSource struct {
	lookupURL string
	lookup    appupdate.LookupExtractor
	locator   appupdate.Extractor
	fallback  appupdate.Extractor
	fetcher   *appupdate.Fetcher
	now       func() time.Time
}

func NewAppStoreSource(store appupdate.StoreConfig, fetcher *appupdate.Fetcher) *AppStoreSource {
	return &AppStoreSource{
		lookupURL: store.URL,
		locator:   appupdate.LocatorExtractor{XPath: store.Locator},
		fallback:  appupdate.RegexExtractor{Pattern: appupdate.MacVersionPattern},
		fetcher:   fetcher,
		now:       time.Now,
	}
}

func (a *AppStoreSource) Kind() appupdate.StoreKind {
	return appupdate.AppStore
}

func (a *AppStoreSource) Description() string {
	return "iTunes lookup API by bundle id, cross-checked against the App Store product page. The API version wins only when it is strictly newer."
}

func (a *AppStoreSource) Check(ctx context.Context) (string, error) {
	lookupURL, err := a.cacheBustedLookupURL()
	if err != nil {
		return "", err
	}
	var resp appupdate.LookupResponse
	if err := a.fetcher.FetchJSON(ctx, lookupURL, &resp); err != nil {
		return "", fmt.Errorf("App Store lookup: %w", err)
	}
	result, err := a.lookup.First(resp)
	if err != nil {
		return "", fmt.Errorf("App Store lookup: %w", err)
	}

	apiVersion := result.Version
	webVersion, found := a.websiteVersion(ctx, result.TrackViewURL)

	if appupdate.IsNewer(apiVersion, webVersion) {
		return apiVersion, nil
	}
	if found && apiVersion != webVersion {
		slog.Info("App Store website is ahead of lookup API", "api", apiVersion, "website", webVersion)
	}
	return webVersion, nil
}

func (a *AppStoreSource) cacheBustedLookupURL() (string, error) {
	u, err := url.Parse(a.lookupURL)
	if err != nil {
		return "", fmt.Errorf("parsing lookup URL: %w", err)
	}
	q := u.Query()
	q.Set("time", strconv.FormatInt(a.now().Unix(), 10))
	u.RawQuery = q.Encode()
	return u.String(), nil
}

// websiteVersion returns the version shown on the product page. When the page has none
// it returns the default version and false.
func (a *AppStoreSource) websiteVersion(ctx context.Context, trackViewURL string) (string, bool) {
	pageURL, _, _ := strings.Cut(trackViewURL, "?")
	if pageURL == "" {
		slog.Warn("App Store lookup has no product page URL")
		return appupdate.DefaultVersion, false
	}

	page, err := a.fetcher.FetchText(ctx, pageURL)
	if err != nil {
		slog.Warn("App Store product page unavailable", "url", pageURL, "error", err)
		return appupdate.DefaultVersion, false
	}

	version, err := a.locator.Extract(page)
	if err == nil {
		return version, true
	}
	slog.Debug("App Store locator failed, scanning page", "error", err)

	version, err = a.fallback.Extract(page)
	if err != nil {
		slog.Warn("App Store website version not found", "url", pageURL, "error", err)
		return appupdate.DefaultVersion, false
	}
	return version, true
}
