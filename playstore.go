package main

import (
	"context"

	"github.com/tikinang/app-update/appupdate"
)

type PlayStoreSource struct {
	pageURL   string
	extractor appupdate.Extractor
	fetcher   *appupdate.Fetcher
}

func NewPlayStoreSource(store appupdate.StoreConfig, fetcher *appupdate.Fetcher) *PlayStoreSource {
	return &PlayStoreSource{
		pageURL:   store.URL,
		extractor: appupdate.LocatorExtractor{XPath: store.Locator},
		fetcher:   fetcher,
	}
}

func (p *PlayStoreSource) Kind() appupdate.StoreKind {
	return appupdate.PlayStore
}

func (p *PlayStoreSource) Description() string {
	return "Google Play listing page. The version is read from the \"About this app\" details node."
}

func (p *PlayStoreSource) Check(ctx context.Context) (string, error) {
	page, err := p.fetcher.FetchText(ctx, p.pageURL)
	if err != nil {
		return "", err
	}
	return p.extractor.Extract(page)
}
