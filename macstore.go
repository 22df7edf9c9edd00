package main

import (
	"context"

	"github.com/tikinang/app-update/appupdate"
)

type MacStoreSource struct {
	pageURL   string
	extractor appupdate.Extractor
	fetcher   *appupdate.Fetcher
}

func NewMacStoreSource(store appupdate.StoreConfig, fetcher *appupdate.Fetcher) *MacStoreSource {
	return &MacStoreSource{
		pageURL:   store.URL,
		extractor: appupdate.RegexExtractor{Pattern: appupdate.MacVersionPattern},
		fetcher:   fetcher,
	}
}

func (m *MacStoreSource) Kind() appupdate.StoreKind {
	return appupdate.MacStore
}

func (m *MacStoreSource) Description() string {
	return "Mac App Store product page, scanned for the first \"Version x.y.z\"."
}

func (m *MacStoreSource) Check(ctx context.Context) (string, error) {
	page, err := m.fetcher.FetchText(ctx, m.pageURL)
	if err != nil {
		return "", err
	}
	return m.extractor.Extract(page)
}
