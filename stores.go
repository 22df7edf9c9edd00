package main

import (
	"fmt"

	"github.com/tikinang/app-update/appupdate"
)

type sourceFactory func(appupdate.StoreConfig, *appupdate.Fetcher) appupdate.Source

var sourceFactories = map[appupdate.StoreKind]sourceFactory{
	appupdate.PlayStore: func(s appupdate.StoreConfig, f *appupdate.Fetcher) appupdate.Source {
		return NewPlayStoreSource(s, f)
	},
	appupdate.AppStore: func(s appupdate.StoreConfig, f *appupdate.Fetcher) appupdate.Source {
		return NewAppStoreSource(s, f)
	},
	appupdate.MacStore: func(s appupdate.StoreConfig, f *appupdate.Fetcher) appupdate.Source {
		return NewMacStoreSource(s, f)
	},
}

// buildRegistrations pairs each configured store with its source, keeping table order.
func buildRegistrations(stores []appupdate.StoreConfig, fetcher *appupdate.Fetcher) ([]appupdate.StoreRegistration, error) {
	regs := make([]appupdate.StoreRegistration, 0, len(stores))
	for _, store := range stores {
		factory, ok := sourceFactories[store.Kind]
		if !ok {
			return nil, fmt.Errorf("no source for %s", store.Kind.Label())
		}
		regs = append(regs, appupdate.StoreRegistration{Store: store, Source: factory(store, fetcher)})
	}
	return regs, nil
}
