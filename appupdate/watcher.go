package appupdate

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
)

type StoreRegistration struct {
	Store  StoreConfig
	Source Source
}

// Watcher checks every registered store once per Run, in registration order.
type Watcher struct {
	state    StateStore
	notifier Notifier
	commit   CommitNote

	stores []StoreRegistration
}

func New(state StateStore, notifier Notifier, commit CommitNote) *Watcher {
	return &Watcher{
		state:    state,
		notifier: notifier,
		commit:   commit,
	}
}

func (w *Watcher) Register(reg StoreRegistration) {
	w.stores = append(w.stores, reg)
}

// Run loads the last known versions, checks each store, notifies about newer versions
// and overwrites the state with one entry per registered store.
// Only state load and save failures are returned.
func (w *Watcher) Run(ctx context.Context) error {
	if err := w.commit.Write(defaultCommitMessage); err != nil {
		return err
	}

	previous, err := w.state.Load(ctx)
	if errors.Is(err, ErrStateNotFound) {
		slog.Info("No saved state, starting fresh")
		previous = State{}
	} else if err != nil {
		return fmt.Errorf("loading state: %w", err)
	}

	next := make(State, len(w.stores))
	for _, reg := range w.stores {
		label := reg.Store.Kind.Label()
		next[label] = w.check(ctx, reg, previous)
	}

	if err := w.state.Save(ctx, next); err != nil {
		return fmt.Errorf("saving state: %w", err)
	}
	return nil
}

// check returns the version to record for reg.
func (w *Watcher) check(ctx context.Context, reg StoreRegistration, previous State) string {
	label := reg.Store.Kind.Label()
	slog.Info("Getting store version", "store", label)

	prior := previous[label]
	if prior == "" {
		prior = DefaultVersion
	}

	resolved := Resolve(ctx, reg.Source)
	if !IsNewer(resolved, prior) {
		slog.Info("No new version detected", "store", label, "version", prior, "resolved", resolved)
		return prior
	}

	message := reg.Store.Message(resolved)
	slog.Info("New version detected", "store", label, "previous", prior, "version", resolved)

	if err := w.commit.Write(message); err != nil {
		slog.Warn("Failed to write commit note", "store", label, "error", err)
	}

	err := w.notifier.Notify(ctx, Notification{
		Content:   message,
		Username:  label,
		AvatarURL: reg.Store.AvatarURL,
	})
	if err != nil {
		slog.Error("Notification failed", "store", label, "error", err)
	}
	return resolved
}
