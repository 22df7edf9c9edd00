package appupdate

import (
	"fmt"
	"os"
)

const defaultCommitMessage = "update app version"

// CommitNote records a commit message for the job that publishes the state file.
// A zero CommitNote writes nothing.
type CommitNote struct {
	Path string
}

func (c CommitNote) Write(message string) error {
	if c.Path == "" {
		return nil
	}
	if err := os.WriteFile(c.Path, []byte(message), 0o644); err != nil {
		return fmt.Errorf("writing commit note %s: %w", c.Path, err)
	}
	return nil
}
