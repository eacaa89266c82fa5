package game

import (
	"errors"

	"github.com/Garsondee/parasite-swarm/internal/sim"
	"github.com/atotto/clipboard"
)

var errClipboardUnsupported = errors.New("no system clipboard available")

// writeClipboard is swapped out in tests.
var writeClipboard = func(s string) error {
	if clipboard.Unsupported {
		return errClipboardUnsupported
	}
	return clipboard.WriteAll(s)
}

// copySnapshot puts the ASCII rendering of snap on the system clipboard.
func copySnapshot(snap sim.Snapshot) error {
	return writeClipboard(snap.String())
}
