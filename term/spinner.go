package term

import (
	"os"
	"sync"
	"time"

	"github.com/briandowns/spinner"
)

// a spinner that flashes for a few ms reads as a glitch
const minSpinDuration = 300 * time.Millisecond

var (
	spinnerMu sync.Mutex
	sp        = spinner.New(spinner.CharSets[14], 90*time.Millisecond, spinner.WithWriter(os.Stderr))
	spinStart time.Time
	spinning  bool
)

// StartSpinner shows a spinner on stderr until StopSpinner. Calling it while
// one is running only swaps the message. Nothing is drawn when stderr isn't
// a terminal.
func StartSpinner(msg string) {
	spinnerMu.Lock()
	defer spinnerMu.Unlock()

	if msg != "" {
		sp.Prefix = msg + " "
	} else {
		sp.Prefix = ""
	}

	if spinning {
		return
	}
	if !IsInteractive() {
		return
	}

	spinStart = time.Now()
	sp.Start()
	spinning = true
}

func StopSpinner() {
	spinnerMu.Lock()
	defer spinnerMu.Unlock()

	if !spinning {
		return
	}

	if elapsed := time.Since(spinStart); elapsed < minSpinDuration {
		time.Sleep(minSpinDuration - elapsed)
	}

	sp.Stop()
	ClearCurrentLine()
	spinning = false
}
