package fs

import (
	"fmt"
	"os"
	"path/filepath"
)

var HomeDir string
var HomeSocialnetDir string
var HomeAuthPath string
var LogPath string

// Init resolves the home directory used for persisted client state and
// creates it if needed. An explicit dir wins over the user's home.
func Init(dir string, dev bool) error {
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("couldn't find home dir: %v", err)
		}
		HomeDir = home

		if dev {
			dir = filepath.Join(home, ".socialnet-home-dev")
		} else {
			dir = filepath.Join(home, ".socialnet-home")
		}
	}

	err := os.MkdirAll(dir, 0700)
	if err != nil {
		return fmt.Errorf("error creating %s: %v", dir, err)
	}

	HomeSocialnetDir = dir
	HomeAuthPath = filepath.Join(dir, "auth.json")
	LogPath = filepath.Join(dir, "socialnet.log")

	return nil
}
