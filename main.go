package main

import (
	"log"

	"socialnet-cli/api"
	"socialnet-cli/auth"
	"socialnet-cli/cmd"
	"socialnet-cli/config"
	"socialnet-cli/fs"
	"socialnet-cli/term"

	"gopkg.in/natefinch/lumberjack.v2"
)

func init() {
	cfg, err := config.Load()
	if err != nil {
		term.OutputErrorAndExit("Error loading config: %v", err)
	}

	err = fs.Init(cfg.HomeDir, cfg.IsDevelopment())
	if err != nil {
		term.OutputErrorAndExit("Error initializing home dir: %v", err)
	}

	// set up a rotating file logger
	log.SetOutput(&lumberjack.Logger{
		Filename:   fs.LogPath,
		MaxSize:    cfg.LogMaxSizeMB,
		MaxBackups: 3,
		MaxAge:     28,
	})

	store := auth.NewFileStore(fs.HomeAuthPath)
	client := api.New(api.Options{
		Host:          cfg.ApiHost,
		Sessions:      store,
		Timeout:       cfg.RequestTimeout,
		UploadTimeout: cfg.UploadTimeout,
	})

	// inter-package dependency injections to avoid circular imports
	cmd.Setup(auth.New(store, client), client)
}

func main() {
	cmd.Execute()
}
