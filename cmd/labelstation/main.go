package main

import (
	"context"
	"errors"
	"log"
	"os"

	"github.com/dmitrijs2005/labelstation/internal/cli"
	"github.com/dmitrijs2005/labelstation/internal/config"
	"github.com/dmitrijs2005/labelstation/internal/logging"
)

func main() {

	cfg, err := config.LoadConfig(os.Args[1:])
	if err != nil {
		if errors.Is(err, config.ErrConfigMissing) {
			log.Fatalf("%v: pass -f <SZV.dat> or set credential_file in the -c config file", err)
		}
		log.Fatalf("%v", err)
	}

	logger, closer, err := logging.NewFileLogger(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		log.Fatalf("%v", err)
	}
	defer closer.Close()

	ctx := context.Background()
	app := cli.NewApp(cfg, logger)
	app.Run(ctx)

}
