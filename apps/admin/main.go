package main

import (
	"os"

	"github.com/trezcool/collegecompass/apps/di"
	"github.com/trezcool/collegecompass/core"
	logsvc "github.com/trezcool/collegecompass/services/logger"
)

func main() {
	conf := core.NewConfig()

	zl := logsvc.New(conf.Log.Level, conf.Log.Format)
	logger := logsvc.NewRollbarLogger(zl.Named("admin"), conf)
	validate, _ := di.NewValidate()

	// start CLI
	cli := commandLine{
		out:      os.Stdout,
		validate: validate,
		newContainer: func() (*di.Container, error) {
			return di.New(conf, logger)
		},
	}
	err := cli.run(os.Args)
	if err != nil && err != errHelp {
		logger.Error("command failed", err)
	}
	_ = zl.Sync()
	if err != nil {
		os.Exit(1)
	}
}
