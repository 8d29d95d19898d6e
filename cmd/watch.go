package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/hdltools/vlin/lint"
)

// watchCmd: vlin watch
var watchCmd = &cobra.Command{
	Use:   "watch [dirs...]",
	Short: "Re-lint files whenever they change",
	Run: func(cmd *cobra.Command, args []string) {
		dirs := args
		if len(dirs) == 0 {
			dirs = []string{"."}
		}

		engine, err := lint.New(".", cfgFile)
		if err != nil {
			logger.Fatal("Failed to initialize lint engine", zap.Error(err))
		}

		if err := engine.Watch(dirs); err != nil {
			logger.Fatal("Failed to start watching", zap.Error(err))
		}
		defer func() {
			if err := engine.StopWatching(); err != nil {
				logger.Error("Error stopping watcher", zap.Error(err))
			}
		}()

		fmt.Printf("watching %v (ctrl-c to stop)\n", dirs)

		sig := make(chan os.Signal, 1)
		signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
		<-sig
	},
}
