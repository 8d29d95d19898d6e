package cmd

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/hdltools/vlin/lint"
)

// rulesCmd: vlin rules
var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "List the registered lint rules",
	Run: func(cmd *cobra.Command, args []string) {
		engine, err := lint.New(".", cfgFile)
		if err != nil {
			logger.Fatal("Failed to initialize lint engine", zap.Error(err))
		}

		names := engine.Rules()
		sort.Strings(names)
		for _, name := range names {
			fmt.Println(name)
		}
	},
}
