package main

import (
	"flag"
	"os"

	"github.com/golang/glog"
	"github.com/spf13/cobra"
)

var configFiles []string

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "stache",
		Short:         "Render mustache templates and serve them over HTTP",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// glog's flags were parsed by pflag; mark the go flag set parsed.
			flag.CommandLine.Parse(nil)
		},
	}
	root.PersistentFlags().StringSliceVarP(&configFiles, "config", "c", nil,
		"a configuration file (.yml) to read; can be specified multiple times")
	root.PersistentFlags().AddGoFlagSet(flag.CommandLine)

	root.AddCommand(
		newServeCommand(),
		newRenderCommand(),
		newExtractCommand(),
	)
	return root
}

func main() {
	defer glog.Flush()
	if err := newRootCommand().Execute(); err != nil {
		glog.Error(err)
		glog.Flush()
		os.Exit(1)
	}
}
