package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	yaml "gopkg.in/yaml.v2"

	"howett.net/stache/extract"
)

func newExtractCommand() *cobra.Command {
	var catalog bool
	cmd := &cobra.Command{
		Use:   "extract FILE...",
		Short: "List translatable messages found in templates",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			var skeleton yaml.MapSlice
			seen := make(map[string]bool)

			for _, name := range args {
				f, err := os.Open(name)
				if err != nil {
					return err
				}
				msgs, err := extract.Messages(f)
				f.Close()
				if err != nil {
					return fmt.Errorf("%s: %w", name, err)
				}
				for _, m := range msgs {
					if catalog {
						if !seen[m.Text] {
							seen[m.Text] = true
							skeleton = append(skeleton, yaml.MapItem{Key: m.Text, Value: ""})
						}
						continue
					}
					// editors count lines from one
					fmt.Fprintf(out, "%s:%d:\t%s\t%q\n", name, m.Line+1, m.Func, m.Text)
				}
			}

			if catalog {
				b, err := yaml.Marshal(yaml.MapSlice{{Key: "messages", Value: skeleton}})
				if err != nil {
					return err
				}
				_, err = out.Write(b)
				return err
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&catalog, "catalog", false, "print a catalog skeleton instead of a listing")
	return cmd
}
