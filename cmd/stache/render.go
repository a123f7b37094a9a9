package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	yaml "gopkg.in/yaml.v2"

	"howett.net/stache/views"
)

func newRenderCommand() *cobra.Command {
	var (
		dataFile string
		lang     string
		pkg      string
	)
	cmd := &cobra.Command{
		Use:   "render TEMPLATE",
		Short: "Render a single template to standard output",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadApp(configFiles)
			if err != nil {
				return err
			}

			data := make(map[string]interface{})
			if dataFile != "" {
				raw, err := os.ReadFile(dataFile)
				if err != nil {
					return err
				}
				if err := yaml.Unmarshal(raw, &data); err != nil {
					return fmt.Errorf("%s: %w", dataFile, err)
				}
			}

			// routes are registered so that route_path can build them
			if err := a.bindRoutesOnly(); err != nil {
				return err
			}

			req := &views.Request{
				Routes:    a.routes,
				Translate: a.translationFactory(),
			}
			if lang != "" {
				req.Localizer = a.catalog.Localizer(a.catalog.Match(lang))
			}

			if pkg == "" {
				pkg = a.config.DefaultPackage
			}
			out, err := a.views.Render(args[0], pkg, data, req)
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), out)
			return err
		},
	}
	cmd.Flags().StringVarP(&dataFile, "data", "d", "", "YAML file holding the template data")
	cmd.Flags().StringVarP(&lang, "lang", "l", "", "locale to translate into")
	cmd.Flags().StringVarP(&pkg, "package", "p", "", "asset package relative template names resolve against")
	return cmd
}

func (a *app) bindRoutesOnly() error {
	for _, route := range a.config.Web.Routes {
		if route.Name == "" {
			continue
		}
		r := a.router.NewRoute().Path(route.Path).Name(route.Name)
		if err := r.GetError(); err != nil {
			return err
		}
	}
	return nil
}
