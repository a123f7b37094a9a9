package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/golang/glog"
	"github.com/gorilla/handlers"
	"github.com/gorilla/securecookie"
	"github.com/gorilla/sessions"
	"github.com/justinas/alice"
	"github.com/spf13/cobra"

	"howett.net/stache/web"
)

func newServeCommand() *cobra.Command {
	var bind string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the configured routes over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadApp(configFiles)
			if err != nil {
				return err
			}
			if bind != "" {
				a.config.Web.Bind = bind
			}
			return a.serve()
		},
	}
	cmd.Flags().StringVarP(&bind, "bind", "b", "", "bind address and port (overrides web.bind)")
	return cmd
}

func (a *app) sessionStore() sessions.Store {
	var keys [][]byte
	for _, k := range a.config.Web.SessionKeys {
		keys = append(keys, []byte(k))
	}
	if len(keys) == 0 {
		glog.Warning("web.session_keys is empty; locale sessions will not survive a restart")
		keys = append(keys, securecookie.GenerateRandomKey(32))
	}
	store := sessions.NewCookieStore(keys...)
	store.Options.Path = "/"
	store.Options.MaxAge = 86400 * 365
	store.Options.HttpOnly = true
	return store
}

func (a *app) serve() error {
	locales := &web.LocaleService{
		Catalog: a.catalog,
		Store:   a.sessionStore(),
		Logger:  a.logger,
	}
	renderer := &web.HTMLRenderer{
		Views:         a.views,
		Package:       a.config.DefaultPackage,
		Routes:        a.routes,
		Locales:       locales,
		Translate:     a.translationFactory(),
		ErrorTemplate: a.config.Web.ErrorTemplate,
		Logger:        a.logger,
	}
	handler := web.NewHandler(a.config.Web.Routes, renderer, locales)
	if err := handler.BindRoutes(a.router); err != nil {
		return err
	}

	var stack alice.Chain
	if a.config.Web.Proxied {
		stack = stack.Append(handlers.ProxyHeaders)
	}
	stack = stack.Append(func(h http.Handler) http.Handler {
		return handlers.CombinedLoggingHandler(os.Stdout, h)
	}, locales.Middleware)

	bind := a.config.Web.Bind
	if bind == "" {
		bind = "0.0.0.0:8080"
	}
	server := &http.Server{
		Addr:              bind,
		Handler:           stack.Then(web.NotFound(a.router, web.NotFoundPage(renderer, a.config.Web.NotFound))),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		server.Shutdown(shutdownCtx)
	}()

	glog.Infof("listening on %s", bind)
	if err := server.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
