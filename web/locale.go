package web

import (
	"context"
	"net/http"
	"sync"

	"github.com/gorilla/sessions"
	"github.com/sirupsen/logrus"
	"golang.org/x/text/language"

	"howett.net/stache/i18n"
)

const (
	defaultLocaleSession = "stache"
	defaultLocaleParam   = "lang"
	localeSessionKey     = "locale"
)

// LocaleService picks a locale for each request. An explicit ?lang=
// parameter wins and is remembered in the session; after that the session,
// then the Accept-Language header, are consulted.
type LocaleService struct {
	Catalog *i18n.Catalog
	Store   sessions.Store

	// SessionName and Param default to "stache" and "lang".
	SessionName string
	Param       string
	Logger      logrus.FieldLogger
}

type lateLocale struct {
	o   sync.Once
	tag language.Tag
}

func (s *LocaleService) sessionName() string {
	if s.SessionName != "" {
		return s.SessionName
	}
	return defaultLocaleSession
}

func (s *LocaleService) param() string {
	if s.Param != "" {
		return s.Param
	}
	return defaultLocaleParam
}

func (s *LocaleService) session(r *http.Request) *sessions.Session {
	if s.Store == nil {
		return nil
	}
	sess, err := s.Store.Get(r, s.sessionName())
	if err != nil {
		// a stale or forged cookie; Get still hands back a fresh session
		if s.Logger != nil {
			s.Logger.WithError(err).Debug("discarding locale session")
		}
	}
	return sess
}

func (s *LocaleService) Middleware(h http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ll := &lateLocale{}
		if lang := r.URL.Query().Get(s.param()); lang != "" {
			tag := s.Catalog.Match(lang)
			ll.o.Do(func() { ll.tag = tag })
			if sess := s.session(r); sess != nil {
				sess.Values[localeSessionKey] = tag.String()
				if err := sess.Save(r, w); err != nil && s.Logger != nil {
					s.Logger.WithError(err).Error("failed to save locale session")
				}
			}
		}
		r = r.WithContext(context.WithValue(r.Context(), s, ll))
		h.ServeHTTP(w, r)
	})
}

// Locale returns the request's locale, resolving it once per request.
func (s *LocaleService) Locale(r *http.Request) language.Tag {
	ll, ok := r.Context().Value(s).(*lateLocale)
	if !ok {
		return s.resolve(r)
	}
	ll.o.Do(func() {
		ll.tag = s.resolve(r)
	})
	return ll.tag
}

// Localizer returns a Localizer for the request's locale.
func (s *LocaleService) Localizer(r *http.Request) i18n.Localizer {
	return s.Catalog.Localizer(s.Locale(r))
}

func (s *LocaleService) resolve(r *http.Request) language.Tag {
	if sess := s.session(r); sess != nil {
		if v, ok := sess.Values[localeSessionKey].(string); ok && v != "" {
			return s.Catalog.Match(v)
		}
	}
	return s.Catalog.Match(r.Header.Get("Accept-Language"))
}
