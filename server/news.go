package server

import (
	"net/http"
	"strconv"

	"github.com/go-pkgz/lgr"

	"github.com/umputun/newsgate/pkg/feed"
)

const (
	defaultPage       = 1
	defaultPageSize   = 10
	defaultSavedLimit = 50
	maxSavedLimit     = 500
)

// searchHandler returns generic news search results
func (s *Server) searchHandler(w http.ResponseWriter, r *http.Request) {
	page, ok := positiveParam(w, r, "page", defaultPage)
	if !ok {
		return
	}
	pageSize, ok := positiveParam(w, r, "page_size", defaultPageSize)
	if !ok {
		return
	}

	recs, err := s.news.Search(r.Context(), page, pageSize)
	if err != nil {
		renderInternalError(w, r, err)
		return
	}
	renderJSON(w, r, http.StatusOK, recs)
}

// saveLatestHandler stores latest headlines for the country and returns new articles
func (s *Server) saveLatestHandler(w http.ResponseWriter, r *http.Request) {
	country := r.URL.Query().Get("country_code")
	articles, err := s.news.FetchAndSaveLatest(r.Context(), country)
	if err != nil {
		renderInternalError(w, r, err)
		return
	}
	if subject, ok := SubjectFromContext(r.Context()); ok {
		lgr.Printf("[DEBUG] %s saved %d articles", subject, len(articles))
	}
	renderJSON(w, r, http.StatusOK, articles)
}

// headlinesByCountryHandler returns top headlines for the country
func (s *Server) headlinesByCountryHandler(w http.ResponseWriter, r *http.Request) {
	recs, err := s.news.HeadlinesByCountry(r.Context(), r.PathValue("country_code"))
	if err != nil {
		renderInternalError(w, r, err)
		return
	}
	renderJSON(w, r, http.StatusOK, recs)
}

// headlinesBySourceHandler returns top headlines for the source
func (s *Server) headlinesBySourceHandler(w http.ResponseWriter, r *http.Request) {
	recs, err := s.news.HeadlinesBySource(r.Context(), r.PathValue("source_id"))
	if err != nil {
		renderInternalError(w, r, err)
		return
	}
	renderJSON(w, r, http.StatusOK, recs)
}

// headlinesFilteredHandler returns top headlines by optional country and source
func (s *Server) headlinesFilteredHandler(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	recs, err := s.news.HeadlinesFiltered(r.Context(), q.Get("country"), q.Get("source"))
	if err != nil {
		renderInternalError(w, r, err)
		return
	}
	renderJSON(w, r, http.StatusOK, recs)
}

// savedHandler returns stored articles, newest first
func (s *Server) savedHandler(w http.ResponseWriter, r *http.Request) {
	limit, offset, ok := pagination(w, r)
	if !ok {
		return
	}
	articles, err := s.news.SavedArticles(r.Context(), limit, offset)
	if err != nil {
		renderInternalError(w, r, err)
		return
	}
	renderJSON(w, r, http.StatusOK, articles)
}

// savedRSSHandler serves stored articles as RSS feed
func (s *Server) savedRSSHandler(w http.ResponseWriter, r *http.Request) {
	limit, offset, ok := pagination(w, r)
	if !ok {
		return
	}
	articles, err := s.news.SavedArticles(r.Context(), limit, offset)
	if err != nil {
		renderInternalError(w, r, err)
		return
	}

	rss, err := feed.NewGenerator(s.config.GetBaseURL()).GenerateRSS(articles, "")
	if err != nil {
		renderInternalError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "application/rss+xml; charset=utf-8")
	if _, err := w.Write([]byte(rss)); err != nil {
		lgr.Printf("[ERROR] failed to write RSS response: %v", err)
	}
}

// pagination parses limit and offset of saved articles, limit is capped
func pagination(w http.ResponseWriter, r *http.Request) (limit, offset int, ok bool) {
	if limit, ok = positiveParam(w, r, "limit", defaultSavedLimit); !ok {
		return 0, 0, false
	}
	limit = min(limit, maxSavedLimit)

	offset = 0
	if v := r.URL.Query().Get("offset"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			renderError(w, r, http.StatusBadRequest, "offset must be a non-negative integer")
			return 0, 0, false
		}
		offset = n
	}
	return limit, offset, true
}

// positiveParam returns query param as positive int, default when missing. Sends 400 on bad value.
func positiveParam(w http.ResponseWriter, r *http.Request, name string, def int) (int, bool) {
	v := r.URL.Query().Get(name)
	if v == "" {
		return def, true
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 1 {
		renderError(w, r, http.StatusBadRequest, name+" must be a positive integer")
		return 0, false
	}
	return n, true
}
