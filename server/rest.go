package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"runtime"
	"strconv"
	"time"

	"github.com/umputun/feedstash/pkg/domain"
)

type feedRequest struct {
	URL      string `json:"url"`
	Title    string `json:"title"` // optional, overrides the parsed title
	FolderID *int64 `json:"folder_id"`
}

type moveRequest struct {
	FolderID *int64 `json:"folder_id"`
}

type cleanupRequest struct {
	Days *int `json:"days"`
}

type readRequest struct {
	Read bool `json:"read"`
}

type folderRequest struct {
	Name string `json:"name"`
}

type refreshResponse struct {
	Feed   *domain.Feed `json:"feed"`
	New    int          `json:"new"`
	Detail string       `json:"detail"`
}

// defaultCleanupDays is used when cleanup request doesn't set days
const defaultCleanupDays = 28

// statusHandler returns server health, 503 if the store is not reachable
func (s *Server) statusHandler(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	dbStatus := map[string]any{"connected": true, "message": "ok"}
	st := time.Now()
	code, status := http.StatusOK, "ok"
	if err := s.db.Ping(ctx); err != nil {
		log.Printf("[WARN] database ping failed: %v", err)
		dbStatus = map[string]any{"connected": false, "message": err.Error()}
		code, status = http.StatusServiceUnavailable, "unhealthy"
	} else {
		dbStatus["response_time_ms"] = float64(time.Since(st).Microseconds()) / 1000
	}

	renderJSON(w, r, code, map[string]any{
		"status":   status,
		"version":  s.version,
		"time":     time.Now().UTC(),
		"uptime":   time.Since(s.started).Truncate(time.Second).String(),
		"database": dbStatus,
		"system":   map[string]any{"go": runtime.Version(), "os": runtime.GOOS, "arch": runtime.GOARCH, "cpus": runtime.NumCPU()},
	})
}

// listFeedsHandler returns all feeds
func (s *Server) listFeedsHandler(w http.ResponseWriter, r *http.Request) {
	feeds, err := s.svc.ListFeeds(r.Context())
	if err != nil {
		renderServiceError(w, r, err)
		return
	}
	renderJSON(w, r, http.StatusOK, feeds)
}

// addFeedHandler registers a new feed
func (s *Server) addFeedHandler(w http.ResponseWriter, r *http.Request) {
	var req feedRequest
	if err := decodeJSON(r, &req); err != nil {
		renderError(w, r, err, http.StatusBadRequest)
		return
	}

	f, err := s.svc.AddFeed(r.Context(), req.URL, req.Title, req.FolderID)
	if err != nil {
		renderServiceError(w, r, err)
		return
	}
	renderJSON(w, r, http.StatusCreated, f)
}

// previewFeedHandler returns title of a feed without adding it
func (s *Server) previewFeedHandler(w http.ResponseWriter, r *http.Request) {
	var req feedRequest
	if err := decodeJSON(r, &req); err != nil {
		renderError(w, r, err, http.StatusBadRequest)
		return
	}

	preview, err := s.svc.PreviewFeedTitle(r.Context(), req.URL)
	if err != nil {
		// preview doesn't distinguish failures, any of them is a bad request
		renderError(w, r, err, http.StatusBadRequest)
		return
	}
	renderJSON(w, r, http.StatusOK, preview)
}

// deleteFeedHandler deletes a feed with its articles
func (s *Server) deleteFeedHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := s.svc.DeleteFeed(r.Context(), id); err != nil {
		renderServiceError(w, r, err)
		return
	}
	renderJSON(w, r, http.StatusOK, map[string]string{"detail": "feed deleted"})
}

// refreshFeedHandler runs an immediate refresh of a feed
func (s *Server) refreshFeedHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	f, res, err := s.svc.RefreshFeed(r.Context(), id)
	if err != nil {
		renderServiceError(w, r, err)
		return
	}
	renderJSON(w, r, http.StatusOK, refreshResponse{Feed: f, New: res.New, Detail: res.String()})
}

// moveFeedHandler puts a feed into a folder, null folder_id makes it unfiled
func (s *Server) moveFeedHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var req moveRequest
	if err := decodeJSON(r, &req); err != nil {
		renderError(w, r, err, http.StatusBadRequest)
		return
	}
	f, err := s.svc.MoveFeed(r.Context(), id, req.FolderID)
	if err != nil {
		renderServiceError(w, r, err)
		return
	}
	renderJSON(w, r, http.StatusOK, f)
}

// listArticlesHandler returns articles of a feed, limit query param is optional
func (s *Server) listArticlesHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	limit := 0
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			renderError(w, r, fmt.Errorf("invalid limit %q", v), http.StatusBadRequest)
			return
		}
		limit = n
	}
	articles, err := s.svc.ListArticles(r.Context(), id, limit)
	if err != nil {
		renderServiceError(w, r, err)
		return
	}
	renderJSON(w, r, http.StatusOK, articles)
}

// cleanupHandler deletes old articles
func (s *Server) cleanupHandler(w http.ResponseWriter, r *http.Request) {
	var req cleanupRequest
	if err := decodeJSON(r, &req); err != nil {
		renderError(w, r, err, http.StatusBadRequest)
		return
	}
	days := defaultCleanupDays
	if req.Days != nil {
		days = *req.Days
	}
	deleted, err := s.svc.CleanupArticles(r.Context(), days)
	if err != nil {
		renderServiceError(w, r, err)
		return
	}
	renderJSON(w, r, http.StatusOK, map[string]any{
		"deleted": deleted,
		"detail":  fmt.Sprintf("deleted %d articles older than %d days", deleted, days),
	})
}

// markReadHandler sets the read flag of an article
func (s *Server) markReadHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var req readRequest
	if err := decodeJSON(r, &req); err != nil {
		renderError(w, r, err, http.StatusBadRequest)
		return
	}
	if err := s.svc.MarkRead(r.Context(), id, req.Read); err != nil {
		renderServiceError(w, r, err)
		return
	}
	renderJSON(w, r, http.StatusOK, map[string]any{"id": id, "is_read": req.Read})
}

func (s *Server) listFoldersHandler(w http.ResponseWriter, r *http.Request) {
	folders, err := s.svc.ListFolders(r.Context())
	if err != nil {
		renderServiceError(w, r, err)
		return
	}
	renderJSON(w, r, http.StatusOK, folders)
}

func (s *Server) createFolderHandler(w http.ResponseWriter, r *http.Request) {
	var req folderRequest
	if err := decodeJSON(r, &req); err != nil {
		renderError(w, r, err, http.StatusBadRequest)
		return
	}
	folder, err := s.svc.CreateFolder(r.Context(), req.Name)
	if err != nil {
		renderServiceError(w, r, err)
		return
	}
	renderJSON(w, r, http.StatusCreated, folder)
}

func (s *Server) renameFolderHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var req folderRequest
	if err := decodeJSON(r, &req); err != nil {
		renderError(w, r, err, http.StatusBadRequest)
		return
	}
	folder, err := s.svc.RenameFolder(r.Context(), id, req.Name)
	if err != nil {
		renderServiceError(w, r, err)
		return
	}
	renderJSON(w, r, http.StatusOK, folder)
}

func (s *Server) deleteFolderHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := s.svc.DeleteFolder(r.Context(), id); err != nil {
		renderServiceError(w, r, err)
		return
	}
	renderJSON(w, r, http.StatusOK, map[string]string{"detail": "folder deleted"})
}

func (s *Server) getSettingsHandler(w http.ResponseWriter, r *http.Request) {
	settings, err := s.svc.GetSettings(r.Context())
	if err != nil {
		renderServiceError(w, r, err)
		return
	}
	renderJSON(w, r, http.StatusOK, settings)
}

func (s *Server) updateSettingsHandler(w http.ResponseWriter, r *http.Request) {
	var upd domain.SettingsUpdate
	if err := decodeJSON(r, &upd); err != nil {
		renderError(w, r, err, http.StatusBadRequest)
		return
	}
	settings, err := s.svc.UpdateSettings(r.Context(), upd)
	if err != nil {
		renderServiceError(w, r, err)
		return
	}
	renderJSON(w, r, http.StatusOK, settings)
}

// exportOPMLHandler serves subscriptions as an OPML attachment
func (s *Server) exportOPMLHandler(w http.ResponseWriter, r *http.Request) {
	data, err := s.svc.ExportOPML(r.Context())
	if err != nil {
		renderServiceError(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "text/x-opml; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="feedstash.opml"`)
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(data); err != nil {
		log.Printf("[WARN] failed to write opml response: %v", err)
	}
}

// pathID parses the {id} path value, renders 400 on failure
func pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || id <= 0 {
		renderError(w, r, fmt.Errorf("invalid id %q", r.PathValue("id")), http.StatusBadRequest)
		return 0, false
	}
	return id, true
}

func decodeJSON(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return fmt.Errorf("invalid request body: %w", err)
	}
	return nil
}

// errorStatus maps domain errors to http status codes
func errorStatus(err error) int {
	var (
		validationErr *domain.ValidationError
		parseErr      *domain.ParseError
		fetchErr      *domain.FetchError
		notFoundErr   *domain.NotFoundError
		duplicateErr  *domain.DuplicateError
	)
	switch {
	case errors.As(err, &validationErr):
		return http.StatusBadRequest
	case errors.As(err, &notFoundErr):
		return http.StatusNotFound
	case errors.As(err, &duplicateErr):
		return http.StatusConflict
	case errors.As(err, &parseErr):
		return http.StatusUnprocessableEntity
	case errors.As(err, &fetchErr):
		return http.StatusBadGateway
	case errors.Is(err, domain.ErrTransient):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// renderServiceError renders an error returned by the service, a duplicate includes the existing feed
func renderServiceError(w http.ResponseWriter, r *http.Request, err error) {
	code := errorStatus(err)
	if code >= http.StatusInternalServerError {
		log.Printf("[ERROR] %s %s: %v", r.Method, r.URL.Path, err)
	}

	var duplicateErr *domain.DuplicateError
	if errors.As(err, &duplicateErr) {
		renderJSON(w, r, code, map[string]any{
			"error":   err.Error(),
			"feed_id": duplicateErr.FeedID,
			"title":   duplicateErr.Title,
		})
		return
	}
	renderError(w, r, err, code)
}

// renderJSON sends JSON response
func renderJSON(w http.ResponseWriter, _ *http.Request, code int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			log.Printf("[ERROR] can't encode response to JSON: %v", err)
		}
	}
}

// renderError sends error response as JSON
func renderError(w http.ResponseWriter, r *http.Request, err error, code int) {
	errMsg := "unknown error"
	if err != nil {
		errMsg = err.Error()
	}
	renderJSON(w, r, code, map[string]string{"error": errMsg})
}
