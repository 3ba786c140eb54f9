package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"sync"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/ravokstudios/investor-portal/internal/api/metrics"
	"github.com/ravokstudios/investor-portal/internal/core/ports"
	"github.com/ravokstudios/investor-portal/internal/upstream"
)

// PublicHandler serves the unauthenticated insights endpoints through a
// short-lived cache. Each cache key gets its own refresh sequencer so an
// early slow response can never overwrite the result of a later one.
type PublicHandler struct {
	public ports.PublicAPI
	cache  ports.ContentCache
	log    zerolog.Logger

	mu   sync.Mutex
	seqs map[string]*upstream.Sequencer
}

func NewPublicHandler(public ports.PublicAPI, cache ports.ContentCache, log zerolog.Logger) *PublicHandler {
	return &PublicHandler{
		public: public,
		cache:  cache,
		log:    log,
		seqs:   make(map[string]*upstream.Sequencer),
	}
}

func (h *PublicHandler) Categories(c echo.Context) error {
	return h.serveCached(c, "categories", func() (any, error) {
		return h.public.PublicCategories(c.Request().Context())
	})
}

func (h *PublicHandler) FeaturedPosts(c echo.Context) error {
	limit := 3
	if v, err := strconv.Atoi(c.QueryParam("limit")); err == nil && v > 0 {
		limit = v
	}
	return h.serveCached(c, fmt.Sprintf("posts:featured:%d", limit), func() (any, error) {
		return h.public.PublicFeaturedPosts(c.Request().Context(), limit)
	})
}

func (h *PublicHandler) Posts(c echo.Context) error {
	var filter ports.PublicPostFilter
	key := "posts"
	if v, err := strconv.ParseInt(c.QueryParam("category_id"), 10, 64); err == nil && v > 0 {
		filter.CategoryID = &v
		key += fmt.Sprintf(":category:%d", v)
	}
	if v, err := strconv.Atoi(c.QueryParam("page")); err == nil && v > 0 {
		filter.Page = &v
		key += fmt.Sprintf(":page:%d", v)
	}
	if v, err := strconv.Atoi(c.QueryParam("per_page")); err == nil && v > 0 {
		filter.PerPage = &v
		key += fmt.Sprintf(":per:%d", v)
	}
	return h.serveCached(c, key, func() (any, error) {
		return h.public.PublicPosts(c.Request().Context(), filter)
	})
}

func (h *PublicHandler) PostBySlug(c echo.Context) error {
	slug := c.Param("slug")
	return h.serveCached(c, "post:"+slug, func() (any, error) {
		return h.public.PublicPostBySlug(c.Request().Context(), slug)
	})
}

func (h *PublicHandler) PostComments(c echo.Context) error {
	slug := c.Param("slug")
	return h.serveCached(c, "comments:"+slug, func() (any, error) {
		return h.public.PublicPostComments(c.Request().Context(), slug)
	})
}

type commentRequest struct {
	AuthorName  *string `json:"author_name"`
	AuthorEmail *string `json:"author_email"`
	Body        string  `json:"body" validate:"required"`
}

// CreateComment posts a comment on a public insight. A signed-in visitor's
// bearer token is forwarded so upstream attributes the comment; anonymous
// visitors supply author fields instead.
func (h *PublicHandler) CreateComment(c echo.Context) error {
	slug := c.Param("slug")

	var req commentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	var token string
	if _, session, err := ctxSession(c); err == nil {
		token = session.Token
	}

	created, err := h.public.CreatePublicPostComment(c.Request().Context(), token, slug, ports.CommentInput{
		AuthorName:  req.AuthorName,
		AuthorEmail: req.AuthorEmail,
		Body:        req.Body,
	})
	if err != nil {
		return err
	}

	if err := h.cache.Invalidate(c.Request().Context(), "comments:"+slug); err != nil {
		h.log.Warn().Err(err).Str("slug", slug).Msg("comment cache not invalidated")
	}
	return c.JSON(http.StatusCreated, created)
}

// serveCached answers from the cache when it can, otherwise fetches upstream
// and stores the encoded response. The store is skipped when a newer refresh
// of the same key started while this one was in flight.
func (h *PublicHandler) serveCached(c echo.Context, key string, fetch func() (any, error)) error {
	ctx := c.Request().Context()

	cached, ok, err := h.cache.Get(ctx, key)
	if err != nil {
		h.log.Warn().Err(err).Str("key", key).Msg("public cache read failed")
	} else if ok {
		metrics.CacheLookupsTotal.WithLabelValues("hit").Inc()
		return c.JSONBlob(http.StatusOK, cached)
	}
	metrics.CacheLookupsTotal.WithLabelValues("miss").Inc()

	seq := h.sequencer(key).Next()

	payload, err := fetch()
	if err != nil {
		return err
	}
	encoded, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	if h.sequencer(key).Current(seq) {
		if err := h.cache.Set(ctx, key, encoded); err != nil {
			h.log.Warn().Err(err).Str("key", key).Msg("public cache write failed")
		}
	} else {
		metrics.CacheLookupsTotal.WithLabelValues("discard").Inc()
	}
	return c.JSONBlob(http.StatusOK, encoded)
}

func (h *PublicHandler) sequencer(key string) *upstream.Sequencer {
	h.mu.Lock()
	defer h.mu.Unlock()
	s, ok := h.seqs[key]
	if !ok {
		s = &upstream.Sequencer{}
		h.seqs[key] = s
	}
	return s
}
