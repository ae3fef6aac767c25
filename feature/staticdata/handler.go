package staticdata

import (
	"errors"

	"league-assets/core/datasync"
	"league-assets/core/logger"
	"league-assets/core/utils"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// SearchResponse is the body of a search request.
type SearchResponse struct {
	Kind     string `json:"kind"`
	Query    string `json:"query"`
	Ordering string `json:"ordering"`
	Hits     []Hit  `json:"hits"`
}

// SyncResponse is the body of a sync request. Result is reported even when the sync failed.
type SyncResponse struct {
	Result datasync.Result `json:"result"`
	Error  string          `json:"error,omitempty"`
}

// Handler handles HTTP requests for static data.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the static data routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.Get("/versions", h.HandleVersions)

	group := app.Group("/assets")
	group.Get("/", h.HandleCaches)
	group.Get("/:kind/search", h.HandleSearch)
	group.Get("/:kind/export", h.HandleExport)
	group.Post("/:kind/sync", h.HandleSync)
	group.Get("/:kind/:id", h.HandleAsset)
}

// HandleVersions lists the available data versions.
// @Summary List Versions
// @Description Available source versions (newest first), the pinned version and each cache's version.
// @Tags versions
// @Produce json
// @Param refresh query bool false "Fetch the version list again"
// @Success 200 {object} staticdata.VersionInfo "Versions"
// @Failure 502 {object} map[string]string "Source unavailable"
// @Router /versions [get]
func (h *Handler) HandleVersions(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	info, err := h.service.Versions(c.UserContext(), c.QueryBool("refresh"))
	if err != nil {
		l.Warn("Version listing failed", zap.Error(err))
		return fail(c, err)
	}
	return c.JSON(info)
}

// HandleCaches summarizes every cache.
// @Summary List Caches
// @Tags assets
// @Produce json
// @Success 200 {array} staticdata.CacheInfo "Caches"
// @Router /assets [get]
func (h *Handler) HandleCaches(c *fiber.Ctx) error {
	return c.JSON(h.service.Caches())
}

// HandleSearch ranks one kind's assets against a query.
// @Summary Search Assets
// @Description Case and punctuation insensitive search over names and search terms.
// @Tags assets
// @Produce json
// @Param kind path string true "Asset kind (champion, item, runesReforged)"
// @Param q query string true "Query"
// @Param ordering query string false "Tie-break ordering (recommended, by-quality, alternates-last, only-perfect-alternates, no-alternate-names)"
// @Success 200 {object} staticdata.SearchResponse "Matches"
// @Failure 400 {object} map[string]string "Unknown ordering"
// @Failure 404 {object} map[string]string "Unknown kind"
// @Router /assets/{kind}/search [get]
func (h *Handler) HandleSearch(c *fiber.Ctx) error {
	kind, query, ordering := c.Params("kind"), c.Query("q"), c.Query("ordering")

	hits, err := h.service.Search(kind, query, ordering)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(SearchResponse{Kind: kind, Query: query, Ordering: utils.FirstNonEmpty(ordering, "recommended"), Hits: hits})
}

// HandleAsset returns one asset.
// @Summary Get Asset
// @Tags assets
// @Produce json
// @Param kind path string true "Asset kind"
// @Param id path string true "Asset id (e.g. 'Ahri', '3031')"
// @Success 200 {object} map[string]interface{} "Asset"
// @Failure 400 {object} map[string]string "Malformed id"
// @Failure 404 {object} map[string]string "Unknown kind or id"
// @Router /assets/{kind}/{id} [get]
func (h *Handler) HandleAsset(c *fiber.Ctx) error {
	a, err := h.service.Asset(c.Params("kind"), c.Params("id"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(a)
}

// HandleExport returns one kind's cache in the simple payload shape.
// @Summary Export Cache
// @Tags assets
// @Produce json
// @Param kind path string true "Asset kind"
// @Success 200 {object} map[string]interface{} "Simple payload"
// @Failure 404 {object} map[string]string "Unknown kind"
// @Router /assets/{kind}/export [get]
func (h *Handler) HandleExport(c *fiber.Ctx) error {
	body, err := h.service.Export(c.Params("kind"))
	if err != nil {
		return fail(c, err)
	}
	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return c.Send(body)
}

// HandleSync brings one kind up to date.
// @Summary Sync Kind
// @Description Fetches the kind's data when the cache is behind the target version, or always when forced.
// @Tags assets
// @Produce json
// @Param kind path string true "Asset kind"
// @Param force query bool false "Refetch even when current"
// @Success 200 {object} staticdata.SyncResponse "Sync result"
// @Failure 404 {object} map[string]string "Unknown kind"
// @Failure 502 {object} staticdata.SyncResponse "Sync failed"
// @Router /assets/{kind}/sync [post]
func (h *Handler) HandleSync(c *fiber.Ctx) error {
	kind := c.Params("kind")
	l := logger.WithRayID(h.service.logger, c).With(zap.String("kind", kind))

	res, err := h.service.Sync(c.UserContext(), kind, c.QueryBool("force"))
	if errors.Is(err, ErrUnknownKind) {
		return fail(c, err)
	}
	if err != nil {
		l.Error("Sync failed", zap.Error(err))
		return c.Status(fiber.StatusBadGateway).JSON(SyncResponse{Result: res, Error: err.Error()})
	}

	l.Info("Sync finished", zap.Bool("updated", res.Updated), zap.String("version", res.Version))
	return c.JSON(SyncResponse{Result: res})
}

func fail(c *fiber.Ctx, err error) error {
	return c.Status(statusFor(err)).JSON(fiber.Map{
		"error": err.Error(),
	})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, ErrUnknownKind), errors.Is(err, ErrNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, ErrBadRequest):
		return fiber.StatusBadRequest
	case errors.Is(err, datasync.ErrTransport), errors.Is(err, datasync.ErrDecode), errors.Is(err, datasync.ErrEmptyVersionList):
		return fiber.StatusBadGateway
	default:
		return fiber.StatusInternalServerError
	}
}
