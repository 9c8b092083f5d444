package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/mrlokans/passmanager/internal/auth"
	"github.com/mrlokans/passmanager/internal/entities"
	"github.com/mrlokans/passmanager/internal/vault"
)

type createEntryRequest struct {
	ID       string `json:"id"`
	Site     string `json:"site"`
	Username string `json:"username"`
	Password string `json:"password"`
}

// SecretsController serves the caller's secret entries.
type SecretsController struct {
	store vault.Store
}

func NewSecretsController(store vault.Store) *SecretsController {
	return &SecretsController{store: store}
}

// RegisterRoutes mounts the entry routes behind requireAuth.
// /delAll is registered before /:id so the literal segment is never read as an id.
func (sc *SecretsController) RegisterRoutes(router gin.IRoutes, requireAuth gin.HandlerFunc) {
	router.GET("/", requireAuth, sc.List)
	router.POST("/", requireAuth, sc.Create)
	router.DELETE("/delAll", requireAuth, sc.DeleteAll)
	router.DELETE("/:id", requireAuth, sc.Delete)
}

// ownerStore scopes the store to the authenticated caller.
func (sc *SecretsController) ownerStore(c *gin.Context) (*vault.OwnerStore, bool) {
	entries, err := vault.ForOwner(sc.store, auth.GetUserID(c))
	if err != nil {
		respondUnauthorized(c, auth.ErrMissingToken.Error())
		return nil, false
	}
	return entries, true
}

// List returns all entries owned by the caller.
// GET /
func (sc *SecretsController) List(c *gin.Context) {
	entries, ok := sc.ownerStore(c)
	if !ok {
		return
	}

	list, err := entries.List(c.Request.Context())
	if err != nil {
		respondStorageError(c, err, "list entries")
		return
	}
	c.JSON(http.StatusOK, list)
}

// Create stores a new entry for the caller. A missing client id is generated.
// POST /
func (sc *SecretsController) Create(c *gin.Context) {
	entries, ok := sc.ownerStore(c)
	if !ok {
		return
	}

	var req createEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, auth.ErrInvalidBody.Error())
		return
	}
	if req.ID == "" {
		req.ID = uuid.NewString()
	}

	entry := &entities.SecretEntry{
		EntryID:  req.ID,
		Site:     req.Site,
		Username: req.Username,
		Password: req.Password,
	}
	if err := entries.Create(c.Request.Context(), entry); err != nil {
		respondStorageError(c, err, "create entry")
		return
	}

	c.JSON(http.StatusOK, InsertResponse{Success: true, InsertedID: entry.ID})
}

// DeleteAll removes every entry owned by the caller.
// DELETE /delAll
func (sc *SecretsController) DeleteAll(c *gin.Context) {
	entries, ok := sc.ownerStore(c)
	if !ok {
		return
	}

	n, err := entries.DeleteAll(c.Request.Context())
	if err != nil {
		respondStorageError(c, err, "delete all entries")
		return
	}
	c.JSON(http.StatusOK, DeleteAllResponse{Success: true, DeletedCount: n})
}

// Delete removes the caller's entry with the given client id.
// DELETE /:id
func (sc *SecretsController) Delete(c *gin.Context) {
	entries, ok := sc.ownerStore(c)
	if !ok {
		return
	}

	n, err := entries.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondStorageError(c, err, "delete entry")
		return
	}
	c.JSON(http.StatusOK, DeleteResponse{Acknowledged: true, DeletedCount: n})
}
