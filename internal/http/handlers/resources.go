package handlers

import (
	"encoding/json"
	"io"
	"net/http"
	"strconv"

	"backoffice/internal/domain"
	"backoffice/internal/resource"

	"github.com/gin-gonic/gin"
)

// Resource mounts the uniform CRUD surface for one entity collection:
//
//	GET    ""        paginated list
//	GET    /all      whole collection
//	GET    /groups   grouped collection
//	GET    /:id      single entity
//	POST   ""        create
//	PUT    /:id      update
//	DELETE /:id      remove
func Resource[T resource.Entity](g *gin.RouterGroup, client *resource.Client[T]) {
	ReadOnlyResource(g, client)
	g.POST("", CreateEntity(client))
	g.PUT("/:id", UpdateEntity(client))
	g.DELETE("/:id", RemoveEntity(client))
}

// ReadOnlyResource mounts only the fetch surface (logs and other views).
func ReadOnlyResource[T resource.Entity](g *gin.RouterGroup, client *resource.Client[T]) {
	g.GET("", ListPaginated(client))
	g.GET("/all", ListAll(client))
	g.GET("/groups", ListGrouped(client))
	g.GET("/:id", GetEntityByID(client))
}

// ParseQuery reads pagination parameters from the request, filling defaults
// for anything missing. Filters arrive as one JSON-encoded parameter.
func ParseQuery(c *gin.Context) (resource.Query, error) {
	q := resource.DefaultQuery()
	if v := c.Query("page"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			return q, domain.ValidationError{Field: "page", Msg: "must be a positive integer"}
		}
		q.Page = n
	}
	if v := c.Query("rowsPerPage"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			return q, domain.ValidationError{Field: "rowsPerPage", Msg: "must be a positive integer"}
		}
		q.RowsPerPage = n
	}
	q.SortBy = c.Query("sortBy")
	if v := c.Query("sortOrder"); v != "" {
		if v != "asc" && v != "desc" {
			return q, domain.ValidationError{Field: "sortOrder", Msg: "must be asc or desc"}
		}
		q.SortOrder = v
	}
	q.FreeText = c.Query("query")
	if v := c.Query("filters"); v != "" {
		if err := json.Unmarshal([]byte(v), &q.Filters); err != nil {
			return q, domain.ValidationError{Field: "filters", Msg: "must be a JSON object", Err: err}
		}
	}
	return q, nil
}

func ListPaginated[T resource.Entity](client *resource.Client[T]) gin.HandlerFunc {
	return func(c *gin.Context) {
		q, err := ParseQuery(c)
		if err != nil {
			RespondResourceError(c, err)
			return
		}
		page, err := client.FetchPaginated(c.Request.Context(), q)
		if err != nil {
			RespondResourceError(c, err)
			return
		}
		c.JSON(http.StatusOK, page)
	}
}

func ListAll[T resource.Entity](client *resource.Client[T]) gin.HandlerFunc {
	return func(c *gin.Context) {
		items, err := client.FetchAll(c.Request.Context())
		if err != nil {
			RespondResourceError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"data": items})
	}
}

func ListGrouped[T resource.Entity](client *resource.Client[T]) gin.HandlerFunc {
	return func(c *gin.Context) {
		items, err := client.FetchGrouped(c.Request.Context())
		if err != nil {
			RespondResourceError(c, err)
			return
		}
		c.JSON(http.StatusOK, items)
	}
}

func GetEntityByID[T resource.Entity](client *resource.Client[T]) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c)
		if !ok {
			return
		}
		item, err := client.GetByID(c.Request.Context(), id)
		if err != nil {
			RespondResourceError(c, err)
			return
		}
		c.JSON(http.StatusOK, item)
	}
}

func CreateEntity[T resource.Entity](client *resource.Client[T]) gin.HandlerFunc {
	return func(c *gin.Context) {
		var item T
		if !BindJSONOrError(c, &item) {
			return
		}
		created, err := client.Create(c.Request.Context(), item)
		if err != nil {
			RespondResourceError(c, err)
			return
		}
		c.JSON(http.StatusCreated, created)
	}
}

func UpdateEntity[T resource.Entity](client *resource.Client[T]) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c)
		if !ok {
			return
		}
		var item T
		if !BindJSONOrError(c, &item) {
			return
		}
		// the client takes the id from the payload; it has to agree with the route
		if item.EntityID() == 0 {
			RespondError(c, http.StatusBadRequest, "payload must carry the entity id", nil)
			return
		}
		if item.EntityID() != id {
			RespondError(c, http.StatusBadRequest, "payload id does not match route id", nil)
			return
		}
		updated, err := client.Update(c.Request.Context(), item)
		if err != nil {
			RespondResourceError(c, err)
			return
		}
		c.JSON(http.StatusOK, updated)
	}
}

// RemoveEntity deletes by route id. The request body may carry the entity
// (the dashboard sends the selected row); when it does not, the entity is
// fetched first so the delete call can echo it back on an empty upstream
// response.
func RemoveEntity[T resource.Entity](client *resource.Client[T]) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c)
		if !ok {
			return
		}
		item, ok := entityFromBodyOrFetch(c, client, id)
		if !ok {
			return
		}
		removed, err := client.Remove(c.Request.Context(), item)
		if err != nil {
			RespondResourceError(c, err)
			return
		}
		c.JSON(http.StatusOK, removed)
	}
}

func entityFromBodyOrFetch[T resource.Entity](c *gin.Context, client *resource.Client[T], id int64) (T, bool) {
	var item T
	if c.Request.Body != nil {
		raw, err := io.ReadAll(c.Request.Body)
		if err == nil && len(raw) > 0 {
			if err := json.Unmarshal(raw, &item); err == nil && item.EntityID() == id {
				return item, true
			}
		}
	}
	item, err := client.GetByID(c.Request.Context(), id)
	if err != nil {
		RespondResourceError(c, err)
		return item, false
	}
	return item, true
}

func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		RespondError(c, http.StatusBadRequest, "invalid id", err)
		return 0, false
	}
	return id, true
}
