package admin

import (
	"errors"
	"net/http"
	"strconv"

	"gallery-app/internal/domain/catalog"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	store catalog.Store
}

func NewHandler(store catalog.Store) *Handler {
	return &Handler{store: store}
}

// flash texts keyed by the error code the CSV upload redirects with.
const (
	noFileMessage    = "Please attach an Excel CSV file to upload"
	badHeaderMessage = "CSV file must have the following headers exactly: '" + catalog.ImportHeader + "'"
)

// GET /admin?error=&added=&dup=&deleted=
//
// Lists the full catalog ordered by idnumber and resolves the one-shot
// status messages passed back via query parameters after an action.
func (h *Handler) Dashboard(c *gin.Context) {
	paintings, err := h.store.List(catalog.ListQuery{}, -1, 0)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load paintings"})
		return
	}
	if paintings == nil {
		paintings = []catalog.Painting{}
	}

	resp := DashboardResponse{Paintings: paintings}

	switch errParam := c.Query("error"); errParam {
	case "":
	case "0":
		resp.Error = noFileMessage
	case "1":
		resp.Error = badHeaderMessage
	default:
		// The CSV upload echoes a rejected header text here.
		resp.Error = errParam
	}
	if added := c.Query("added"); added != "" {
		resp.Added = added + " painting(s) added to the database."
	}
	if c.Query("deleted") != "" {
		resp.Deleted = "1 painting deleted"
	}
	if dup := c.Query("dup"); dup != "" {
		resp.Dup = dup + " painting(s) filtered out as duplicates."
	}

	c.JSON(http.StatusOK, resp)
}

// GET /admin/create
func (h *Handler) CreateForm(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"options": formOptions()})
}

// POST /admin/create
func (h *Handler) Create(c *gin.Context) {
	var form PaintingForm
	if err := c.ShouldBind(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": fieldErrors(err)})
		return
	}

	p := form.toPainting()
	if err := h.store.Insert(&p); err != nil {
		if errors.Is(err, catalog.ErrDuplicate) {
			c.JSON(http.StatusConflict, gin.H{"error": "Title or filename already exists"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create painting"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"idnumber": p.IDNumber, "added": 1})
}

// GET /admin/edit?id=
func (h *Handler) EditForm(c *gin.Context) {
	p, ok := h.paintingFromQuery(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"painting": p, "options": formOptions()})
}

// POST /admin/edit?id=
//
// Full overwrite of every mutable field. The idnumber never changes
// and, unlike create, no duplicate check runs here.
func (h *Handler) Edit(c *gin.Context) {
	p, ok := h.paintingFromQuery(c)
	if !ok {
		return
	}

	var form PaintingForm
	if err := c.ShouldBind(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": fieldErrors(err)})
		return
	}

	updated := form.toPainting()
	updated.IDNumber = p.IDNumber
	if err := h.store.Update(&updated); err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Painting not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update painting"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"idnumber": updated.IDNumber})
}

// GET|DELETE /admin/delete?id=
//
// Always reports one deletion, even for an idnumber that was never
// there.
func (h *Handler) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Query("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	if err := h.store.Delete(id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete painting"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"deleted": 1})
}

// POST /admin/csvupload, multipart field "csvupload"
func (h *Handler) CSVUpload(c *gin.Context) {
	file, err := c.FormFile("csvupload")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "no file attached", "code": 0})
		return
	}

	f, err := file.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "no file attached", "code": 0})
		return
	}
	defer f.Close()

	res, err := catalog.RunImport(h.store, f)
	if err != nil {
		var headerErr *catalog.HeaderError
		var rowErr *catalog.RowError
		switch {
		case errors.Is(err, catalog.ErrNoFile):
			c.JSON(http.StatusBadRequest, gin.H{"error": "no file attached", "code": 0})
		case errors.As(err, &headerErr):
			c.JSON(http.StatusBadRequest, gin.H{"error": "bad header", "code": 1, "header": headerErr.Header})
		case errors.As(err, &rowErr):
			c.JSON(http.StatusBadRequest, gin.H{"error": rowErr.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to import paintings"})
		}
		return
	}

	resp := gin.H{"added": res.Added}
	if res.Dup > 0 {
		resp["dup"] = res.Dup
	}
	c.JSON(http.StatusOK, resp)
}

func (h *Handler) paintingFromQuery(c *gin.Context) (*catalog.Painting, bool) {
	id, err := strconv.Atoi(c.Query("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return nil, false
	}

	p, err := h.store.ByIDNumber(id)
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Painting not found"})
			return nil, false
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load painting"})
		return nil, false
	}
	return p, true
}
