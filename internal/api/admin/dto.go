package admin

import (
	"encoding/json"
	"errors"
	"strconv"
	"strings"

	"gallery-app/internal/domain/catalog"

	"github.com/go-playground/validator/v10"
)

// PaintingForm binds a create/edit submission (urlencoded form or
// JSON). Price is a pointer so a missing price and a price of zero can
// be told apart; idnumber is never bound, the store owns it.
type PaintingForm struct {
	Title       string `form:"title" json:"title" binding:"required"`
	Description string `form:"description" json:"description" binding:"required"`
	Filename    string `form:"filename" json:"filename" binding:"required"`
	Size        string `form:"size" json:"size" binding:"required,oneof=10x14 12x28 17x28 23x31 20x24"`
	Price       *int   `form:"price" json:"price" binding:"required"`
	Series      string `form:"series" json:"series" binding:"omitempty,oneof=Classic Illustrative Abstract"`
	Status      string `form:"status" json:"status" binding:"required,oneof=Available Sold Reserved"`
}

func (f *PaintingForm) toPainting() catalog.Painting {
	return catalog.Painting{
		Title:       f.Title,
		Description: f.Description,
		Filename:    f.Filename,
		Size:        f.Size,
		Price:       *f.Price,
		Series:      f.Series,
		Status:      f.Status,
	}
}

// fieldErrors turns a binding failure into a field→message map for
// form-level display.
func fieldErrors(err error) map[string]string {
	out := map[string]string{}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		for _, fe := range verrs {
			field := strings.ToLower(fe.Field())
			switch fe.Tag() {
			case "required":
				out[field] = "This field is required."
			case "oneof":
				out[field] = "Not a valid choice"
			default:
				out[field] = "Invalid value"
			}
		}
		return out
	}

	// Price is the only numeric field, so a numeric conversion error
	// from either binding path belongs to it.
	var numErr *strconv.NumError
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &numErr) || errors.As(err, &typeErr) {
		out["price"] = "Not a valid integer value"
		return out
	}

	out["form"] = err.Error()
	return out
}

// FormOptions lists the enum choices an external form needs to render
// the size, series and status selectors.
type FormOptions struct {
	Sizes    []string `json:"sizes"`
	Series   []string `json:"series"`
	Statuses []string `json:"statuses"`
}

func formOptions() FormOptions {
	return FormOptions{
		Sizes:    catalog.Sizes,
		Series:   catalog.SeriesLabels,
		Statuses: catalog.Statuses,
	}
}

// DashboardResponse is the admin listing plus the one-shot status
// messages resolved from the request's query parameters.
type DashboardResponse struct {
	Paintings []catalog.Painting `json:"paintings"`
	Error     string             `json:"error,omitempty"`
	Added     string             `json:"added,omitempty"`
	Dup       string             `json:"dup,omitempty"`
	Deleted   string             `json:"deleted,omitempty"`
}
