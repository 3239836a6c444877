package gallery

import (
	"mime/multipart"

	"github.com/dmitrymomot/portfolio/pkg/content"
	"github.com/dmitrymomot/portfolio/pkg/validator"
)

// Request is the create and update payload, accepted as JSON or as a
// multipart form when an image is attached.
type Request struct {
	ID string `json:"-" path:"id"`

	TitleEn *string `json:"title_en" form:"title_en"`
	TitleSo *string `json:"title_so" form:"title_so"`
	TitleAr *string `json:"title_ar" form:"title_ar"`

	DescriptionEn *string `json:"description_en" form:"description_en"`
	DescriptionSo *string `json:"description_so" form:"description_so"`
	DescriptionAr *string `json:"description_ar" form:"description_ar"`

	Categories content.List          `json:"categories" form:"categories"`
	Image      *multipart.FileHeader `json:"-" file:"image"`
}

// Input is a validated Request.
type Input struct {
	Title       content.Result
	Description content.Result
	// Categories is nil when an update leaves them unchanged.
	Categories []string
	Image      *multipart.FileHeader
}

// Validate checks the request and returns sanitized values. It stops at the
// first failing field.
func (r Request) Validate(mode content.Mode) (Input, error) {
	var (
		in  Input
		err error
	)

	in.Title, err = content.Localized("title", content.Input{En: r.TitleEn, So: r.TitleSo, Ar: r.TitleAr}, mode)
	if err != nil {
		return Input{}, err
	}

	in.Description, err = content.OptionalLocalized("description",
		content.Input{En: r.DescriptionEn, So: r.DescriptionSo, Ar: r.DescriptionAr})
	if err != nil {
		return Input{}, err
	}

	if mode == content.Create || r.Categories.Present() {
		in.Categories, err = content.Categories("categories", r.Categories, Categories)
		if err != nil {
			return Input{}, err
		}
	}

	if mode == content.Create {
		if err := validator.ApplyFirst(validator.RequiredFile("image", r.Image)); err != nil {
			return Input{}, err
		}
	}
	in.Image = r.Image

	return in, nil
}

// IDRequest carries the id path parameter.
type IDRequest struct {
	ID string `path:"id"`
}

// ListRequest holds the list filters.
type ListRequest struct {
	Category string `query:"category"`
}
