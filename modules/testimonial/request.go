package testimonial

import (
	"mime/multipart"

	"github.com/dmitrymomot/portfolio/pkg/content"
)

type Request struct {
	ID string `json:"-" path:"id"`

	NameEn *string `json:"name_en" form:"name_en"`
	NameSo *string `json:"name_so" form:"name_so"`
	NameAr *string `json:"name_ar" form:"name_ar"`

	TextEn *string `json:"text_en" form:"text_en"`
	TextSo *string `json:"text_so" form:"text_so"`
	TextAr *string `json:"text_ar" form:"text_ar"`

	Position *string               `json:"position" form:"position"`
	Image    *multipart.FileHeader `json:"-" file:"image"`
}

type Input struct {
	Name content.Result
	Text content.Result
	// Position is nil when the key was not sent.
	Position *string
	Image    *multipart.FileHeader
}

func (r Request) Validate(mode content.Mode) (Input, error) {
	var (
		in  Input
		err error
	)

	if in.Name, err = content.Localized("name", content.Input{En: r.NameEn, So: r.NameSo, Ar: r.NameAr}, mode); err != nil {
		return Input{}, err
	}
	if in.Text, err = content.Localized("text", content.Input{En: r.TextEn, So: r.TextSo, Ar: r.TextAr}, mode); err != nil {
		return Input{}, err
	}
	if in.Position, err = content.Position("position", r.Position); err != nil {
		return Input{}, err
	}

	in.Image = r.Image
	return in, nil
}

type IDRequest struct {
	ID string `path:"id"`
}
