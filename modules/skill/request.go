package skill

import (
	"mime/multipart"

	"github.com/dmitrymomot/portfolio/pkg/content"
)

type Request struct {
	ID string `json:"-" path:"id"`

	NameEn *string `json:"name_en" form:"name_en"`
	NameSo *string `json:"name_so" form:"name_so"`
	NameAr *string `json:"name_ar" form:"name_ar"`

	LevelEn *string `json:"level_en" form:"level_en"`
	LevelSo *string `json:"level_so" form:"level_so"`
	LevelAr *string `json:"level_ar" form:"level_ar"`

	Categories content.List          `json:"categories" form:"categories"`
	Icon       *multipart.FileHeader `json:"-" file:"icon"`
}

type Input struct {
	Name       content.Result
	Level      content.Result
	Categories []string
	Icon       *multipart.FileHeader
}

// Validate stops at the first failing field. The icon is optional.
func (r Request) Validate(mode content.Mode) (Input, error) {
	var (
		in  Input
		err error
	)

	if in.Name, err = content.Localized("name", content.Input{En: r.NameEn, So: r.NameSo, Ar: r.NameAr}, mode); err != nil {
		return Input{}, err
	}
	if in.Level, err = content.Localized("level", content.Input{En: r.LevelEn, So: r.LevelSo, Ar: r.LevelAr}, mode); err != nil {
		return Input{}, err
	}

	if mode == content.Create || r.Categories.Present() {
		if in.Categories, err = content.Categories("categories", r.Categories, Categories); err != nil {
			return Input{}, err
		}
	}

	in.Icon = r.Icon
	return in, nil
}

type IDRequest struct {
	ID string `path:"id"`
}

type ListRequest struct {
	Category string `query:"category"`
}
