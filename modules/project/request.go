package project

import (
	"mime/multipart"

	"github.com/dmitrymomot/portfolio/pkg/content"
)

type Request struct {
	ID string `json:"-" path:"id"`

	TitleEn *string `json:"title_en" form:"title_en"`
	TitleSo *string `json:"title_so" form:"title_so"`
	TitleAr *string `json:"title_ar" form:"title_ar"`

	DescriptionEn *string `json:"description_en" form:"description_en"`
	DescriptionSo *string `json:"description_so" form:"description_so"`
	DescriptionAr *string `json:"description_ar" form:"description_ar"`

	TechStack content.List `json:"techStack" form:"techStack"`
	// An empty Link or GithubURL clears the stored value on update.
	Link      *string               `json:"link" form:"link"`
	GithubURL *string               `json:"githubUrl" form:"githubUrl"`
	Image     *multipart.FileHeader `json:"-" file:"image"`
}

type Input struct {
	Title       content.Result
	Description content.Result
	// TechStack is nil when an update leaves it unchanged.
	TechStack []string
	Link      *string
	GithubURL *string
	Image     *multipart.FileHeader
}

func (r Request) Validate(mode content.Mode) (Input, error) {
	var (
		in  Input
		err error
	)

	if in.Title, err = content.Localized("title", content.Input{En: r.TitleEn, So: r.TitleSo, Ar: r.TitleAr}, mode); err != nil {
		return Input{}, err
	}
	in.Description, err = content.Localized("description",
		content.Input{En: r.DescriptionEn, So: r.DescriptionSo, Ar: r.DescriptionAr}, mode)
	if err != nil {
		return Input{}, err
	}

	if mode == content.Create || r.TechStack.Present() {
		if in.TechStack, err = content.TechStack("techStack", r.TechStack); err != nil {
			return Input{}, err
		}
	}

	if in.Link, err = content.Link("link", r.Link); err != nil {
		return Input{}, err
	}
	if in.GithubURL, err = content.Link("githubUrl", r.GithubURL); err != nil {
		return Input{}, err
	}

	in.Image = r.Image
	return in, nil
}

type IDRequest struct {
	ID string `path:"id"`
}

type ListRequest struct {
	Tech string `query:"tech"`
}
