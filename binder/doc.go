// Package binder decodes HTTP requests into typed request structs.
//
// Every binder has the signature func(r *http.Request, v any) error and reads
// only the struct tags it owns:
//
//	type UpdateGalleryRequest struct {
//		ID            string                `path:"id" json:"-"`
//		TitleEn       *string               `form:"title_en" json:"title_en"`
//		Categories    content.List          `form:"categories" json:"categories"`
//		Image         *multipart.FileHeader `file:"image" json:"-"`
//	}
//
// Pointer fields stay nil when the key is absent, so callers can tell an
// omitted field from an empty one. Types implementing ValuesUnmarshaler
// receive every value sent for their key; slices are never comma-split.
//
// Body picks JSON or Form from the Content-Type header, which lets the same
// endpoint accept multipart uploads and JSON payloads.
package binder
