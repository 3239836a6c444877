// Package file stores uploaded images.
//
// Storage is implemented by S3Storage for S3-compatible object stores and by
// LocalStorage for development without a bucket. Both accept a
// *multipart.FileHeader, detect the content type from the file's magic bytes
// and return a File with the object key and public URL.
//
// Helpers validate uploads before they are stored:
//
//	if err := file.ValidateImage(fh, file.DefaultMaxImageSize); err != nil {
//		return err // ErrNotAnImage or ErrFileTooLarge
//	}
//	key := file.ObjectKey("gallery", fh)
//	stored, err := storage.Save(ctx, fh, key)
package file
