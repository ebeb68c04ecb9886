package filestorage

import "mime/multipart"

// Storage is the object store abstraction used for faculty images. Save
// returns the public URL of the stored object; Delete removes a previously
// stored object by that URL and is idempotent.
type Storage interface {
	Save(fileHeader *multipart.FileHeader) (string, error)
	Delete(fileURL string) error
}
