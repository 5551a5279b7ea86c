package media

import (
	"context"
	"mime/multipart"
	"sync"
)

// FakeUploader validates files like the real uploader and returns a
// predictable URL without any network call.
type FakeUploader struct {
	mu       sync.Mutex
	Uploaded []string
}

func (f *FakeUploader) Upload(_ context.Context, file *multipart.FileHeader, folder string) (string, error) {
	if _, err := Validate(file); err != nil {
		return "", err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Uploaded = append(f.Uploaded, file.Filename)
	return "https://cdn.test/" + folder + "/" + file.Filename, nil
}
