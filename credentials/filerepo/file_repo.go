package filerepo

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"github.com/jrsteele09/go-admin-client/credentials"
	"github.com/pkg/errors"
)

var _ credentials.Repo = (*FileRepo)(nil)

// FileRepo stores the credential set as a JSON file so a session survives
// process restarts. Writes go through a temp file and rename so a crash
// mid-write never leaves a half-written credential file behind.
type FileRepo struct {
	path string
	lock sync.Mutex
}

func New(path string) *FileRepo {
	return &FileRepo{path: path}
}

func (fr *FileRepo) Get() (*credentials.Credentials, error) {
	fr.lock.Lock()
	defer fr.lock.Unlock()

	data, err := os.ReadFile(fr.path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "[FileRepo.Get] ReadFile")
	}

	creds := credentials.Credentials{}
	if err := json.Unmarshal(data, &creds); err != nil {
		return nil, errors.Wrap(err, "[FileRepo.Get] Unmarshal")
	}
	return &creds, nil
}

func (fr *FileRepo) Store(creds *credentials.Credentials) error {
	fr.lock.Lock()
	defer fr.lock.Unlock()

	if creds == nil {
		return errors.New("[FileRepo.Store] nil credentials")
	}

	data, err := json.Marshal(creds)
	if err != nil {
		return errors.Wrap(err, "[FileRepo.Store] Marshal")
	}

	if err := os.MkdirAll(filepath.Dir(fr.path), 0o700); err != nil {
		return errors.Wrap(err, "[FileRepo.Store] MkdirAll")
	}

	tmp := fr.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return errors.Wrap(err, "[FileRepo.Store] WriteFile")
	}
	if err := os.Rename(tmp, fr.path); err != nil {
		return errors.Wrap(err, "[FileRepo.Store] Rename")
	}
	return nil
}

func (fr *FileRepo) Clear() error {
	fr.lock.Lock()
	defer fr.lock.Unlock()

	if err := os.Remove(fr.path); err != nil && !os.IsNotExist(err) {
		return errors.Wrap(err, "[FileRepo.Clear] Remove")
	}
	return nil
}
