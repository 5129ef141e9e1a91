package fakecredentialsrepo

import (
	"sync"

	"github.com/jrsteele09/go-admin-client/credentials"
)

var _ credentials.Repo = (*FakeCredentialsRepo)(nil)

type FakeCredentialsRepo struct {
	creds *credentials.Credentials
	lock  sync.RWMutex
}

func NewFakeCredentialsRepo() *FakeCredentialsRepo {
	return &FakeCredentialsRepo{}
}

func (cr *FakeCredentialsRepo) Get() (*credentials.Credentials, error) {
	cr.lock.RLock()
	defer cr.lock.RUnlock()

	if cr.creds == nil {
		return nil, nil
	}
	copied := *cr.creds
	return &copied, nil
}

func (cr *FakeCredentialsRepo) Store(creds *credentials.Credentials) error {
	cr.lock.Lock()
	defer cr.lock.Unlock()

	copied := *creds
	cr.creds = &copied
	return nil
}

func (cr *FakeCredentialsRepo) Clear() error {
	cr.lock.Lock()
	defer cr.lock.Unlock()

	cr.creds = nil
	return nil
}
