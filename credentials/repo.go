package credentials

// Repo persists the active credential set. Exactly one set is active at a
// time; Store replaces it wholesale and Clear removes it. Get returns
// (nil, nil) when nothing is stored - absence is not an error.
type Repo interface {
	Get() (*Credentials, error)
	Store(creds *Credentials) error
	Clear() error
}
