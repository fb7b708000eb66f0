package repo

// Store serves the reads of the update check.
type Store struct {
	*Deployment
	*Package
}

func NewStore(d *Deployment, p *Package) *Store {
	return &Store{
		Deployment: d,
		Package:    p,
	}
}
