package model

// History is a read-only snapshot of a deployment's package log.
// Packages are kept in upload order, flags are looked up by package ID.
type History struct {
	packages []Package
	flags    map[int64]PackageFlags
}

// NewHistory copies the inputs, callers may reuse their slices afterwards.
func NewHistory(packages []Package, flags map[int64]PackageFlags) *History {
	h := &History{
		packages: make([]Package, len(packages)),
		flags:    make(map[int64]PackageFlags, len(flags)),
	}
	copy(h.packages, packages)
	for id, f := range flags {
		f.Rollout = ClampRollout(f.Rollout)
		h.flags[id] = f
	}
	return h
}

func (h *History) Len() int {
	if h == nil {
		return 0
	}
	return len(h.packages)
}

// At returns the i-th uploaded package, 0 is the oldest.
func (h *History) At(i int) *Package {
	return &h.packages[i]
}

func (h *History) Flags(id int64) PackageFlags {
	if h == nil {
		return DefaultFlags()
	}
	if f, ok := h.flags[id]; ok {
		return f
	}
	return DefaultFlags()
}

// Append returns a new snapshot with p at the end, h is left untouched.
func (h *History) Append(p Package, flags PackageFlags) *History {
	packages := make([]Package, 0, h.Len()+1)
	f := make(map[int64]PackageFlags, h.Len()+1)
	if h != nil {
		packages = append(packages, h.packages...)
		for id, v := range h.flags {
			f[id] = v
		}
	}
	packages = append(packages, p)
	f[p.ID] = flags
	return NewHistory(packages, f)
}

// WithFlags returns a new snapshot where the package id carries flags.
func (h *History) WithFlags(id int64, flags PackageFlags) *History {
	if h == nil {
		return NewHistory(nil, map[int64]PackageFlags{id: flags})
	}
	f := make(map[int64]PackageFlags, len(h.flags)+1)
	for k, v := range h.flags {
		f[k] = v
	}
	f[id] = flags
	return NewHistory(h.packages, f)
}
