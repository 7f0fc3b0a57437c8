package formats

import (
	"sort"
)

// Format identifiers. The set is closed: these are the only names a registry built
// by NewRegistry knows about.
const (
	KeePassXC = "keepass"
	Bitwarden = "bitwarden"
	Proton    = "proton"
	Chrome    = "chrome"
	Firefox   = "firefox"
	KDBX      = "kdbx"
	CXF       = "cxf"
)

// Registry maps format identifiers to adapters.
type Registry struct {
	formats map[string]Format
}

// NewRegistry creates a registry populated with every built-in format.
// opts is handed to formats that read encrypted files.
func NewRegistry(opts OpenOptions) *Registry {
	r := &Registry{formats: make(map[string]Format)}
	r.register(NewKeePassXCFormat())
	r.register(NewBitwardenFormat())
	r.register(NewProtonFormat())
	r.register(NewChromeFormat())
	r.register(NewFirefoxFormat())
	r.register(NewKDBXFormat(opts))
	r.register(NewCXFFormat(DefaultCXFOptions()))
	return r
}

func (r *Registry) register(f Format) {
	r.formats[f.Name()] = f
}

// Get retrieves a format by its exact name.
// Returns ErrUnknownFormat if the name is not registered.
func (r *Registry) Get(name string) (Format, error) {
	f, ok := r.formats[name]
	if !ok {
		return nil, &ErrUnknownFormat{Name: name, Known: r.Names()}
	}
	return f, nil
}

// Reader retrieves a format that can be used as a conversion source.
func (r *Registry) Reader(name string) (Format, error) {
	f, err := r.Get(name)
	if err != nil {
		return nil, err
	}
	if !f.Mode().CanRead() {
		return nil, &ErrUnsupportedFeature{Format: name, Feature: "read"}
	}
	return f, nil
}

// Writer retrieves a format that can be used as a conversion target.
func (r *Registry) Writer(name string) (Format, error) {
	f, err := r.Get(name)
	if err != nil {
		return nil, err
	}
	if !f.Mode().CanWrite() {
		return nil, &ErrUnsupportedFeature{Format: name, Feature: "write"}
	}
	return f, nil
}

// List returns all registered formats sorted by name.
func (r *Registry) List() []Format {
	result := make([]Format, 0, len(r.formats))
	for _, f := range r.formats {
		result = append(result, f)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Name() < result[j].Name()
	})

	return result
}

// Names returns the names of all registered formats sorted alphabetically.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.formats))
	for name := range r.formats {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Count returns the number of registered formats.
func (r *Registry) Count() int {
	return len(r.formats)
}
