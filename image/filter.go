package image

// Filter selects the resampling kernel
type Filter byte

const (
	Nearest Filter = iota
	Triangle
	CatmullRom
	Gaussian
	Lanczos3
)

var filterNames = [...]string{
	Nearest:    "nearest",
	Triangle:   "triangle",
	CatmullRom: "catmullrom",
	Gaussian:   "gaussian",
	Lanczos3:   "lanczos3",
}

// Filters lists every recognized filter in declaration order
func Filters() []Filter {
	return []Filter{Nearest, Triangle, CatmullRom, Gaussian, Lanczos3}
}

func (z Filter) String() string {
	if int(z) < len(filterNames) {
		return filterNames[z]
	}
	return "unknown"
}

// ParseFilter looks up one of the exact names: nearest, triangle,
// catmullrom, gaussian, lanczos3.
func ParseFilter(s string) (Filter, error) {
	for i, name := range filterNames {
		if name == s {
			return Filter(i), nil
		}
	}
	return 0, newError(KindParse, "", nil, "unknown filter %q", s)
}

// MarshalText implements the encoding.TextMarshaler interface.
func (z Filter) MarshalText() ([]byte, error) {
	return []byte(z.String()), nil
}

// UnmarshalText implements the encoding.TextUnmarshaler interface.
func (z *Filter) UnmarshalText(data []byte) error {
	f, err := ParseFilter(string(data))
	if err != nil {
		return err
	}
	*z = f
	return nil
}
