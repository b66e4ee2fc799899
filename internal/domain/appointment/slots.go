package appointment

// Catalog is the ordered set of bookable slot labels for a single day.
// Labels are opaque strings; the same catalog must back both the
// availability query and the booking form.
type Catalog []string

// DefaultCatalog mirrors the slots offered on the public booking page.
var DefaultCatalog = Catalog{
	"09:00 AM",
	"10:00 AM",
	"11:00 AM",
	"01:00 PM",
	"02:00 PM",
	"03:00 PM",
	"04:00 PM",
}

// Available returns the catalog minus the booked labels, preserving catalog
// order. Booked labels not present in the catalog are ignored.
func (c Catalog) Available(booked []string) []string {
	taken := make(map[string]struct{}, len(booked))
	for _, t := range booked {
		taken[t] = struct{}{}
	}

	out := make([]string, 0, len(c))
	for _, slot := range c {
		if _, ok := taken[slot]; !ok {
			out = append(out, slot)
		}
	}
	return out
}

func (c Catalog) Contains(label string) bool {
	for _, slot := range c {
		if slot == label {
			return true
		}
	}
	return false
}
