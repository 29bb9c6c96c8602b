package section

// DefaultUnit is used when neither the section file nor the command line names a unit.
const DefaultUnit = "mm"

// Units lists the accepted length unit labels.
var Units = []string{"mm", "cm", "m", "in", "ft"}

// ValidUnit reports whether u is one of Units.
func ValidUnit(u string) bool {
	for _, v := range Units {
		if u == v {
			return true
		}
	}
	return false
}
