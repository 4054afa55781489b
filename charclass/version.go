package charclass

import "fmt"

// Version of the Unicode derived datasets embedded in this package. The
// loader refuses datasets whose version field disagrees with these
// constants, since that indicates a mispackaged build.
const (
	TableVersionMajor = 16
	TableVersionMinor = 0
	TableVersionPatch = 0
)

func TableVersion() string {
	return fmt.Sprintf("%d.%d.%d", TableVersionMajor, TableVersionMinor, TableVersionPatch)
}
