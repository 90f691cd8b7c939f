package purchasing

import (
	"strings"

	"golang.org/x/text/cases"
)

// ProductKey normaliza la descripción del producto para agrupar: colapsa espacios y
// aplica case folding Unicode. Las variantes ortográficas distintas siguen separadas.
func ProductKey(description string) string {
	return cases.Fold().String(strings.Join(strings.Fields(description), " "))
}
