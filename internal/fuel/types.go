package fuel

// Variant selects how a module's fuel requirement is derived from its mass.
type Variant string

const (
	// VariantSimple counts fuel for the module mass only.
	VariantSimple Variant = "simple"
	// VariantRecursive also counts the fuel needed to carry the fuel itself.
	VariantRecursive Variant = "recursive"
)

// Report summarises a completed run.
type Report struct {
	Variant Variant
	Modules int
	Total   int
}

// Calculator describes the behaviour required from a fuel calculator.
type Calculator interface {
	ModuleFuel(mass int) int
}
