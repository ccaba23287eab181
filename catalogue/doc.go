// Package catalogue stores the transit network: stops, buses and directed
// road distances between stops, and answers lookups and per-bus statistics.
//
// Construction is two-phase:
//
//	b := catalogue.NewBuilder()
//	b.AddStop("A", geo.Coordinates{...})      // mutable phase
//	b.AddDistance("A", "B", 1000)
//	b.AddBus("1", []string{"A", "B"}, false)
//	cat, err := b.Build()                      // frozen, immutable Catalogue
//
// After Build the Builder is sealed and every mutation returns
// ErrBuilderSealed, so "no mutation after compile" is enforced by types
// rather than by discipline. A Catalogue is safe for concurrent reads.
//
// Identity:
//
// Stops live in an arena in insertion order; buses and the distance table
// refer to stops by arena index (Stop.Index), never by pointer.
//
// Buses:
//
// A roundtrip bus runs its stops as given. Any other bus runs out and back:
// the effective route is the forward list followed by its reverse without the
// duplicated terminus, so [A B C] becomes [A B C B A].
//
// Duplicates:
//
// Re-registering a stop or bus name is ignored (the first registration wins)
// unless the builder was created WithStrictDuplicates, in which case
// ErrDuplicateStop / ErrDuplicateBus are returned.
//
// Distances:
//
// AddDistance registers a directed road distance. Lookups try the requested
// direction first and fall back to the reverse one. Build rejects a bus whose
// consecutive stops have no distance in either direction (ErrMissingDistance),
// unless WithMissingDistanceAsZero was given. A stop followed by itself counts
// as 0 m when nothing is registered for it.
//
// Errors:
//
//	ErrEmptyName        – empty stop or bus name
//	ErrDuplicateStop    – stop name reused (strict mode only)
//	ErrDuplicateBus     – bus name reused (strict mode only)
//	ErrUnknownStop      – bus or distance references an unregistered stop
//	ErrEmptyRoute       – bus without stops
//	ErrNegativeDistance – distance < 0
//	ErrMissingDistance  – consecutive bus stops without any registered distance
//	ErrBuilderSealed    – mutation after Build
package catalogue
