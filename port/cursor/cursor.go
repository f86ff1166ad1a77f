// Package cursor contains the contract between iteration cores and the iterator tiers built on top of them.
package cursor

// Tag is the capability tier a core declares for itself.
//
// The tag is descriptive. Tier composition is decided at compile time by the
// method set of the core, and the iterator tiers never branch on the tag.
// Contract suites read it to check that a core delivers what it claims.
type Tag string

const (
	// SinglePass marks cores whose past positions cannot be revisited,
	// such as cores that consume a source while advancing.
	SinglePass Tag = "single-pass"
	// Forward marks cores whose copies advance independently,
	// making multi-pass traversal possible.
	Forward Tag = "forward"
	// Bidirectional marks cores that accept negative Advance distances.
	Bidirectional Tag = "bidirectional"
	// RandomAccess marks cores that also measure the distance between positions.
	// Cores with this tag are expected to implement RandomAccessCore.
	RandomAccess Tag = "random-access"
)

// Core is the contract an iteration core has to fulfil to become an iterator.
//
// A core is a value type that represents a position in some sequence.
// V is the element type its positions dereference to, while C is the concrete
// type of the core itself, which keeps Equal comparisons between unrelated
// core kinds out of the type system. The methods are expected on the pointer
// type of C, since advancing mutates the position in place.
type Core[V any, C any] interface {
	// Advance moves the position by n elements.
	// A negative n is only valid on cores that declare at least the Bidirectional tag.
	Advance(n int)
	// Deref returns a pointer to the element at the current position.
	// Calling it repeatedly returns the same element and moves nothing.
	Deref() *V
	// Equal reports whether the two positions are the same.
	Equal(C) bool
	// Tag returns the declared capability tier of the core.
	Tag() Tag
}

// RandomAccessCore is a Core that can tell how far apart two positions are.
type RandomAccessCore[V any, C any] interface {
	Core[V, C]
	// Difference returns the signed distance between the receiver and oth,
	// measured in Advance(1) calls that would move oth onto the receiver.
	Difference(oth C) int
}

// CorePtr binds a core to its pointer type.
//
// The iterator tiers take it as their type parameter, so they can call the
// mutating methods on an addressable core value without interface dispatch.
type CorePtr[V any, C any] interface {
	*C
	Core[V, C]
}

// RandomAccessCorePtr is the CorePtr counterpart of RandomAccessCore.
type RandomAccessCorePtr[V any, C any] interface {
	*C
	RandomAccessCore[V, C]
}
