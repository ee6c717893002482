package inkan

// Signature represents the set of component types an entity currently holds,
// one bit per ComponentID. It is also how systems declare the component set
// they require. A Signature is a value; copying it copies the set.
type Signature [4]uint64

// MakeSignature builds a Signature with the bits for the given component IDs
// set. Systems typically build their required signature once, from the IDs of
// the pools they registered.
func MakeSignature(ids ...ComponentID) Signature {
	var s Signature
	for _, id := range ids {
		s.set(id)
	}
	return s
}

// Has reports whether the bit for the given component ID is set.
func (s Signature) Has(id ComponentID) bool {
	return (s[id>>6] & (uint64(1) << (id & 63))) != 0
}

// Contains reports whether every bit set in sub is also set in s. This is the
// membership test routing entities to systems: an entity belongs to a system
// iff its signature contains the system's required signature.
func (s Signature) Contains(sub Signature) bool {
	return (s[0]&sub[0]) == sub[0] &&
		(s[1]&sub[1]) == sub[1] &&
		(s[2]&sub[2]) == sub[2] &&
		(s[3]&sub[3]) == sub[3]
}

// IsZero reports whether no bits are set.
func (s Signature) IsZero() bool {
	return s == Signature{}
}

// set enables the bit for the given component ID.
func (s *Signature) set(id ComponentID) {
	s[id>>6] |= uint64(1) << (id & 63)
}

// unset disables the bit for the given component ID.
func (s *Signature) unset(id ComponentID) {
	s[id>>6] &^= uint64(1) << (id & 63)
}
