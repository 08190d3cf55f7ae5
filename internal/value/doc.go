// Package value implements the tagged-value representation shared by
// every runtime subsystem: a packed runtime value holding undefined,
// null, a boolean, a 32-bit integer, a double, or a pointer to a heap
// object.
//
// Two disjoint packings are provided, selected at build time:
//
//   - value_nanbox.go (default): a one-word 64-bit NaN-boxed Value, for
//     64-bit hosts.
//   - value_twoword.go (build tag jscore_32bit): an explicit two-word
//     {Tag, Payload} struct, for 32-bit hosts.
//
// Every other package in this module imports only the method set below
// (FromInt32, FromDouble, IsObject, ToNumber, StrictEquals, ...) and
// never the bit layout, so swapping the build tag never touches a
// caller.
package value
