// Package core is the picker engine: calendar grid computation, range and
// holiday constraint evaluation, time lists, the selection/view state
// machine, keyboard navigation, and the cross-instance exclusivity
// protocol.
//
// Allowed here:
// - pure state machines and derived render data (grids, cells, focus)
// - message contracts and key registries shared with the app
// - the coordinator that owns the instance registry and overlay state
//
// Not allowed here:
// - I/O of any kind (the holiday predicate is injected, never fetched)
// - concrete rendering; that lives in core/widgets
package core
