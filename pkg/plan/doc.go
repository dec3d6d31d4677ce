// Package plan turns an ordered stream of firing positions into a packing
// plan for mounting boards and carrying crates.
//
// # Overview
//
// A show is described by position records (position id, caliber, quantity).
// Physical boards hold 100 positions and are built in two halves of 50; each
// half exposes 25 slots, so positions n and n+25 share a slot. Guns of one
// caliber are loaded five at a time into racks, and racks travel in crates
// whose sizes come from a fixed, hand-authored table.
//
// The package works in three steps:
//
//  1. [Segment] groups the position stream into [HalfBoard] values,
//     bucketing every gun by caliber and slot.
//  2. [GroupCrates] resolves one caliber row of a half-board into closed
//     [Crate] values plus an [Extras] bucket of at most four positions.
//  3. [Build] runs both over a whole stream and returns a [Plan]. Nothing
//     is returned unless every half-board and caliber row succeeded.
//
// # Rack Grouping Table
//
// [CrateGroups] maps a count of full racks (1..12) to the rack count of each
// crate, in fill order. The table is data, not an algorithm; [ValidateTable]
// checks that every entry sums to its key and should be called once at
// startup.
//
// # Phase Order
//
// Consecutive half-boards are rendered with alternating caliber row orders.
// [Phase] selects one of the two orders; half-board k of a run uses
// [PhaseAt](initial, k).
//
// # Board Models
//
// Segmentation and row placement are parameterised by a [BoardModel]. Only
// [KimBoard] exists today; [LookupModel] resolves a model by name.
//
// # Errors
//
// All failures are fatal and carry a code from
// github.com/pyrolayout/boardplan/pkg/errors:
//   - BOUNDARY_VIOLATION when a position id regresses below the open half-board
//   - UNSUPPORTED_RACK_COUNT when a caliber row has more than 12 full racks
//   - INVALID_INPUT for negative quantities, ids below 1 or unknown calibers
package plan
