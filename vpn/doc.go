// Package vpn provides tunnel profile discovery and switching for VPN Switcher.
//
// This package implements the core switching functionality:
//
//   - Profile classification: Deriving group codes from profile identifiers
//   - Registry building: Grouping and sorting the managed tunnel profiles
//   - Connection adapter: Querying and toggling profiles through nmcli
//   - Switcher: Enforcing the at-most-one-active-profile intent
//
// # Architecture
//
// The package is organized around three main types:
//
//   - Registry: A fresh, grouped snapshot of the managed tunnel profiles
//   - NMCli: The adapter driving NetworkManager's nmcli binary
//   - Switcher: Orchestrates activate/deactivate ordering and the recency log
//
// # Switching Flow
//
// A typical activation:
//
//  1. The menu flow resolves the user's pick to a profile identifier
//  2. Switcher.Activate() reads the live active set
//  3. The target profile is brought up first (never a zero-tunnel window)
//  4. Every other active managed profile is brought down
//  5. The profile is recorded at the tail of the recency log
//
// # Error Semantics
//
// Listing failures are fatal for the current operation and never retried.
// An identifier that cannot be classified fails the whole listing: dropping
// it silently would break the consistency between registry and active set.
// A failed individual deactivation is surfaced as a warning, not rolled back.
package vpn
