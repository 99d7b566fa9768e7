// Package common provides shared constants, types, utilities, and interfaces
// used throughout the VPN Switcher application.
//
// This package serves as the foundation for cross-cutting concerns:
//
//   - Constants: Application-wide constants like timeouts, file names, and tunnel markers
//   - Errors: Sentinel errors for consistent error handling across packages
//   - Interfaces: Abstractions for notifications, logging, and the recency store
//   - Logger: Structured logging with multiple output destinations
//   - Utils: Common utility functions for file operations and string manipulation
//
// # Usage
//
// Import the package to access shared functionality:
//
//	import "github.com/yllada/vpn-switcher/common"
//
//	// Use constants
//	timeout := common.CommandTimeout
//
//	// Check errors
//	if errors.Is(err, common.ErrExternalTool) {
//	    // nmcli or the menu program is missing or failed
//	}
//
// # Design Principles
//
// This package follows several design principles:
//
//   - Single Responsibility: Each file handles one concern
//   - Interface Segregation: Small, focused interfaces
//   - Dependency Inversion: High-level modules depend on abstractions
package common
