// Package common provides shared constants, types, and utilities
// used across the VPN Switcher application.
package common

import "time"

// Application metadata.
const (
	// AppName is the display name of the application.
	AppName = "VPN Switcher"
	// ConfigDirName is the name of the configuration directory.
	ConfigDirName = "vpn-switcher"
)

// File names used by the application.
const (
	ConfigFileName  = "config.yaml"
	HistoryFileName = "history"
	GroupsFileName  = "groups.json"
	LogFileName     = "vpn-switcher.log"
)

// Default timeouts and limits.
const (
	// CommandTimeout is the default maximum time to wait for an nmcli call.
	CommandTimeout = 15 * time.Second
	// DefaultHistorySize is the default bound of the recency log.
	DefaultHistorySize = 5
	// DefaultNotifyDuration is the default notification display time.
	DefaultNotifyDuration = 4 * time.Second
)

// TunnelMarker identifies the tunnel technology this tool manages in the
// connection manager's listing output.
const TunnelMarker = "wireguard"

// GroupSeparator splits a profile identifier into group code and the rest.
const GroupSeparator = "-"

// Theme values for the built-in menu.
const (
	ThemeAuto  = "auto"
	ThemeLight = "light"
	ThemeDark  = "dark"
)

// Menu backend values.
const (
	MenuAuto   = "auto"
	MenuTUI    = "tui"
	MenuFuzzel = "fuzzel"
	MenuRofi   = "rofi"
	MenuDmenu  = "dmenu"
)
