package config

import "time"

// Base application details
const AppName = "kilo"
const DefaultConfigFileName = "config.toml"
const DefaultLogFileName = "kilo.log"

// Editor defaults
const DefaultTabWidth = 4
const DefaultHistoryDepth = 1000
const DefaultAutoIndent = true
const SystemClipboard = false
const DefaultHighlight = true

// UI Layout
const StatusBarHeight = 1

// Status Bar
const MessageTimeout = 4 * time.Second

// Autosave
const DefaultAutosaveInterval = time.Minute
