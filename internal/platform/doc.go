package platform

// Package platform contains OS integration: locating the per-user data
// directory, creating it, and revealing it in the system file manager.
