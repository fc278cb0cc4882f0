package config

// Field length limits, matching the storage column sizes.
const (
	MaxTitleLength    = 200
	MaxTagsLength     = 255
	MaxUsernameLength = 150
	MaxEmailLength    = 254
	MaxNameLength     = 150

	// MinPasswordLength is the floor the core enforces before delegating
	// to the password policy collaborator.
	MinPasswordLength = 8
)
