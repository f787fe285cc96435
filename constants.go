package fixture

// MaxRetries is the maximum number of retry attempts.
const MaxRetries = 3

// DefaultName is the display name used when none is known.
const DefaultName = "Anonymous"

// MaxUserID is the exclusive upper bound of ids drawn by CreateUser.
const MaxUserID = 10000
