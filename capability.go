package fixture

// Serializable is implemented by values that can be written to and
// restored from text.
type Serializable interface {
	Serialize() (string, error)
	// Deserialize overwrites the receiver with the state encoded in text.
	Deserialize(text string) error
}

// Greeter is implemented by values that can greet and take leave.
type Greeter interface {
	Greet() string
	Farewell() string
}

// Identifiable is implemented by records carrying an integer id.
type Identifiable interface {
	Identifier() int
}

// UserRecord is implemented by anything shaped like a user.
// The email is optional; the bool reports whether one is set.
type UserRecord interface {
	Identifiable
	DisplayName() string
	ContactEmail() (string, bool)
}
