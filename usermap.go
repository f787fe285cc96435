package fixture

import "slices"

// UserMap indexes users by id. Keys are expected to equal the id of the
// mapped user; nothing enforces it.
type UserMap map[int]User

// NewUserMap keys users by their id. Later duplicates replace earlier ones.
func NewUserMap(users ...User) UserMap {
	m := make(UserMap, len(users))
	for _, u := range users {
		m.Put(u)
	}

	return m
}

// Put stores u under its own id.
func (m UserMap) Put(u User) {
	m[u.ID] = u
}

func (m UserMap) Lookup(id int) (User, bool) {
	u, ok := m[id]
	return u, ok
}

// Mismatched returns, in ascending order, the keys whose user carries a different id.
func (m UserMap) Mismatched() []int {
	var keys []int
	for k, u := range m {
		if k != u.ID {
			keys = append(keys, k)
		}
	}
	slices.Sort(keys)

	return keys
}
