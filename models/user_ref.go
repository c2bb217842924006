package models

import "encoding/json"

// UserRef is an optional reference to a user identity. It is used for
// resource ownership, where a resource may have no owner at all
// (anonymous content), and for the caller identity resolved from a
// token, which is absent on unauthenticated routes.
//
// Ownership comparisons must go through [UserRef.Equal]: an absent
// reference never matches anything, so an anonymous resource can never
// be claimed by any caller.
type UserRef struct {
	ID    int64
	Valid bool
}

// NewUserRef returns a present reference to the given user ID.
func NewUserRef(id int64) UserRef {
	return UserRef{ID: id, Valid: true}
}

// Equal reports whether both references are present and refer to the
// same user. Two absent references are NOT equal; comparison is defined
// only for two present values.
func (r UserRef) Equal(other UserRef) bool {
	return r.Valid && other.Valid && r.ID == other.ID
}

// MarshalJSON serializes a present reference as the bare user ID and an
// absent one as JSON null, matching the wire shape of an optional
// owner field.
func (r UserRef) MarshalJSON() ([]byte, error) {
	if !r.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(r.ID)
}

// UnmarshalJSON accepts either a user ID or null.
func (r *UserRef) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*r = UserRef{}
		return nil
	}

	var id int64
	if err := json.Unmarshal(data, &id); err != nil {
		return err
	}

	*r = NewUserRef(id)
	return nil
}
