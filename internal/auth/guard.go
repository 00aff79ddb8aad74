package auth

// RequireOwner is the ownership guard: a mutation on an owned resource is
// allowed only when the authenticated user is its recorded owner. A nil
// owner reference (the owner account was removed) is forbidden for everyone.
// Callers must pass a user id that came out of session resolution, never raw
// request input.
func RequireOwner(ownerID *int64, userID int64) error {
	if ownerID == nil || *ownerID != userID {
		return ErrForbidden
	}
	return nil
}
