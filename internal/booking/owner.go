package booking

// OwnerID decides which user a created record is attributed to. A
// logged-in caller always owns their own bookings regardless of any
// owner id in the payload; a guest may supply one freely; otherwise the
// record is guest-owned (nil).
func OwnerID(authenticatedID *int64, bodyID *int64) *int64 {
	if authenticatedID != nil {
		return authenticatedID
	}
	return bodyID
}
