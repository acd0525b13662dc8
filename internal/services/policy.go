package services

// CanMutate is the ownership-or-admin rule applied to every mutating
// operation on a record owned by another user.
func CanMutate(actorID string, actorIsAdmin bool, ownerID string) bool {
	return actorID == ownerID || actorIsAdmin
}
