// Package authz holds the ownership policy applied to mutating operations.
// It is a plain function rather than per-handler checks so posts and
// comments enforce exactly the same rule.
package authz

// CanModify reports whether the acting user may update or delete a resource
// owned by ownerID. Only the owner may mutate; reads never consult this.
func CanModify(actorID, ownerID int64) bool {
	return actorID == ownerID
}
