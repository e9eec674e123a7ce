package kernel

// Owner models who a shipping zone or method belongs to: either the platform
// itself (available to every store) or a single store.
//
// Modelling ownership explicitly replaces scattered role checks: catalog
// lookups answer "is this zone visible to store X" with a single
// AvailableTo call instead of comparing nullable store references ad hoc.
type Owner struct {
	storeID *UUID
}

// PlatformOwner returns the Owner representing platform-wide (global) ownership.
func PlatformOwner() Owner {
	return Owner{}
}

// StoreOwner returns the Owner representing ownership by a single store.
// The store ID must be a valid UUID.
func StoreOwner(storeID UUID) (Owner, error) {
	if err := storeID.Validate(); err != nil {
		return Owner{}, err
	}
	return Owner{storeID: &storeID}, nil
}

// IsPlatform reports whether the owner is the platform.
func (o Owner) IsPlatform() bool {
	return o.storeID == nil
}

// StoreID returns the owning store's ID, or nil for platform ownership.
func (o Owner) StoreID() *UUID {
	return o.storeID
}

// IsEqual compares two owners. Platform owners are equal to each other;
// store owners are equal when they reference the same store.
func (o Owner) IsEqual(other Owner) bool {
	if o.storeID == nil || other.storeID == nil {
		return o.storeID == nil && other.storeID == nil
	}
	return o.storeID.IsEqual(*other.storeID)
}

// AvailableTo reports whether an object with this owner is visible to the
// given store: platform-owned objects are visible to every store, while
// store-owned objects are visible only to their own store.
func (o Owner) AvailableTo(store Owner) bool {
	return o.IsPlatform() || o.IsEqual(store)
}

// String returns "Platform" or "Store(<uuid>)".
func (o Owner) String() string {
	if o.storeID == nil {
		return "Platform"
	}
	return "Store(" + o.storeID.String() + ")"
}
