package avatar

// Package avatar resolves the visual identity of a candidate: a decoded
// photo when one is available, otherwise a colour and initials derived from
// the name. Resolved identities are cached per name until Invalidate.
