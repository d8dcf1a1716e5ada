package uid

var (
	NewWith  = newWith
	Fallback = fallback
)
