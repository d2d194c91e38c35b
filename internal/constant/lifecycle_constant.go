package constant

// LifecycleState mirrors the candidate_lifecycle_state Postgres enum.
type LifecycleState string

const (
	LifecycleActive  LifecycleState = "ACTIVE"
	LifecycleArchive LifecycleState = "ARCHIVE"
)

// DefaultLifecycle is applied when a search request carries no filter.
const DefaultLifecycle = LifecycleActive

func (s LifecycleState) Valid() bool {
	return s == LifecycleActive || s == LifecycleArchive
}
