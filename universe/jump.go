package universe

// Jump is a gate or hole connecting two systems. It's a Solar of the
// origin system and carries the target system's nickname; per spec.md §8
// a Jump appears in exactly its origin System's Contents(), never the
// target's (the target gets its own, separate Jump record pointing back).
type Jump struct {
	SolarCommon
	targetNick string
}

// TargetNickname returns the nickname of the system this jump leads to.
func (j *Jump) TargetNickname() string { return j.targetNick }

// Target resolves the destination System.
func (j *Jump) Target() (*System, bool) {
	if j.registry == nil {
		return nil, false
	}
	return j.registry.Systems().Get(j.targetNick)
}
