package tagmatch

// Decision tells whether package tags take over the admission decision.
// When Bypass is false the rollout gate decides and Eligible is meaningless.
type Decision struct {
	Bypass   bool
	Eligible bool
}

// Match applies tag targeting. Untagged packages fall through to the rollout gate,
// tagged packages are visible only to clients sharing at least one tag.
func Match(requestTags, packageTags []string) Decision {
	if len(packageTags) == 0 {
		return Decision{}
	}
	return Decision{
		Bypass:   true,
		Eligible: Intersects(requestTags, packageTags),
	}
}

func Intersects(a, b []string) bool {
	if len(a) == 0 || len(b) == 0 {
		return false
	}
	if len(a) > len(b) {
		a, b = b, a
	}
	set := make(map[string]struct{}, len(a))
	for _, t := range a {
		set[t] = struct{}{}
	}
	for _, t := range b {
		if _, ok := set[t]; ok {
			return true
		}
	}
	return false
}
