package storage

func assertLive(live bool) {
	if debugChecks && !live {
		panic(ErrNotLive)
	}
}

func assertVacant(live bool) {
	if debugChecks && live {
		panic(ErrAlreadyLive)
	}
}

// noCopy may be embedded into structs which must not be copied
// after the first use. go vet's copylocks check picks it up.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}
