package registry

import "github.com/goliatone/go-users-graphql/pkg/types"

// DefaultSeed returns the records every registry starts with. Ids follow the
// slice order starting at 1.
func DefaultSeed() []types.UserInput {
	return []types.UserInput{
		{Name: "John Doe", Email: "johndoe@gmail.com"},
		{Name: "Jane Doe", Email: "janedoe@gmail.com"},
		{Name: "Mike Doe", Email: "mikedoe@gmail.com"},
	}
}

func resolveSeed(seed []types.UserInput) []types.UserInput {
	if seed == nil {
		return DefaultSeed()
	}
	out := make([]types.UserInput, len(seed))
	copy(out, seed)
	return out
}
