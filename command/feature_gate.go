package command

import (
	"context"

	featuregate "github.com/goliatone/go-featuregate/gate"
)

// FeatureUsersMutations gates createUser and updateUser.
const FeatureUsersMutations = "users.mutations"

func featureEnabled(ctx context.Context, gate featuregate.FeatureGate, key string) (bool, error) {
	if gate == nil {
		return true, nil
	}
	return gate.Enabled(ctx, key)
}

func ensureMutationsEnabled(ctx context.Context, gate featuregate.FeatureGate) error {
	enabled, err := featureEnabled(ctx, gate, FeatureUsersMutations)
	if err != nil {
		return err
	}
	if !enabled {
		return ErrMutationsDisabled
	}
	return nil
}
