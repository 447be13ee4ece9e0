package inventory

import "github.com/hollowpine/frontier/internal/domain"

// MergeResult describes the outcome of combining a source stack into a target
// stack of the same definition.
type MergeResult struct {
	Transferred  int
	SourceNewQty int
	TargetNewQty int
	DeleteSource bool
}

// CalculateMerge computes the result of transferring quantity from source onto
// target, capped by the definition's stack size. Pure function: it never
// mutates its arguments, and the same inputs always yield the same result.
//
// Check order is fixed: definition match, then stackability, then capacity.
func CalculateMerge(source, target *domain.ItemInstance, def *domain.ItemDefinition) (MergeResult, error) {
	if source.DefinitionID != target.DefinitionID || def.ID != source.DefinitionID {
		return MergeResult{}, domain.ErrDifferentDefinition
	}
	if !def.Stackable {
		return MergeResult{}, domain.ErrNotStackable
	}

	space := def.EffectiveStackSize() - target.Quantity
	if space <= 0 {
		return MergeResult{}, domain.ErrTargetFull
	}

	transfer := source.Quantity
	if transfer > space {
		transfer = space
	}

	return MergeResult{
		Transferred:  transfer,
		SourceNewQty: source.Quantity - transfer,
		TargetNewQty: target.Quantity + transfer,
		DeleteSource: source.Quantity-transfer == 0,
	}, nil
}
