package postgres

// Error messages for persistence operations
const (
	ErrMsgGetInstanceFailed    = "failed to get instance: %w"
	ErrMsgListInstancesFailed  = "failed to list instances: %w"
	ErrMsgInsertInstanceFailed = "failed to insert instance: %w"
	ErrMsgUpdateInstanceFailed = "failed to update instance: %w"
	ErrMsgDeleteInstanceFailed = "failed to delete instance: %w"

	ErrMsgGetContainerFailed    = "failed to get container: %w"
	ErrMsgInsertContainerFailed = "failed to insert container: %w"
	ErrMsgUpdateContainerFailed = "failed to update container: %w"
	ErrMsgDeleteContainerFailed = "failed to delete container: %w"

	ErrMsgGetDefinitionFailed    = "failed to get definition: %w"
	ErrMsgListDefinitionsFailed  = "failed to list definitions: %w"
	ErrMsgInsertDefinitionFailed = "failed to insert definition: %w"
	ErrMsgUpdateDefinitionFailed = "failed to update definition: %w"

	ErrMsgGetSyncMetadataFailed    = "failed to get sync metadata: %w"
	ErrMsgUpsertSyncMetadataFailed = "failed to upsert sync metadata: %w"
)
