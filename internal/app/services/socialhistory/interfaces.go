package socialhistory

import "context"

// SocialHistoryUsecase writes, reads and clears one social-history topic at a
// time. Payloads are the topic structs from the models package; callers obtain
// a decode target through NewTopicPayload.
type SocialHistoryUsecase interface {
	UpsertTopic(ctx context.Context, patientID, topic string, payload interface{}) (interface{}, error)
	GetTopic(ctx context.Context, patientID, topic string) (interface{}, error)
	DeleteTopic(ctx context.Context, patientID, topic string) error
}
