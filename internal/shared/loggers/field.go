package loggers

const (
	FieldApp        = "app"
	FieldComponent  = "component"
	FieldHttpMethod = "http_method"
	FieldHttpPath   = "http_path"
	FieldHttpStatus = "http_status"

	FieldDuration   = "duration"
	FieldRequestID  = "request_id"
	FieldErrorStack = "error_stack"
	FieldErrorCode  = "error_code"

	FieldSessionID   = "session_id"
	FieldAuctionID   = "auction_id"
	FieldEventType   = "event_type"
	FieldEventClass  = "event_class"
	FieldDestination = "destination"
	FieldPartitionId = "partition_id"
	FieldBatchBytes  = "batch_bytes"
)
