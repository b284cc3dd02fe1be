package service

import "fmt"

// ValidationError marks bad client input; rendered as 400 with a message
// naming the offending field.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// UpstreamError marks an unrecognized or empty inference payload; rendered as
// 500 with a best-effort diagnostic.
type UpstreamError struct {
	Detail string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("invalid upstream response: %s", e.Detail)
}

// StorageError marks a failed key-value operation; rendered as 500.
type StorageError struct {
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage operation failed: %v", e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// NotFoundError marks an artifact lookup miss; rendered as 404.
type NotFoundError struct {
	UserId string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no image found for user %s", e.UserId)
}
