package workerpool

import uuid "github.com/satori/go.uuid"

// Task is one unit of work submitted to a Pool. Data is opaque to the
// pool and to the underlying channel.Channel[*Task] — neither ever
// inspects it, preserving the core's "channel never dereferences the
// payload" invariant.
type Task struct {
	ID         string
	F          func(data interface{}) error
	Data       interface{}
	Priority   bool
	NeedRetry  bool
	RetryTimes int
	RetryLimit int
}

// NewTask creates a Task with a fresh correlation ID, used only for
// logging.
func NewTask(f func(data interface{}) error, data interface{}) *Task {
	return &Task{
		ID:   uuid.NewV4().String(),
		F:    f,
		Data: data,
	}
}
