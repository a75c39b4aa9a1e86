package process

import "context"

// Task is one in-flight submission. Tasks are independent: nothing
// serializes or de-duplicates them.
type Task struct {
	done chan struct{}
	resp *Response
	err  error
}

// Submit starts processing image in the background. Cancelling ctx aborts
// the request.
func Submit(ctx context.Context, p Processor, image string) *Task {
	t := &Task{done: make(chan struct{})}
	go func() {
		defer close(t.done)
		t.resp, t.err = p.Process(ctx, image)
	}()
	return t
}

// Submit is the asynchronous form of Process
func (c *Client) Submit(ctx context.Context, image string) *Task {
	return Submit(ctx, c, image)
}

// Done is closed once the result is available
func (t *Task) Done() <-chan struct{} {
	return t.done
}

// Wait blocks until the task completes
func (t *Task) Wait() (*Response, error) {
	<-t.done
	return t.resp, t.err
}
