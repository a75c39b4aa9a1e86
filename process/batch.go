package process

import (
	"context"

	"golang.org/x/sync/semaphore"

	"github.com/juruen/sketchpad/log"
)

// Job is one named image to process
type Job struct {
	Name  string
	Image string
}

// Result pairs a job with its outcome
type Result struct {
	Name     string
	Response *Response
	Err      error
}

// Batch processes jobs with at most size requests in flight.
// Results are in job order.
func Batch(ctx context.Context, p Processor, jobs []Job, size int64) []Result {
	if size <= 0 {
		size = 1
	}

	results := make([]Result, len(jobs))
	for i, j := range jobs {
		results[i].Name = j.Name
	}

	sem := semaphore.NewWeighted(size)
	for i := range jobs {
		// Acquire succeeds on a cancelled context while there is room
		err := ctx.Err()
		if err == nil {
			err = sem.Acquire(ctx, 1)
		}
		if err != nil {
			log.Trace.Printf("batch: failed to acquire semaphore: %v", err)
			for k := i; k < len(jobs); k++ {
				results[k].Err = err
			}
			break
		}
		go func(i int) {
			defer sem.Release(1)
			resp, err := p.Process(ctx, jobs[i].Image)
			if err != nil {
				log.Trace.Printf("batch: %s failed: %v", jobs[i].Name, err)
			}
			results[i].Response, results[i].Err = resp, err
		}(i)
	}

	// wait for all goroutines to finish
	if err := sem.Acquire(context.Background(), size); err != nil {
		log.Trace.Printf("batch: failed to acquire semaphore: %v", err)
	}
	return results
}
