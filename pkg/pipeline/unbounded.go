package pipeline

import "context"

// forwardUnbounded moves elements from input to output through a FIFO buffer without limit,
// so a sender on input never waits for the receiver on output.
// output is closed once input is closed and the buffer is empty.
func forwardUnbounded[O any](ctx context.Context, input <-chan O, output chan<- O) error {
	defer close(output)

	var queue []O

	for input != nil || len(queue) > 0 {
		var (
			sendChan chan<- O
			next     O
		)

		if len(queue) > 0 {
			sendChan = output
			next = queue[0]
		}

		select {
		case <-ctx.Done():
			discard(input)

			return ctx.Err()
		case elem, ok := <-input:
			if !ok {
				input = nil

				continue
			}

			queue = append(queue, elem)
		case sendChan <- next:
			var zero O

			queue[0] = zero
			queue = queue[1:]
		}
	}

	return nil
}

// discard unblocks a sender that does not watch the context.
func discard[O any](input <-chan O) {
	if input == nil {
		return
	}

	//nolint:revive // draining
	for range input {
	}
}
