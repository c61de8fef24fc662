package overlay

// InsertThen inserts plan's overlay and returns its model immediately,
// already inserted and tracked, then waits on its own goroutine for one
// value from result and invokes done exactly once with the model and that
// value. The caller decides in done whether to update or remove the
// handle. If result is closed without producing a value the source
// abandoned the operation and done is never invoked; cancelling the
// awaited work is the source's own contract, not this layer's.
func InsertThen[T any](r *Registry, plan Plan, result <-chan T, done func(Model, T)) Model {
	m := r.Insert(plan, nil, nil)

	go func() {
		v, ok := <-result
		if !ok {
			return
		}
		if done != nil {
			done(m, v)
		}
	}()

	return m
}

// InsertEach consumes src in emission order, asking planFor for a plan
// per element. A nil plan means no insertion for that element; planFor is
// free to have performed other work first, such as removing an earlier
// overlay. The returned channel closes once src closes and every element
// has been handled. Backpressure and cancellation belong to src.
func InsertEach[T any](r *Registry, src <-chan T, planFor func(T) *Plan) <-chan struct{} {
	done := make(chan struct{})

	go func() {
		defer close(done)
		for v := range src {
			if p := planFor(v); p != nil {
				r.Insert(*p, nil, nil)
			}
		}
	}()

	return done
}
